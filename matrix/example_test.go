// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fastmul/matrix"
)

// ExampleDense_BlockAdd shows the copy-out / accumulate-in block pattern
// used by the recursive multiplication kernels.
func ExampleDense_BlockAdd() {
	a := matrix.NewNumeric([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}, 2, 4)

	right, _ := a.Subblock(0, 2, 2, 2)
	sum, _ := matrix.NewDense[int](matrix.Numeric[int]{}, 2, 2)
	_ = sum.BlockAdd(0, 0, right)
	_ = sum.BlockAdd(0, 0, right)

	fmt.Print(sum)
	// Output:
	// [6, 8]
	// [14, 16]
}

func ExampleFprint() {
	m := matrix.NewNumeric([]int{8, 5, 20, 13}, 2, 2)
	_ = matrix.Fprint(os.Stdout, "C", m)
	// Output:
	// C (2 x 2)
	// 8	5
	// 20	13
}
