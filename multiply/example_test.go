// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
)

// ExampleStrassenDynamic multiplies a 2×4 by a 4×3 matrix with one Strassen
// step; the odd column of the result comes from peeling.
func ExampleStrassenDynamic() {
	a := matrix.NewNumeric([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}, 2, 4)
	b := matrix.NewNumeric([]int{
		12, 11, 10,
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	}, 4, 3)

	c, err := multiply.StrassenDynamic(a, b, multiply.WithThreshold(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = matrix.Fprint(os.Stdout, "C", c)
	// Output:
	// C (2 x 3)
	// 60	50	40
	// 180	154	128
}

func ExampleSchonhageExact() {
	a := matrix.NewNumeric([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)
	b := matrix.NewNumeric([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}, 3, 3)

	var st multiply.Stats
	c, _ := multiply.SchonhageExact(a, b, multiply.WithThreshold(1), multiply.WithStats(&st))
	fmt.Print(c)
	fmt.Println("products:", st.Products)
	// Output:
	// [30, 24, 18]
	// [84, 69, 54]
	// [138, 114, 90]
	// products: 21
}

func ExampleParseAlgorithm() {
	alg, err := multiply.ParseAlgorithm("bini_approx")
	fmt.Println(alg, alg.Exact(), err)
	// Output:
	// bini-approx false <nil>
}
