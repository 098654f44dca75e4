// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// defaultPrintName labels matrices printed without a name.
const defaultPrintName = "matrix"

// Fprint writes m to w as a header line "<name> (<rows> x <cols>)" followed by
// one line per row with tab-separated values. An empty name prints as "matrix".
// Complexity: O(r*c).
func Fprint[T any](w io.Writer, name string, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("Fprint", err)
	}
	if name == "" {
		name = defaultPrintName
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s (%d x %d)\n", name, m.r, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteByte('\t')
			}
			fmt.Fprint(bw, m.data[i*m.c+j])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Differences returns a boolean mask of the same shape, true where a and b agree.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Differences[T any](a, b *Dense[T]) (*Dense[bool], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, validatorErrorf("Differences", err)
	}
	mask := make([]bool, len(a.data))
	for idx := range a.data {
		mask[idx] = a.ring.Equal(a.data[idx], b.data[idx])
	}

	return &Dense[bool]{r: a.r, c: a.c, data: mask, ring: boolRing{}}, nil
}

// boolRing is the Boolean semiring (xor, and) used only to carry masks.
type boolRing struct{}

func (boolRing) Zero() bool           { return false }
func (boolRing) Add(a, b bool) bool   { return a != b }
func (boolRing) Sub(a, b bool) bool   { return a != b }
func (boolRing) Mul(a, b bool) bool   { return a && b }
func (boolRing) Equal(a, b bool) bool { return a == b }
