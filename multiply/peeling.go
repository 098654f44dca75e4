// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/fastmul/matrix"
)

// Peel adds to c the parts of a·b that an ⟨n,k,m⟩ block step leaves out
// when a's rows are not a multiple of n, the inner dimension not a multiple
// of k, or b's columns not a multiple of m.
//
// With included sizes irA = ⌊a.r/n⌋n, icA = ⌊a.c/k⌋k, irB = ⌊b.r/k⌋k and
// icB = ⌊b.c/m⌋m, three classic corrections are accumulated into c:
//
//	(a) a[0:irA, icA:] · b[irB:, 0:icB]  at (0, 0)    dropped inner slice
//	(b) a · b[:, icB:]                   at (0, icB)  dropped columns of c
//	(c) a[irA:, :] · b[:, 0:icB]         at (irA, 0)  dropped rows of c
//
// Each correction runs only when its dropped extent is non-zero. If c already
// holds the block-step product of the included parts, c equals a·b afterwards.
//
// Errors:
//   - ErrInvalidBlockFactor when n, k or m < 1.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when c is not a.Rows()×b.Cols().
//
// Complexity:
//   - Time O(a.r·a.c·b.c) worst case, proportional to the dropped fringe in practice.
func Peel[T any](a, b, c *matrix.Dense[T], n, k, m int) error {
	if n < 1 || k < 1 || m < 1 {
		return fmt.Errorf("%s(%d,%d,%d): %w", opPeel, n, k, m, ErrInvalidBlockFactor)
	}
	if err := matrix.ValidateProductShape(a, b, c); err != nil {
		return multiplyErrorf(opPeel, err)
	}
	_, err := peel(a, b, c, n, k, m)

	return err
}

// peel is the unchecked body of Peel; it reports how many corrections ran.
func peel[T any](a, b, c *matrix.Dense[T], n, k, m int) (int, error) {
	var (
		irA = (a.Rows() / n) * n
		icA = (a.Cols() / k) * k
		irB = (b.Rows() / k) * k
		icB = (b.Cols() / m) * m
		ran int
	)

	if a.Cols()-icA > 0 {
		x, err := a.Subblock(0, icA, irA, a.Cols()-icA)
		if err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		y, err := b.Subblock(irB, 0, b.Rows()-irB, icB)
		if err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		if err = c.BlockAdd(0, 0, classic(x, y)); err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		ran++
	}

	if b.Cols()-icB > 0 {
		y, err := b.Subblock(0, icB, b.Rows(), b.Cols()-icB)
		if err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		if err = c.BlockAdd(0, icB, classic(a, y)); err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		ran++
	}

	if a.Rows()-irA > 0 {
		x, err := a.Subblock(irA, 0, a.Rows()-irA, a.Cols())
		if err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		y, err := b.Subblock(0, 0, b.Rows(), icB)
		if err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		if err = c.BlockAdd(irA, 0, classic(x, y)); err != nil {
			return ran, multiplyErrorf(opPeel, err)
		}
		ran++
	}

	return ran, nil
}
