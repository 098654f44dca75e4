// SPDX-License-Identifier: MIT

package multiply

import (
	"math/bits"

	"github.com/katalvlaran/fastmul/matrix"
)

// strassenScheme is Strassen's ⟨2,2,2;7⟩ algorithm:
//
//	P1 = (A11 + A22)(B11 + B22)    C11 += P1, C22 += P1
//	P2 = (A21 + A22)B11            C21 += P2, C22 -= P2
//	P3 = A11(B12 − B22)            C12 += P3, C22 += P3
//	P4 = A22(B21 − B11)            C11 += P4, C21 += P4
//	P5 = (A11 + A12)B22            C11 -= P5, C12 += P5
//	P6 = (A21 − A11)(B11 + B12)    C22 += P6
//	P7 = (A12 − A22)(B21 + B22)    C11 += P7
var strassenScheme = &scheme{
	name: "strassen",
	n:    2, k: 2, m: 2,
	products: []product{
		{left: comb(pos(1, 1), pos(2, 2)), right: comb(pos(1, 1), pos(2, 2)), out: comb(pos(1, 1), pos(2, 2))},
		{left: comb(pos(2, 1), pos(2, 2)), right: comb(pos(1, 1)), out: comb(pos(2, 1), neg(2, 2))},
		{left: comb(pos(1, 1)), right: comb(pos(1, 2), neg(2, 2)), out: comb(pos(1, 2), pos(2, 2))},
		{left: comb(pos(2, 2)), right: comb(pos(2, 1), neg(1, 1)), out: comb(pos(1, 1), pos(2, 1))},
		{left: comb(pos(1, 1), pos(1, 2)), right: comb(pos(2, 2)), out: comb(neg(1, 1), pos(1, 2))},
		{left: comb(pos(2, 1), neg(1, 1)), right: comb(pos(1, 1), pos(1, 2)), out: comb(pos(2, 2))},
		{left: comb(pos(1, 2), neg(2, 2)), right: comb(pos(2, 1), pos(2, 2)), out: comb(pos(1, 1))},
	},
}

// strassenRun carries the per-call state of both Strassen variants.
type strassenRun[T any] struct {
	t tracer
}

// StrassenStatic multiplies a·b with Strassen's algorithm on zero-padded
// square operands.
// Implementation:
//   - Stage 1: validate; pad a and b with zeros to s×s, s the smallest power
//     of two ≥ max(a.Rows(), a.Cols(), b.Cols()).
//   - Stage 2: recurse on exact halves until the block size is ≤ threshold.
//   - Stage 3: crop the a.Rows()×b.Cols() top-left corner.
//
// Behavior highlights:
//   - Exact over any ring: the result equals Classic element for element.
//   - Padding can nearly double every dimension; see StrassenDynamic.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(s^log2(7)), Space O(s²).
func StrassenStatic[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opStrassenStatic, err)
	}
	run := strassenRun[T]{t: newTracer(opStrassenStatic, gatherOptions(opts...))}

	size := nextPowerOfTwo(max(a.Rows(), a.Cols(), b.Cols()))
	pa, err := padSquare(a, size)
	if err != nil {
		return nil, multiplyErrorf(opStrassenStatic, err)
	}
	pb, err := padSquare(b, size)
	if err != nil {
		return nil, multiplyErrorf(opStrassenStatic, err)
	}

	pc, err := run.static(pa, pb, 0)
	if err != nil {
		return nil, multiplyErrorf(opStrassenStatic, err)
	}

	return pc.Subblock(0, 0, a.Rows(), b.Cols())
}

// static recurses on square power-of-two operands of equal size.
func (r strassenRun[T]) static(a, b *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	size := a.Rows()
	if size <= r.t.o.threshold || size < 2 {
		r.t.base()
		return classic(a, b), nil
	}
	r.t.split(depth, size, size, size, len(strassenScheme.products))

	return runScheme(strassenScheme, a, b, nil, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return r.static(x, y, depth+1)
	})
}

// StrassenDynamic multiplies a·b with Strassen's algorithm on floor halves,
// fixing odd dimensions with dynamic peeling at every level.
// Implementation:
//   - Stage 1: validate.
//   - Stage 2: if min(a.Rows(), a.Cols(), b.Cols()) ≤ threshold, use Classic.
//   - Stage 3: one Strassen step on the even-sized part, recursing per product.
//   - Stage 4: Peel(a, b, c, 2, 2, 2) adds the odd row/column fringe.
//
// Behavior highlights:
//   - Exact over any ring; no padding, so no wasted work on zeros.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^log2(7)) for square n, Space O(n²).
func StrassenDynamic[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opStrassenDynamic, err)
	}
	run := strassenRun[T]{t: newTracer(opStrassenDynamic, gatherOptions(opts...))}

	c, err := run.dynamic(a, b, 0)
	if err != nil {
		return nil, multiplyErrorf(opStrassenDynamic, err)
	}

	return c, nil
}

func (r strassenRun[T]) dynamic(a, b *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	smallest := min(a.Rows(), a.Cols(), b.Cols())
	if smallest <= r.t.o.threshold || smallest < 2 {
		r.t.base()
		return classic(a, b), nil
	}
	r.t.split(depth, a.Rows(), a.Cols(), b.Cols(), len(strassenScheme.products))

	c, err := runScheme(strassenScheme, a, b, nil, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return r.dynamic(x, y, depth+1)
	})
	if err != nil {
		return nil, err
	}
	ran, err := peel(a, b, c, 2, 2, 2)
	if err != nil {
		return nil, err
	}
	r.t.peeled(ran)

	return c, nil
}

// nextPowerOfTwo returns the smallest power of two ≥ v (1 for v ≤ 1).
func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(v-1))
}

// padSquare returns x embedded in the top-left corner of a size×size zero matrix.
func padSquare[T any](x *matrix.Dense[T], size int) (*matrix.Dense[T], error) {
	out, err := matrix.NewDense(x.Ring(), size, size)
	if err != nil {
		return nil, err
	}
	if err = out.BlockAdd(0, 0, x); err != nil {
		return nil, err
	}

	return out, nil
}
