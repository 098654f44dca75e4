// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/fastmul/matrix"

// ladermanScheme is Laderman's ⟨3,3,3;23⟩ algorithm (1976). Every product
// is added into each listed C block with coefficient +1.
var ladermanScheme = &scheme{
	name: "laderman",
	n:    3, k: 3, m: 3,
	products: []product{
		// P1..P5
		{
			left:  comb(pos(1, 1), pos(1, 2), pos(1, 3), neg(2, 1), neg(2, 2), neg(3, 2), neg(3, 3)),
			right: comb(pos(2, 2)),
			out:   comb(pos(1, 2)),
		},
		{
			left:  comb(pos(1, 1), neg(2, 1)),
			right: comb(pos(2, 2), neg(1, 2)),
			out:   comb(pos(2, 1), pos(2, 2)),
		},
		{
			left:  comb(pos(2, 2)),
			right: comb(pos(1, 2), neg(1, 1), pos(2, 1), neg(2, 2), neg(2, 3), neg(3, 1), pos(3, 3)),
			out:   comb(pos(2, 1)),
		},
		{
			left:  comb(pos(2, 1), neg(1, 1), pos(2, 2)),
			right: comb(pos(1, 1), neg(1, 2), pos(2, 2)),
			out:   comb(pos(1, 2), pos(2, 1), pos(2, 2)),
		},
		{
			left:  comb(pos(2, 1), pos(2, 2)),
			right: comb(pos(1, 2), neg(1, 1)),
			out:   comb(pos(1, 2), pos(2, 2)),
		},
		// P6..P11
		{
			left:  comb(pos(1, 1)),
			right: comb(pos(1, 1)),
			out:   comb(pos(1, 1), pos(1, 2), pos(1, 3), pos(2, 1), pos(2, 2), pos(3, 1), pos(3, 3)),
		},
		{
			left:  comb(pos(3, 1), neg(1, 1), pos(3, 2)),
			right: comb(pos(1, 1), neg(1, 3), pos(2, 3)),
			out:   comb(pos(1, 3), pos(3, 1), pos(3, 3)),
		},
		{
			left:  comb(pos(3, 1), neg(1, 1)),
			right: comb(pos(1, 3), neg(2, 3)),
			out:   comb(pos(3, 1), pos(3, 3)),
		},
		{
			left:  comb(pos(3, 1), pos(3, 2)),
			right: comb(pos(1, 3), neg(1, 1)),
			out:   comb(pos(1, 3), pos(3, 3)),
		},
		{
			left:  comb(pos(1, 1), pos(1, 2), pos(1, 3), neg(2, 2), neg(2, 3), neg(3, 1), neg(3, 2)),
			right: comb(pos(2, 3)),
			out:   comb(pos(1, 3)),
		},
		{
			left:  comb(pos(3, 2)),
			right: comb(pos(1, 3), neg(1, 1), pos(2, 1), neg(2, 2), neg(2, 3), neg(3, 1), pos(3, 2)),
			out:   comb(pos(3, 1)),
		},
		// P12..P18
		{
			left:  comb(pos(3, 2), neg(1, 3), pos(3, 3)),
			right: comb(pos(2, 2), pos(3, 1), neg(3, 2)),
			out:   comb(pos(1, 2), pos(3, 1), pos(3, 2)),
		},
		{
			left:  comb(pos(1, 3), neg(3, 3)),
			right: comb(pos(2, 2), neg(3, 2)),
			out:   comb(pos(3, 1), pos(3, 2)),
		},
		{
			left:  comb(pos(1, 3)),
			right: comb(pos(3, 1)),
			out:   comb(pos(1, 1), pos(1, 2), pos(1, 3), pos(2, 1), pos(2, 3), pos(3, 1), pos(3, 2)),
		},
		{
			left:  comb(pos(3, 2), pos(3, 3)),
			right: comb(pos(3, 2), neg(3, 1)),
			out:   comb(pos(1, 2), pos(3, 2)),
		},
		{
			left:  comb(pos(2, 2), neg(1, 3), pos(2, 3)),
			right: comb(pos(2, 3), pos(3, 1), neg(3, 3)),
			out:   comb(pos(1, 3), pos(2, 1), pos(2, 3)),
		},
		{
			left:  comb(pos(1, 3), neg(2, 3)),
			right: comb(pos(2, 3), neg(3, 3)),
			out:   comb(pos(2, 1), pos(2, 3)),
		},
		{
			left:  comb(pos(2, 2), pos(2, 3)),
			right: comb(pos(3, 3), neg(3, 1)),
			out:   comb(pos(1, 3), pos(2, 3)),
		},
		// P19..P23: the remaining single-block products
		{left: comb(pos(1, 2)), right: comb(pos(2, 1)), out: comb(pos(1, 1))},
		{left: comb(pos(2, 3)), right: comb(pos(3, 2)), out: comb(pos(2, 2))},
		{left: comb(pos(2, 1)), right: comb(pos(1, 3)), out: comb(pos(2, 3))},
		{left: comb(pos(3, 1)), right: comb(pos(1, 2)), out: comb(pos(3, 2))},
		{left: comb(pos(3, 3)), right: comb(pos(3, 3)), out: comb(pos(3, 3))},
	},
}

type ladermanRun[T any] struct {
	t tracer
}

// Laderman multiplies a·b with Laderman's 23-product 3×3 block algorithm.
// Implementation:
//   - Stage 1: validate.
//   - Stage 2: if min(a.Rows(), a.Cols(), b.Cols()) < 3 or ≤ threshold, use Classic.
//   - Stage 3: one 3×3 block step with 23 recursive products.
//   - Stage 4: Peel(a, b, c, 3, 3, 3).
//
// Behavior highlights:
//   - Exact over any ring.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^log3(23)) ≈ O(n^2.854) for square n, Space O(n²).
func Laderman[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opLaderman, err)
	}
	run := ladermanRun[T]{t: newTracer(opLaderman, gatherOptions(opts...))}

	c, err := run.mul(a, b, 0)
	if err != nil {
		return nil, multiplyErrorf(opLaderman, err)
	}

	return c, nil
}

func (r ladermanRun[T]) mul(a, b *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	smallest := min(a.Rows(), a.Cols(), b.Cols())
	if smallest < 3 || smallest <= r.t.o.threshold {
		r.t.base()
		return classic(a, b), nil
	}
	r.t.split(depth, a.Rows(), a.Cols(), b.Cols(), len(ladermanScheme.products))

	c, err := runScheme(ladermanScheme, a, b, nil, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return r.mul(x, y, depth+1)
	})
	if err != nil {
		return nil, err
	}
	ran, err := peel(a, b, c, 3, 3, 3)
	if err != nil {
		return nil, err
	}
	r.t.peeled(ran)

	return c, nil
}
