// SPDX-License-Identifier: MIT

package multiply

import (
	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/poly"
)

// biniScheme is Bini's border-rank ⟨2,2,3;10⟩ approximate algorithm.
// C is a 2×3 block grid. The first five products compute the left 2×2
// part of C (times ε); the last five compute the right 2×2 part through
// the identity (XY)ᵀ = YᵀXᵀ applied to the same five-product formula.
// After all products, the whole level result is divided by ε.
var biniScheme = &scheme{
	name: "bini",
	n:    2, k: 2, m: 3,
	products: []product{
		{
			left:  comb(pos(1, 2), pos(2, 2).eps(1)),
			right: comb(pos(2, 1)),
			out:   comb(pos(1, 1).eps(1), pos(2, 1)),
		},
		{
			left:  comb(pos(1, 1)),
			right: comb(pos(1, 1), pos(1, 2).eps(1)),
			out:   comb(pos(1, 1).eps(1), pos(1, 2)),
		},
		{
			left:  comb(pos(1, 2)),
			right: comb(pos(1, 1), pos(2, 1), pos(2, 2).eps(1)),
			out:   comb(neg(2, 1)),
		},
		{
			left:  comb(pos(1, 1), pos(1, 2), pos(2, 1).eps(1)),
			right: comb(pos(1, 1)),
			out:   comb(neg(1, 2)),
		},
		{
			left:  comb(pos(1, 2), pos(2, 1).eps(1)),
			right: comb(pos(1, 1), pos(2, 2).eps(1)),
			out:   comb(pos(1, 2), pos(2, 1)),
		},
		// transposed half: left terms name B blocks, right terms name A blocks
		{
			left:       comb(pos(1, 3), pos(1, 2).eps(1)),
			right:      comb(pos(2, 1)),
			out:        comb(pos(2, 3).eps(1), pos(2, 2)),
			transposed: true,
		},
		{
			left:       comb(pos(2, 3)),
			right:      comb(pos(2, 2), pos(1, 2).eps(1)),
			out:        comb(pos(2, 3).eps(1), pos(1, 3)),
			transposed: true,
		},
		{
			left:       comb(pos(1, 3)),
			right:      comb(pos(2, 2), pos(2, 1), pos(1, 1).eps(1)),
			out:        comb(neg(2, 2)),
			transposed: true,
		},
		{
			left:       comb(pos(2, 3), pos(1, 3), pos(2, 2).eps(1)),
			right:      comb(pos(2, 2)),
			out:        comb(neg(1, 3)),
			transposed: true,
		},
		{
			left:       comb(pos(1, 3), pos(2, 2).eps(1)),
			right:      comb(pos(2, 2), pos(1, 1).eps(1)),
			out:        comb(pos(1, 3), pos(2, 2)),
			transposed: true,
		},
	},
}

type biniRun[T any] struct {
	r      EpsilonRing[T]
	t      tracer
	powers []T
}

// BiniWithRing multiplies a·b with Bini's algorithm over any ε ring.
// Implementation:
//   - Stage 1: validate.
//   - Stage 2: Classic when a.Rows() < 2, a.Cols() < 2, b.Cols() < 3, or any
//     of the three is ≤ threshold.
//   - Stage 3: ten recursive products on the 2×2 · 2×3 block split, five of
//     them evaluated on transposed blocks and transposed back.
//   - Stage 4: divide the level result by ε, then Peel(a, b, c, 2, 2, 3).
//
// Behavior highlights:
//   - r supplies ε and the ε divisions; block arithmetic uses a's ring, which
//     must agree with r on Add/Sub/Mul.
//   - Over poly.Ring the constant term of every entry is exact; with a
//     numeric ε the result approximates a·b with error O(ε) per level.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^(3·log12(10))) ≈ O(n^2.78) ring operations for square n.
func BiniWithRing[T any](r EpsilonRing[T], a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opBini, err)
	}
	run := biniRun[T]{r: r, t: newTracer(opBini, gatherOptions(opts...)), powers: epsilonPowers(r, 1)}

	c, err := run.mul(a, b, 0)
	if err != nil {
		return nil, multiplyErrorf(opBini, err)
	}

	return c, nil
}

func (br biniRun[T]) mul(a, b *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	th := br.t.o.threshold
	if a.Rows() < 2 || a.Cols() < 2 || b.Cols() < 3 ||
		a.Rows() <= th || a.Cols() <= th || b.Cols() <= th {
		br.t.base()
		return classic(a, b), nil
	}
	br.t.split(depth, a.Rows(), a.Cols(), b.Cols(), len(biniScheme.products))

	c, err := runScheme(biniScheme, a, b, br.powers, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return br.mul(x, y, depth+1)
	})
	if err != nil {
		return nil, err
	}
	divideAll(c, br.r.DivEpsilon)

	ran, err := peel(a, b, c, 2, 2, 3)
	if err != nil {
		return nil, err
	}
	br.t.peeled(ran)

	return c, nil
}

// BiniExact runs Bini's algorithm with a formal ε: inputs are lifted to
// constant polynomials, multiplied over poly.Ring and projected back with
// poly.ToScalar. The result equals Classic exactly.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func BiniExact[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opBini, err)
	}

	return exactViaPoly(a, b, func(pr poly.Ring[T], pa, pb *matrix.Dense[poly.Poly[T]]) (*matrix.Dense[poly.Poly[T]], error) {
		return BiniWithRing[poly.Poly[T]](pr, pa, pb, opts...)
	})
}

// BiniApprox runs Bini's algorithm with the numeric ε eps. The result
// approaches a·b as eps → 0 until floating-point cancellation dominates.
//
// Errors: ErrInvalidEpsilon (eps not finite or ≤ 0), matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch.
func BiniApprox[T matrix.Float](a, b *matrix.Dense[T], eps T, opts ...Option) (*matrix.Dense[T], error) {
	r, err := newApproxRing(eps)
	if err != nil {
		return nil, multiplyErrorf(opBini, err)
	}

	return BiniWithRing[T](r, a, b, opts...)
}

// exactViaPoly lifts a and b to constant polynomials, runs mul over the
// polynomial ring and keeps the ε⁰ coefficient of the result.
func exactViaPoly[T matrix.Number](
	a, b *matrix.Dense[T],
	mul func(pr poly.Ring[T], pa, pb *matrix.Dense[poly.Poly[T]]) (*matrix.Dense[poly.Poly[T]], error),
) (*matrix.Dense[T], error) {
	pr := poly.NumericRing[T]()
	pa, err := poly.Lift(pr, a)
	if err != nil {
		return nil, err
	}
	pb, err := poly.Lift(pr, b)
	if err != nil {
		return nil, err
	}
	pc, err := mul(pr, pa, pb)
	if err != nil {
		return nil, err
	}

	return poly.ToScalar(pr, pc)
}
