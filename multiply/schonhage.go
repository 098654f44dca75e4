// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/poly"
)

// schonhageProducts is the number of recursive products per level:
// three W, nine U and nine V.
const schonhageProducts = 21

type schonhageRun[T any] struct {
	r      EpsilonRing[T]
	t      tracer
	powers []T // 0, ε, ε²
}

// SchonhageWithRing multiplies a·b with Schönhage's border-rank ⟨3,3,3;21⟩
// algorithm (Partial and Total Matrix Multiplication, 1981, example 2.2)
// over any ε ring.
// Implementation:
//   - Stage 1: validate.
//   - Stage 2: Classic when any of a.Rows(), a.Cols(), b.Cols() is < 3 or ≤ threshold.
//   - Stage 3: for i = 1..3, Wi = Ai1(B2i + B3i) and, for j = 1..3,
//     i = j: Uii = (Ai1 + ε²Ai2)(ε²B1i + B2i), Vii = (Ai1 + ε²Ai3)B3i,
//     and Vii/ε is subtracted from every Cjk with k ≠ j;
//     i ≠ j: Uij = (Ai1 + ε²Aj2)(B2i − εB1j), Vij = (Ai1 + ε²Aj3)(B3i + εB1j),
//     and Vij/ε is added to Cij;
//     in both cases (Uij + Vij − Wi)/ε² is added to Cji.
//   - Stage 4: Peel(a, b, c, 3, 3, 3).
//
// Behavior highlights:
//   - r supplies ε and the ε divisions; block arithmetic uses a's ring.
//   - In approximate mode the ε² division amplifies rounding; keep the
//     recursion shallow (one or two levels) for usable accuracy.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^log3(21)) ≈ O(n^2.77) ring operations for square n.
func SchonhageWithRing[T any](r EpsilonRing[T], a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opSchonhage, err)
	}
	run := schonhageRun[T]{r: r, t: newTracer(opSchonhage, gatherOptions(opts...)), powers: epsilonPowers(r, 2)}

	c, err := run.mul(a, b, 0)
	if err != nil {
		return nil, multiplyErrorf(opSchonhage, err)
	}

	return c, nil
}

func (sr schonhageRun[T]) mul(a, b *matrix.Dense[T], depth int) (*matrix.Dense[T], error) {
	th := sr.t.o.threshold
	if a.Rows() < 3 || a.Cols() < 3 || b.Cols() < 3 ||
		a.Rows() <= th || a.Cols() <= th || b.Cols() <= th {
		sr.t.base()
		return classic(a, b), nil
	}
	sr.t.split(depth, a.Rows(), a.Cols(), b.Cols(), schonhageProducts)

	ga, err := splitGrid(a, 3, 3)
	if err != nil {
		return nil, fmt.Errorf("schonhage: split A: %w", err)
	}
	gb, err := splitGrid(b, 3, 3)
	if err != nil {
		return nil, fmt.Errorf("schonhage: split B: %w", err)
	}
	c, err := matrix.NewDense(a.Ring(), a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	h, bw := a.Rows()/3, b.Cols()/3

	// product evaluates (Σ left over A blocks)(Σ right over B blocks) recursively.
	product := func(left, right []term) (*matrix.Dense[T], error) {
		x, err := combine(ga, left, sr.powers)
		if err != nil {
			return nil, err
		}
		y, err := combine(gb, right, sr.powers)
		if err != nil {
			return nil, err
		}

		return sr.mul(x, y, depth+1)
	}
	// at names the 0-based block (i, j).
	at := func(i, j int) term { return term{i: i, j: j} }

	var (
		i, j, k    int
		w, u, v, s *matrix.Dense[T]
	)
	for i = 0; i < 3; i++ {
		if w, err = product(comb(at(i, 0)), comb(at(1, i), at(2, i))); err != nil {
			return nil, err
		}

		for j = 0; j < 3; j++ {
			if i == j {
				if u, err = product(comb(at(i, 0), at(i, 1).eps(2)), comb(at(0, i).eps(2), at(1, i))); err != nil {
					return nil, err
				}
				if v, err = product(comb(at(i, 0), at(i, 2).eps(2)), comb(at(2, i))); err != nil {
					return nil, err
				}
				vd := v.Clone()
				divideAll(vd, sr.r.DivEpsilon)
				for k = 0; k < 3; k++ {
					if k == j {
						continue
					}
					if err = c.BlockSubtract(j*h, k*bw, vd); err != nil {
						return nil, err
					}
				}
			} else {
				if u, err = product(comb(at(i, 0), at(j, 1).eps(2)), comb(at(1, i), term{i: 0, j: j, neg: true, pow: 1})); err != nil {
					return nil, err
				}
				if v, err = product(comb(at(i, 0), at(j, 2).eps(2)), comb(at(2, i), at(0, j).eps(1))); err != nil {
					return nil, err
				}
				vd := v.Clone()
				divideAll(vd, sr.r.DivEpsilon)
				if err = c.BlockAdd(i*h, j*bw, vd); err != nil {
					return nil, err
				}
			}

			// (U + V − W)/ε² into C[j][i]
			if s, err = u.Add(v); err != nil {
				return nil, err
			}
			if s, err = s.Sub(w); err != nil {
				return nil, err
			}
			divideAll(s, sr.r.DivEpsilonSquared)
			if err = c.BlockAdd(j*h, i*bw, s); err != nil {
				return nil, err
			}
		}
	}

	ran, err := peel(a, b, c, 3, 3, 3)
	if err != nil {
		return nil, err
	}
	sr.t.peeled(ran)

	return c, nil
}

// SchonhageExact runs Schönhage's algorithm with a formal ε over
// poly.Ring and projects the result back. It equals Classic exactly.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func SchonhageExact[T matrix.Number](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opSchonhage, err)
	}

	return exactViaPoly(a, b, func(pr poly.Ring[T], pa, pb *matrix.Dense[poly.Poly[T]]) (*matrix.Dense[poly.Poly[T]], error) {
		return SchonhageWithRing[poly.Poly[T]](pr, pa, pb, opts...)
	})
}

// SchonhageApprox runs Schönhage's algorithm with the numeric ε eps.
//
// Errors: ErrInvalidEpsilon (eps not finite or ≤ 0), matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch.
func SchonhageApprox[T matrix.Float](a, b *matrix.Dense[T], eps T, opts ...Option) (*matrix.Dense[T], error) {
	r, err := newApproxRing(eps)
	if err != nil {
		return nil, multiplyErrorf(opSchonhage, err)
	}

	return SchonhageWithRing[T](r, a, b, opts...)
}
