// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fastmul/matrix"
)

// EpsilonRing is the scalar arithmetic required by the border-rank
// algorithms (Bini, Schönhage): a ring with a distinguished small element ε
// and division by ε and ε² only.
//
// Two implementations are used by this package:
//   - poly.Ring[T]: ε is formal; division drops low-order terms and the
//     result is exact once projected with poly.ToScalar.
//   - approximate mode: ε is a small positive float and division is plain
//     floating-point division, so the result carries an error of order ε.
type EpsilonRing[T any] interface {
	matrix.Ring[T]

	// Epsilon returns ε.
	Epsilon() T
	// DivEpsilon returns x/ε.
	DivEpsilon(x T) T
	// DivEpsilonSquared returns x/ε².
	DivEpsilonSquared(x T) T
}

// approxRing is the numeric ε ring of approximate mode.
type approxRing[T matrix.Float] struct {
	matrix.Numeric[T]
	eps T
}

func (r approxRing[T]) Epsilon() T              { return r.eps }
func (r approxRing[T]) DivEpsilon(x T) T        { return x / r.eps }
func (r approxRing[T]) DivEpsilonSquared(x T) T { return x / (r.eps * r.eps) }

// newApproxRing validates eps (finite, > 0) and returns the numeric ε ring.
func newApproxRing[T matrix.Float](eps T) (approxRing[T], error) {
	if !(eps > 0) || math.IsInf(float64(eps), 1) {
		return approxRing[T]{}, fmt.Errorf("eps=%v: %w", eps, ErrInvalidEpsilon)
	}

	return approxRing[T]{eps: eps}, nil
}

// epsilonPowers returns [0, ε, ε², …, ε^n] for combining blocks.
func epsilonPowers[T any](r EpsilonRing[T], n int) []T {
	out := make([]T, n+1)
	out[0] = r.Zero()
	e := r.Epsilon()
	for p := 1; p <= n; p++ {
		if p == 1 {
			out[p] = e
			continue
		}
		out[p] = r.Mul(out[p-1], e)
	}

	return out
}

// divideAll applies div to every entry of m in place.
func divideAll[T any](m *matrix.Dense[T], div func(T) T) {
	m.Apply(func(_, _ int, v T) T { return div(v) })
}
