// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/fastmul/matrix"
)

// Ring is the arithmetic of Poly[T] over a base scalar ring.
// It satisfies matrix.Ring[Poly[T]] and additionally exposes the formal ε
// and the two restricted divisions.
type Ring[T any] struct {
	base matrix.Ring[T]
	one  T
}

// Compile-time assertion.
var _ matrix.Ring[Poly[int]] = Ring[int]{}

// NewRing returns the polynomial ring over base; one is the multiplicative
// unit of base and is used to build ε.
func NewRing[T any](base matrix.Ring[T], one T) Ring[T] {
	return Ring[T]{base: base, one: one}
}

// NumericRing is NewRing over the built-in operators of T.
func NumericRing[T matrix.Number]() Ring[T] {
	return Ring[T]{base: matrix.Numeric[T]{}, one: 1}
}

// Base returns the coefficient ring.
func (r Ring[T]) Base() matrix.Ring[T] { return r.base }

// Zero returns the zero polynomial.
func (r Ring[T]) Zero() Poly[T] { return Poly[T]{} }

// Add returns p + q, coefficient-wise; the shorter operand is zero-extended.
func (r Ring[T]) Add(p, q Poly[T]) Poly[T] {
	return r.combine(p, q, r.base.Add)
}

// Sub returns p − q, coefficient-wise; the shorter operand is zero-extended.
func (r Ring[T]) Sub(p, q Poly[T]) Poly[T] {
	return r.combine(p, q, r.base.Sub)
}

func (r Ring[T]) combine(p, q Poly[T], op func(a, b T) T) Poly[T] {
	n := max(len(p.a), len(q.a))
	if n == 0 {
		return Poly[T]{}
	}

	z := r.base.Zero()
	out := make([]T, n)
	var pv, qv T
	for i := 0; i < n; i++ {
		pv, qv = z, z
		if i < len(p.a) {
			pv = p.a[i]
		}
		if i < len(q.a) {
			qv = q.a[i]
		}
		out[i] = op(pv, qv)
	}

	return Poly[T]{a: out}
}

// Mul returns the full product p·q (convolution of coefficients, no degree cap).
// Complexity: O(len(p)·len(q)).
func (r Ring[T]) Mul(p, q Poly[T]) Poly[T] {
	if len(p.a) == 0 || len(q.a) == 0 {
		return Poly[T]{}
	}

	out := make([]T, len(p.a)+len(q.a)-1)
	z := r.base.Zero()
	for i := range out {
		out[i] = z
	}
	var i, j int
	for i = 0; i < len(q.a); i++ {
		for j = 0; j < len(p.a); j++ {
			out[i+j] = r.base.Add(out[i+j], r.base.Mul(p.a[j], q.a[i]))
		}
	}

	return Poly[T]{a: out}
}

// Equal compares coefficient-wise; missing trailing coefficients count as zero.
func (r Ring[T]) Equal(p, q Poly[T]) bool {
	n := max(len(p.a), len(q.a))
	z := r.base.Zero()
	var pv, qv T
	for i := 0; i < n; i++ {
		pv, qv = z, z
		if i < len(p.a) {
			pv = p.a[i]
		}
		if i < len(q.a) {
			qv = q.a[i]
		}
		if !r.base.Equal(pv, qv) {
			return false
		}
	}

	return true
}

// Epsilon returns the formal variable ε = 0 + 1·ε.
func (r Ring[T]) Epsilon() Poly[T] {
	return Poly[T]{a: []T{r.base.Zero(), r.one}}
}

// EpsilonSquared returns ε² = 0 + 0·ε + 1·ε².
func (r Ring[T]) EpsilonSquared() Poly[T] {
	z := r.base.Zero()

	return Poly[T]{a: []T{z, z, r.one}}
}

// DivEpsilon returns p/ε: every coefficient moves down one degree and the
// constant term is discarded. A polynomial of length ≤ 1 becomes zero.
func (r Ring[T]) DivEpsilon(p Poly[T]) Poly[T] { return p.shift(1) }

// DivEpsilonSquared returns p/ε²: coefficients move down two degrees and the
// two lowest terms are discarded. A polynomial of length ≤ 2 becomes zero.
func (r Ring[T]) DivEpsilonSquared(p Poly[T]) Poly[T] { return p.shift(2) }

// Div divides p by d where d must be exactly ε or ε² (trailing zero
// coefficients in d are ignored). Any other divisor returns
// ErrUnsupportedDivisor.
func (r Ring[T]) Div(p, d Poly[T]) (Poly[T], error) {
	switch {
	case r.Equal(d, r.Epsilon()):
		return r.DivEpsilon(p), nil
	case r.Equal(d, r.EpsilonSquared()):
		return r.DivEpsilonSquared(p), nil
	default:
		return Poly[T]{}, fmt.Errorf("Div(%v): %w", d, ErrUnsupportedDivisor)
	}
}

// Constant returns the ε⁰ coefficient of p (zero for the zero polynomial).
func (r Ring[T]) Constant(p Poly[T]) T {
	if len(p.a) == 0 {
		return r.base.Zero()
	}

	return p.a[0]
}

// Eval evaluates p at ε = x with Horner's rule.
func (r Ring[T]) Eval(p Poly[T], x T) T {
	acc := r.base.Zero()
	for i := len(p.a) - 1; i >= 0; i-- {
		acc = r.base.Add(p.a[i], r.base.Mul(x, acc))
	}

	return acc
}
