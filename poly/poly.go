// SPDX-License-Identifier: MIT

// Package poly implements polynomials in a formal variable ε over any scalar
// ring, together with the ring operations needed to run border-rank matrix
// multiplication (Bini, Schönhage) in exact mode.
//
// A Poly[T] is the coefficient list a0 + a1·ε + a2·ε² + …. Values are
// immutable: every operation returns a new polynomial and never writes into
// its operands, so coefficient storage may be shared between values.
//
// Division is deliberately restricted. The algorithms only ever divide by ε
// or ε², and both are exact shifts of the coefficient list (the low-order
// coefficients that would become negative powers are discarded).
package poly

import (
	"fmt"
	"strings"
)

// Poly is a polynomial in ε with coefficients of type T, lowest degree first.
// The zero value is the zero polynomial.
type Poly[T any] struct {
	a []T
}

// New returns the polynomial with the given coefficients, lowest degree first.
// The slice is copied.
func New[T any](coeffs ...T) Poly[T] {
	return Poly[T]{a: append([]T(nil), coeffs...)}
}

// Coefficients returns a copy of the coefficient list (possibly with trailing zeros).
func (p Poly[T]) Coefficients() []T {
	return append([]T(nil), p.a...)
}

// Len returns the number of stored coefficients. It is an upper bound on
// degree+1; trailing zeros are not trimmed.
func (p Poly[T]) Len() int { return len(p.a) }

// String renders "a0 + a1ε + a2ε^2 + …"; the zero value renders as "0".
func (p Poly[T]) String() string {
	if len(p.a) == 0 {
		return "0"
	}

	var b strings.Builder
	for i, c := range p.a {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(fmt.Sprint(c))
		switch {
		case i == 1:
			b.WriteString("ε")
		case i > 1:
			fmt.Fprintf(&b, "ε^%d", i)
		}
	}

	return b.String()
}

// shift drops the k lowest coefficients (division by ε^k with the
// remainder discarded). Storage is shared with p.
func (p Poly[T]) shift(k int) Poly[T] {
	if len(p.a) <= k {
		return Poly[T]{}
	}

	return Poly[T]{a: p.a[k:]}
}
