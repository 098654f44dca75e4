// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/fastmul/matrix"

// Lift returns m with every entry v replaced by the constant polynomial v.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func Lift[T any](r Ring[T], m *matrix.Dense[T]) (*matrix.Dense[Poly[T]], error) {
	return matrix.Convert[T, Poly[T]](m, r, func(v T) Poly[T] {
		return Poly[T]{a: []T{v}}
	})
}

// ToScalar projects a polynomial matrix back to scalars by keeping the ε⁰
// coefficient of each entry (the limit ε → 0 of an exact border-rank result).
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func ToScalar[T any](r Ring[T], m *matrix.Dense[Poly[T]]) (*matrix.Dense[T], error) {
	return matrix.Convert[Poly[T], T](m, r.base, r.Constant)
}
