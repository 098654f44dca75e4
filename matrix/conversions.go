// SPDX-License-Identifier: MIT

// Package matrix: conversions between scalar domains.
//
// Convert maps every entry of a Dense[S] through f into a Dense[T] carried by
// another ring. It is how integer inputs are promoted to polynomials in ε
// and how polynomial results are projected back to plain scalars.
package matrix

// Convert returns a new matrix of the same shape with entries f(v), row-major.
// Implementation:
//   - Stage 1: validate m is non-nil.
//   - Stage 2: allocate a buffer for the target domain and map each entry.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Convert[S, T any](m *Dense[S], ring Ring[T], f func(S) T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("Convert", err)
	}
	out := make([]T, len(m.data))
	for idx, v := range m.data {
		out[idx] = f(v)
	}

	return &Dense[T]{r: m.r, c: m.c, data: out, ring: ring}, nil
}

// ToFloat64 converts any numeric matrix to float64 entries.
// Complexity: O(r*c).
func ToFloat64[T Integer | Float](m *Dense[T]) (*Dense[float64], error) {
	return Convert[T, float64](m, Numeric[float64]{}, func(v T) float64 { return float64(v) })
}

// Rows2D exports the matrix as a freshly allocated [][]T, one slice per row.
// Complexity: O(r*c).
func (m *Dense[T]) Rows2D() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}
