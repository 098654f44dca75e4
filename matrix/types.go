// SPDX-License-Identifier: MIT

// Package matrix: scalar domain types used by Dense and by every
// multiplication kernel built on top of it.
//
// A Dense[T] does not rely on Go operators for its arithmetic. Instead it
// carries a Ring[T] value that supplies +, −, ×, equality and the additive
// identity. This keeps the algorithms usable for scalar types that cannot be
// described by an operator constraint (e.g. polynomials in ε).
package matrix

// Ring is the arithmetic contract a scalar type must satisfy to be stored in
// a Dense and multiplied by the kernels of this module.
//
// Contract:
//   - Zero returns the additive identity.
//   - Add/Sub/Mul return fresh values; operands are never mutated.
//   - Equal is an exact comparison (no tolerance).
//
// Complexity: implementation-defined; O(1) for Numeric.
type Ring[T any] interface {
	// Zero returns the additive identity of the ring.
	Zero() T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a − b.
	Sub(a, b T) T

	// Mul returns a × b.
	Mul(a, b T) T

	// Equal reports whether a and b are the same ring element.
	Equal(a, b T) bool
}

// Integer lists the built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float lists the built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Complex lists the built-in complex kinds.
type Complex interface {
	~complex64 | ~complex128
}

// Number is any built-in type closed under + − × and ==.
type Number interface {
	Integer | Float | Complex
}

// Numeric implements Ring for every built-in Number using Go operators.
// The zero value is ready to use.
type Numeric[T Number] struct{}

// Compile-time assertions.
var (
	_ Ring[int]     = Numeric[int]{}
	_ Ring[float64] = Numeric[float64]{}
)

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// Add returns a + b.
func (Numeric[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Numeric[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Numeric[T]) Mul(a, b T) T { return a * b }

// Equal reports a == b. For floats NaN != NaN, as in Go.
func (Numeric[T]) Equal(a, b T) bool { return a == b }
