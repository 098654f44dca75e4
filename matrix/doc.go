// SPDX-License-Identifier: MIT

// Package matrix provides the generic dense matrix used by the fast
// multiplication algorithms of this module.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major r×c matrix over any scalar type T. The scalar
//     arithmetic is supplied by a Ring[T] value carried by the matrix, so the
//     same code multiplies ints, floats and polynomials in ε.
//   - Numeric[T]: the Ring implementation for Go's built-in number types.
//   - Block algebra: Subblock copies a window out of a matrix; BlockAdd and
//     BlockSubtract accumulate a block back into a matrix at an offset. These
//     are the only primitives the recursive algorithms need.
//   - Convert for moving a matrix between scalar domains, Fprint for
//     printing, and MaxRelativeDifference for measuring approximation error.
//
// Every operation that can fail on user input returns an error wrapping one
// of the sentinels in errors.go; nothing panics on bad shapes or indices.
//
// Shapes with a zero dimension (0×0, 0×k, k×0) are legal and common: the
// recursive algorithms produce them for thin inputs.
package matrix
