// SPDX-License-Identifier: MIT
// Package multiply: sentinel error set.
// Shape and nil errors come from the matrix package (matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch, ...); the sentinels here cover the
// multiplication-specific failures. Match them via errors.Is.

package multiply

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEpsilon indicates an approximate-mode ε that is not a finite value > 0.
	ErrInvalidEpsilon = errors.New("multiply: epsilon must be finite and > 0")

	// ErrUnknownAlgorithm indicates an algorithm name or id that is not registered.
	ErrUnknownAlgorithm = errors.New("multiply: unknown algorithm")

	// ErrInvalidBlockFactor indicates a peeling block factor < 1.
	ErrInvalidBlockFactor = errors.New("multiply: block factor must be >= 1")
)

// multiplyErrorf wraps err with an operation tag: "<Op>: <err>".
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
