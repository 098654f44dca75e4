// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the multiplication kernels. Callers MUST match them via
// errors.Is. No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with a method or
// operation tag ("Dense.Subblock(...): %w", "Classic: %w"); errors.Is still
// matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> invalid shape -> dimension mismatch -> index/block range.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index, or a block placed at an offset,
	// falls outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or a product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrZeroReference is returned by relative-error metrics when the reference
	// matrix holds a zero entry, for which a relative difference is undefined.
	ErrZeroReference = errors.New("matrix: zero entry in reference matrix")
)
