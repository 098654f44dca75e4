// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide error metrics that measure how far an approximate product is
//     from the exact one.
//
// Exposed API:
//   - MaxRelativeDifference(correct, approx) -> max |(c-a)/c|
//   - MaxAbsDifference(correct, approx)      -> max |c-a|
//
// Determinism & Performance:
//   - Fixed row-major traversal over the flat buffers, O(r*c), no allocations.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMaxRelativeDifference = "MaxRelativeDifference"
	opMaxAbsDifference      = "MaxAbsDifference"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MaxRelativeDifference returns max over all entries of |(correct−approx)/correct|.
// Implementation:
//   - Stage 1: validate both operands (non-nil, same shape).
//   - Stage 2: single pass, tracking the running maximum.
//
// Behavior highlights:
//   - Empty matrices yield 0.
//   - The metric is undefined where correct holds 0; such an entry returns
//     ErrZeroReference instead of ±Inf/NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrZeroReference.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxRelativeDifference[T Float](correct, approx *Dense[T]) (float64, error) {
	if err := ValidateSameShape(correct, approx); err != nil {
		return 0, matrixErrorf(opMaxRelativeDifference, err)
	}

	var maxValue, rel float64
	for idx, c := range correct.data {
		if c == 0 {
			return 0, fmt.Errorf("%s: entry %d: %w", opMaxRelativeDifference, idx, ErrZeroReference)
		}
		rel = math.Abs(float64(c-approx.data[idx]) / float64(c))
		if rel > maxValue {
			maxValue = rel
		}
	}

	return maxValue, nil
}

// MaxAbsDifference returns max |correct−approx| over all entries (0 for empty).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDifference[T Float](correct, approx *Dense[T]) (float64, error) {
	if err := ValidateSameShape(correct, approx); err != nil {
		return 0, matrixErrorf(opMaxAbsDifference, err)
	}

	var maxValue, d float64
	for idx, c := range correct.data {
		d = math.Abs(float64(c - approx.data[idx]))
		if d > maxValue {
			maxValue = d
		}
	}

	return maxValue, nil
}
