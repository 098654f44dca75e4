// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fastmul/matrix"
)

var (
	// ErrNilRNG indicates that a nil *rand.Rand was passed.
	ErrNilRNG = errors.New("generate: nil random generator")

	// ErrInvalidBound indicates a value bound below the allowed minimum.
	ErrInvalidBound = errors.New("generate: invalid value bound")
)

// Ints returns a rows×cols int matrix with entries drawn uniformly from
// [0, maxValue] (inclusive).
//
// Errors: ErrNilRNG, ErrInvalidBound (maxValue < 0), matrix.ErrInvalidDimensions.
// Complexity: O(rows*cols).
func Ints(rng *rand.Rand, rows, cols, maxValue int) (*matrix.Dense[int], error) {
	if err := check(rng, rows, cols, maxValue, 0); err != nil {
		return nil, fmt.Errorf("Ints: %w", err)
	}
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(maxValue + 1)
	}

	return matrix.NewNumeric(data, rows, cols), nil
}

// Floats returns a rows×cols float64 matrix of whole numbers drawn
// uniformly from [1, maxValue]. Entries are never zero, so the matrices are
// safe references for matrix.MaxRelativeDifference.
//
// Errors: ErrNilRNG, ErrInvalidBound (maxValue < 1), matrix.ErrInvalidDimensions.
// Complexity: O(rows*cols).
func Floats(rng *rand.Rand, rows, cols, maxValue int) (*matrix.Dense[float64], error) {
	if err := check(rng, rows, cols, maxValue, 1); err != nil {
		return nil, fmt.Errorf("Floats: %w", err)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(1 + rng.Intn(maxValue))
	}

	return matrix.NewNumeric(data, rows, cols), nil
}

// check validates generator arguments in a fixed order: rng → shape → bound.
func check(rng *rand.Rand, rows, cols, maxValue, minBound int) error {
	if rng == nil {
		return ErrNilRNG
	}
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	if maxValue < minBound {
		return fmt.Errorf("max=%d < %d: %w", maxValue, minBound, ErrInvalidBound)
	}

	return nil
}
