// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/stretchr/testify/require"
)

// ints builds a rows×cols int matrix from row-major values or fails the test.
func ints(t testing.TB, rows, cols int, vals ...int) *matrix.Dense[int] {
	t.Helper()
	require.Len(t, vals, rows*cols, "fixture size")

	return matrix.NewNumeric(append([]int(nil), vals...), rows, cols)
}

// floats builds a rows×cols float64 matrix from row-major values.
func floats(t testing.TB, rows, cols int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	require.Len(t, vals, rows*cols, "fixture size")

	return matrix.NewNumeric(append([]float64(nil), vals...), rows, cols)
}

// mustZeros allocates an r×c int matrix or fails the test.
func mustZeros(t testing.TB, r, c int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewDense[int](matrix.Numeric[int]{}, r, c)
	require.NoError(t, err)

	return m
}
