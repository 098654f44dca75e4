// SPDX-License-Identifier: MIT
// Package multiply_test contains shared fixtures for the algorithm tests.

package multiply_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/generate"
	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
	"github.com/stretchr/testify/require"
)

// intMul is the common signature of every exact algorithm instantiated on int.
type intMul func(a, b *matrix.Dense[int], opts ...multiply.Option) (*matrix.Dense[int], error)

// exactInts lists the algorithms that must reproduce Classic on integers.
var exactInts = []struct {
	name string
	mul  intMul
}{
	{"StrassenStatic", multiply.StrassenStatic[int]},
	{"StrassenDynamic", multiply.StrassenDynamic[int]},
	{"Laderman", multiply.Laderman[int]},
	{"BiniExact", multiply.BiniExact[int]},
	{"SchonhageExact", multiply.SchonhageExact[int]},
}

// ints builds a rows×cols int matrix from row-major values.
func ints(t testing.TB, rows, cols int, vals ...int) *matrix.Dense[int] {
	t.Helper()
	require.Len(t, vals, rows*cols, "fixture size")

	return matrix.NewNumeric(append([]int(nil), vals...), rows, cols)
}

// seq returns a rows×cols int matrix holding 1, 2, 3, … in row-major order.
func seq(rows, cols int) *matrix.Dense[int] {
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = i + 1
	}

	return matrix.NewNumeric(data, rows, cols)
}

// randomPair draws an n×k and a k×m int matrix with entries in [0, 9].
func randomPair(t testing.TB, seed int64, n, k, m int) (*matrix.Dense[int], *matrix.Dense[int]) {
	t.Helper()
	rng := generate.NewRNG(seed)
	a, err := generate.Ints(rng, n, k, 9)
	require.NoError(t, err)
	b, err := generate.Ints(rng, k, m, 9)
	require.NoError(t, err)

	return a, b
}

// floatPair draws whole-number float64 operands in [1, 10].
func floatPair(t testing.TB, seed int64, n, k, m int) (*matrix.Dense[float64], *matrix.Dense[float64]) {
	t.Helper()
	rng := generate.NewRNG(seed)
	a, err := generate.Floats(rng, n, k, 10)
	require.NoError(t, err)
	b, err := generate.Floats(rng, k, m, 10)
	require.NoError(t, err)

	return a, b
}

// reference returns the classic product or fails the test.
func reference[T any](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	c, err := multiply.Classic(a, b)
	require.NoError(t, err)

	return c
}
