// SPDX-License-Identifier: MIT
package multiply_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approxMul is the signature shared by BiniApprox and SchonhageApprox on float64.
type approxMul func(a, b *matrix.Dense[float64], eps float64, opts ...multiply.Option) (*matrix.Dense[float64], error)

// TestApproxConverges: for one recursion level the maximum relative error
// against Classic never grows as ε shrinks from 1e-1 to 1e-5.
func TestApproxConverges(t *testing.T) {
	epsilons := []float64{1e-1, 1e-2, 1e-3, 1e-4, 1e-5}
	cases := []struct {
		name      string
		mul       approxMul
		n, k, m   int
		threshold int
	}{
		{"bini 6x6x6", multiply.BiniApprox[float64], 6, 6, 6, 2},
		{"bini 8x7x9", multiply.BiniApprox[float64], 8, 7, 9, 4},
		{"bini 12x12x12", multiply.BiniApprox[float64], 12, 12, 12, 4},
		{"schonhage 9x9x9", multiply.SchonhageApprox[float64], 9, 9, 9, 4},
		{"schonhage 10x11x9", multiply.SchonhageApprox[float64], 10, 11, 9, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := floatPair(t, 3, tc.n, tc.k, tc.m)
			want := reference(t, a, b)

			prev := math.Inf(1)
			for _, eps := range epsilons {
				got, err := tc.mul(a, b, eps, multiply.WithThreshold(tc.threshold))
				require.NoError(t, err)
				diff, err := matrix.MaxRelativeDifference(want, got)
				require.NoError(t, err)
				assert.LessOrEqual(t, diff, prev, "eps=%g", eps)
				prev = diff
			}
			assert.Less(t, prev, 1e-3)
		})
	}
}

func TestBiniApproxSmallEpsilon(t *testing.T) {
	a := matrix.NewNumeric([]float64{1, 2, 3, 4}, 2, 2)
	b := matrix.NewNumeric([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	got, err := multiply.BiniApprox(a, b, 1e-10, multiply.WithThreshold(1))
	require.NoError(t, err)
	diff, err := matrix.MaxRelativeDifference(reference(t, a, b), got)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-6)
}

// TestApproxBelowThreshold: without a split step the approximate variants
// are plain Classic and therefore exact.
func TestApproxBelowThreshold(t *testing.T) {
	a, b := floatPair(t, 8, 5, 5, 5)
	want := reference(t, a, b)

	got, err := multiply.BiniApprox(a, b, 0.5)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = multiply.SchonhageApprox(a, b, 0.5)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestApproxInvalidEpsilon(t *testing.T) {
	a, b := floatPair(t, 1, 3, 3, 3)
	for _, eps := range []float64{0, -1e-3, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := multiply.BiniApprox(a, b, eps)
		require.ErrorIs(t, err, multiply.ErrInvalidEpsilon, "bini eps=%v", eps)
		_, err = multiply.SchonhageApprox(a, b, eps)
		require.ErrorIs(t, err, multiply.ErrInvalidEpsilon, "schonhage eps=%v", eps)
	}
}

// TestApproxFloat32 instantiates the approximate variants on float32.
func TestApproxFloat32(t *testing.T) {
	a := matrix.NewNumeric([]float32{1, 2, 3, 4}, 2, 2)
	b := matrix.NewNumeric([]float32{1, 2, 3, 4, 5, 6}, 2, 3)

	got, err := multiply.BiniApprox[float32](a, b, 1e-2, multiply.WithThreshold(1))
	require.NoError(t, err)
	want := []float32{9, 12, 15, 19, 26, 33}
	for i, v := range got.Data() {
		assert.InDelta(t, want[i], v, 0.5)
	}
}
