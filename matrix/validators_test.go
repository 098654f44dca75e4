// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateMulCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b *matrix.Dense[int]
		want error
	}{
		{"ok", mustZeros(t, 2, 3), mustZeros(t, 3, 4), nil},
		{"empty inner", mustZeros(t, 2, 0), mustZeros(t, 0, 4), nil},
		{"mismatch", mustZeros(t, 2, 3), mustZeros(t, 2, 3), matrix.ErrDimensionMismatch},
		{"nil a", nil, mustZeros(t, 2, 3), matrix.ErrNilMatrix},
		{"nil b", mustZeros(t, 2, 3), nil, matrix.ErrNilMatrix},
		// nil wins over mismatch
		{"nil before mismatch", nil, nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateProductShape(t *testing.T) {
	a, b := mustZeros(t, 2, 3), mustZeros(t, 3, 4)

	require.NoError(t, matrix.ValidateProductShape(a, b, mustZeros(t, 2, 4)))
	require.ErrorIs(t, matrix.ValidateProductShape(a, b, mustZeros(t, 4, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateProductShape(a, b, nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(mustZeros(t, 2, 2), mustZeros(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSameShape(mustZeros(t, 2, 2), mustZeros(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(mustZeros(t, 2, 2), mustZeros(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
}
