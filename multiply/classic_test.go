// SPDX-License-Identifier: MIT
package multiply_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestClassicTwoByTwo(t *testing.T) {
	a := ints(t, 2, 2, 1, 2, 3, 4)
	b := ints(t, 2, 2, 4, 3, 2, 1)

	c, err := multiply.Classic(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 5, 20, 13}, c.Data())
}

func TestClassicScalarAndIdentity(t *testing.T) {
	c, err := multiply.Classic(ints(t, 1, 1, 6), ints(t, 1, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, []int{42}, c.Data())

	a, _ := randomPair(t, 5, 6, 6, 1)
	id, err := matrix.Identity[int](matrix.Numeric[int]{}, 1, 6)
	require.NoError(t, err)
	left, err := multiply.Classic(id, a)
	require.NoError(t, err)
	right, err := multiply.Classic(a, id)
	require.NoError(t, err)
	assert.True(t, left.Equal(a))
	assert.True(t, right.Equal(a))
}

// TestClassicEmptyInner: n×0 · 0×m is the n×m zero matrix.
func TestClassicEmptyInner(t *testing.T) {
	a, err := matrix.NewDense[int](matrix.Numeric[int]{}, 3, 0)
	require.NoError(t, err)
	b, err := matrix.NewDense[int](matrix.Numeric[int]{}, 0, 2)
	require.NoError(t, err)

	c, err := multiply.Classic(a, b)
	require.NoError(t, err)
	r, cc := c.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, cc)
	assert.Equal(t, make([]int, 6), c.Data())
}

func TestClassicAssociative(t *testing.T) {
	a, b := randomPair(t, 11, 4, 5, 3)
	_, c := randomPair(t, 12, 1, 3, 6)

	ab, err := multiply.Classic(a, b)
	require.NoError(t, err)
	left, err := multiply.Classic(ab, c)
	require.NoError(t, err)

	bc, err := multiply.Classic(b, c)
	require.NoError(t, err)
	right, err := multiply.Classic(a, bc)
	require.NoError(t, err)

	assert.True(t, left.Equal(right))
}

// TestClassicAgainstGonum cross-checks the kernel with gonum's BLAS-backed Mul.
func TestClassicAgainstGonum(t *testing.T) {
	a, b := floatPair(t, 21, 7, 9, 5)

	c, err := multiply.Classic(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(7, 9, a.Data()), mat.NewDense(9, 5, b.Data()))
	assert.Equal(t, want.RawMatrix().Data, c.Data())
}

func TestClassicErrors(t *testing.T) {
	_, err := multiply.Classic[int](nil, seq(2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = multiply.Classic(seq(2, 3), seq(2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
