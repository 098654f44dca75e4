// SPDX-License-Identifier: MIT
package multiply_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/multiply"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "multiply: WithThreshold: threshold must be >= 1", func() { multiply.WithThreshold(0) })
	assert.PanicsWithValue(t, "multiply: WithLogger: logger must be non-nil", func() { multiply.WithLogger(nil) })
	assert.PanicsWithValue(t, "multiply: WithStats: stats must be non-nil", func() { multiply.WithStats(nil) })
	assert.NotPanics(t, func() { multiply.WithThreshold(1) })
}

// TestStatsStrassen counts a two-level recursion on 4×4 operands:
// 7 products at depth 0, 49 at depth 1, all of them 1×1 base cases.
func TestStatsStrassen(t *testing.T) {
	a, b := randomPair(t, 4, 4, 4, 4)

	var st multiply.Stats
	_, err := multiply.StrassenDynamic(a, b, multiply.WithThreshold(1), multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, multiply.Stats{Products: 56, BaseCases: 49, Peels: 0, MaxDepth: 2}, st)

	// 3×3 pads to 4×4 and recurses the same way.
	st.Reset()
	a, b = randomPair(t, 5, 3, 3, 3)
	_, err = multiply.StrassenStatic(a, b, multiply.WithThreshold(1), multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, multiply.Stats{Products: 56, BaseCases: 49, Peels: 0, MaxDepth: 2}, st)
}

// TestStatsPeeling: one 5×5×5 Strassen step leaves an odd row, column and
// inner slice, so all three corrections run.
func TestStatsPeeling(t *testing.T) {
	a, b := randomPair(t, 6, 5, 5, 5)

	var st multiply.Stats
	_, err := multiply.StrassenDynamic(a, b, multiply.WithThreshold(2), multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, multiply.Stats{Products: 7, BaseCases: 7, Peels: 3, MaxDepth: 1}, st)
}

// TestStatsFallback: an input at the threshold is one classic base case.
func TestStatsFallback(t *testing.T) {
	a, b := randomPair(t, 7, 9, 9, 9)

	var st multiply.Stats
	_, err := multiply.Laderman(a, b, multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, multiply.Stats{BaseCases: 1}, st)

	st.Reset()
	_, err = multiply.Classic(a, b, multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 1, st.BaseCases)
}

// TestStatsBorderRank checks the product counts of the ε schemes.
func TestStatsBorderRank(t *testing.T) {
	var st multiply.Stats
	_, err := multiply.BiniExact(seq(2, 2), seq(2, 3), multiply.WithThreshold(1), multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 10, st.Products)
	assert.Equal(t, 1, st.MaxDepth)

	st.Reset()
	_, err = multiply.SchonhageExact(seq(3, 3), seq(3, 3), multiply.WithThreshold(1), multiply.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 21, st.Products)
	assert.Equal(t, 21, st.BaseCases)
}

func TestLoggerTracesSplits(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	a, b := randomPair(t, 8, 4, 4, 4)
	_, err := multiply.StrassenDynamic(a, b, multiply.WithThreshold(1), multiply.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 8) // 1 split at depth 0, 7 at depth 1
	first := entries[0]
	assert.Equal(t, logrus.DebugLevel, first.Level)
	assert.Equal(t, "split", first.Message)
	assert.Equal(t, "StrassenDynamic", first.Data["algorithm"])
	assert.Equal(t, 0, first.Data["depth"])
	assert.Equal(t, 4, first.Data["rows"])
	assert.Equal(t, 1, hook.LastEntry().Data["depth"])

	// Above Debug nothing is emitted.
	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	_, err = multiply.StrassenDynamic(a, b, multiply.WithThreshold(1), multiply.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}
