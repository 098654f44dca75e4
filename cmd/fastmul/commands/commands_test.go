// SPDX-License-Identifier: MIT
package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastmul/cmd/fastmul/commands"
	"github.com/katalvlaran/fastmul/internal/report"
)

// run executes the command tree with args, isolated from any user config.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := commands.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()

	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo", "--rows", "7", "--inner", "8", "--cols", "9", "--threshold", "2", "--print")
	require.NoError(t, err)

	assert.Contains(t, out, "A: random 7x8 matrix")
	assert.Contains(t, out, "Laderman <3, 3, 3>:")
	assert.Contains(t, out, "Schonhage <3, 3, 3> (approx):")
	assert.Contains(t, out, "max rel diff")
	assert.Contains(t, out, "C (7 x 9)")
}

func TestBenchYAML(t *testing.T) {
	out, err := run(t, "bench", "--start", "6", "--stop", "12", "--step", "6", "--threshold", "3",
		"--algorithms", "classic,strassen-dynamic,bini-exact", "--format", "yaml")
	require.NoError(t, err)

	rep, err := report.ReadYAML(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Threshold)
	require.Len(t, rep.Results, 6)
	for _, r := range rep.Results {
		assert.Zero(t, r.MaxRelDiff, r.Algorithm)
	}
	assert.Equal(t, 12, rep.Results[5].Size)
	assert.Equal(t, "bini-exact", rep.Results[5].Algorithm)
}

func TestBenchExactOnlyTable(t *testing.T) {
	out, err := run(t, "bench", "--start", "8", "--stop", "8", "--threshold", "2", "--exact-only")
	require.NoError(t, err)

	assert.Contains(t, out, "SIZE 8x8")
	assert.Contains(t, out, "schonhage-exact")
	assert.NotContains(t, out, "bini-approx")
}

func TestBenchRejectsUnknownAlgorithm(t *testing.T) {
	_, err := run(t, "bench", "--algorithms", "winograd")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fastmul v"+commands.Version)
}
