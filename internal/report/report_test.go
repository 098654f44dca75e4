// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastmul/internal/report"
)

func sample() *report.Report {
	rep := &report.Report{
		Host:      report.Host{OS: "linux", Arch: "amd64", CPUs: 8, Features: []string{"avx2"}},
		Threshold: 64,
		Seed:      1,
	}
	rep.Add(report.Result{Size: 128, Algorithm: "classic", Seconds: 0.0123, Products: 0, MaxDepth: 0})
	rep.Add(report.Result{Size: 128, Algorithm: "bini-approx", Seconds: 0.02, MaxRelDiff: 1.5e-5, Products: 10, MaxDepth: 1})
	rep.Add(report.Result{Size: 256, Algorithm: "laderman", Seconds: 0.5, MaxRelDiff: -1, Products: 23, MaxDepth: 1})

	return rep
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, sample()))
	assert.Contains(t, buf.String(), "algorithm: bini-approx")
	assert.Contains(t, buf.String(), "threshold: 64")

	got, err := report.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, sample()))
	out := buf.String()

	assert.Contains(t, out, "threshold=64")
	assert.Contains(t, out, "features: avx2")
	assert.Contains(t, out, "SIZE 128x128")
	assert.Contains(t, out, "SIZE 256x256")
	assert.Contains(t, out, "0.0123")
	assert.Contains(t, out, "1.5e-05")
	assert.Contains(t, out, "skipped")
}

func TestCurrentHost(t *testing.T) {
	h := report.CurrentHost()
	assert.NotEmpty(t, h.OS)
	assert.NotEmpty(t, h.Arch)
	assert.Positive(t, h.CPUs)
}
