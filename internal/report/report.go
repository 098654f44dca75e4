// SPDX-License-Identifier: MIT

// Package report collects benchmark timings of the multiplication
// algorithms and renders them as a terminal table or as YAML.
package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"
)

// Result is one timed product.
type Result struct {
	Size      int     `yaml:"size"`
	Algorithm string  `yaml:"algorithm"`
	Seconds   float64 `yaml:"seconds"`
	// MaxRelDiff is the largest relative entry error against the reference
	// product; 0 for exact agreement, -1 when verification was skipped.
	MaxRelDiff float64 `yaml:"max_rel_diff"`
	Products   int     `yaml:"products"`
	MaxDepth   int     `yaml:"max_depth"`
}

// Host describes the machine a report was produced on.
type Host struct {
	OS       string   `yaml:"os"`
	Arch     string   `yaml:"arch"`
	CPUs     int      `yaml:"cpus"`
	Features []string `yaml:"features,omitempty"`
}

// Report is a full benchmark run.
type Report struct {
	Host      Host     `yaml:"host"`
	Threshold int      `yaml:"threshold"`
	Seed      int64    `yaml:"seed"`
	Results   []Result `yaml:"results"`
}

// Add appends r.
func (rep *Report) Add(r Result) { rep.Results = append(rep.Results, r) }

// CurrentHost reports the running machine, including the SIMD features
// relevant to dense kernels.
func CurrentHost() Host {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasFMA, "fma")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")

	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH, CPUs: runtime.NumCPU(), Features: feats}
}

// WriteYAML encodes rep as a YAML document.
func WriteYAML(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}

// ReadYAML decodes a report written by WriteYAML.
func ReadYAML(r io.Reader) (*Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("report: decode yaml: %w", err)
	}

	return &rep, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B68EE"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	sizeStyle   = lipgloss.NewStyle().Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

const (
	colAlgorithm = 20
	colNumber    = 12
)

// WriteTable renders rep grouped by size, one line per algorithm.
func WriteTable(w io.Writer, rep *Report) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("fastmul bench  %s/%s  cpus=%d  threshold=%d",
		rep.Host.OS, rep.Host.Arch, rep.Host.CPUs, rep.Threshold)))
	b.WriteByte('\n')
	if len(rep.Host.Features) > 0 {
		b.WriteString("features: " + strings.Join(rep.Host.Features, " ") + "\n")
	}

	size := -1
	for _, r := range rep.Results {
		if r.Size != size {
			size = r.Size
			b.WriteByte('\n')
			b.WriteString(sizeStyle.Render(fmt.Sprintf("SIZE %dx%d", size, size)))
			b.WriteByte('\n')
			b.WriteString(row(headerStyle, "algorithm", "seconds", "products", "depth", "max rel diff"))
		}
		diff := "skipped"
		if r.MaxRelDiff >= 0 {
			diff = fmt.Sprintf("%.3g", r.MaxRelDiff)
		}
		line := row(lipgloss.NewStyle(), r.Algorithm, fmt.Sprintf("%.4f", r.Seconds),
			fmt.Sprint(r.Products), fmt.Sprint(r.MaxDepth), diff)
		if r.MaxRelDiff > 0 {
			line = badStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
		}
		b.WriteString(line)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func row(st lipgloss.Style, name string, cells ...string) string {
	parts := make([]string, 0, len(cells)+1)
	parts = append(parts, st.Width(colAlgorithm).Render(name))
	for _, c := range cells {
		parts = append(parts, st.Width(colNumber).Align(lipgloss.Right).Render(c))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}
