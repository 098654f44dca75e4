// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fastmul/generate"
	"github.com/katalvlaran/fastmul/internal/config"
	"github.com/katalvlaran/fastmul/internal/report"
	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
	"github.com/katalvlaran/fastmul/timer"
)

func (a *app) newBenchCommand(def *config.Config) *cobra.Command {
	var exactOnly bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the algorithms over a sweep of square sizes",
		Long: `bench multiplies random size×size matrices for size = start, start+step,
..., stop with every selected algorithm. With --verify each result is
compared with gonum's product of the same operands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, exactOnly)
		},
	}

	f := cmd.Flags()
	f.Int("start", def.Bench.Start, "first size")
	f.Int("stop", def.Bench.Stop, "last size (inclusive)")
	f.Int("step", def.Bench.Step, "size increment")
	f.Int64("seed", def.Bench.Seed, "random seed (0 selects the default seed)")
	f.Int("max-value", def.Bench.MaxValue, "entries are whole numbers in [1, max-value]")
	f.StringSlice("algorithms", def.Bench.Algorithms, "algorithms to run")
	f.String("format", def.Bench.Format, "output format (table, yaml)")
	f.Bool("verify", def.Bench.Verify, "compare every result with a reference product")
	f.BoolVar(&exactOnly, "exact-only", false, "skip the approximate algorithms")
	a.bind(f, "bench.start", "start")
	a.bind(f, "bench.stop", "stop")
	a.bind(f, "bench.step", "step")
	a.bind(f, "bench.seed", "seed")
	a.bind(f, "bench.max_value", "max-value")
	a.bind(f, "bench.algorithms", "algorithms")
	a.bind(f, "bench.format", "format")
	a.bind(f, "bench.verify", "verify")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, exactOnly bool) error {
	b := a.cfg.Bench
	algs, err := a.cfg.SelectedAlgorithms()
	if err != nil {
		return err
	}
	if exactOnly {
		algs = lo.Filter(algs, func(alg multiply.Algorithm, _ int) bool { return alg.Exact() })
	}

	rep := &report.Report{
		Host:      report.CurrentHost(),
		Threshold: a.cfg.Algorithms.Threshold,
		Seed:      b.Seed,
	}
	for size := b.Start; size <= b.Stop; size += b.Step {
		rng := generate.DeriveRNG(b.Seed, uint64(size))
		x, err := generate.Floats(rng, size, size, b.MaxValue)
		if err != nil {
			return err
		}
		y, err := generate.Floats(rng, size, size, b.MaxValue)
		if err != nil {
			return err
		}

		var ref *matrix.Dense[float64]
		if b.Verify {
			ref = reference(x, y)
		}

		for _, alg := range algs {
			res, err := a.benchOne(alg, x, y, ref)
			if err != nil {
				return err
			}
			res.Size = size
			rep.Add(res)
			a.log.WithFields(logrus.Fields{
				"size":      size,
				"algorithm": res.Algorithm,
				"seconds":   res.Seconds,
			}).Info("timed")
		}
	}

	if b.Format == "yaml" {
		return report.WriteYAML(cmd.OutOrStdout(), rep)
	}

	return report.WriteTable(cmd.OutOrStdout(), rep)
}

// benchOne times a single product and, when ref is non-nil, measures its error.
func (a *app) benchOne(alg multiply.Algorithm, x, y, ref *matrix.Dense[float64]) (report.Result, error) {
	var st multiply.Stats
	opts := a.options(&st)

	t := timer.Start()
	got, err := multiply.Run(alg, x, y, a.cfg.Epsilon(alg), opts...)
	if err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", alg, err)
	}
	res := report.Result{
		Algorithm:  alg.String(),
		Seconds:    t.Seconds(),
		MaxRelDiff: -1,
		Products:   st.Products,
		MaxDepth:   st.MaxDepth,
	}
	if ref == nil {
		return res, nil
	}

	if res.MaxRelDiff, err = matrix.MaxRelativeDifference(ref, got); err != nil {
		return report.Result{}, fmt.Errorf("%s: %w", alg, err)
	}
	if alg.Exact() && res.MaxRelDiff != 0 {
		return report.Result{}, fmt.Errorf("%s: size %d: %w", alg, x.Rows(), errMismatch)
	}

	return res, nil
}

// reference computes x·y with gonum.
func reference(x, y *matrix.Dense[float64]) *matrix.Dense[float64] {
	var c mat.Dense
	c.Mul(mat.NewDense(x.Rows(), x.Cols(), x.Data()), mat.NewDense(y.Rows(), y.Cols(), y.Data()))
	raw := c.RawMatrix()
	if raw.Stride == raw.Cols {
		return matrix.NewNumeric(raw.Data[:raw.Rows*raw.Cols], raw.Rows, raw.Cols)
	}
	out := make([]float64, 0, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		out = append(out, raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols]...)
	}

	return matrix.NewNumeric(out, raw.Rows, raw.Cols)
}
