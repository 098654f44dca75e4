// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fastmul/generate"
	"github.com/katalvlaran/fastmul/internal/config"
	"github.com/katalvlaran/fastmul/matrix"
	"github.com/katalvlaran/fastmul/multiply"
	"github.com/katalvlaran/fastmul/timer"
)

// errMismatch reports an exact algorithm disagreeing with Classic.
var errMismatch = errors.New("result differs from classic product")

func (a *app) newDemoCommand(def *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Multiply one random pair with every algorithm and time it",
		Long: `demo draws a random rows×inner and inner×cols matrix, computes the
classic product and then every other algorithm, checking that the exact
ones reproduce it and reporting the error of the approximate ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd)
		},
	}

	f := cmd.Flags()
	f.Int("rows", def.Demo.Rows, "rows of A")
	f.Int("inner", def.Demo.Inner, "columns of A and rows of B")
	f.Int("cols", def.Demo.Cols, "columns of B")
	f.Int64("seed", def.Demo.Seed, "random seed (0 selects the default seed)")
	f.Int("max-value", def.Demo.MaxValue, "entries are whole numbers in [1, max-value]")
	f.Bool("print", def.Demo.Print, "print A, B and the product")
	a.bind(f, "demo.rows", "rows")
	a.bind(f, "demo.inner", "inner")
	a.bind(f, "demo.cols", "cols")
	a.bind(f, "demo.seed", "seed")
	a.bind(f, "demo.max_value", "max-value")
	a.bind(f, "demo.print", "print")

	return cmd
}

func (a *app) runDemo(cmd *cobra.Command) error {
	d := a.cfg.Demo
	out := cmd.OutOrStdout()

	rng := generate.NewRNG(d.Seed)
	x, err := generate.Floats(rng, d.Rows, d.Inner, d.MaxValue)
	if err != nil {
		return err
	}
	y, err := generate.Floats(rng, d.Inner, d.Cols, d.MaxValue)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "DEMO: Calculating product of matrices A and B.")
	fmt.Fprintf(out, "A: random %dx%d matrix\n", d.Rows, d.Inner)
	fmt.Fprintf(out, "B: random %dx%d matrix\n", d.Inner, d.Cols)

	t := timer.Start()
	want, err := multiply.Classic(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-32s\t%.4fs\n", label(multiply.AlgClassic)+":", t.Seconds())

	rest := lo.Reject(multiply.Algorithms(), func(alg multiply.Algorithm, _ int) bool {
		return alg == multiply.AlgClassic
	})
	for _, alg := range rest {
		var st multiply.Stats
		t.Restart()
		got, err := multiply.Run(alg, x, y, a.cfg.Epsilon(alg), a.options(&st)...)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		secs := t.Seconds()
		a.log.WithFields(logrus.Fields{
			"algorithm": alg.String(),
			"products":  st.Products,
			"depth":     st.MaxDepth,
		}).Debug("demo product")

		if alg.Exact() {
			if !want.Equal(got) {
				return fmt.Errorf("%s: %w", alg, errMismatch)
			}
			fmt.Fprintf(out, "%-32s\t%.4fs\n", label(alg)+":", secs)
			continue
		}
		diff, err := matrix.MaxRelativeDifference(want, got)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		fmt.Fprintf(out, "%-32s\t%.4fs\tmax rel diff %.3g\n", label(alg)+":", secs, diff)
	}

	if d.Print {
		for _, p := range []struct {
			name string
			m    *matrix.Dense[float64]
		}{{"A", x}, {"B", y}, {"C", want}} {
			if err := matrix.Fprint(out, p.name, p.m); err != nil {
				return err
			}
		}
	}

	return nil
}
