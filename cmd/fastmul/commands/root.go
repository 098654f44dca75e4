// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of fastmul.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fastmul/internal/config"
	"github.com/katalvlaran/fastmul/internal/logging"
	"github.com/katalvlaran/fastmul/multiply"
)

// Version is the fastmul release, overridden at link time.
var Version = "0.1.0"

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logrus.Logger
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	def := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "fastmul",
		Short: "Fast dense matrix multiplication algorithms",
		Long: `fastmul runs classic, Strassen, Laderman, Bini and Schönhage matrix
multiplication on random matrices, checks them against each other and
times them.

Configuration is read from --config, ./config.yaml or
$HOME/.fastmul/config.yaml, then FASTMUL_* environment variables, then flags.`,
		Version:       Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.fastmul/config.yaml)")
	pf.Int("threshold", def.Algorithms.Threshold, "classic fallback threshold")
	pf.String("log-level", def.Logging.Level, "log level (trace, debug, info, warn, error)")
	pf.String("log-file", def.Logging.File, "also append logs to this file")
	a.bind(pf, "algorithms.threshold", "threshold")
	a.bind(pf, "logging.level", "log-level")
	a.bind(pf, "logging.file", "log-file")

	root.AddCommand(a.newDemoCommand(def), a.newBenchCommand(def), newVersionCommand())

	return root
}

// bind attaches a flag to a configuration key.
func (a *app) bind(fs *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
		panic(err)
	}
}

func (a *app) load() error {
	cfg, err := config.LoadWith(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console)
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("config loaded")
	}

	return nil
}

// options returns the multiply options for one call. The recursion trace
// is attached only when debug logging is on.
func (a *app) options(st *multiply.Stats) []multiply.Option {
	opts := []multiply.Option{multiply.WithThreshold(a.cfg.Algorithms.Threshold)}
	if st != nil {
		opts = append(opts, multiply.WithStats(st))
	}
	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, multiply.WithLogger(logging.Component("multiply")))
	}

	return opts
}
