// SPDX-License-Identifier: MIT

// Package config loads the fastmul command configuration from defaults, an
// optional YAML file and FASTMUL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fastmul/multiply"
)

// EnvPrefix is the prefix of environment overrides, e.g. FASTMUL_BENCH_STOP.
const EnvPrefix = "FASTMUL"

// Config is the command configuration.
type Config struct {
	Algorithms AlgorithmsConfig `mapstructure:"algorithms"`
	Demo       DemoConfig       `mapstructure:"demo"`
	Bench      BenchConfig      `mapstructure:"bench"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// AlgorithmsConfig holds the parameters shared by every algorithm run.
type AlgorithmsConfig struct {
	Threshold        int     `mapstructure:"threshold"`
	BiniEpsilon      float64 `mapstructure:"bini_epsilon"`
	SchonhageEpsilon float64 `mapstructure:"schonhage_epsilon"`
}

// DemoConfig describes the single product computed by `fastmul demo`.
type DemoConfig struct {
	Rows     int   `mapstructure:"rows"`
	Inner    int   `mapstructure:"inner"`
	Cols     int   `mapstructure:"cols"`
	Seed     int64 `mapstructure:"seed"`
	MaxValue int   `mapstructure:"max_value"`
	Print    bool  `mapstructure:"print"`
}

// BenchConfig describes the square size sweep of `fastmul bench`.
type BenchConfig struct {
	Start      int      `mapstructure:"start"`
	Stop       int      `mapstructure:"stop"`
	Step       int      `mapstructure:"step"`
	Seed       int64    `mapstructure:"seed"`
	MaxValue   int      `mapstructure:"max_value"`
	Algorithms []string `mapstructure:"algorithms"`
	Format     string   `mapstructure:"format"`
	Verify     bool     `mapstructure:"verify"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// Output formats accepted by bench.format.
var Formats = []string{"table", "yaml"}

var levels = []string{"trace", "debug", "info", "warn", "error"}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Algorithms: AlgorithmsConfig{
			Threshold:        multiply.DefaultThreshold,
			BiniEpsilon:      1e-6,
			SchonhageEpsilon: 1e-4,
		},
		Demo: DemoConfig{
			Rows:     200,
			Inner:    210,
			Cols:     190,
			Seed:     1,
			MaxValue: 100,
		},
		Bench: BenchConfig{
			Start:      100,
			Stop:       500,
			Step:       100,
			Seed:       1,
			MaxValue:   100,
			Algorithms: lo.Map(multiply.Algorithms(), func(a multiply.Algorithm, _ int) string { return a.String() }),
			Format:     "table",
			Verify:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads configuration from cfgFile (or ./config.yaml and
// $HOME/.fastmul/config.yaml when empty), the environment and defaults.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) (*Config, error) {
	return LoadWith(viper.New(), cfgFile)
}

// LoadWith is Load on a caller-supplied viper instance, so the command can
// bind its flags before reading.
func LoadWith(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fastmul"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Algorithms.Threshold < 1 {
		return errors.New("algorithms.threshold must be >= 1")
	}
	if !(c.Algorithms.BiniEpsilon > 0) || !(c.Algorithms.SchonhageEpsilon > 0) {
		return errors.New("algorithms.bini_epsilon and algorithms.schonhage_epsilon must be > 0")
	}

	if c.Demo.Rows < 1 || c.Demo.Inner < 1 || c.Demo.Cols < 1 {
		return errors.New("demo.rows, demo.inner and demo.cols must be >= 1")
	}
	if c.Demo.MaxValue < 1 {
		return errors.New("demo.max_value must be >= 1")
	}

	if c.Bench.Start < 1 || c.Bench.Step < 1 {
		return errors.New("bench.start and bench.step must be >= 1")
	}
	if c.Bench.Stop < c.Bench.Start {
		return fmt.Errorf("bench.stop (%d) must be >= bench.start (%d)", c.Bench.Stop, c.Bench.Start)
	}
	if c.Bench.MaxValue < 1 {
		return errors.New("bench.max_value must be >= 1")
	}
	if len(c.Bench.Algorithms) == 0 {
		return errors.New("bench.algorithms must not be empty")
	}
	for _, name := range c.Bench.Algorithms {
		if _, err := multiply.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("bench.algorithms: %w", err)
		}
	}
	if !lo.Contains(Formats, c.Bench.Format) {
		return fmt.Errorf("bench.format must be one of: %v", Formats)
	}

	if !lo.Contains(levels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level must be one of: %v", levels)
	}

	return nil
}

// SelectedAlgorithms resolves bench.algorithms in configured order, without duplicates.
func (c *Config) SelectedAlgorithms() ([]multiply.Algorithm, error) {
	out := make([]multiply.Algorithm, 0, len(c.Bench.Algorithms))
	for _, name := range c.Bench.Algorithms {
		alg, err := multiply.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}

	return lo.Uniq(out), nil
}

// Epsilon returns the configured ε for an approximate algorithm, 0 otherwise.
func (c *Config) Epsilon(alg multiply.Algorithm) float64 {
	switch alg {
	case multiply.AlgBiniApprox:
		return c.Algorithms.BiniEpsilon
	case multiply.AlgSchonhageApprox:
		return c.Algorithms.SchonhageEpsilon
	default:
		return 0
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}

	return os.ExpandEnv(path)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("algorithms.threshold", cfg.Algorithms.Threshold)
	v.SetDefault("algorithms.bini_epsilon", cfg.Algorithms.BiniEpsilon)
	v.SetDefault("algorithms.schonhage_epsilon", cfg.Algorithms.SchonhageEpsilon)

	v.SetDefault("demo.rows", cfg.Demo.Rows)
	v.SetDefault("demo.inner", cfg.Demo.Inner)
	v.SetDefault("demo.cols", cfg.Demo.Cols)
	v.SetDefault("demo.seed", cfg.Demo.Seed)
	v.SetDefault("demo.max_value", cfg.Demo.MaxValue)
	v.SetDefault("demo.print", cfg.Demo.Print)

	v.SetDefault("bench.start", cfg.Bench.Start)
	v.SetDefault("bench.stop", cfg.Bench.Stop)
	v.SetDefault("bench.step", cfg.Bench.Step)
	v.SetDefault("bench.seed", cfg.Bench.Seed)
	v.SetDefault("bench.max_value", cfg.Bench.MaxValue)
	v.SetDefault("bench.algorithms", cfg.Bench.Algorithms)
	v.SetDefault("bench.format", cfg.Bench.Format)
	v.SetDefault("bench.verify", cfg.Bench.Verify)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
