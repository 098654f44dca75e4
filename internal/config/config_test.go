// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastmul/internal/config"
	"github.com/katalvlaran/fastmul/multiply"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, multiply.DefaultThreshold, cfg.Algorithms.Threshold)
	assert.Len(t, cfg.Bench.Algorithms, len(multiply.Algorithms()))
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastmul.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithms:
  threshold: 32
bench:
  start: 64
  stop: 256
  step: 64
  algorithms: [classic, strassen-dynamic, classic]
  format: yaml
`), 0o644))
	t.Setenv("FASTMUL_BENCH_STOP", "128")
	t.Setenv("FASTMUL_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Algorithms.Threshold)
	assert.Equal(t, 64, cfg.Bench.Start)
	assert.Equal(t, 128, cfg.Bench.Stop)
	assert.Equal(t, "yaml", cfg.Bench.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 1e-6, cfg.Algorithms.BiniEpsilon, "untouched keys keep defaults")

	algs, err := cfg.SelectedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []multiply.Algorithm{multiply.AlgClassic, multiply.AlgStrassenDynamic}, algs)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*config.Config){
		"threshold":  func(c *config.Config) { c.Algorithms.Threshold = 0 },
		"epsilon":    func(c *config.Config) { c.Algorithms.SchonhageEpsilon = -1 },
		"demo shape": func(c *config.Config) { c.Demo.Inner = 0 },
		"demo bound": func(c *config.Config) { c.Demo.MaxValue = 0 },
		"bench step": func(c *config.Config) { c.Bench.Step = 0 },
		"bench stop": func(c *config.Config) { c.Bench.Stop = c.Bench.Start - 1 },
		"bench none": func(c *config.Config) { c.Bench.Algorithms = nil },
		"bench name": func(c *config.Config) { c.Bench.Algorithms = []string{"winograd"} },
		"format":     func(c *config.Config) { c.Bench.Format = "csv" },
		"level":      func(c *config.Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestEpsilon(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, cfg.Algorithms.BiniEpsilon, cfg.Epsilon(multiply.AlgBiniApprox))
	assert.Equal(t, cfg.Algorithms.SchonhageEpsilon, cfg.Epsilon(multiply.AlgSchonhageApprox))
	assert.Zero(t, cfg.Epsilon(multiply.AlgLaderman))
}
