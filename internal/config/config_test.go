package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/luckwood/internal/lottery"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "luckwood.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
log_level: debug
output: json
rng:
  mode: seeded
  seed: 1234
coverage:
  trials: 50
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat) // untouched default
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, ModeSeeded, cfg.RNG.Mode)
	assert.Equal(t, uint64(1234), cfg.RNG.Seed)
	assert.Equal(t, 50, cfg.Coverage.Trials)
	assert.Equal(t, 0.01, cfg.Coverage.Significance)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "rng:\n  mode: crypto\n")
	t.Setenv("LUCKWOOD_RNG_MODE", "seeded")
	t.Setenv("LUCKWOOD_RNG_SEED", "77")
	t.Setenv("LUCKWOOD_COVERAGE_TRIALS", "12")
	t.Setenv("LUCKWOOD_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeSeeded, cfg.RNG.Mode)
	assert.Equal(t, uint64(77), cfg.RNG.Seed)
	assert.Equal(t, 12, cfg.Coverage.Trials)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("LUCKWOOD_RNG_SEED", "-1")
	_, err := Load("")
	assert.ErrorContains(t, err, "LUCKWOOD_RNG_SEED")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "rng: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{
		LogLevel:  "loud",
		LogFormat: "xml",
		Output:    "csv",
		RNG:       RNGConfig{Mode: "dice"},
		Coverage:  CoverageConfig{Trials: 0, Significance: 2},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"log_level", "log_format", "output", "rng.mode", "coverage.trials", "coverage.significance"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestRandomSource(t *testing.T) {
	cfg := Defaults()
	cfg.RNG = RNGConfig{Mode: ModeSeeded, Seed: 5}

	a, err := lottery.PredictSuperLotto([]int{1, 2, 3, 4, 5}, cfg.RandomSource())
	require.NoError(t, err)
	b, err := lottery.PredictSuperLotto([]int{1, 2, 3, 4, 5}, cfg.RandomSource())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, lottery.DefaultRNG(), Defaults().RandomSource())
}
