package config

import (
	"github.com/xtding233/luckwood/internal/lottery"
)

// Config mirrors the YAML file.
type Config struct {
	LogLevel  string         `yaml:"log_level"`  // debug|info|warn|error
	LogFormat string         `yaml:"log_format"` // text|json
	Output    string         `yaml:"output"`     // text|json
	RNG       RNGConfig      `yaml:"rng"`
	Coverage  CoverageConfig `yaml:"coverage"`
}

type RNGConfig struct {
	Mode string `yaml:"mode"` // "crypto" | "seeded"
	Seed uint64 `yaml:"seed"`
}

type CoverageConfig struct {
	Trials       int     `yaml:"trials"`
	Significance float64 `yaml:"significance"` // p-value below this flags the companion tally
}

const (
	ModeCrypto = "crypto"
	ModeSeeded = "seeded"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "text",
		RNG:       RNGConfig{Mode: ModeCrypto},
		Coverage:  CoverageConfig{Trials: 10000, Significance: 0.01},
	}
}

// RandomSource builds the configured source.
func (c Config) RandomSource() lottery.RandomSource {
	if c.RNG.Mode == ModeSeeded {
		return lottery.NewSeededRNG(c.RNG.Seed)
	}
	return lottery.DefaultRNG()
}
