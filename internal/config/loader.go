package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load merges defaults <- YAML file <- LUCKWOOD_* environment.
// An empty path or a missing file leaves the defaults in place.
// The result is not validated; call Validate.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readYAML decodes path over cfg. Missing files are not an error.
func readYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func applyEnvOverrides(cfg *Config) error {
	setStr(&cfg.LogLevel, "LUCKWOOD_LOG_LEVEL")
	setStr(&cfg.LogFormat, "LUCKWOOD_LOG_FORMAT")
	setStr(&cfg.Output, "LUCKWOOD_OUTPUT")
	setStr(&cfg.RNG.Mode, "LUCKWOOD_RNG_MODE")
	if err := setUint64(&cfg.RNG.Seed, "LUCKWOOD_RNG_SEED"); err != nil {
		return err
	}
	if err := setInt(&cfg.Coverage.Trials, "LUCKWOOD_COVERAGE_TRIALS"); err != nil {
		return err
	}
	return setFloat64(&cfg.Coverage.Significance, "LUCKWOOD_COVERAGE_SIGNIFICANCE")
}

// typed env helpers; each only touches dst when the variable is set

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setUint64(dst *uint64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat64(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
