package config

import (
	"fmt"
	"strings"
)

// Validate checks semantic constraints and reports every violation at once.
func (c Config) Validate() error {
	var errs []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "log_level must be one of: debug, info, warn, error")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, "log_format must be text or json")
	}
	if c.Output != "text" && c.Output != "json" {
		errs = append(errs, "output must be text or json")
	}

	switch c.RNG.Mode {
	case ModeCrypto, ModeSeeded:
	default:
		errs = append(errs, fmt.Sprintf("rng.mode must be %s or %s", ModeCrypto, ModeSeeded))
	}

	if c.Coverage.Trials <= 0 {
		errs = append(errs, "coverage.trials must be >= 1")
	}
	if c.Coverage.Significance <= 0 || c.Coverage.Significance >= 1 {
		errs = append(errs, "coverage.significance must be in (0,1)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
