package config

import (
	"fmt"
	"time"
)

// Environment variables that override the compiled-in configuration.
const (
	EnvTimeout     = "VALIDATE_EXAMPLES_TIMEOUT"
	EnvSlowTimeout = "VALIDATE_EXAMPLES_SLOW_TIMEOUT"
	EnvReport      = "VALIDATE_EXAMPLES_REPORT"
)

// ApplyEnv overrides configuration values from the environment.
// Invalid values are ignored with a warning and the configured value is kept.
// If the overrides leave the slow timeout shorter than the standard timeout,
// the slow timeout is raised to match.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) []string {
	var warnings []string

	if d, ok, warn := lookupDuration(lookup, EnvTimeout); warn != "" {
		warnings = append(warnings, warn)
	} else if ok {
		cfg.Execution.Timeout = d
	}

	if d, ok, warn := lookupDuration(lookup, EnvSlowTimeout); warn != "" {
		warnings = append(warnings, warn)
	} else if ok {
		cfg.Execution.SlowTimeout = d
	}

	if cfg.Execution.SlowTimeout < cfg.Execution.Timeout {
		warnings = append(warnings, fmt.Sprintf(
			"slow timeout %s is shorter than timeout %s, using %s",
			cfg.Execution.SlowTimeout, cfg.Execution.Timeout, cfg.Execution.Timeout))
		cfg.Execution.SlowTimeout = cfg.Execution.Timeout
	}

	if v, ok := lookup(EnvReport); ok && v != "" {
		cfg.Report.Path = v
	}

	return warnings
}

func lookupDuration(lookup func(string) (string, bool), key string) (time.Duration, bool, string) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return 0, false, ""
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false, fmt.Sprintf("invalid %s value %q (not a duration), using default", key, v)
	}
	if d <= 0 {
		return 0, false, fmt.Sprintf("%s=%s must be positive, using default", key, v)
	}
	return d, true, ""
}
