package config

import (
	"strings"
	"testing"
	"time"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		env         map[string]string
		wantTimeout time.Duration
		wantSlow    time.Duration
		wantReport  string
		wantWarning string
	}{
		{
			name:        "no overrides",
			env:         nil,
			wantTimeout: DefaultTimeout,
			wantSlow:    DefaultSlowTimeout,
		},
		{
			name:        "both timeouts",
			env:         map[string]string{EnvTimeout: "5s", EnvSlowTimeout: "20s"},
			wantTimeout: 5 * time.Second,
			wantSlow:    20 * time.Second,
		},
		{
			name:        "invalid timeout keeps default",
			env:         map[string]string{EnvTimeout: "fast"},
			wantTimeout: DefaultTimeout,
			wantSlow:    DefaultSlowTimeout,
			wantWarning: "not a duration",
		},
		{
			name:        "non-positive timeout keeps default",
			env:         map[string]string{EnvSlowTimeout: "0s"},
			wantTimeout: DefaultTimeout,
			wantSlow:    DefaultSlowTimeout,
			wantWarning: "must be positive",
		},
		{
			name:        "timeout above slow raises slow",
			env:         map[string]string{EnvTimeout: "5m"},
			wantTimeout: 5 * time.Minute,
			wantSlow:    5 * time.Minute,
			wantWarning: "shorter than timeout",
		},
		{
			name:        "report path",
			env:         map[string]string{EnvReport: "out/report.json"},
			wantTimeout: DefaultTimeout,
			wantSlow:    DefaultSlowTimeout,
			wantReport:  "out/report.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			warnings := ApplyEnv(cfg, mapLookup(tt.env))

			if cfg.Execution.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", cfg.Execution.Timeout, tt.wantTimeout)
			}
			if cfg.Execution.SlowTimeout != tt.wantSlow {
				t.Errorf("SlowTimeout = %v, want %v", cfg.Execution.SlowTimeout, tt.wantSlow)
			}
			if cfg.Report.Path != tt.wantReport {
				t.Errorf("Report.Path = %q, want %q", cfg.Report.Path, tt.wantReport)
			}

			joined := strings.Join(warnings, "\n")
			if tt.wantWarning == "" && joined != "" {
				t.Errorf("unexpected warnings: %q", warnings)
			}
			if tt.wantWarning != "" && !strings.Contains(joined, tt.wantWarning) {
				t.Errorf("warnings = %q, want substring %q", warnings, tt.wantWarning)
			}
		})
	}
}
