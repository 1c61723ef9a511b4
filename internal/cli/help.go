package cli

import (
	"github.com/coursekit/validate-examples/internal/config"
	"github.com/coursekit/validate-examples/internal/output"
	"github.com/coursekit/validate-examples/pkg/harness"
)

func printUsage(w *output.Writer) {
	w.HelpTitle("validate-examples - run every course example and report failures")

	w.HelpSection("Usage:")
	w.HelpUsage("validate-examples            Run all examples under the course root")
	w.HelpUsage("validate-examples --list     Show discovered examples and their classification")

	w.HelpSection("Flags:")
	w.HelpFlag("--list", "List examples without running them", 12)
	w.HelpFlag("-h, --help", "Show this help", 12)
	w.HelpFlag("--version", "Show version", 12)

	w.HelpSection("Environment:")
	w.HelpEnvVar(config.EnvTimeout, "Timeout per example (Go duration, e.g. 45s)", 30)
	w.HelpEnvVar(config.EnvSlowTimeout, "Timeout for examples registered as slow", 30)
	w.HelpEnvVar(config.EnvReport, "Write a JSON report to this path", 30)
	w.HelpEnvVar("NO_COLOR", "Disable colored output", 30)

	w.HelpSection("Examples see:")
	w.HelpEnvVar(harness.AutomationEnvVar, `Set to "true" for every example process`, 30)

	w.HelpSection("Exit codes:")
	w.HelpUsage("0  every example passed")
	w.HelpUsage("1  an example failed or timed out, or the harness could not run")
}
