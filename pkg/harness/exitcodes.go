// Package harness provides public constants for CI pipelines and example
// programs integrating with validate-examples.
package harness

// Exit codes returned by the validate-examples CLI.
// CI integration relies on these alone; the printed output is not a
// machine-readable format.
const (
	// ExitSuccess indicates every discovered example ran to completion with exit code 0.
	ExitSuccess = 0

	// ExitFailure indicates at least one example failed or timed out, or the
	// harness itself could not complete the run.
	ExitFailure = 1
)

// AutomationEnvVar is set to "true" in the environment of every example the
// harness runs. Examples may check it to skip prompts that would block.
// Honoring it is optional: interactive examples are driven by scripted stdin.
const AutomationEnvVar = "VALIDATE_EXAMPLES"
