// Package model provides the result types shared by the runner, the text
// reporter and the JSON report writer.
package model

import (
	"fmt"
	"time"

	"github.com/coursekit/validate-examples/internal/errors"
)

// Outcome is the final state of one example execution.
type Outcome int

const (
	Success Outcome = iota
	Failure
	// TimedOut is a failure caused by the example exceeding its timeout.
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "passed"
	case Failure:
		return "failed"
	case TimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Failed reports whether the outcome counts as a failure. Timeouts are failures.
func (o Outcome) Failed() bool {
	return o != Success
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the record of one example execution. It is created once by the
// engine and never modified afterwards.
type Result struct {
	File     string
	Outcome  Outcome
	Started  time.Time
	Duration time.Duration
	// Detail is the diagnostic text; empty iff Outcome is Success.
	Detail string
	// ExitCode is -1 when the process did not exit normally.
	ExitCode int
	Timeout  time.Duration

	// Stdout and Stderr hold the captured tails of each stream.
	Stdout      string
	Stderr      string
	StdoutBytes int64
	StderrBytes int64
}

// Truncated reports whether either captured stream lost its head.
func (r Result) Truncated() bool {
	return r.StdoutBytes > int64(len(r.Stdout)) || r.StderrBytes > int64(len(r.Stderr))
}

// Summary aggregates a run. It is derived entirely from the results.
type Summary struct {
	Total       int
	Passed      int
	Failed      int // includes TimedOut
	TimedOut    int
	SuccessRate float64 // percent, one decimal
	Duration    time.Duration
	Failures    []Result // in run order
}

// ExitCode maps the summary to the process exit code: success only when
// nothing failed, timeouts included.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return errors.ExitFailure
	}
	return errors.ExitSuccess
}
