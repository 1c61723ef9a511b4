// Package report writes a machine-readable JSON record of a validation run.
// The file is informational only; CI decisions rely on the exit code.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/validate-examples/internal/model"
)

// Run is one complete harness invocation.
type Run struct {
	ID       uuid.UUID
	Started  time.Time
	Root     string
	Results  []model.Result
	Summary  model.Summary
	Warnings []string
}

// NewRun starts a run record with a fresh ID.
func NewRun(root string, started time.Time) *Run {
	return &Run{ID: uuid.New(), Started: started, Root: root}
}

type document struct {
	RunID    string       `json:"run_id"`
	Started  time.Time    `json:"started"`
	Root     string       `json:"root"`
	Summary  summaryJSON  `json:"summary"`
	Results  []resultJSON `json:"results"`
	Warnings []string     `json:"warnings,omitempty"`
}

type summaryJSON struct {
	Total       int     `json:"total"`
	Passed      int     `json:"passed"`
	Failed      int     `json:"failed"`
	TimedOut    int     `json:"timed_out"`
	SuccessRate float64 `json:"success_rate"`
	DurationMS  int64   `json:"duration_ms"`
	ExitCode    int     `json:"exit_code"`
}

type resultJSON struct {
	File        string        `json:"file"`
	Outcome     model.Outcome `json:"outcome"`
	DurationMS  int64         `json:"duration_ms"`
	TimeoutMS   int64         `json:"timeout_ms"`
	ExitCode    int           `json:"exit_code"`
	Detail      string        `json:"detail,omitempty"`
	StdoutBytes int64         `json:"stdout_bytes"`
	StderrBytes int64         `json:"stderr_bytes"`
}

// Marshal encodes the run as indented JSON.
func (r *Run) Marshal() ([]byte, error) {
	doc := document{
		RunID:   r.ID.String(),
		Started: r.Started.UTC(),
		Root:    r.Root,
		Summary: summaryJSON{
			Total:       r.Summary.Total,
			Passed:      r.Summary.Passed,
			Failed:      r.Summary.Failed,
			TimedOut:    r.Summary.TimedOut,
			SuccessRate: r.Summary.SuccessRate,
			DurationMS:  r.Summary.Duration.Milliseconds(),
			ExitCode:    r.Summary.ExitCode(),
		},
		Results:  make([]resultJSON, 0, len(r.Results)),
		Warnings: r.Warnings,
	}
	for _, res := range r.Results {
		doc.Results = append(doc.Results, resultJSON{
			File:        filepath.ToSlash(res.File),
			Outcome:     res.Outcome,
			DurationMS:  res.Duration.Milliseconds(),
			TimeoutMS:   res.Timeout.Milliseconds(),
			ExitCode:    res.ExitCode,
			Detail:      res.Detail,
			StdoutBytes: res.StdoutBytes,
			StderrBytes: res.StderrBytes,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Write stores the run at path, creating parent directories. The file is
// written to a temporary name first and renamed into place.
func Write(path string, r *Run) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.json")
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
