package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/validate-examples/internal/model"
)

func sampleRun() *Run {
	results := []model.Result{
		{File: "01-intro/code/ok.ts", Outcome: model.Success, Duration: 1200 * time.Millisecond, Timeout: 30 * time.Second},
		{File: "01-intro/code/hang.ts", Outcome: model.TimedOut, Duration: 30 * time.Second, Timeout: 30 * time.Second,
			ExitCode: -1, Detail: "timed out after 30s"},
	}
	r := NewRun("/course", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	r.Results = results
	r.Summary = model.Summary{
		Total: 2, Passed: 1, Failed: 1, TimedOut: 1, SuccessRate: 50,
		Duration: 31200 * time.Millisecond, Failures: results[1:],
	}
	return r
}

func TestNewRun_UniqueIDs(t *testing.T) {
	t.Parallel()
	a := NewRun("/course", time.Now())
	b := NewRun("/course", time.Now())
	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Errorf("IDs = %s, %s; want distinct non-nil", a.ID, b.ID)
	}
}

func TestRun_Marshal(t *testing.T) {
	t.Parallel()
	r := sampleRun()
	data, err := r.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["run_id"] != r.ID.String() {
		t.Errorf("run_id = %v, want %s", doc["run_id"], r.ID)
	}
	summary := doc["summary"].(map[string]any)
	if summary["exit_code"] != float64(1) || summary["timed_out"] != float64(1) {
		t.Errorf("summary = %v", summary)
	}
	if summary["duration_ms"] != float64(31200) {
		t.Errorf("duration_ms = %v", summary["duration_ms"])
	}
	resultsOut := doc["results"].([]any)
	if len(resultsOut) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(resultsOut))
	}
	hang := resultsOut[1].(map[string]any)
	if hang["outcome"] != "timed out" || hang["detail"] != "timed out after 30s" {
		t.Errorf("results[1] = %v", hang)
	}
	if _, ok := resultsOut[0].(map[string]any)["detail"]; ok {
		t.Error("detail present on a passing result")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.json")

	if err := Write(path, sampleRun()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Errorf("report is not valid JSON: %s", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the report", len(entries))
	}
}

func TestWrite_Unwritable(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Write(filepath.Join(blocker, "report.json"), sampleRun()); err == nil {
		t.Error("Write() expected error when the parent is a file")
	}
}
