//go:build unix

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coursekit/validate-examples/internal/config"
)

// shConfig returns a configuration that runs .sh files with sh.
func shConfig(t *testing.T, extra string) *config.Config {
	t.Helper()
	doc := `
discovery:
  chapters: [chapterA]
  extensions: [.sh]
  exclude: [scripts/validate-examples.sh]
execution:
  interpreter: [sh]
  timeout: 2s
  slow_timeout: 5s
examples:
  - name: slow.sh
    slow: true
  - name: ask.sh
    input: "yes\n"
` + extra
	cfg, warnings, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("config.Parse() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("config warnings: %v", warnings)
	}
	return cfg
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExecute_ExampleScenario(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/ok.sh":   "exit 0\n",
		"chapterA/code/slow.sh": "sleep 0.1\nexit 0\n",
	})
	out, stdout, stderr := newTestWriter()

	code := execute(context.Background(), shConfig(t, ""), root, out)

	if code != 0 {
		t.Errorf("exit code = %d, want 0\nstdout:\n%s\nstderr:\n%s", code, stdout, stderr)
	}
	got := stdout.String()
	for _, want := range []string{
		"[1/2] chapterA/code/ok.sh... Passed",
		"[2/2] chapterA/code/slow.sh... Passed",
		"  Total:         2\n",
		"  Passed:        2\n",
		"  Failed:        0\n",
		"All 2 examples passed.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(stderr.String(), "directory not found: chapterA/solution") {
		t.Errorf("stderr = %q, want a warning for the missing solution folder", stderr.String())
	}
}

func TestExecute_FailureAndTimeout(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/a-ok.sh":        "exit 0\n",
		"chapterA/code/b-bad.sh":       "echo 'TypeError: x is undefined' >&2\nexit 1\n",
		"chapterA/code/c-hang.sh":      "read answer\n",
		"chapterA/code/ask.sh":         "read answer\n[ \"$answer\" = yes ]\n",
		"chapterA/solution/d-ok.sh":    "exit 0\n",
		"scripts/validate-examples.sh": "exit 1\n",
	})
	cfg := shConfig(t, "")
	cfg.Execution.Timeout = 300 * time.Millisecond
	out, stdout, _ := newTestWriter()

	code := execute(context.Background(), cfg, root, out)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	got := stdout.String()
	for _, want := range []string{
		"chapterA/code/ask.sh... Passed",
		"chapterA/code/b-bad.sh... Failed",
		"TypeError: x is undefined",
		"chapterA/code/c-hang.sh... Timed Out after 300ms",
		"  Total:         5\n",
		"  Failed:        2\n",
		"  Timed out:     1\n",
		"  Success rate:  60.0%\n",
		"Failures:",
		"2 of 5 examples failed.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "validate-examples.sh") {
		t.Errorf("harness entry point was executed:\n%s", got)
	}
}

func TestExecute_EmptyRun(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	out, stdout, stderr := newTestWriter()

	code := execute(context.Background(), shConfig(t, ""), root, out)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "no example files found") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "  Success rate:  0.0%\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExecute_Interrupted(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{"chapterA/code/ok.sh": "exit 0\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, stdout, stderr := newTestWriter()

	code := execute(ctx, shConfig(t, ""), root, out)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Contains(stdout.String(), "[1/1]") {
		t.Errorf("an example started after cancellation:\n%s", stdout)
	}
	if !strings.Contains(stderr.String(), "interrupted") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestExecute_WritesReport(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/ok.sh":  "exit 0\n",
		"chapterA/code/bad.sh": "exit 3\n",
	})
	out, _, _ := newTestWriter()

	code := execute(context.Background(), shConfig(t, "report:\n  path: out/report.json\n"), root, out)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	data, err := os.ReadFile(filepath.Join(root, "out", "report.json"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var doc struct {
		RunID   string `json:"run_id"`
		Summary struct {
			Total    int `json:"total"`
			Failed   int `json:"failed"`
			ExitCode int `json:"exit_code"`
		} `json:"summary"`
		Results []struct {
			File    string `json:"file"`
			Outcome string `json:"outcome"`
			Detail  string `json:"detail"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.RunID == "" || doc.Summary.Total != 2 || doc.Summary.Failed != 1 || doc.Summary.ExitCode != 1 {
		t.Errorf("report = %+v", doc)
	}
	if len(doc.Results) != 2 || doc.Results[0].File != "chapterA/code/bad.sh" || doc.Results[0].Detail != "exit code 3" {
		t.Errorf("results = %+v", doc.Results)
	}
}

func TestExecute_SharedNameWarning(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/slow.sh":     "exit 0\n",
		"chapterA/solution/slow.sh": "exit 0\n",
	})
	out, _, stderr := newTestWriter()

	if code := execute(context.Background(), shConfig(t, ""), root, out); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	want := "registry entry slow.sh classifies several files: chapterA/code/slow.sh, chapterA/solution/slow.sh"
	if !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestList(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/ask.sh":  "exit 1\n",
		"chapterA/code/ok.sh":   "exit 1\n",
		"chapterA/code/slow.sh": "exit 1\n",
	})
	out, stdout, _ := newTestWriter()

	if code := list(shConfig(t, ""), root, out); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	got := stdout.String()
	for _, want := range []string{
		"=== DRY RUN ===",
		"Examples: 3",
		"  chapterA/code/ask.sh [interactive, 2s]",
		"  chapterA/code/ok.sh [standard, 2s]",
		"  chapterA/code/slow.sh [slow, 5s]",
		"=== END DRY RUN ===",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Passed") || strings.Contains(got, "Failed") {
		t.Errorf("list executed examples:\n%s", got)
	}
}

func TestExecute_ReportFailureIsWarning(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"chapterA/code/ok.sh": "exit 0\n",
		"out":                 "a file where the report directory should be\n",
	})
	out, stdout, stderr := newTestWriter()

	code := execute(context.Background(), shConfig(t, "report:\n  path: out/report.json\n"), root, out)

	if code != 0 {
		t.Errorf("exit code = %d, want 0: a report failure must not fail the run", code)
	}
	if !strings.Contains(stderr.String(), "warning: report not written: create report directory") {
		t.Errorf("stderr = %q, want a report warning", stderr.String())
	}
	if strings.Contains(stdout.String(), "Report written") {
		t.Errorf("stdout claims the report was written:\n%s", stdout)
	}
}
