// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// bannerWidth is the width of the separator lines around the run summary.
const bannerWidth = 60

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: colorEnabled(os.Stdout, os.Getenv),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an informational message to stdout.
func (w *Writer) Info(format string, args ...interface{}) {
	w.Println(format, args...)
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with the tool prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%svalidate-examples:%s %s", red, reset, msg)
	} else {
		w.Errorln("validate-examples: %s", msg)
	}
}

// ProgressStart prints the "[i/N] path... " prefix of a progress line.
// The line is completed by ProgressPass, ProgressFail or ProgressTimeout.
func (w *Writer) ProgressStart(index, total int, path string) {
	if w.color {
		w.Print("%s[%d/%d]%s %s... ", dim, index, total, reset, path)
	} else {
		w.Print("[%d/%d] %s... ", index, total, path)
	}
}

// ProgressPass completes a progress line for a passing file.
func (w *Writer) ProgressPass(label, duration string) {
	if w.color {
		w.Println("%s✓%s %s%s%s", green, reset, dim, duration, reset)
	} else {
		w.Println("%s (%s)", label, duration)
	}
}

// ProgressFail completes a progress line for a failing file.
// excerpt is a single line of diagnostic text and may be empty.
func (w *Writer) ProgressFail(label, duration, excerpt string) {
	if w.color {
		w.Print("%s✗%s %s%s%s", red, reset, dim, duration, reset)
		if excerpt != "" {
			w.Print("  %s%s%s", red, excerpt, reset)
		}
	} else {
		w.Print("%s (%s)", label, duration)
		if excerpt != "" {
			w.Print("  %s", excerpt)
		}
	}
	w.Print("\n")
}

// ProgressTimeout completes a progress line for a file that was killed on timeout.
func (w *Writer) ProgressTimeout(label, timeout string) {
	if w.color {
		w.Println("%s⏱ %s%s after %s", yellow, label, reset, timeout)
	} else {
		w.Println("%s after %s", label, timeout)
	}
}

// Banner prints a fixed-width separator line.
func (w *Writer) Banner() {
	line := strings.Repeat("=", bannerWidth)
	if w.color {
		w.Println("%s%s%s", dim, line, reset)
	} else {
		w.Println("%s", line)
	}
}

// SummaryHeader prints a summary section header framed by banners.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	w.Banner()
	if w.color {
		w.Println("%s%s%s", bold+cyan, title, reset)
	} else {
		w.Println("%s", title)
	}
	w.Banner()
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	if w.color {
		w.Println("  %s%-14s%s %s", dim, label+":", reset, value)
	} else {
		w.Println("  %-14s %s", label+":", value)
	}
}

// SummaryPassed prints a passed/success items summary.
func (w *Writer) SummaryPassed(label, value string) {
	if w.color {
		w.Println("  %s%-14s%s %s%s%s", dim, label+":", reset, green, value, reset)
	} else {
		w.SummaryItem(label, value)
	}
}

// SummaryFailed prints a failed items summary.
func (w *Writer) SummaryFailed(label, value string) {
	if w.color {
		w.Println("  %s%-14s%s %s%s%s", dim, label+":", reset, red, value, reset)
	} else {
		w.SummaryItem(label, value)
	}
}

// SummarySectionLabel prints a label for a summary section (e.g., "Failures:").
func (w *Writer) SummarySectionLabel(label string) {
	w.Println("")
	if w.color {
		w.Println("%s%s%s", bold, label, reset)
	} else {
		w.Println("%s", label)
	}
}

// FailureEntry prints the path of a failing file inside the failures section.
func (w *Writer) FailureEntry(path string) {
	if w.color {
		w.Println("  %s✗%s %s", red, reset, path)
	} else {
		w.Println("  x %s", path)
	}
}

// FailureDetail prints one indented diagnostic line under a FailureEntry.
func (w *Writer) FailureDetail(line string) {
	if w.color {
		w.Println("      %s%s%s", dim, line, reset)
	} else {
		w.Println("      %s", line)
	}
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", green, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", red, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// DryRunStart prints the dry run header.
func (w *Writer) DryRunStart() {
	w.Println("")
	if w.color {
		w.Println("%s=== DRY RUN ===%s", bold+yellow, reset)
	} else {
		w.Println("=== DRY RUN ===")
	}
	w.Println("")
}

// DryRunEnd prints the dry run footer.
func (w *Writer) DryRunEnd() {
	w.Println("")
	if w.color {
		w.Println("%s=== END DRY RUN ===%s", bold+yellow, reset)
	} else {
		w.Println("=== END DRY RUN ===")
	}
}

// ListEntry prints a discovered file with its classification tags.
func (w *Writer) ListEntry(path string, tags []string) {
	if len(tags) == 0 {
		w.Println("  %s", path)
		return
	}
	joined := strings.Join(tags, ", ")
	if w.color {
		w.Println("  %s %s[%s]%s", path, yellow, joined, reset)
	} else {
		w.Println("  %s [%s]", path, joined)
	}
}

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	if w.color {
		w.Println("%s%s%s", bold+cyan, title, reset)
	} else {
		w.Println("%s", title)
	}
}

// HelpSection formats a section header (e.g., "Usage:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	if w.color {
		w.Println("%s%s%s", bold+yellow, title, reset)
	} else {
		w.Println("%s", title)
	}
}

// HelpUsage formats a usage line.
func (w *Writer) HelpUsage(usage string) {
	w.Println("  %s", usage)
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	if w.color {
		w.Println("  %s%-*s%s  %s%s%s", yellow, width, name, reset, dim, description, reset)
	} else {
		w.Println("  %-*s  %s", width, name, description)
	}
}

// HelpEnvVar formats an environment variable.
func (w *Writer) HelpEnvVar(name, description string, width int) {
	if w.color {
		w.Println("  %s%-*s%s  %s%s%s", yellow, width, name, reset, dim, description, reset)
	} else {
		w.Println("  %-*s  %s", width, name, description)
	}
}

// colorEnabled reports whether ANSI colors should be used for f.
// NO_COLOR (https://no-color.org) disables color regardless of the terminal.
func colorEnabled(f *os.File, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)
