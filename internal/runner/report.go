package runner

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/coursekit/validate-examples/internal/model"
	"github.com/coursekit/validate-examples/internal/output"
)

// PrintSummary renders the totals and, when there are failures, each failing
// file with the first excerptLines lines of its diagnostic. It never decides
// the exit code.
func PrintSummary(s model.Summary, out *output.Writer, excerptLines int) {
	out.SummaryHeader("Example Validation Summary")

	out.SummaryItem("Total", fmt.Sprintf("%d", s.Total))
	out.SummaryPassed("Passed", fmt.Sprintf("%d", s.Passed))
	if s.Failed > 0 {
		out.SummaryFailed("Failed", fmt.Sprintf("%d", s.Failed))
	} else {
		out.SummaryItem("Failed", "0")
	}
	if s.TimedOut > 0 {
		out.SummaryFailed("Timed out", fmt.Sprintf("%d", s.TimedOut))
	}
	out.SummaryItem("Success rate", fmt.Sprintf("%.1f%%", s.SuccessRate))
	out.SummaryItem("Duration", FormatDuration(s.Duration))

	if len(s.Failures) > 0 {
		out.SummarySectionLabel("Failures:")
		for _, f := range s.Failures {
			out.FailureEntry(f.File)
			printExcerpt(out, f.Detail, excerptLines)
			if f.Truncated() {
				out.FailureDetail(fmt.Sprintf("(output truncated: %s stdout, %s stderr captured in total)",
					humanize.Bytes(uint64(f.StdoutBytes)), humanize.Bytes(uint64(f.StderrBytes))))
			}
		}
	}

	if s.Failed == 0 {
		out.FinalSuccess("All %d examples passed.", s.Total)
	} else {
		out.FinalFailure("%d of %d examples failed.", s.Failed, s.Total)
	}
}

func printExcerpt(out *output.Writer, detail string, maxLines int) {
	lines := strings.Split(strings.TrimRight(detail, "\n"), "\n")
	shown := lines
	if maxLines > 0 && len(lines) > maxLines {
		shown = lines[:maxLines]
	}
	for _, line := range shown {
		out.FailureDetail(strings.TrimRight(line, " \t\r"))
	}
	if rest := len(lines) - len(shown); rest > 0 {
		out.FailureDetail(fmt.Sprintf("... %d more lines", rest))
	}
}
