package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/coursekit/validate-examples/internal/model"
)

// Summarize folds results into a summary. It has no side effects.
// SuccessRate is rounded half away from zero to one decimal and is 0 for an
// empty run.
func Summarize(results []model.Result) model.Summary {
	s := model.Summary{Total: len(results)}
	for _, res := range results {
		s.Duration += res.Duration
		if !res.Outcome.Failed() {
			s.Passed++
			continue
		}
		s.Failed++
		if res.Outcome == model.TimedOut {
			s.TimedOut++
		}
		s.Failures = append(s.Failures, res)
	}
	if s.Total > 0 {
		s.SuccessRate = math.Round(1000*float64(s.Passed)/float64(s.Total)) / 10
	}
	return s
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
