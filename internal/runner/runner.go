// Package runner executes example files one at a time and aggregates their results.
package runner

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coursekit/validate-examples/internal/model"
	"github.com/coursekit/validate-examples/internal/output"
	"github.com/coursekit/validate-examples/internal/policy"
)

// Executor runs a single example file.
type Executor interface {
	Execute(ctx context.Context, file string, p policy.Policy) model.Result
}

// Classifier resolves the execution policy for a file.
type Classifier interface {
	Classify(path string) policy.Policy
}

// Runner drives an Executor across a list of files, strictly sequentially.
// Examples call a rate-limited external service, so they never overlap.
type Runner struct {
	engine     Executor
	classifier Classifier
	out        *output.Writer
	title      cases.Caser
}

// New creates a Runner. out receives progress lines.
func New(engine Executor, classifier Classifier, out *output.Writer) *Runner {
	return &Runner{
		engine:     engine,
		classifier: classifier,
		out:        out,
		title:      cases.Title(language.English),
	}
}

// Run executes files in order and returns one result per executed file, in
// the same order. Each file finishes before the next starts. Once ctx is done
// no further file is started and the results so far are returned.
func (r *Runner) Run(ctx context.Context, files []string) []model.Result {
	results := make([]model.Result, 0, len(files))
	for i, file := range files {
		if ctx.Err() != nil {
			break
		}

		p := r.classifier.Classify(file)
		r.out.ProgressStart(i+1, len(files), file)
		res := r.engine.Execute(ctx, file, p)
		r.progress(res)

		results = append(results, res)
	}
	return results
}

func (r *Runner) progress(res model.Result) {
	label := r.title.String(res.Outcome.String())
	switch res.Outcome {
	case model.Success:
		r.out.ProgressPass(label, FormatDuration(res.Duration))
	case model.TimedOut:
		r.out.ProgressTimeout(label, res.Timeout.String())
	default:
		r.out.ProgressFail(label, FormatDuration(res.Duration), firstLine(res.Detail))
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
