package cli

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/coursekit/validate-examples/internal/config"
	"github.com/coursekit/validate-examples/internal/course"
	"github.com/coursekit/validate-examples/internal/discovery"
	"github.com/coursekit/validate-examples/internal/errors"
	"github.com/coursekit/validate-examples/internal/output"
	"github.com/coursekit/validate-examples/internal/policy"
	"github.com/coursekit/validate-examples/internal/report"
	"github.com/coursekit/validate-examples/internal/runner"
)

// plan is the discovered and classified work for one invocation.
type plan struct {
	course   *course.Course
	files    []string
	registry *policy.Registry
	warnings []string
}

// prepare resolves chapters, discovers example files and builds the
// classification registry. Problems that leave the run usable are returned
// as warnings.
func prepare(cfg *config.Config, root string) (*plan, error) {
	c, err := course.Load(root, cfg)
	if err != nil {
		return nil, errors.Discovery(root, err)
	}

	found := discovery.Discover(root, c.Roots(), discovery.Options{
		Extensions: cfg.Discovery.Extensions,
		Ignore:     cfg.Discovery.Ignore,
		Exclude:    cfg.Discovery.Exclude,
		SkipDirs:   cfg.Discovery.SkipDirs,
	})

	p := &plan{
		course:   c,
		files:    found.Files,
		registry: policy.FromConfig(cfg),
		warnings: found.Warnings,
	}

	if hint := course.InterpreterHint(c.Manifest, cfg.Execution.Interpreter); hint != "" {
		p.warnings = append(p.warnings, hint)
	}

	shared := p.registry.SharedNames(p.files)
	names := make([]string, 0, len(shared))
	for name := range shared {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.warnings = append(p.warnings,
			"registry entry "+name+" classifies several files: "+strings.Join(shared[name], ", "))
	}
	return p, nil
}

// execute runs every discovered example and returns the process exit code.
func execute(ctx context.Context, cfg *config.Config, root string, out *output.Writer) int {
	started := time.Now()

	p, err := prepare(cfg, root)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, w := range p.warnings {
		out.Warning("%s", w)
	}
	if len(p.files) == 0 {
		out.Warning("no example files found under %s", root)
	}

	engine := runner.NewEngine(runner.EngineOptions{
		Dir:          root,
		Interpreter:  cfg.Execution.Interpreter,
		Env:          cfg.Execution.Env,
		CaptureBytes: cfg.Execution.CaptureBytes,
	})
	results := runner.New(engine, p.registry, out).Run(ctx, p.files)

	if ctx.Err() != nil {
		out.ErrorPrefix("interrupted after %d of %d examples", len(results), len(p.files))
		return errors.ExitFailure
	}

	summary := runner.Summarize(results)
	runner.PrintSummary(summary, out, cfg.Execution.ExcerptLines)

	if cfg.Report.Path != "" {
		path := cfg.Report.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		run := report.NewRun(root, started)
		run.Results = results
		run.Summary = summary
		run.Warnings = p.warnings
		if err := report.Write(path, run); err != nil {
			out.Warning("%v", errors.Wrap(err, "report not written"))
		} else {
			out.Info("Report written to %s", path)
		}
	}

	return summary.ExitCode()
}

// list prints the examples that would run with their classification, without
// executing anything.
func list(cfg *config.Config, root string, out *output.Writer) int {
	p, err := prepare(cfg, root)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, w := range p.warnings {
		out.Warning("%s", w)
	}

	out.DryRunStart()
	if m := p.course.Manifest; m != nil && m.Name != "" {
		out.Println("Course: %s", m.Name)
	}
	out.Println("Course root: %s", root)
	out.Println("Examples: %d", len(p.files))
	out.Println("")
	for _, f := range p.files {
		pol := p.registry.Classify(f)
		out.ListEntry(f, append(pol.Tags(), pol.Timeout.String()))
	}
	out.DryRunEnd()
	return errors.ExitSuccess
}
