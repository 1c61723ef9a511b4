// Package cli provides the command-line interface for validate-examples.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/coursekit/validate-examples/internal/config"
	"github.com/coursekit/validate-examples/internal/course"
	"github.com/coursekit/validate-examples/internal/errors"
	"github.com/coursekit/validate-examples/internal/output"
)

// Version is set at build time.
var Version = "dev"

// options holds the parsed command line.
type options struct {
	Help    bool
	Version bool
	List    bool
}

// parseArgs parses the command line. The harness is normally run without
// arguments; everything it needs is compiled in.
func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			opts.Help = true
		case "--version":
			opts.Version = true
		case "--list":
			opts.List = true
		default:
			return nil, fmt.Errorf("unexpected argument %q (run with --help for usage)", arg)
		}
	}
	return opts, nil
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return runWith(args, output.New())
}

func runWith(args []string, out *output.Writer) int {
	return guard(out, func() int { return run(args, out) })
}

// guard turns a panic in fn into a reported internal error and exit code 1.
func guard(out *output.Writer, fn func() int) (code int) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf("internal error: %v", r)
			out.ErrorPrefix("%v", err)
			out.Errorln("%s", debug.Stack())
			code = errors.GetExitCode(err)
		}
	}()
	return fn()
}

func run(args []string, out *output.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}
	if opts.Help {
		printUsage(out)
		return errors.ExitSuccess
	}
	if opts.Version {
		out.Println("validate-examples %s", Version)
		return errors.ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, root, err := setup(out, os.LookupEnv)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if opts.List {
		return list(cfg, root, out)
	}
	return execute(ctx, cfg, root, out)
}

// setup loads the compiled-in configuration, applies environment overrides
// and locates the course root from the working directory.
func setup(out *output.Writer, lookup func(string) (string, bool)) (*config.Config, string, error) {
	cfg, warnings, err := config.Default()
	if err != nil {
		return nil, "", errors.Config("invalid built-in configuration", err)
	}
	warnings = append(warnings, config.ApplyEnv(cfg, lookup)...)
	for _, w := range warnings {
		out.Warning("%s", w)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Environment("cannot determine working directory", err)
	}
	root, err := course.FindRootFrom(cwd, cfg.Course.Marker)
	if err != nil {
		return nil, "", errors.Environment("cannot locate course root", err)
	}
	return cfg, root, nil
}
