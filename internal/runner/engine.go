package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coursekit/validate-examples/internal/model"
	"github.com/coursekit/validate-examples/internal/policy"
)

// waitDelay bounds how long Wait keeps reading output after the child exits
// or is killed, in case a grandchild still holds the pipes open.
const waitDelay = 2 * time.Second

// EngineOptions configures how example processes are launched.
type EngineOptions struct {
	Dir          string            // working directory, normally the course root
	Interpreter  []string          // argv prefix; the file path is appended
	Env          map[string]string // added to the inherited environment
	CaptureBytes int               // tail kept per output stream
}

// Engine runs one example file per call.
// Calls are independent; the engine holds no per-run state.
type Engine struct {
	opts    EngineOptions
	environ []string
}

// NewEngine creates an engine. The parent environment is snapshotted here.
func NewEngine(opts EngineOptions) *Engine {
	keys := make([]string, 0, len(opts.Env))
	for k := range opts.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	environ := os.Environ()
	for _, k := range keys {
		environ = append(environ, k+"="+opts.Env[k])
	}
	return &Engine{opts: opts, environ: environ}
}

// Execute runs file to completion or until p.Timeout elapses and returns
// exactly one result.
//
// Scripted input, when present, is written to the child's stdin and the pipe
// is then closed. Otherwise stdin stays open and empty, so a program that
// waits for input blocks until it is killed on timeout.
//
// Cancelling ctx kills the child as well; the result is then a failure
// marked as interrupted.
func (e *Engine) Execute(ctx context.Context, file string, p policy.Policy) model.Result {
	res := model.Result{
		File:     file,
		Timeout:  p.Timeout,
		ExitCode: -1,
		Started:  time.Now(),
	}

	if len(e.opts.Interpreter) == 0 {
		res.Outcome = model.Failure
		res.Detail = "no interpreter configured"
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	args := append(append([]string(nil), e.opts.Interpreter[1:]...), file)
	cmd := exec.CommandContext(runCtx, e.opts.Interpreter[0], args...)
	cmd.Dir = e.opts.Dir
	cmd.Env = e.environ
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	stdout := newTailBuffer(e.opts.CaptureBytes)
	stderr := newTailBuffer(e.opts.CaptureBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		res.Outcome = model.Failure
		res.Detail = fmt.Sprintf("stdin pipe: %v", err)
		return res
	}

	if err := cmd.Start(); err != nil {
		res.Duration = time.Since(res.Started)
		res.Outcome = model.Failure
		res.Detail = err.Error()
		return res
	}

	var g errgroup.Group
	if p.Interactive {
		g.Go(func() error {
			defer func() { _ = stdin.Close() }()
			if _, err := io.WriteString(stdin, p.Input); err != nil && !isBrokenPipe(err) {
				return fmt.Errorf("write scripted input: %w", err)
			}
			return nil
		})
	}

	var waitErr error
	g.Go(func() error {
		waitErr = cmd.Wait()
		return nil
	})
	feedErr := g.Wait()

	res.Duration = time.Since(res.Started)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	res.StdoutBytes = stdout.Total()
	res.StderrBytes = stderr.Total()
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	exited := cmd.ProcessState != nil && cmd.ProcessState.Success()
	switch {
	case exited && (waitErr == nil || errors.Is(waitErr, exec.ErrWaitDelay)):
		res.Outcome = model.Success
	case ctx.Err() != nil:
		res.Outcome = model.Failure
		res.Detail = "interrupted"
	case cmd.ProcessState != nil && cmd.ProcessState.Exited():
		// The child exited on its own; a descendant holding the output
		// pipes past the deadline does not make it a timeout.
		res.Outcome = model.Failure
		res.Detail = failureDetail(res, waitErr)
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Outcome = model.TimedOut
		res.Detail = fmt.Sprintf("timed out after %s", p.Timeout)
	default:
		res.Outcome = model.Failure
		res.Detail = failureDetail(res, waitErr)
	}

	if res.Outcome.Failed() && feedErr != nil {
		res.Detail += "\n" + feedErr.Error()
	}
	return res
}

// failureDetail prefers what the example printed to stderr.
func failureDetail(res model.Result, waitErr error) string {
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return msg
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ExitCode() >= 0 {
		return fmt.Sprintf("exit code %d", exitErr.ExitCode())
	}
	if waitErr != nil {
		return waitErr.Error()
	}
	return fmt.Sprintf("exit code %d", res.ExitCode)
}
