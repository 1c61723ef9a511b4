// Package mocks provides shared test doubles for validate-examples packages.
package mocks

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coursekit/validate-examples/internal/model"
	"github.com/coursekit/validate-examples/internal/policy"
)

// Call records one Execute invocation.
type Call struct {
	File   string
	Policy policy.Policy
}

// Engine implements runner.Executor for testing.
// Use NewEngine() to create instances with a fluent builder API.
type Engine struct {
	outcomes map[string]model.Outcome
	details  map[string]string
	duration time.Duration

	// ExecFunc is called by Execute when set, replacing the canned outcome.
	ExecFunc func(ctx context.Context, file string, p policy.Policy) model.Result

	execCount int32
	mu        sync.Mutex
	calls     []Call
}

// NewEngine creates a mock engine where every file succeeds.
func NewEngine() *Engine {
	return &Engine{
		outcomes: make(map[string]model.Outcome),
		details:  make(map[string]string),
		duration: 10 * time.Millisecond,
	}
}

// WithOutcome sets the outcome and diagnostic detail for one file.
func (m *Engine) WithOutcome(file string, o model.Outcome, detail string) *Engine {
	m.outcomes[file] = o
	m.details[file] = detail
	return m
}

// WithDuration sets the duration reported for every file.
func (m *Engine) WithDuration(d time.Duration) *Engine {
	m.duration = d
	return m
}

// WithExecFunc sets the function called by Execute.
func (m *Engine) WithExecFunc(fn func(ctx context.Context, file string, p policy.Policy) model.Result) *Engine {
	m.ExecFunc = fn
	return m
}

// Execute records the call and returns the configured result.
func (m *Engine) Execute(ctx context.Context, file string, p policy.Policy) model.Result {
	atomic.AddInt32(&m.execCount, 1)
	m.mu.Lock()
	m.calls = append(m.calls, Call{File: file, Policy: p})
	m.mu.Unlock()

	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, file, p)
	}

	res := model.Result{
		File:     file,
		Outcome:  m.outcomes[file],
		Duration: m.duration,
		Timeout:  p.Timeout,
		ExitCode: 0,
	}
	switch res.Outcome {
	case model.Failure:
		res.ExitCode = 1
		res.Detail = m.details[file]
	case model.TimedOut:
		res.ExitCode = -1
		res.Detail = m.details[file]
	}
	return res
}

// Test inspection methods

// ExecCount returns the number of times Execute was called.
func (m *Engine) ExecCount() int32 {
	return atomic.LoadInt32(&m.execCount)
}

// Calls returns the recorded invocations in order.
func (m *Engine) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]Call, len(m.calls))
	copy(result, m.calls)
	return result
}

// Reset clears execution tracking state.
func (m *Engine) Reset() {
	atomic.StoreInt32(&m.execCount, 0)
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}
