// Package errors provides structured error types and exit codes for the harness.
package errors

import (
	"fmt"
)

// Exit codes. CI only distinguishes zero from nonzero, so every harness-level
// error maps to ExitFailure.
const (
	ExitSuccess = 0 // All discovered examples passed
	ExitFailure = 1 // An example failed or timed out, or the harness itself failed
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindDiscovery
	KindEnvironment
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDiscovery:
		return "discovery"
	case KindEnvironment:
		return "environment"
	default:
		return "runtime"
	}
}

// HarnessError is the base error type for the harness.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	File    string // Example file if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	return ExitFailure
}

// New creates a new runtime error.
func New(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *HarnessError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
		Cause:   cause,
	}
}

// Environment creates a new environment error.
func Environment(message string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindEnvironment,
		Message: message,
		Cause:   cause,
	}
}

// Discovery creates an error for a directory that could not be scanned.
func Discovery(path string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindDiscovery,
		Message: "cannot scan directory",
		File:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if he, ok := err.(*HarnessError); ok {
		return he.ExitCode()
	}
	return ExitFailure
}
