package config

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied for semantic errors.
func Validate(cfg *Config) error {
	if err := validateDiscovery(&cfg.Discovery); err != nil {
		return err
	}
	if err := validateExecution(&cfg.Execution); err != nil {
		return err
	}
	return validateExamples(cfg.Examples, cfg.Discovery.Extensions)
}

func validateDiscovery(d *DiscoveryConfig) error {
	if _, err := regexp.Compile(d.ChapterPattern); err != nil {
		return &ValidationError{
			Field:   "discovery.chapter_pattern",
			Message: fmt.Sprintf("invalid regular expression: %v", err),
		}
	}
	for i, ch := range d.Chapters {
		if ch == "" || strings.ContainsAny(ch, `/\`) || ch == "." || ch == ".." {
			return &ValidationError{
				Field:   fmt.Sprintf("discovery.chapters[%d]", i),
				Message: "must be a single directory name",
			}
		}
	}
	for i, f := range d.Folders {
		if f == "" || path.IsAbs(f) || strings.HasPrefix(path.Clean(f), "..") {
			return &ValidationError{
				Field:   fmt.Sprintf("discovery.folders[%d]", i),
				Message: "must be a relative path inside the chapter",
			}
		}
	}
	for i, pattern := range d.Ignore {
		if _, err := path.Match(pattern, ""); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("discovery.ignore[%d]", i),
				Message: fmt.Sprintf("invalid glob %q", pattern),
			}
		}
	}
	return nil
}

func validateExecution(e *ExecutionConfig) error {
	if len(e.Interpreter) == 0 || e.Interpreter[0] == "" {
		return &ValidationError{Field: "execution.interpreter", Message: "is required"}
	}
	if e.Timeout <= 0 {
		return &ValidationError{Field: "execution.timeout", Message: "must be positive"}
	}
	if e.SlowTimeout < e.Timeout {
		return &ValidationError{
			Field:   "execution.slow_timeout",
			Message: fmt.Sprintf("must not be shorter than execution.timeout (%s)", e.Timeout),
		}
	}
	if e.CaptureBytes < 0 {
		return &ValidationError{Field: "execution.capture_bytes", Message: "must not be negative"}
	}
	if e.ExcerptLines < 0 {
		return &ValidationError{Field: "execution.excerpt_lines", Message: "must not be negative"}
	}
	return nil
}

func validateExamples(examples []ExampleConfig, extensions []string) error {
	seen := make(map[string]int, len(examples))
	for i, ex := range examples {
		field := fmt.Sprintf("examples[%d]", i)
		if ex.Name == "" {
			return &ValidationError{Field: field + ".name", Message: "is required"}
		}
		if strings.ContainsAny(ex.Name, `/\`) {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("%q must be a file name, not a path", ex.Name),
			}
		}
		if !hasExtension(ex.Name, extensions) {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("%q does not end with a discovered extension %v", ex.Name, extensions),
			}
		}
		if prev, ok := seen[ex.Name]; ok {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("%q duplicates examples[%d]", ex.Name, prev),
			}
		}
		seen[ex.Name] = i
		if !ex.Slow && !ex.Interactive() {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q must be slow, interactive, or both", ex.Name),
			}
		}
		if ex.Interactive() && *ex.Input == "" {
			return &ValidationError{
				Field:   field + ".input",
				Message: "must not be empty for an interactive example",
			}
		}
	}
	return nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
