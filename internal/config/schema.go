// Package config provides loading and validation of the compiled-in harness configuration.
package config

import "time"

// Config represents the complete harness configuration document.
type Config struct {
	Course    CourseConfig    `yaml:"course"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Execution ExecutionConfig `yaml:"execution"`
	Report    ReportConfig    `yaml:"report"`
	Examples  []ExampleConfig `yaml:"examples"`
}

// CourseConfig locates the course root.
type CourseConfig struct {
	Marker string `yaml:"marker"` // File whose presence marks the course root
}

// DiscoveryConfig controls which files are treated as runnable examples.
type DiscoveryConfig struct {
	// Chapters lists chapter directories in scan order. When empty, chapters
	// are discovered as top-level directories matching ChapterPattern.
	Chapters       []string `yaml:"chapters"`
	ChapterPattern string   `yaml:"chapter_pattern"`
	Folders        []string `yaml:"folders"`    // Subfolders scanned inside each chapter
	Extensions     []string `yaml:"extensions"` // e.g. ".ts"
	Ignore         []string `yaml:"ignore"`     // Base-name globs never treated as examples
	Exclude        []string `yaml:"exclude"`    // Paths relative to the course root, e.g. the harness entry point
	SkipDirs       []string `yaml:"skip_dirs"`  // Directory names never descended into
}

// ExecutionConfig controls how each example is run.
type ExecutionConfig struct {
	Interpreter  []string          `yaml:"interpreter"` // argv prefix; the example path is appended
	Timeout      time.Duration     `yaml:"timeout"`
	SlowTimeout  time.Duration     `yaml:"slow_timeout"`
	CaptureBytes int               `yaml:"capture_bytes"` // Tail kept per output stream
	ExcerptLines int               `yaml:"excerpt_lines"` // Diagnostic lines shown per failure
	Env          map[string]string `yaml:"env"`
}

// ReportConfig configures the optional JSON run report.
type ReportConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ExampleConfig is one classification registry entry.
// An entry is interactive when Input is set.
type ExampleConfig struct {
	Name  string  `yaml:"name"`
	Slow  bool    `yaml:"slow,omitempty"`
	Input *string `yaml:"input,omitempty"`
}

// Interactive reports whether the entry carries scripted input.
func (e ExampleConfig) Interactive() bool {
	return e.Input != nil
}
