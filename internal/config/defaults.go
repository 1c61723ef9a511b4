package config

import (
	"time"

	"github.com/coursekit/validate-examples/pkg/harness"
)

// Default configuration values.
const (
	DefaultCourseMarker   = "package.json"
	DefaultChapterPattern = `^[0-9]{2}-`
	DefaultExtension      = ".ts"
	DefaultTimeout        = 30 * time.Second
	DefaultSlowTimeout    = 120 * time.Second
	DefaultCaptureBytes   = 64 << 10
	DefaultExcerptLines   = 5
)

// DefaultFolders are the per-chapter subfolders scanned for examples.
var DefaultFolders = []string{"code", "solution"}

// DefaultInterpreter runs one TypeScript file.
var DefaultInterpreter = []string{"npx", "tsx"}

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{"node_modules"}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyCourseDefaults(cfg)
	applyDiscoveryDefaults(cfg)
	applyExecutionDefaults(cfg)
}

func applyCourseDefaults(cfg *Config) {
	if cfg.Course.Marker == "" {
		cfg.Course.Marker = DefaultCourseMarker
	}
}

func applyDiscoveryDefaults(cfg *Config) {
	d := &cfg.Discovery
	if d.ChapterPattern == "" {
		d.ChapterPattern = DefaultChapterPattern
	}
	if len(d.Folders) == 0 {
		d.Folders = append([]string(nil), DefaultFolders...)
	}
	if len(d.Extensions) == 0 {
		d.Extensions = []string{DefaultExtension}
	}
	if d.SkipDirs == nil {
		d.SkipDirs = append([]string(nil), DefaultSkipDirs...)
	}
}

func applyExecutionDefaults(cfg *Config) {
	e := &cfg.Execution
	if len(e.Interpreter) == 0 {
		e.Interpreter = append([]string(nil), DefaultInterpreter...)
	}
	if e.Timeout == 0 {
		e.Timeout = DefaultTimeout
	}
	if e.SlowTimeout == 0 {
		e.SlowTimeout = DefaultSlowTimeout
	}
	if e.CaptureBytes == 0 {
		e.CaptureBytes = DefaultCaptureBytes
	}
	if e.ExcerptLines == 0 {
		e.ExcerptLines = DefaultExcerptLines
	}
	if e.Env == nil {
		e.Env = make(map[string]string)
	}
	if _, ok := e.Env[harness.AutomationEnvVar]; !ok {
		e.Env[harness.AutomationEnvVar] = "true"
	}
}
