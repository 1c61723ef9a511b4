// Package policy classifies example files as slow and/or interactive from a
// declarative registry keyed by file name.
package policy

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/coursekit/validate-examples/internal/config"
)

// Entry registers one example file name.
type Entry struct {
	Name        string
	Slow        bool
	Interactive bool
	Input       string // scripted stdin, used when Interactive
}

// Timeouts holds the standard and extended execution bounds.
type Timeouts struct {
	Standard time.Duration
	Slow     time.Duration
}

// Policy is the resolved execution policy for one file.
type Policy struct {
	Timeout     time.Duration
	Slow        bool
	Interactive bool
	Input       string
}

// Tags returns the classification tags in display order.
func (p Policy) Tags() []string {
	var tags []string
	if p.Slow {
		tags = append(tags, "slow")
	}
	if p.Interactive {
		tags = append(tags, "interactive")
	}
	if len(tags) == 0 {
		tags = append(tags, "standard")
	}
	return tags
}

// Registry answers classification queries. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	entries  []Entry
	timeouts Timeouts
}

// NewRegistry builds a registry. Entries are matched longest name first.
func NewRegistry(entries []Entry, timeouts Timeouts) *Registry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})
	return &Registry{entries: sorted, timeouts: timeouts}
}

// FromConfig builds a registry from the configured examples and timeouts.
func FromConfig(cfg *config.Config) *Registry {
	entries := make([]Entry, 0, len(cfg.Examples))
	for _, ex := range cfg.Examples {
		e := Entry{Name: ex.Name, Slow: ex.Slow, Interactive: ex.Interactive()}
		if ex.Input != nil {
			e.Input = *ex.Input
		}
		entries = append(entries, e)
	}
	return NewRegistry(entries, Timeouts{
		Standard: cfg.Execution.Timeout,
		Slow:     cfg.Execution.SlowTimeout,
	})
}

// lookup returns the entry whose name is the longest suffix of the file's
// base name. Only the name is consulted, never the directory.
func (r *Registry) lookup(path string) (Entry, bool) {
	base := filepath.Base(filepath.FromSlash(path))
	for _, e := range r.entries {
		if strings.HasSuffix(base, e.Name) {
			return e, true
		}
	}
	return Entry{}, false
}

// IsInteractive reports whether the file needs scripted input.
func (r *Registry) IsInteractive(path string) bool {
	e, ok := r.lookup(path)
	return ok && e.Interactive
}

// IsSlow reports whether the file gets the extended timeout.
func (r *Registry) IsSlow(path string) bool {
	e, ok := r.lookup(path)
	return ok && e.Slow
}

// Input returns the scripted stdin for an interactive file.
func (r *Registry) Input(path string) (string, bool) {
	e, ok := r.lookup(path)
	if !ok || !e.Interactive {
		return "", false
	}
	return e.Input, true
}

// Classify resolves the execution policy for a file. Slow selects the slow
// timeout regardless of interactivity.
func (r *Registry) Classify(path string) Policy {
	e, ok := r.lookup(path)
	if !ok {
		return Policy{Timeout: r.timeouts.Standard}
	}
	p := Policy{
		Timeout:     r.timeouts.Standard,
		Slow:        e.Slow,
		Interactive: e.Interactive,
	}
	if e.Slow {
		p.Timeout = r.timeouts.Slow
	}
	if e.Interactive {
		p.Input = e.Input
	}
	return p
}

// SharedNames returns registry names matched by more than one of files,
// mapped to the matching paths in the order given. Such files share one
// classification even if they behave differently.
func (r *Registry) SharedNames(files []string) map[string][]string {
	matches := make(map[string][]string)
	for _, f := range files {
		if e, ok := r.lookup(f); ok {
			matches[e.Name] = append(matches[e.Name], f)
		}
	}
	for name, paths := range matches {
		if len(paths) < 2 {
			delete(matches, name)
		}
	}
	return matches
}
