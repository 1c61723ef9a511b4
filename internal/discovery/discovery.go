// Package discovery collects runnable example files from a list of root directories.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Options controls which files are treated as examples.
type Options struct {
	Extensions []string // e.g. ".ts"
	Ignore     []string // base-name globs, e.g. "*.d.ts"
	Exclude    []string // slash-separated paths relative to base, excluded by base name anywhere
	SkipDirs   []string // directory names never descended into
}

// Result is the outcome of one discovery pass.
type Result struct {
	Files    []string // paths relative to base, in discovery order
	Warnings []string
}

// Discover walks each root under base in the order given and returns the
// concatenated list of example files. Every directory is read in lexical
// order, so the same tree always yields the same list.
//
// A missing or unreadable directory contributes a warning and zero files;
// Discover never fails.
func Discover(base string, roots []string, opts Options) Result {
	var res Result
	seen := make(map[string]bool)

	// An excluded file is matched by name wherever it appears, so a copy
	// inside a scanned root is still excluded.
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, e := range opts.Exclude {
		excluded[path.Base(filepath.ToSlash(e))] = true
	}

	for _, root := range roots {
		dir := filepath.Join(base, root)
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Warnings = append(res.Warnings, fmt.Sprintf("directory not found: %s (skipped)", root))
			continue
		case err != nil:
			res.Warnings = append(res.Warnings, fmt.Sprintf("cannot access %s: %v (skipped)", root, err))
			continue
		case !info.IsDir():
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s is not a directory (skipped)", root))
			continue
		}

		walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			rel, relErr := filepath.Rel(base, p)
			if relErr != nil {
				rel = p
			}
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("cannot read %s: %v (skipped)", rel, err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if p != dir && skipDir(d.Name(), opts.SkipDirs) {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
				return nil
			}
			if !hasExtension(d.Name(), opts.Extensions) || ignored(d.Name(), opts.Ignore) {
				return nil
			}
			if excluded[d.Name()] || seen[rel] {
				return nil
			}

			seen[rel] = true
			res.Files = append(res.Files, rel)
			return nil
		})
		if walkErr != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("cannot scan %s: %v", root, walkErr))
		}
	}

	return res
}

func skipDir(name string, skip []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, s := range skip {
		if name == s {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func ignored(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}
