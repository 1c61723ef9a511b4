// Package course locates the course root and resolves the chapter directories
// that hold runnable examples.
package course

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCourseRoot is returned when no directory up to the filesystem root
// contains the course marker file.
var ErrNoCourseRoot = errors.New("course root not found (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds marker.
func FindRoot(marker string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd, marker)
}

// FindRootFrom walks up from startDir until it finds a directory containing marker.
func FindRootFrom(startDir, marker string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", marker, ErrNoCourseRoot)
		}
		dir = parent
	}
}
