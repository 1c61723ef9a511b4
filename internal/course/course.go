package course

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/coursekit/validate-examples/internal/config"
)

// Course is a located course tree and its resolved chapters.
type Course struct {
	Root     string
	Chapters []string
	Folders  []string
	Manifest *Manifest // nil when package.json is missing or unreadable
}

// Load resolves the chapter list for the course at root.
// Configured chapters are used as given, in order. Otherwise chapters are the
// top-level directories whose names match the chapter pattern, in lexical order.
func Load(root string, cfg *config.Config) (*Course, error) {
	chapters := append([]string(nil), cfg.Discovery.Chapters...)
	if len(chapters) == 0 {
		found, err := DiscoverChapters(root, cfg.Discovery.ChapterPattern, cfg.Discovery.SkipDirs)
		if err != nil {
			return nil, err
		}
		chapters = found
	}

	return &Course{
		Root:     root,
		Chapters: chapters,
		Folders:  append([]string(nil), cfg.Discovery.Folders...),
		Manifest: ReadManifest(root),
	}, nil
}

// DiscoverChapters lists top-level directories of root matching pattern.
// Hidden directories and names in skip are never chapters.
func DiscoverChapters(root, pattern string, skip []string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid chapter pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var chapters []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || isSkipped(name, skip) {
			continue
		}
		if re.MatchString(name) {
			chapters = append(chapters, name)
		}
	}
	sort.Strings(chapters)
	return chapters, nil
}

// Roots returns every chapter/folder pair relative to the course root,
// chapter-major: ch1/code, ch1/solution, ch2/code, ...
func (c *Course) Roots() []string {
	roots := make([]string, 0, len(c.Chapters)*len(c.Folders))
	for _, ch := range c.Chapters {
		for _, folder := range c.Folders {
			roots = append(roots, filepath.Join(ch, filepath.FromSlash(folder)))
		}
	}
	return roots
}

func isSkipped(name string, skip []string) bool {
	for _, s := range skip {
		if name == s {
			return true
		}
	}
	return false
}
