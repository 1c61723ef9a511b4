package course

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest is the subset of the course's package.json the harness reads.
type Manifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ReadManifest loads package.json from root. It returns nil when the file is
// missing or malformed; the manifest is only used for hints.
func ReadManifest(root string) *Manifest {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return &m
}

// Declares reports whether pkg is a runtime or development dependency.
func (m *Manifest) Declares(pkg string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[pkg]; ok {
		return true
	}
	_, ok := m.DevDependencies[pkg]
	return ok
}

// InterpreterHint returns a warning when the interpreter is run through npx
// but the package it names is not declared by the course, in which case npx
// may download it on every run. It returns "" otherwise.
func InterpreterHint(m *Manifest, interpreter []string) string {
	if m == nil || len(interpreter) < 2 || filepath.Base(interpreter[0]) != "npx" {
		return ""
	}
	pkg := interpreter[1]
	if m.Declares(pkg) {
		return ""
	}
	return pkg + " is not declared in package.json; npx may fetch it for every example"
}
