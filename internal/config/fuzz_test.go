package config

import "testing"

// FuzzParse checks that Parse never panics and that an accepted document
// always passes semantic validation.
// Run: go test -fuzz=FuzzParse -fuzztime=30s ./internal/config
func FuzzParse(f *testing.F) {
	seeds := []string{
		minimalDoc,
		``,
		`null`,
		`[]`,
		`"string"`,
		`123`,
		"discovery: {}\nexecution:\n  timeout: 1s\n  slow_timeout: 2s",
		"discovery: {}\nexecution: {}\nexamples:\n  - name: a.ts\n    input: \"q\\n\"",
		"discovery:\n  chapter_pattern: \"([\"\nexecution: {}",
		"discovery: {}\nexecution:\n  env:\n    A: 1",
		"discovery: {}\nexecution: {}\nextra:\n  nested: [1, 2, {a: b}]",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, _, err := Parse(data)
		if err != nil {
			return
		}
		if cfg == nil {
			t.Fatal("Parse() returned nil config without error")
		}
		if verr := Validate(cfg); verr != nil {
			t.Errorf("accepted config fails Validate(): %v", verr)
		}
	})
}
