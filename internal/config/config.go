package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/coursekit/validate-examples/internal/schema"
)

// embeddedConfig is the compiled-in harness configuration.
//
//go:embed defaults.yaml
var embeddedConfig []byte

// Default returns the compiled-in configuration and any warnings about it.
func Default() (*Config, []string, error) {
	return Parse(embeddedConfig)
}

// Parse decodes a YAML harness document, validates it against the embedded
// schema, applies defaults, and runs semantic validation.
// Unknown fields are reported as warnings rather than errors.
func Parse(data []byte) (*Config, []string, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse harness config: %w", err)
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert harness config: %w", err)
	}
	if err := schema.ValidateHarness(doc); err != nil {
		return nil, nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode harness config: %w", err)
	}

	warnings := detectUnknownFields(raw)

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, warnings, err
	}

	return &cfg, warnings, nil
}
