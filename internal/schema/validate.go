// Package schema provides JSON schema validation for the harness configuration document.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/coursekit/validate-examples/schema"
)

const harnessSchemaFile = "harness.schema.json"

var (
	harnessSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(harnessSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("read harness schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal harness schema: %w", err)
			return
		}

		if err := compiler.AddResource(harnessSchemaFile, doc); err != nil {
			compileErr = fmt.Errorf("add harness schema resource: %w", err)
			return
		}

		harnessSchema, err = compiler.Compile(harnessSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile harness schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateHarness validates JSON data against the harness configuration schema.
func ValidateHarness(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := harnessSchema.Validate(v); err != nil {
		return fmt.Errorf("harness config validation failed: %w", err)
	}

	return nil
}
