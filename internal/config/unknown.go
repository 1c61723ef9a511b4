package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// detectUnknownFields compares the decoded document with known struct fields.
// Warnings are sorted so repeated runs print them in the same order.
func detectUnknownFields(raw any) []string {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	var warnings []string
	warnings = append(warnings, unknownKeys(root, reflect.TypeOf(Config{}), "at root level")...)

	sections := map[string]reflect.Type{
		"course":    reflect.TypeOf(CourseConfig{}),
		"discovery": reflect.TypeOf(DiscoveryConfig{}),
		"execution": reflect.TypeOf(ExecutionConfig{}),
		"report":    reflect.TypeOf(ReportConfig{}),
	}
	for name, typ := range sections {
		if section, ok := root[name].(map[string]any); ok {
			warnings = append(warnings, unknownKeys(section, typ, fmt.Sprintf("in %s", name))...)
		}
	}

	if examples, ok := root["examples"].([]any); ok {
		exampleType := reflect.TypeOf(ExampleConfig{})
		for i, item := range examples {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			where := fmt.Sprintf("in examples[%d]", i)
			if name, ok := entry["name"].(string); ok && name != "" {
				where = fmt.Sprintf("in example %q", name)
			}
			warnings = append(warnings, unknownKeys(entry, exampleType, where)...)
		}
	}

	sort.Strings(warnings)
	return warnings
}

func unknownKeys(m map[string]any, t reflect.Type, where string) []string {
	known := getYAMLFields(t)
	var warnings []string
	for key := range m {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q %s (ignored)", key, where))
		}
	}
	return warnings
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = true
		}
	}
	return fields
}
