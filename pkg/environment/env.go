// Package environment loads environment value sets and substitutes their
// values into {{KEY}} placeholders.
package environment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blackcoderx/postdoc/pkg/docerr"
	"gopkg.in/yaml.v3"
)

// envRefPattern matches {{env:VAR_NAME}} references to process environment variables.
var envRefPattern = regexp.MustCompile(`\{\{env:([^}]+)\}\}`)

// Value is one key/value pair of an environment.
type Value struct {
	Key   string
	Value string
	// Enabled is recorded but not enforced: disabled values are substituted too.
	Enabled bool
}

// Environment is an ordered set of values. A nil *Environment is valid and
// makes every substitution a pass-through.
type Environment struct {
	Name   string
	Values []Value
}

// Active reports whether substitution has anything to do.
func (e *Environment) Active() bool {
	return e != nil && len(e.Values) > 0
}

// Load reads an environment file. Files ending in .yaml or .yml are read as a
// flat KEY: value map; anything else as a Postman environment JSON document.
func Load(filePath string) (*Environment, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &docerr.IOError{Op: "read", Path: filePath, Cause: err}
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

type postmanEnvironment struct {
	Name   string `json:"name"`
	Values []struct {
		Key     string          `json:"key"`
		Value   json.RawMessage `json:"value"`
		Enabled *bool           `json:"enabled"`
	} `json:"values"`
}

// Parse decodes a Postman environment document with a "values" array.
func Parse(data []byte) (*Environment, error) {
	var doc postmanEnvironment
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse environment JSON: %w", err)
	}

	env := &Environment{Name: doc.Name, Values: make([]Value, 0, len(doc.Values))}
	for _, v := range doc.Values {
		enabled := true
		if v.Enabled != nil {
			enabled = *v.Enabled
		}
		env.Values = append(env.Values, Value{
			Key:     v.Key,
			Value:   formatValue(v.Value),
			Enabled: enabled,
		})
	}
	return env, nil
}

// ParseYAML decodes a flat KEY: value YAML map, keeping the file's key order.
// Values may reference process variables as {{env:NAME}}.
func ParseYAML(data []byte) (*Environment, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse environment YAML: %w", err)
	}

	env := &Environment{}
	if len(doc.Content) == 0 {
		return env, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("environment YAML must be a map of KEY: value")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("environment value for %q must be a scalar (line %d)", key.Value, value.Line)
		}
		env.Values = append(env.Values, Value{
			Key:     key.Value,
			Value:   resolveEnvRefs(value.Value),
			Enabled: true,
		})
	}
	return env, nil
}

// formatValue renders a JSON value as substitution text: strings verbatim,
// everything else as its JSON spelling.
func formatValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// resolveEnvRefs resolves {{env:VAR}} references in a string
func resolveEnvRefs(text string) string {
	return envRefPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.TrimSpace(envRefPattern.FindStringSubmatch(match)[1])
		if val := os.Getenv(name); val != "" {
			return val
		}
		return match
	})
}
