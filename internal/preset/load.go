package preset

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads a YAML or JSON preset file, validates it against the preset
// schema, and returns the normalized preset.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates and decodes preset bytes. source names the input in errors.
func Parse(data []byte, source string) (*Preset, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating preset %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", source, err)
	}
	p.Normalize()
	return &p, nil
}
