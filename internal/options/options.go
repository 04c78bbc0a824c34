// Package options builds widget option lists from inline command-line specs
// and from JSON files.
package options

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/popup-select/internal/widget"
)

// Parse converts inline specs into options. Each spec is either a bare value
// or "value:label"; the label defaults to the value. Duplicate values and
// empty specs are rejected so navigation lookups stay unambiguous.
func Parse(specs []string) ([]widget.Option, error) {
	opts := make([]widget.Option, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		value := spec
		label := ""
		if idx := strings.Index(spec, ":"); idx >= 0 {
			value = spec[:idx]
			label = spec[idx+1:]
		}
		value = strings.TrimSpace(value)
		label = strings.TrimSpace(label)
		if value == "" {
			return nil, fmt.Errorf("empty option value in spec %q", spec)
		}
		if _, ok := seen[value]; ok {
			return nil, fmt.Errorf("duplicate option value %q", value)
		}
		seen[value] = struct{}{}
		if label == "" {
			label = value
		}
		opts = append(opts, widget.Option{Value: value, Label: label})
	}
	return opts, nil
}

type fileOption struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// LoadFile reads a JSON array of {"value","label"} objects. Labels default
// to the value; duplicate values are rejected.
func LoadFile(path string) ([]widget.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options file: %w", err)
	}
	var entries []fileOption
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse options file %s: %w", path, err)
	}
	opts := make([]widget.Option, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		value := strings.TrimSpace(entry.Value)
		if value == "" {
			return nil, fmt.Errorf("options file %s: entry %d has no value", path, i)
		}
		if _, ok := seen[value]; ok {
			return nil, fmt.Errorf("options file %s: duplicate value %q", path, value)
		}
		seen[value] = struct{}{}
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			label = value
		}
		opts = append(opts, widget.Option{Value: value, Label: label})
	}
	return opts, nil
}
