package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// coerceToJSONBytes converts YAML config to JSON bytes so both formats go
// through the strict JSON decoder (DisallowUnknownFields).
//
// Returns (jsonBytes, format, err) where format is "json" or "yaml".
func coerceToJSONBytes(path string, data []byte) ([]byte, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, "json", nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, "yaml", fmt.Errorf("yaml unmarshal: %w", err)
	}

	v = normalizeYAML(v)
	if err := checkYAMLLabels(v); err != nil {
		return nil, "yaml", err
	}

	j, err := json.Marshal(v)
	if err != nil {
		return nil, "yaml", fmt.Errorf("yaml->json marshal: %w", err)
	}
	return j, "yaml", nil
}

// normalizeYAML ensures all map keys are strings so the result can be JSON-marshaled.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}

// checkYAMLLabels rejects unquoted non-string labels (`[42, yes]`) with their
// field path. YAML resolves them to numbers/bools, which the JSON decoder
// would only report as a bare type mismatch.
func checkYAMLLabels(doc any) error {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	kbs, ok := root["keyboards"].([]any)
	if !ok {
		return nil
	}
	for i, raw := range kbs {
		kb, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		path := fmt.Sprintf("keyboards[%d]", i)
		if rows, ok := kb["rows"].([]any); ok {
			for r, rawRow := range rows {
				row, ok := rawRow.([]any)
				if !ok {
					continue
				}
				if err := checkLabelList(fmt.Sprintf("%s.rows[%d]", path, r), row); err != nil {
					return err
				}
			}
		}
		if pending, ok := kb["pending"].([]any); ok {
			if err := checkLabelList(path+".pending", pending); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkLabelList(path string, labels []any) error {
	for c, l := range labels {
		switch l.(type) {
		case string:
		case nil:
			return fmt.Errorf("%s[%d]: empty label", path, c)
		default:
			return fmt.Errorf("%s[%d]: label %v must be a string (quote it)", path, c, l)
		}
	}
	return nil
}
