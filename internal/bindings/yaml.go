package bindings

import (
	"gopkg.in/yaml.v3"
)

// ParseTestDataYAML decodes YAML test data into the same TestData shape
// as ParseTestData, for fixtures authored as YAML instead of JSON
// (§6 declares the JSON shape; the teacher's own yamlDecode
// (internal/evaluator/builtins_yaml.go) treats YAML as an equally valid
// surface syntax for the same tree of scalars/sequences/mappings, so we
// offer it as an alternative test-data front door, not a different
// schema). yaml.v3 decodes integers as plain `int` rather than
// json.Number, so the tree is renormalized into the `interface{}` shape
// FromJSON already knows how to walk before being converted.
func ParseTestDataYAML(raw []byte) (*TestData, error) {
	var data interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errf("invalid YAML: %v", err)
	}
	normalized := normalizeYAML(data)
	top, ok := normalized.(map[string]interface{})
	if !ok {
		return nil, errf("YAML test data root must be a mapping")
	}
	return parseTestDataTree(top)
}

// normalizeYAML converts yaml.v3's decoded tree (map[string]interface{}
// keys, plain int/int64/float64 scalars) into the shape FromJSON expects
// (string-keyed maps, json.Number scalars), so both front doors share one
// conversion path.
func normalizeYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[sprintf("%v", k)] = normalizeYAML(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, el := range t {
			out[i] = normalizeYAML(el)
		}
		return out
	case int:
		return jsonNumberFromInt(int64(t))
	case int64:
		return jsonNumberFromInt(t)
	case float64:
		return jsonNumberFromFloat(t)
	default:
		return v
	}
}
