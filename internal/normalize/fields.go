// Package normalize converts generically-decoded snapshot and event JSON
// documents into the fixed row schemas in pkg/types. Both normalizers are
// pure functions over one parsed document: missing or malformed fields below
// the top level degrade to null columns, never errors.
package normalize

import (
	"encoding/json"
	"strconv"
)

// childMap returns a nested object field, substituting an empty mapping when
// the field is absent or not an object.
func childMap(doc map[string]any, key string) map[string]any {
	child, _ := doc[key].(map[string]any)
	return child
}

func optString(doc map[string]any, key string) *string {
	s, ok := doc[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optInt64(doc map[string]any, key string) *int64 {
	f, ok := coerceFloat(doc[key])
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}

func optFloat(doc map[string]any, key string) *float64 {
	f, ok := coerceFloat(doc[key])
	if !ok {
		return nil
	}
	return &f
}

func optBool(doc map[string]any, key string) *bool {
	b, ok := doc[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// stringifyScalar renders a scalar payload value as text. Numbers use the
// shortest round-trip form; anything non-scalar falls back to its JSON
// encoding.
func stringifyScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
