// Package jsondoc provides helpers for working with untyped parsed JSON.
// Validators never assume the static shape of untrusted input: content is
// decoded into generic values and projected into typed entities through
// explicit field extraction with defaults.
package jsondoc

import (
	"encoding/json"
	"math"
	"strings"
)

// Parse decodes raw JSON into a generic value tree.
func Parse(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Items returns the elements of v when it is an array, or v itself as a
// single-element slice otherwise. Card and collection files may hold one
// object or an array of objects; each element is validated independently.
func Items(v any) []any {
	if arr, ok := v.([]any); ok {
		return arr
	}
	return []any{v}
}

// Object returns v as a key-value document, or nil and false when v is not
// a JSON object.
func Object(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// String returns the first string value found among the candidate keys,
// tried in priority order, or "" when none is present. The candidate order
// determines which source field wins.
func String(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Bool returns the boolean value of key, or false when absent or not a bool.
func Bool(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

// Int returns the value of key as an integer. JSON numbers decode as
// float64; a value is an integer only when it carries no fractional part.
func Int(obj map[string]any, key string) (int, bool) {
	f, ok := obj[key].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Has reports whether key is present in obj, regardless of its value.
func Has(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

// Flatten serializes v back to compact JSON and lower-cases it. Keyword
// checks look for substrings of this flattened textual representation, not
// for structural matches.
func Flatten(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(data))
}
