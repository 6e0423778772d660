// Package jsonnode provides tolerant field access over a parsed JSON tree.
//
// Lookups never fail: a missing key or a value of the wrong type resolves to
// the caller's fallback. Documents produced by older or partially broken
// collectors must still decode into a usable record, so a bad field costs
// only that field, never the document.
package jsonnode

import "github.com/tidwall/gjson"

// Value is the set of scalar types that can be read from a document node.
type Value interface {
	string | bool | uint32 | uint64
}

// Has reports whether key exists as a direct member of node, regardless of
// the member's type or validity.
func Has(node gjson.Result, key string) bool {
	return node.Get(key).Exists()
}

// Scalar returns the value of key converted to T, or fallback when the key is
// absent or its value does not carry the expected JSON type. Unsigned reads
// of negative numbers count as mismatches.
func Scalar[T Value](node gjson.Result, key string, fallback T) T {
	v := node.Get(key)
	if !v.Exists() {
		return fallback
	}

	var out any
	switch any(fallback).(type) {
	case string:
		if v.Type != gjson.String {
			return fallback
		}
		out = v.String()
	case bool:
		if !v.IsBool() {
			return fallback
		}
		out = v.Bool()
	case uint32:
		if v.Type != gjson.Number || v.Float() < 0 {
			return fallback
		}
		out = uint32(v.Uint())
	case uint64:
		if v.Type != gjson.Number || v.Float() < 0 {
			return fallback
		}
		out = v.Uint()
	default:
		return fallback
	}

	return out.(T)
}
