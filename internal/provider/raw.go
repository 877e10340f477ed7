package provider

import (
	"strconv"
	"strings"
)

// Doc is a decoded JSON object from an upstream provider. Upstream payloads
// are loosely typed and drop or rename fields between plan tiers and API
// versions, so converters read them through these get-or-default accessors
// instead of fixed struct shapes.
type Doc map[string]interface{}

// Get returns the nested object at key, or nil.
func (d Doc) Get(key string) Doc {
	if d == nil {
		return nil
	}
	if m, ok := d[key].(map[string]interface{}); ok {
		return Doc(m)
	}
	return nil
}

// Slice returns the array at key as a list of Docs, skipping non-object
// elements. A missing or non-array value yields nil.
func (d Doc) Slice(key string) []Doc {
	if d == nil {
		return nil
	}
	arr, ok := d[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]Doc, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, Doc(m))
		}
	}
	return out
}

// String returns the string at key, coercing numbers. Missing values yield "".
func (d Doc) String(key string) string {
	if d == nil {
		return ""
	}
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// StringOr returns the first non-empty string among keys, or fallback.
func (d Doc) StringOr(fallback string, keys ...string) string {
	for _, key := range keys {
		if s := d.String(key); s != "" {
			return s
		}
	}
	return fallback
}

// ID returns the value at key coerced to a canonical string ID. JSON numbers
// are rendered without a fractional part; missing values yield "".
func (d Doc) ID(key string) string {
	return d.String(key)
}

// Int returns the number at key as an int, parsing numeric strings.
// Missing or unparseable values yield 0.
func (d Doc) Int(key string) int {
	n, _ := d.IntOK(key)
	return n
}

// IntOK returns the number at key and whether one was present. Percent
// strings like "55%" parse to their numeric part — providers report
// possession that way.
func (d Doc) IntOK(key string) (int, bool) {
	if d == nil {
		return 0, false
	}
	return scalarInt(d[key])
}

// IntPtr returns the number at key, or nil when absent.
func (d Doc) IntPtr(key string) *int {
	if n, ok := d.IntOK(key); ok {
		return &n
	}
	return nil
}

// Bool returns the boolean at key, accepting the 1/"1"/"true" spellings
// providers use interchangeably.
func (d Doc) Bool(key string) bool {
	if d == nil {
		return false
	}
	switch v := d[key].(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	default:
		return false
	}
}

func scalarInt(val interface{}) (int, bool) {
	switch v := val.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// StatValue normalizes a stat value from the formats providers use: flat
// numbers, "55%" strings, or nested aggregate objects. Nested objects are
// resolved through the aggregate keys providers disagree on ("total",
// "overall", "all", "count").
func StatValue(val interface{}) (int, bool) {
	if val == nil {
		return 0, false
	}
	if m, ok := val.(map[string]interface{}); ok {
		for _, key := range []string{"total", "overall", "all", "count"} {
			if inner, exists := m[key]; exists && inner != nil {
				return StatValue(inner)
			}
		}
		return 0, false
	}
	return scalarInt(val)
}
