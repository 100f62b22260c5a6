package sanitize

import (
	"encoding/json"
	"math"
)

func object(raw any) map[string]any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return obj
}

// listOf maps every element of raw through fn. A non-list gives an empty list and a
// non-object element is sanitized from an empty object.
func listOf[T any](raw any, fn func(map[string]any) T) []T {
	items, ok := raw.([]any)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(object(item)))
	}
	return out
}

func integer(raw any) int {
	n, _ := toInt(raw)
	return n
}

func nullableInt(raw any) *int {
	n, ok := toInt(raw)
	if !ok {
		return nil
	}
	return &n
}

func integers(raw any) []int {
	items, ok := raw.([]any)
	if !ok {
		if ints, ok := raw.([]int); ok {
			return append([]int{}, ints...)
		}
		return []int{}
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if n, ok := toInt(item); ok {
			out = append(out, n)
		}
	}
	return out
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case float32:
		return toInt(float64(v))
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		if f, err := v.Float64(); err == nil {
			return toInt(f)
		}
	}
	return 0, false
}

func stringOr(raw any, fallback string) string {
	s, ok := raw.(string)
	if !ok {
		return fallback
	}
	return s
}

func nullableString(raw any) *string {
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	return &s
}

func boolean(raw any) bool {
	b, _ := raw.(bool)
	return b
}
