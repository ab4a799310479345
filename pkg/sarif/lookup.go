package sarif

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lookup walks a decoded JSON tree. String steps index objects and int steps
// index arrays. It reports false the first time a step is missing, null, out
// of range, or applied to a value of the wrong type.
func Lookup(v any, path ...any) (any, bool) {
	cur := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			if cur, ok = obj[key]; !ok {
				return nil, false
			}
		case int:
			list, ok := cur.([]any)
			if !ok || key < 0 || key >= len(list) {
				return nil, false
			}
			cur = list[key]
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// LookupString is Lookup followed by scalar formatting. def is returned when
// the path is absent.
func LookupString(v any, def string, path ...any) string {
	val, ok := Lookup(v, path...)
	if !ok {
		return def
	}
	return formatValue(val)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
