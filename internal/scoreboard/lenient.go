package scoreboard

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// lenientInt reads feed numbers that may arrive as JSON numbers or numeric strings.
func lenientInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return int(val), true
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// nonNegativeInt is lenientInt with 0 for anything missing, unparseable or negative.
func nonNegativeInt(v any) int {
	i, ok := lenientInt(v)
	if !ok || i < 0 {
		return 0
	}
	return i
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
