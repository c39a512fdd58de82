package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts user-typed text to a number the way a numeric input field does:
// surrounding whitespace is ignored, empty text is zero, and 0x/0o/0b prefixes are accepted.
// It reports false for text that is not a finite number.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseUint(lower[2:], map[byte]int{'x': 16, 'o': 8, 'b': 2}[lower[1]], 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	// ParseFloat accepts "inf", "nan" and underscores, none of which a numeric field takes.
	if strings.ContainsAny(lower, "_") || strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToString converts scalar values to their canonical text form.
// Whole floats print without a fraction so that 6 and 6.0 compare equal.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return ToString(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
