package depot

import (
	"math"

	"depot-planner/core/utils"
)

// MaxSafeInteger is the largest stock a depot record may hold.
const MaxSafeInteger int64 = 1<<53 - 1

// ClampStock bounds a stock to [0, MaxSafeInteger].
func ClampStock(n int64) int64 {
	if n < 0 {
		return 0
	}
	if n > MaxSafeInteger {
		return MaxSafeInteger
	}
	return n
}

// ParseStock converts raw input text into a stock.
//
// Empty text is 0. Fractions are truncated. Negative values become 0 and large
// values are capped at MaxSafeInteger. ok is false for non-numeric text, which
// must never reach the store.
func ParseStock(raw string) (stock int64, ok bool) {
	f, ok := utils.ParseNumber(raw)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f <= 0 {
		return 0, true
	}
	if f >= float64(MaxSafeInteger) {
		return MaxSafeInteger, true
	}
	return int64(f), true
}

// Step applies a +/- button press to a stock.
func Step(current, delta int64) int64 {
	current = ClampStock(current)
	if delta < 0 && current+delta <= 0 {
		return 0
	}
	if delta > 0 && delta >= MaxSafeInteger-current {
		return MaxSafeInteger
	}
	return current + delta
}
