package utils

import (
	"strconv"
	"strings"
)

// ParseLimit coerces a raw limit query value. Missing, non-numeric or
// non-positive values fall back to def; larger values are clamped to max.
func ParseLimit(raw string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// ParseOffset coerces a raw offset query value; anything invalid is 0.
func ParseOffset(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseID parses a positive numeric identifier from a path segment.
func ParseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
