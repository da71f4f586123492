package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToInt32 parses text as a signed 32-bit integer, ignoring surrounding
// whitespace. It reports false for empty, non-numeric or out-of-range input.
func ToInt32(val string) (int32, bool) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstSegment returns the trimmed text before the first sep in s, or the
// trimmed s when sep does not occur.
func FirstSegment(s, sep string) string {
	s = strings.TrimSpace(s)
	if before, _, found := strings.Cut(s, sep); found {
		return strings.TrimSpace(before)
	}
	return s
}
