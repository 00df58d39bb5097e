package generics

import "strconv"

// StringToInt parses a URL query value, returning 0 for anything that
// is not a valid integer so callers can fall back to their defaults.
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// Clamp bounds v to the [min, max] interval.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// CeilDiv returns ceil(a/b) for positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
