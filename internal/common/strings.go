package common

import "strconv"

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// Ordinal returns the 1-based display number for a 0-based iteration index.
func Ordinal(index int) string {
	return strconv.Itoa(index + 1)
}
