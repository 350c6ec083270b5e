// Package expr formats the host's parameter expressions used for dynamic
// addressing. The host parses these strings, so the syntax is fixed:
// "p[<index>]" and "p[<index>] + <offset>".
package expr

import "strconv"

// Param references the current value of the parameter at index.
func Param(index int) string {
	return "p[" + strconv.Itoa(index) + "]"
}

// Offset is the affine expression "p[index] + offset".
func Offset(index, offset int) string {
	return Param(index) + " + " + strconv.Itoa(offset)
}
