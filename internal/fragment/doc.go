// Package fragment provides immutable, deep-mergeable configuration
// fragments, the building block every mapping is composed from.
//
// A Fragment maps string keys to values. A value is a nested Fragment (a
// plain map[string]any is treated the same way), a primitive, or a list.
//
// # Merge rule
//
// Merge is right-biased. For every key of the right operand:
//   - if both sides hold a fragment, the two are merged recursively;
//   - otherwise the right value replaces the left value entirely, which
//     includes scalar/fragment replacement and whole-list replacement.
//
// Keys present only on the left are kept. Neither operand is modified and
// the result shares no mutable map or list with them, so a base fragment can
// be reused across any number of compositions.
package fragment
