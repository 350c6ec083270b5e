// Package diagnostic provides structured errors and warnings produced by
// the post-assembly validation pass of the preset generator.
//
// Validation never stops at the first problem: every violation found in a
// generated document is recorded so a preset author can fix them in one go.
//
// Error codes:
//   - IncompleteMapping: a mapping lacks a source or a target
//   - IndexGap: an index table is not densely indexed 0..n-1
//   - LabelCountMismatch: value_count differs from the value label count
//   - UnknownGroup: a mapping references an unregistered group
//   - DuplicateGroup: two groups share an id
//
// Warning codes:
//   - OverlappingAlternatives: two mappings on one control cannot be told apart
package diagnostic
