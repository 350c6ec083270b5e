// Package mapping defines the typed partial mapping record and the merge
// operator that composes partials into complete mappings.
//
// A Partial declares every top-level field a mapping can have. Each domain
// builder sets one of them; composing builders left to right yields the
// final mapping:
//
//	m := mapping.Compose(
//	    vocab.Button("col1/stop"),
//	    lib.ClipColumn(0, "Stop"),
//	    vocab.InGroup("column_mode_stop"),
//	)
//
// # Merge precedence
//
//   - name, group, control_enabled, feedback_enabled: the right value wins
//     when it is set
//   - activation_condition, glue: deep merge (see package fragment)
//   - source, target: deep merge when both carry the same kind, wholesale
//     replacement when the kinds differ
//
// A Partial is complete once it carries both a source and a target. Only
// complete partials belong in an emitted document.
package mapping
