// Package registry provides the immutable index tables and the group
// registry a preset is built from.
//
// An index table holds entries with stable numeric indices. Tables are used
// twice: builders read an entry's index to address parameters and banks, and
// the emitter turns a mode table into the positional value_labels list of
// the parameter that selects the mode. Tables are constructed once and never
// changed; there is no package-level state.
package registry
