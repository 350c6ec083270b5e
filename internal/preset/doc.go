// Package preset defines the preset variants and the generation pipeline:
// build the index tables, assemble the variant's plan over the controller
// geometry, validate, emit.
//
// Both variants share the parameter, mode and group tables and most of
// their recipes; they differ in which singleton controls they have and in
// how modes are selected. Channel strip ch always addresses the track of
// visible column ch.
package preset
