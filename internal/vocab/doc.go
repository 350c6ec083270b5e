// Package vocab provides the domain builders. Each builder returns one
// mapping.Partial that sets exactly one concern: a source, a target, a glue
// behavior, an activation condition, or mapping metadata.
//
// Builders that address the clip matrix never embed literal coordinates.
// Columns and rows are always written as "p[<offset param>] + <n>" so the
// host can scroll the whole preset by changing two parameter values. Those
// builders are methods on Lib, which holds the parameter indices.
//
// Tag strings (kinds, characters, modes) are interpreted only by the host
// and are kept verbatim in tags.go.
package vocab
