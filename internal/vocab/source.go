package vocab

import (
	"preset-generator/internal/common"
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
)

// Button is a virtual button source.
func Button(id string) mapping.Partial {
	return virtual(id, CharacterButton)
}

// Multi is a virtual continuous source (knob, fader, encoder).
func Multi(id string) mapping.Partial {
	return virtual(id, CharacterMulti)
}

func virtual(id string, c Character) mapping.Partial {
	return mapping.Partial{Source: fragment.Of(
		"kind", string(SourceVirtual),
		"id", id,
		"character", string(c),
	)}
}

// ColumnStopID names the stop button of a column.
func ColumnStopID(col int) string {
	return "col" + common.Ordinal(col) + "/stop"
}

// RowPlayID names the play button of a row.
func RowPlayID(row int) string {
	return "row" + common.Ordinal(row) + "/play"
}

// SlotPadID names the pad of a grid cell.
func SlotPadID(col, row int) string {
	return "col" + common.Ordinal(col) + "/row" + common.Ordinal(row) + "/pad"
}

// ChannelKnobID names the knob of a channel strip.
func ChannelKnobID(ch int) string {
	return "ch" + common.Ordinal(ch) + "/knob"
}

// ChannelFaderID names the fader of a channel strip.
func ChannelFaderID(ch int) string {
	return "ch" + common.Ordinal(ch) + "/fader"
}

// ChannelDisplayID names the text display of a channel strip.
func ChannelDisplayID(ch int) string {
	return "ch" + common.Ordinal(ch) + "/display"
}
