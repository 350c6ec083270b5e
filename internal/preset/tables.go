package preset

import (
	"preset-generator/internal/registry"
	"preset-generator/internal/vocab"
)

// Parameter keys.
const (
	ParamColumnOffset = "column_offset"
	ParamRowOffset    = "row_offset"
	ParamShift        = "shift"
	ParamColumnMode   = "column_mode"
	ParamKnobMode     = "knob_mode"
	ParamSendIndex    = "send_index"
)

// Column mode keys, in index order.
const (
	ColumnModeStop   = "stop"
	ColumnModeSolo   = "solo"
	ColumnModeArm    = "arm"
	ColumnModeMute   = "mute"
	ColumnModeSelect = "select"
)

// Knob mode keys, in index order.
const (
	KnobModeVolume       = "volume"
	KnobModePan          = "pan"
	KnobModeSend         = "send"
	KnobModeClipVolume   = "clip_volume"
	KnobModeClipPosition = "clip_position"
)

// Group ids of the unconditional groups.
const (
	GroupTransport  = "transport"
	GroupNavigation = "navigation"
)

const (
	offsetSteps = 10000
	sendCount   = 8
)

// Tables are the registries a preset is generated from.
type Tables struct {
	Parameters  *registry.Table
	ColumnModes *registry.Table
	KnobModes   *registry.Table
	Groups      *registry.Groups
	Lib         vocab.Lib
}

// NewTables builds the shared registries.
func NewTables() Tables {
	columnModes := registry.MustTable("column_modes", registry.Sequential(
		[2]string{ColumnModeStop, "Stop"},
		[2]string{ColumnModeSolo, "Solo"},
		[2]string{ColumnModeArm, "Record arm"},
		[2]string{ColumnModeMute, "Mute"},
		[2]string{ColumnModeSelect, "Select"},
	)...)

	knobModes := registry.MustTable("knob_modes", registry.Sequential(
		[2]string{KnobModeVolume, "Volume"},
		[2]string{KnobModePan, "Pan"},
		[2]string{KnobModeSend, "Send"},
		[2]string{KnobModeClipVolume, "Clip volume"},
		[2]string{KnobModeClipPosition, "Clip position"},
	)...)

	params := registry.MustTable("parameters",
		registry.Entry{Key: ParamColumnOffset, Index: 0, Name: "Column offset", ValueCount: offsetSteps},
		registry.Entry{Key: ParamRowOffset, Index: 1, Name: "Row offset", ValueCount: offsetSteps},
		registry.Entry{Key: ParamShift, Index: 2, Name: "Shift", ValueCount: 2},
		registry.SelectorFor(ParamColumnMode, 3, "Column mode", columnModes),
		registry.SelectorFor(ParamKnobMode, 4, "Knob mode", knobModes),
		registry.Entry{Key: ParamSendIndex, Index: 5, Name: "Send", ValueCount: sendCount},
	)

	return Tables{
		Parameters:  params,
		ColumnModes: columnModes,
		KnobModes:   knobModes,
		Groups:      newGroups(params, columnModes, knobModes),
		Lib: vocab.NewLib(vocab.Addressing{
			ColumnOffset: params.Index(ParamColumnOffset),
			RowOffset:    params.Index(ParamRowOffset),
			SendIndex:    params.Index(ParamSendIndex),
		}),
	}
}

func newGroups(params, columnModes, knobModes *registry.Table) *registry.Groups {
	defs := []registry.GroupDef{
		{Key: GroupTransport, Name: "Transport"},
		{Key: GroupNavigation, Name: "Navigation"},
	}

	defs = append(defs, modeGroups(params.Index(ParamColumnMode), "column_mode", "Column mode", columnModes)...)
	defs = append(defs, modeGroups(params.Index(ParamKnobMode), "knob_mode", "Knob mode", knobModes)...)

	return registry.NewGroups(defs...)
}

// modeGroups declares one group per mode, active while the selector
// parameter is set to that mode.
func modeGroups(selector int, prefix, label string, modes *registry.Table) []registry.GroupDef {
	defs := make([]registry.GroupDef, 0, modes.Len())

	for _, m := range modes.Entries() {
		defs = append(defs, registry.GroupDef{
			Key:                 ModeGroupID(prefix, m.Key),
			Name:                label + ": " + m.Name,
			ActivationCondition: vocab.BankCondition(selector, m.Index),
		})
	}

	return defs
}

// ModeGroupID is the id of the group gated by a mode, e.g. "column_mode_solo".
func ModeGroupID(prefix, mode string) string {
	return prefix + "_" + mode
}

// ColumnModeGroup is the group id for a column mode key.
func ColumnModeGroup(mode string) string {
	return ModeGroupID("column_mode", mode)
}

// KnobModeGroup is the group id for a knob mode key.
func KnobModeGroup(mode string) string {
	return ModeGroupID("knob_mode", mode)
}

// shift returns the index of the shift modifier parameter.
func (t Tables) shift() int {
	return t.Parameters.Index(ParamShift)
}
