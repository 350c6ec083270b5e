package vocab

import (
	"preset-generator/internal/expr"
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
)

// SlotOptions tunes a slot transport action.
type SlotOptions struct {
	// RecordOnlyIfArmed restricts recording into the slot to armed tracks.
	RecordOnlyIfArmed bool
	// StopColumnIfSlotEmpty stops the column when the addressed slot is empty.
	StopColumnIfSlotEmpty bool
}

func target(f fragment.Fragment) mapping.Partial {
	return mapping.Partial{Target: f}
}

// ClipMatrix is a matrix-wide action such as "Stop" or "Undo".
func ClipMatrix(action string) mapping.Partial {
	return target(fragment.Of("kind", string(TargetClipMatrixAction), "action", action))
}

// Transport is a host transport action such as "PlayStop".
func Transport(action string) mapping.Partial {
	return target(fragment.Of("kind", string(TargetTransportAction), "action", action))
}

// ReaperAction triggers a host action by numeric command id.
func ReaperAction(command int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetReaperAction),
		"command", command,
		"invocation", invocationTrigger,
	))
}

// Parameter targets one of the preset's own parameters.
func Parameter(index int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetFxParameterValue),
		"parameter", fragment.Of(
			"address", addressByID,
			"fx", fragment.Of("address", addressThis),
			"index", index,
		),
	))
}

// SetMode writes mode modeIndex of modeCount into the parameter at
// paramIndex. The value is pinned by an interval with two equal bounds;
// out-of-range parameter values read as the minimum.
func SetMode(paramIndex, modeIndex, modeCount int) mapping.Partial {
	v := ModeValue(modeIndex, modeCount)

	return mapping.Compose(
		Parameter(paramIndex),
		mapping.Partial{Glue: fragment.Of(
			"target_interval", []any{v, v},
			"out_of_range_behavior", outOfRangeMin,
		)},
	)
}

// ModeValue is the normalized parameter value modeIndex / (modeCount - 1).
func ModeValue(modeIndex, modeCount int) float64 {
	if modeCount <= 1 {
		return 0
	}

	return float64(modeIndex) / float64(modeCount-1)
}

// ClipColumn is an action on a whole column, e.g. "Stop".
func (l Lib) ClipColumn(col int, action string) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipColumnAction),
		"column", l.column(col),
		"action", action,
	))
}

// ClipRow is an action on a whole row, e.g. "PlayScene".
func (l Lib) ClipRow(row int, action string) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipRowAction),
		"row", l.row(row),
		"action", action,
	))
}

// SlotTransport is a transport action on one slot, e.g. "Trigger".
func (l Lib) SlotTransport(col, row int, action string, opts SlotOptions) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipTransportAction),
		"slot", l.slot(col, row),
		"action", action,
		"record_only_if_track_armed", opts.RecordOnlyIfArmed,
		"stop_column_if_slot_empty", opts.StopColumnIfSlotEmpty,
	))
}

// SlotManagement is a management action on one slot, e.g. "ClearSlot".
func (l Lib) SlotManagement(col, row int, action string) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipManagement),
		"slot", l.slot(col, row),
		"action", fragment.Of("kind", action),
	))
}

// SlotSeek controls the play position of the clip in one slot.
func (l Lib) SlotSeek(col, row int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipSeek),
		"slot", l.slot(col, row),
		"feedback_resolution", "High",
	))
}

// SlotVolume controls the volume of the clip in one slot.
func (l Lib) SlotVolume(col, row int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetClipVolume),
		"slot", l.slot(col, row),
	))
}

// Track is a property target of the track playing the clips of column col.
// kind is one of the Track* target kinds.
func (l Lib) Track(kind TargetKind, col int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(kind),
		"track", l.track(col),
	))
}

// RouteVolume controls the volume of the send selected by the send index
// parameter, on the track of column col.
func (l Lib) RouteVolume(col int) mapping.Partial {
	return target(fragment.Of(
		"kind", string(TargetRouteVolume),
		"route", fragment.Of(
			"address", addressDynamic,
			"track", l.track(col),
			"expression", expr.Param(l.addr.SendIndex),
		),
	))
}
