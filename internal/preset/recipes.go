package preset

import (
	"preset-generator/internal/assembly"
	"preset-generator/internal/common"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
	"preset-generator/internal/vocab"
)

// REAPER command ids.
const (
	commandMetronome = 40364
	commandTapTempo  = 1134
)

// binaryLED lights a button fully for any non-zero target value.
const binaryLED = "x = y > 0 ? 1 : 0"

const trackNameText = "{{ target.track.name }}"

// Slot and matrix action names understood by the host.
const (
	actionTrigger          = "Trigger"
	actionStop             = "Stop"
	actionUndo             = "Undo"
	actionPlayScene        = "PlayScene"
	actionCopyOrPasteScene = "CopyOrPasteScene"
	actionClearScene       = "ClearScene"
	actionClearSlot        = "ClearSlot"
	actionFillSlot         = "FillSlotWithSelectedItem"
	actionEditClip         = "EditClip"
	actionPlayStop         = "PlayStop"
	actionRecordStop       = "RecordStop"
)

// shiftFree gates a mapping on shift being released.
func (t Tables) shiftFree() mapping.Partial {
	return vocab.Modifier(t.shift(), false)
}

// shiftHeld gates a mapping on shift being pressed.
func (t Tables) shiftHeld() mapping.Partial {
	return vocab.Modifier(t.shift(), true)
}

// shiftButton makes the shift parameter follow the shift button.
func (t Tables) shiftButton() mapping.Partial {
	return mapping.Compose(
		vocab.Named("Shift"),
		vocab.Button("shift"),
		vocab.Parameter(t.shift()),
	)
}

// transportStatics are the global transport buttons both variants have.
func (t Tables) transportStatics() []mapping.Partial {
	stopAll := vocab.Button("stop-all-clips")
	group := vocab.InGroup(GroupTransport)

	return []mapping.Partial{
		mapping.Compose(vocab.Named("Stop all clips"), stopAll, vocab.ClipMatrix(actionStop), t.shiftFree(), group),
		mapping.Compose(vocab.Named("Undo"), stopAll, vocab.ClipMatrix(actionUndo), t.shiftHeld(), group),
		mapping.Compose(vocab.Named("Play/stop"), vocab.Button("play"), vocab.Transport(actionPlayStop), group),
		mapping.Compose(vocab.Named("Record"), vocab.Button("record"), vocab.Transport(actionRecordStop), group),
	}
}

// navigationStatics scroll the visible window of the clip matrix.
func (t Tables) navigationStatics() []mapping.Partial {
	group := vocab.InGroup(GroupNavigation)
	col := vocab.Parameter(t.Parameters.Index(ParamColumnOffset))
	row := vocab.Parameter(t.Parameters.Index(ParamRowOffset))

	return []mapping.Partial{
		mapping.Compose(vocab.Named("Scroll left"), vocab.Button("cursor-left"), col, vocab.Decrement(false), group),
		mapping.Compose(vocab.Named("Scroll right"), vocab.Button("cursor-right"), col, vocab.Increment(false), group),
		mapping.Compose(vocab.Named("Scroll up"), vocab.Button("cursor-up"), row, vocab.Decrement(false), group),
		mapping.Compose(vocab.Named("Scroll down"), vocab.Button("cursor-down"), row, vocab.Increment(false), group),
	}
}

// sendNext cycles through the sends addressed by the send knob mode.
func (t Tables) sendNext() mapping.Partial {
	return mapping.Compose(
		vocab.Named("Next send"),
		vocab.Button("send-next"),
		vocab.Parameter(t.Parameters.Index(ParamSendIndex)),
		vocab.Increment(true),
		vocab.InGroup(GroupNavigation),
	)
}

// setMode selects mode of the table behind selector from source.
func (t Tables) setMode(source mapping.Partial, selector string, modes *registry.Table, mode registry.Entry) mapping.Partial {
	return mapping.Compose(
		source,
		vocab.SetMode(t.Parameters.Index(selector), mode.Index, modes.Len()),
		vocab.NumericFeedback(binaryLED),
	)
}

// columnModeRecipes give the column stop button one alternative per column
// mode. gate is merged into every alternative.
func (t Tables) columnModeRecipes(gate mapping.Partial) []assembly.ColumnRecipe {
	lib := t.Lib

	track := func(kind vocab.TargetKind, toggle bool) func(col int) mapping.Partial {
		return func(col int) mapping.Partial {
			m := lib.Track(kind, col)
			if toggle {
				m = m.Add(vocab.Toggle())
			}

			return m
		}
	}

	targets := map[string]func(col int) mapping.Partial{
		ColumnModeStop:   func(col int) mapping.Partial { return lib.ClipColumn(col, actionStop) },
		ColumnModeSolo:   track(vocab.TargetTrackSoloState, true),
		ColumnModeArm:    track(vocab.TargetTrackArmState, true),
		ColumnModeMute:   track(vocab.TargetTrackMuteState, true),
		ColumnModeSelect: track(vocab.TargetTrackSelectionState, false),
	}

	recipes := make([]assembly.ColumnRecipe, 0, t.ColumnModes.Len())

	for _, mode := range t.ColumnModes.Entries() {
		build := targets[mode.Key]
		name := mode.Name
		group := vocab.InGroup(ColumnModeGroup(mode.Key))

		recipes = append(recipes, func(col int) mapping.Partial {
			return mapping.Compose(
				vocab.Named(name+" column "+common.Ordinal(col)),
				vocab.Button(vocab.ColumnStopID(col)),
				build(col),
				group,
				gate,
			)
		})
	}

	return recipes
}

// scenePlay launches a row, gated by gate.
func (t Tables) scenePlay(gate mapping.Partial) assembly.RowRecipe {
	return func(row int) mapping.Partial {
		return mapping.Compose(
			vocab.Named("Play scene "+common.Ordinal(row)),
			vocab.Button(vocab.RowPlayID(row)),
			t.Lib.ClipRow(row, actionPlayScene),
			gate,
		)
	}
}

// slotPlay triggers a slot: records into empty slots of armed tracks and
// stops the column when an empty slot of an unarmed track is pressed.
func (t Tables) slotPlay() assembly.SlotRecipe {
	return func(col, row int) mapping.Partial {
		return mapping.Compose(
			vocab.Named("Slot "+common.Ordinal(col)+"/"+common.Ordinal(row)),
			vocab.Button(vocab.SlotPadID(col, row)),
			t.Lib.SlotTransport(col, row, actionTrigger, vocab.SlotOptions{
				RecordOnlyIfArmed:     true,
				StopColumnIfSlotEmpty: true,
			}),
			vocab.NumericFeedback(binaryLED),
			t.shiftFree(),
		)
	}
}

// slotManagement is a shift-gated management action on a slot pad with the
// given fire mode.
func (t Tables) slotManagement(label, action string, fire mapping.Partial) assembly.SlotRecipe {
	return func(col, row int) mapping.Partial {
		return mapping.Compose(
			vocab.Named(label+" "+common.Ordinal(col)+"/"+common.Ordinal(row)),
			vocab.Button(vocab.SlotPadID(col, row)),
			t.Lib.SlotManagement(col, row, action),
			t.shiftHeld(),
			fire,
		)
	}
}

// knobModeRecipes give the channel knob one alternative per knob mode.
// Clip modes address the slot in the first visible row.
func (t Tables) knobModeRecipes() []assembly.ChannelRecipe {
	lib := t.Lib

	targets := map[string]func(ch int) mapping.Partial{
		KnobModeVolume:       func(ch int) mapping.Partial { return lib.Track(vocab.TargetTrackVolume, ch) },
		KnobModePan:          func(ch int) mapping.Partial { return lib.Track(vocab.TargetTrackPan, ch) },
		KnobModeSend:         lib.RouteVolume,
		KnobModeClipVolume:   func(ch int) mapping.Partial { return lib.SlotVolume(ch, 0) },
		KnobModeClipPosition: func(ch int) mapping.Partial { return lib.SlotSeek(ch, 0) },
	}

	recipes := make([]assembly.ChannelRecipe, 0, t.KnobModes.Len())

	for _, mode := range t.KnobModes.Entries() {
		build := targets[mode.Key]
		name := mode.Name
		group := vocab.InGroup(KnobModeGroup(mode.Key))

		recipes = append(recipes, func(ch int) mapping.Partial {
			return mapping.Compose(
				vocab.Named(name+" "+common.Ordinal(ch)),
				vocab.Multi(vocab.ChannelKnobID(ch)),
				build(ch),
				group,
			)
		})
	}

	return recipes
}
