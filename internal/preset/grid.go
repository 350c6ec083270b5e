package preset

import (
	"preset-generator/internal/assembly"
	"preset-generator/internal/common"
	"preset-generator/internal/mapping"
	"preset-generator/internal/vocab"
)

// gridPlan is the pad grid controller with faders, displays and one
// dedicated button per mode.
func gridPlan(t Tables, opts Options) assembly.Plan {
	return assembly.Plan{
		Static:   gridStatics(t),
		Columns:  t.columnModeRecipes(mapping.Partial{}),
		Rows:     t.sceneRecipes(opts.Timing),
		Slots:    t.slotRecipes(opts.Timing),
		Channels: append(t.knobModeRecipes(), t.faderRecipe(), t.displayRecipe()),
	}
}

func gridStatics(t Tables) []mapping.Partial {
	statics := []mapping.Partial{t.shiftButton()}
	statics = append(statics, t.transportStatics()...)

	statics = append(statics,
		mapping.Compose(
			vocab.Named("Metronome"),
			vocab.Button("metronome"),
			vocab.ReaperAction(commandMetronome),
			vocab.Toggle(),
			vocab.InGroup(GroupTransport),
		),
		mapping.Compose(
			vocab.Named("Tap tempo"),
			vocab.Button("tap-tempo"),
			vocab.ReaperAction(commandTapTempo),
			vocab.InGroup(GroupTransport),
		),
	)

	statics = append(statics, t.navigationStatics()...)
	statics = append(statics,
		mapping.Compose(
			vocab.Named("Previous send"),
			vocab.Button("send-prev"),
			vocab.Parameter(t.Parameters.Index(ParamSendIndex)),
			vocab.Decrement(true),
			vocab.InGroup(GroupNavigation),
		),
		t.sendNext(),
	)

	for _, mode := range t.ColumnModes.Entries() {
		statics = append(statics, mapping.Compose(
			vocab.Named("Column mode "+mode.Name),
			t.setMode(vocab.Button("column-mode/"+mode.Key), ParamColumnMode, t.ColumnModes, mode),
		))
	}

	for _, mode := range t.KnobModes.Entries() {
		statics = append(statics, mapping.Compose(
			vocab.Named("Knob mode "+mode.Name),
			t.setMode(vocab.Button("knob-mode/"+mode.Key), ParamKnobMode, t.KnobModes, mode),
		))
	}

	return statics
}

// sceneRecipes play a scene, copy or paste it on shift+press and clear it
// on shift+long press.
func (t Tables) sceneRecipes(timing Timing) []assembly.RowRecipe {
	scene := func(label, action string, fire mapping.Partial) assembly.RowRecipe {
		return func(row int) mapping.Partial {
			return mapping.Compose(
				vocab.Named(label+" "+common.Ordinal(row)),
				vocab.Button(vocab.RowPlayID(row)),
				t.Lib.ClipRow(row, action),
				t.shiftHeld(),
				fire,
			)
		}
	}

	return []assembly.RowRecipe{
		t.scenePlay(t.shiftFree()),
		scene("Copy or paste scene", actionCopyOrPasteScene, vocab.OnSinglePress(timing.SinglePressMaxMs)),
		scene("Clear scene", actionClearScene, vocab.AfterTimeout(timing.LongPressMs)),
	}
}

// slotRecipes are shared by every variant.
func (t Tables) slotRecipes(timing Timing) []assembly.SlotRecipe {
	return []assembly.SlotRecipe{
		t.slotPlay(),
		t.slotManagement("Clear slot", actionClearSlot, vocab.AfterTimeout(timing.LongPressMs)),
		t.slotManagement("Fill slot", actionFillSlot, vocab.OnSinglePress(timing.SinglePressMaxMs)),
		t.slotManagement("Edit clip", actionEditClip, vocab.OnDoublePress()),
	}
}

func (t Tables) faderRecipe() assembly.ChannelRecipe {
	return func(ch int) mapping.Partial {
		return mapping.Compose(
			vocab.Named("Volume fader "+common.Ordinal(ch)),
			vocab.Multi(vocab.ChannelFaderID(ch)),
			t.Lib.Track(vocab.TargetTrackVolume, ch),
		)
	}
}

// displayRecipe shows the track name of the channel's column.
func (t Tables) displayRecipe() assembly.ChannelRecipe {
	return func(ch int) mapping.Partial {
		return mapping.Compose(
			vocab.Named("Track name "+common.Ordinal(ch)),
			vocab.Multi(vocab.ChannelDisplayID(ch)),
			t.Lib.Track(vocab.TargetTrackVolume, ch),
			vocab.TextFeedback(trackNameText),
			vocab.FeedbackOnly(),
		)
	}
}
