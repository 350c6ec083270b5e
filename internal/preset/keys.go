package preset

import (
	"preset-generator/internal/assembly"
	"preset-generator/internal/mapping"
	"preset-generator/internal/vocab"
)

// keysPlan is the compact keyboard controller. It has no faders, displays
// or mode buttons: shift+row selects the column mode and shift+column stop
// selects the knob mode.
func keysPlan(t Tables, opts Options) assembly.Plan {
	return assembly.Plan{
		Static:   keysStatics(t, opts.Geometry),
		Columns:  t.columnModeRecipes(t.shiftFree()),
		Rows:     []assembly.RowRecipe{t.scenePlay(t.shiftFree())},
		Slots:    t.slotRecipes(opts.Timing),
		Channels: t.knobModeRecipes(),
	}
}

func keysStatics(t Tables, g assembly.Geometry) []mapping.Partial {
	statics := []mapping.Partial{t.shiftButton()}
	statics = append(statics, t.transportStatics()...)
	statics = append(statics, t.navigationStatics()...)
	statics = append(statics, t.sendNext())

	columnModes := t.ColumnModes.Entries()
	for row := 0; row < min(g.Rows, len(columnModes)); row++ {
		mode := columnModes[row]
		statics = append(statics, mapping.Compose(
			vocab.Named("Column mode "+mode.Name),
			t.setMode(vocab.Button(vocab.RowPlayID(row)), ParamColumnMode, t.ColumnModes, mode),
			t.shiftHeld(),
		))
	}

	knobModes := t.KnobModes.Entries()
	for col := 0; col < min(g.Columns, len(knobModes)); col++ {
		mode := knobModes[col]
		statics = append(statics, mapping.Compose(
			vocab.Named("Knob mode "+mode.Name),
			t.setMode(vocab.Button(vocab.ColumnStopID(col)), ParamKnobMode, t.KnobModes, mode),
			t.shiftHeld(),
		))
	}

	return statics
}
