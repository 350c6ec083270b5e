package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preset-generator/internal/common"
	"preset-generator/internal/mapping"
	"preset-generator/internal/vocab"
)

var lib = vocab.NewLib(vocab.Addressing{ColumnOffset: 0, RowOffset: 1, SendIndex: 2})

func scenarioPlan() Plan {
	return Plan{
		Static: []mapping.Partial{
			mapping.Compose(vocab.Button("stop-all-clips"), vocab.ClipMatrix("Stop")),
		},
		Columns: []ColumnRecipe{
			func(col int) mapping.Partial {
				return mapping.Compose(vocab.Button(vocab.ColumnStopID(col)), lib.ClipColumn(col, "Stop"))
			},
		},
		Rows: []RowRecipe{
			func(row int) mapping.Partial {
				return mapping.Compose(vocab.Button(vocab.RowPlayID(row)), lib.ClipRow(row, "PlayScene"))
			},
		},
		Slots: []SlotRecipe{
			func(col, row int) mapping.Partial {
				return mapping.Compose(
					vocab.Button(vocab.SlotPadID(col, row)),
					lib.SlotTransport(col, row, "Trigger", vocab.SlotOptions{RecordOnlyIfArmed: true}),
				)
			},
		},
		Channels: []ChannelRecipe{
			func(ch int) mapping.Partial {
				return mapping.Compose(vocab.Multi(vocab.ChannelKnobID(ch)), lib.Track(vocab.TargetTrackVolume, ch))
			},
		},
	}
}

func sourceIDs(ms []mapping.Partial, targetKind vocab.TargetKind) []string {
	var ids []string

	for _, m := range ms {
		if m.TargetKind() == string(targetKind) {
			ids = append(ids, m.SourceID())
		}
	}

	return ids
}

func TestAssemble_Scenario2x1(t *testing.T) {
	t.Parallel()

	got := Assemble(Geometry{Columns: 2, Rows: 1}, scenarioPlan())

	assert.Equal(t, []string{"col1/stop", "col2/stop"}, sourceIDs(got, vocab.TargetClipColumnAction))
	assert.Equal(t, []string{"col1/row1/pad", "col2/row1/pad"}, sourceIDs(got, vocab.TargetClipTransportAction))
	assert.Equal(t, []string{"row1/play"}, sourceIDs(got, vocab.TargetClipRowAction))
	assert.Empty(t, sourceIDs(got, vocab.TargetTrackVolume))
}

func TestAssemble_Order(t *testing.T) {
	t.Parallel()

	g := Geometry{Columns: 2, Rows: 2, Channels: 1}
	got := Assemble(g, scenarioPlan())

	want := []string{
		"stop-all-clips",
		"col1/stop", "col2/stop",
		"row1/play", "row2/play",
		"col1/row1/pad", "col1/row2/pad", "col2/row1/pad", "col2/row2/pad",
		"ch1/knob",
	}

	require.Len(t, got, scenarioPlan().Count(g))
	assert.Equal(t, want, common.Map(got, mapping.Partial.SourceID))
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	g := Geometry{Columns: 8, Rows: 5, Channels: 8}
	first := Assemble(g, scenarioPlan())
	second := Assemble(g, scenarioPlan())

	assert.Equal(t, first, second)
	assert.Len(t, first, 1+8+5+40+8)
}

func TestAssemble_StaticMappingsAreCopied(t *testing.T) {
	t.Parallel()

	p := scenarioPlan()
	got := Assemble(Geometry{}, p)
	require.Len(t, got, 1)

	got[0].Target["action"] = "Undo"
	assert.Equal(t, "Stop", p.Static[0].Target["action"])
}

func TestEachSlot_ColumnOuter(t *testing.T) {
	t.Parallel()

	var visited [][2]int
	EachSlot(Geometry{Columns: 2, Rows: 3}, func(col, row int) {
		visited = append(visited, [2]int{col, row})
	})

	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visited)
}

func TestGeometry_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Geometry{Columns: 8, Rows: 5, Channels: 8}.Validate())
	require.NoError(t, Geometry{}.Validate())

	err := Geometry{Columns: -1, Rows: 5}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1x5x0")
}
