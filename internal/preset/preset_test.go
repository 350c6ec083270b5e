package preset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preset-generator/internal/assembly"
	"preset-generator/internal/diagnostic"
	"preset-generator/internal/document"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
	"preset-generator/internal/vocab"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{VariantGrid, VariantKeys}, Names())

	v, ok := Lookup(VariantGrid)
	require.True(t, ok)
	assert.Equal(t, assembly.Geometry{Columns: 8, Rows: 5, Channels: 8}, v.DefaultGeometry)

	_, ok = Lookup("launchpad")
	assert.False(t, ok)
}

func TestGenerate_VariantsAreClean(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, diags, err := Generate(name, Options{})
			require.NoError(t, err)
			require.NotNil(t, doc)
			assert.Empty(t, diags.Errors, spew.Sdump(diags))
			assert.Empty(t, diags.Warnings, spew.Sdump(diags))
			assert.Empty(t, diags.Infos, spew.Sdump(diags))

			assert.Equal(t, document.KindMainCompartment, doc.Kind)
			assert.Len(t, doc.Value.Parameters, 6)
			assert.Len(t, doc.Value.Groups, 12)
		})
	}
}

func TestGenerate_UnknownVariant(t *testing.T) {
	t.Parallel()

	doc, diags, err := Generate("launchpad", Options{})
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Nil(t, doc)
	assert.Nil(t, diags)
}

func TestGenerate_UnreachableModes(t *testing.T) {
	t.Parallel()

	small := Options{Geometry: assembly.Geometry{Columns: 2, Rows: 2, Channels: 2}}

	doc, diags, err := Generate(VariantKeys, small)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, diags.Errors)
	require.Equal(t, 6, diags.Count(diagnostic.CodeUnreachableMode), spew.Sdump(diags))

	var paths []string
	for _, d := range diags.Warnings {
		paths = append(paths, d.Path)
	}

	assert.Equal(t, []string{
		"column_modes[arm]", "column_modes[mute]", "column_modes[select]",
		"knob_modes[send]", "knob_modes[clip_volume]", "knob_modes[clip_position]",
	}, paths)
	assert.Contains(t, diags.Warnings[0].Message, `"column_mode_arm"`)

	_, diags, err = Generate(VariantGrid, small)
	require.NoError(t, err)
	assert.False(t, diags.HasCode(diagnostic.CodeUnreachableMode))
}

func TestBuild_InvalidGeometry(t *testing.T) {
	t.Parallel()

	_, err := Build(VariantGrid, Options{Geometry: assembly.Geometry{Columns: -1}})
	require.Error(t, err)
}

func TestBuild_MappingCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		variant string
		want    int
	}{
		// 23 static, 5 per column, 3 per row, 4 per slot, 7 per channel.
		{name: "grid", variant: VariantGrid, want: 23 + 5*8 + 3*5 + 4*40 + 7*8},
		// 10 static plus 5 + 5 mode selectors, 5 per column, 1 per row,
		// 4 per slot, 5 per channel.
		{name: "keys", variant: VariantKeys, want: 20 + 5*8 + 1*5 + 4*40 + 5*8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, err := Build(tt.variant, Options{})
			require.NoError(t, err)
			assert.Len(t, in.Mappings, tt.want)

			for i, m := range in.Mappings {
				assert.True(t, m.IsComplete(), "mappings[%d] %q", i, m.Name)
			}
		})
	}
}

func TestBuild_KeysModeSelectorsFollowGeometry(t *testing.T) {
	t.Parallel()

	in, err := Build(VariantKeys, Options{Geometry: assembly.Geometry{Columns: 2, Rows: 3, Channels: 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, countTarget(in.Mappings, vocab.TargetFxParameterValue, func(m mapping.Partial) bool {
		return strings.HasPrefix(m.Name, "Column mode")
	}))
	assert.Equal(t, 2, countTarget(in.Mappings, vocab.TargetFxParameterValue, func(m mapping.Partial) bool {
		return strings.HasPrefix(m.Name, "Knob mode")
	}))
}

func TestTables_IndexDensityAndLabels(t *testing.T) {
	t.Parallel()

	tables := NewTables()

	for _, table := range []*registry.Table{tables.Parameters, tables.ColumnModes, tables.KnobModes} {
		want := make([]int, table.Len())
		for i := range want {
			want[i] = i
		}

		assert.Equal(t, want, table.Indices(), table.Name())
	}

	for key, modes := range map[string]*registry.Table{
		ParamColumnMode: tables.ColumnModes,
		ParamKnobMode:   tables.KnobModes,
	} {
		selector := tables.Parameters.Get(key)
		require.Len(t, selector.ValueLabels, modes.Len())
		assert.Equal(t, modes.Len(), selector.ValueCount)

		for _, mode := range modes.Entries() {
			assert.Equal(t, mode.Name, selector.ValueLabels[mode.Index], key)
		}
	}
}

func TestTables_ModeGroups(t *testing.T) {
	t.Parallel()

	tables := NewTables()

	g, ok := tables.Groups.Lookup(ColumnModeGroup(ColumnModeMute))
	require.True(t, ok)
	assert.Equal(t, "column_mode_mute", g.ID)
	assert.Equal(t, "Column mode: Mute", g.Name)
	assert.Equal(t, vocab.BankCondition(tables.Parameters.Index(ParamColumnMode), 3), g.ActivationCondition)

	g, ok = tables.Groups.Lookup(GroupTransport)
	require.True(t, ok)
	assert.Nil(t, g.ActivationCondition)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	opts := Options{Geometry: assembly.Geometry{Columns: 8, Rows: 5}}

	for _, name := range Names() {
		first, _, err := Generate(name, opts)
		require.NoError(t, err)

		second, _, err := Generate(name, opts)
		require.NoError(t, err)

		assert.Equal(t, first.Value.Mappings, second.Value.Mappings, name)

		var a, b bytes.Buffer
		require.NoError(t, document.EncodeJSON(&a, first, true))
		require.NoError(t, document.EncodeJSON(&b, second, true))
		assert.Equal(t, a.Bytes(), b.Bytes(), name)
	}
}

func TestBuild_Scenario2x1(t *testing.T) {
	t.Parallel()

	in, err := Build(VariantGrid, Options{Geometry: assembly.Geometry{Columns: 2, Rows: 1, Channels: 1}})
	require.NoError(t, err)

	var stops, pads []string

	for _, m := range in.Mappings {
		switch m.TargetKind() {
		case string(vocab.TargetClipColumnAction):
			if m.Target.StringAt("action") == actionStop {
				stops = append(stops, m.SourceID())
			}
		case string(vocab.TargetClipTransportAction):
			pads = append(pads, m.SourceID())
		}
	}

	assert.Equal(t, []string{"col1/stop", "col2/stop"}, stops)
	assert.Equal(t, []string{"col1/row1/pad", "col2/row1/pad"}, pads)
}

func TestBuild_ColumnAddressing(t *testing.T) {
	t.Parallel()

	in, err := Build(VariantGrid, Options{Geometry: assembly.Geometry{Columns: 4, Rows: 3, Channels: 1}})
	require.NoError(t, err)

	for _, m := range in.Mappings {
		if m.SourceID() != "col4/row3/pad" || m.TargetKind() != string(vocab.TargetClipTransportAction) {
			continue
		}

		col, _ := m.Target.Lookup("slot", "column_expression")
		row, _ := m.Target.Lookup("slot", "row_expression")
		assert.Equal(t, "p[0] + 3", col)
		assert.Equal(t, "p[1] + 2", row)

		return
	}

	t.Fatal("pad col4/row3 not generated")
}

func TestBuild_TimingOptions(t *testing.T) {
	t.Parallel()

	in, err := Build(VariantGrid, Options{
		Geometry: assembly.Geometry{Columns: 1, Rows: 1, Channels: 1},
		Timing:   Timing{LongPressMs: 750},
	})
	require.NoError(t, err)

	var timeouts, durations []any

	for _, m := range in.Mappings {
		if v, ok := m.Glue.Lookup("fire_mode", "timeout"); ok {
			timeouts = append(timeouts, v)
		}

		if v, ok := m.Glue.Lookup("fire_mode", "max_duration"); ok {
			durations = append(durations, v)
		}
	}

	assert.Equal(t, []any{750, 750}, timeouts)
	assert.Equal(t, []any{DefaultSinglePressMaxMs, DefaultSinglePressMaxMs}, durations)
}

func countTarget(ms []mapping.Partial, kind vocab.TargetKind, keep func(mapping.Partial) bool) int {
	n := 0

	for _, m := range ms {
		if m.TargetKind() == string(kind) && keep(m) {
			n++
		}
	}

	return n
}
