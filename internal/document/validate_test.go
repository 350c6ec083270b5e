package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preset-generator/internal/diagnostic"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
	"preset-generator/internal/vocab"
)

func TestValidate_Clean(t *testing.T) {
	t.Parallel()

	res := Validate(testInput())
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
}

func TestValidate_IncompleteMapping(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Mappings = append(in.Mappings,
		mapping.Compose(vocab.Button("play"), vocab.Toggle()),
		mapping.Compose(lib.ClipColumn(1, "Stop")),
		mapping.Compose(vocab.Named("nothing")),
	)

	res := Validate(in)
	require.Equal(t, 3, res.Count(diagnostic.CodeIncompleteMapping))
	assert.Equal(t, "mappings[2] (play)", res.Errors[0].Path)
	assert.Contains(t, res.Errors[0].Message, "no target")
	assert.Contains(t, res.Errors[1].Message, "no source")
	assert.Contains(t, res.Errors[2].Message, "no source and target")
}

func TestValidate_IndexGap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []registry.Entry
		count   int
		message string
	}{
		{
			name:    "missing zero",
			entries: []registry.Entry{{Key: "a", Index: 1}, {Key: "b", Index: 2}},
			count:   1,
			message: "missing index 0 before index 1",
		},
		{
			name:    "hole in the middle",
			entries: []registry.Entry{{Key: "a", Index: 0}, {Key: "b", Index: 4}},
			count:   1,
			message: "missing indices 1..3 before index 4",
		},
		{
			name:    "duplicate",
			entries: []registry.Entry{{Key: "a", Index: 0}, {Key: "b", Index: 0}, {Key: "c", Index: 1}},
			count:   1,
			message: "index 0 is used more than once",
		},
		{
			name:    "negative",
			entries: []registry.Entry{{Key: "a", Index: -1}, {Key: "b", Index: 0}},
			count:   1,
			message: "negative index -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := testInput()
			in.ModeTables = append(in.ModeTables, registry.MustTable("knob_modes", tt.entries...))

			res := Validate(in)
			require.Equal(t, tt.count, res.Count(diagnostic.CodeIndexGap))
			assert.Equal(t, "knob_modes", res.Errors[0].Table)
			assert.Equal(t, tt.message, res.Errors[0].Message)
		})
	}
}

func TestValidate_LabelCountMismatch(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Parameters = registry.MustTable("parameters",
		registry.Entry{Key: "mode", Index: 0, Name: "Mode", ValueCount: 3, ValueLabels: []string{"A", "B"}},
		registry.Entry{Key: "free", Index: 1, Name: "Free", ValueCount: 10},
	)

	res := Validate(in)
	require.Equal(t, 1, res.Count(diagnostic.CodeLabelCountMismatch))
	assert.Equal(t, "parameters[mode]", res.Errors[0].Path)
}

func TestValidate_Groups(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Groups = registry.NewGroups(
		registry.GroupDef{Key: "column_mode_stop", Name: "Stop"},
		registry.GroupDef{Key: "column_mode_stop", Name: "Stop again"},
	)

	res := Validate(in)
	assert.Equal(t, 1, res.Count(diagnostic.CodeDuplicateGroup))
	assert.Equal(t, 1, res.Count(diagnostic.CodeUnknownGroup), "column_mode_solo is gone")
}

func TestValidate_ReportsEverythingAtOnce(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Parameters = registry.MustTable("parameters",
		registry.Entry{Key: "mode", Index: 1, Name: "Mode", ValueCount: 1, ValueLabels: []string{"A", "B"}},
	)
	in.Mappings = append(in.Mappings, mapping.Compose(vocab.Button("x")))

	res := Validate(in)
	assert.True(t, res.HasCode(diagnostic.CodeIndexGap))
	assert.True(t, res.HasCode(diagnostic.CodeLabelCountMismatch))
	assert.True(t, res.HasCode(diagnostic.CodeIncompleteMapping))
	assert.Len(t, res.Errors, 3)

	require.Error(t, res.Error())
	assert.Contains(t, res.Error().Error(), "IndexGap")
	assert.Contains(t, res.Error().Error(), "IncompleteMapping")
}

func TestValidate_OverlappingAlternatives(t *testing.T) {
	t.Parallel()

	pad := vocab.Button(vocab.SlotPadID(0, 0))
	clear := lib.SlotManagement(0, 0, "ClearSlot")

	in := testInput()
	in.Mappings = []mapping.Partial{
		mapping.Compose(pad, lib.SlotTransport(0, 0, "Trigger", vocab.SlotOptions{}), vocab.Modifier(5, false)),
		mapping.Compose(pad, clear, vocab.Modifier(5, true), vocab.AfterTimeout(1000)),
		mapping.Compose(pad, clear, vocab.Modifier(5, true), vocab.OnDoublePress()),
		mapping.Compose(pad, lib.SlotManagement(0, 0, "EditClip"), vocab.Modifier(5, true), vocab.OnDoublePress()),
	}

	res := Validate(in)
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOverlappingAlternatives, res.Warnings[0].Code)
	assert.Equal(t, "mappings[3] (col1/row1/pad)", res.Warnings[0].Path)
	assert.Contains(t, res.Warnings[0].Message, "mappings[2]")
}

func TestValidate_UnusedGroup(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Groups = registry.NewGroups(
		registry.GroupDef{Key: "column_mode_stop", Name: "Stop", ActivationCondition: vocab.BankCondition(2, 0)},
		registry.GroupDef{Key: "column_mode_solo", Name: "Solo", ActivationCondition: vocab.BankCondition(2, 1)},
		registry.GroupDef{Key: "transport", Name: "Transport"},
	)

	res := Validate(in)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Infos, 1)
	assert.Equal(t, diagnostic.CodeUnusedGroup, res.Infos[0].Code)
	assert.Equal(t, "groups[2] (transport)", res.Infos[0].Path)
	assert.Equal(t, diagnostic.SeverityInfo, res.Infos[0].Severity)
}
