package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preset-generator/internal/assembly"
	"preset-generator/internal/document"
	"preset-generator/internal/preset"
)

var variants = []string{"grid", "keys"}

func TestParse(t *testing.T) {
	yaml := `
variant: keys
format: yaml
indent: false
geometry:
  columns: 4
  rows: 2
timing:
  long_press_ms: 800
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NoError(t, c.Validate(variants))

	assert.Equal(t, "keys", c.Variant)
	assert.Equal(t, document.FormatYAML, c.OutputFormat())
	assert.False(t, c.IndentOutput())
	assert.Equal(t, assembly.Geometry{Columns: 4, Rows: 2}, c.Geometry)
	assert.Equal(t, 800, c.Timing.LongPressMs)
	assert.Equal(t, DefaultSinglePressMaxMs, c.Timing.SinglePressMaxMs)
}

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
	assert.Equal(t, DefaultVariant, c.Variant)
	assert.Equal(t, document.FormatJSON, c.OutputFormat())
	assert.True(t, c.IndentOutput())
	assert.Equal(t, DefaultLongPressMs, c.Timing.LongPressMs)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("variant: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown variant", "variant: launchpad", `unknown variant "launchpad"`},
		{"unknown format", "format: lua", `unknown format "lua"`},
		{"negative geometry", "geometry: {columns: -2}", "sizes must not be negative"},
		{"negative timing", "timing: {long_press_ms: -5}", "timing values must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			err = c.Validate(variants)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: grid\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "grid", c.Variant)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_Examples(t *testing.T) {
	t.Parallel()

	grid, err := LoadFile("../../examples/grid.yaml")
	require.NoError(t, err)
	require.NoError(t, grid.Validate(variants))
	assert.Equal(t, assembly.Geometry{Columns: 8, Rows: 5, Channels: 8}, grid.Geometry)
	assert.True(t, grid.IndentOutput())

	keys, err := LoadFile("../../examples/keys-small.yaml")
	require.NoError(t, err)
	require.NoError(t, keys.Validate(variants))
	assert.Equal(t, "keys", keys.Variant)
	assert.Equal(t, document.FormatYAML, keys.OutputFormat())
	assert.Equal(t, 800, keys.Timing.LongPressMs)
	assert.Equal(t, DefaultSinglePressMaxMs, keys.Timing.SinglePressMaxMs)
}

func TestDefaults_FollowPresetPackage(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.Equal(t, preset.DefaultLongPressMs, c.Timing.LongPressMs)
	assert.Equal(t, preset.DefaultSinglePressMaxMs, c.Timing.SinglePressMaxMs)
	require.NoError(t, c.Validate(preset.Names()))
}
