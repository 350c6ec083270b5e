package preset

import (
	"errors"
	"fmt"
	"sort"

	"preset-generator/internal/assembly"
	"preset-generator/internal/diagnostic"
	"preset-generator/internal/document"
	"preset-generator/internal/registry"
)

// Variant names.
const (
	VariantGrid = "grid"
	VariantKeys = "keys"
)

// Default press timings in milliseconds.
const (
	DefaultLongPressMs      = 1000
	DefaultSinglePressMaxMs = 200
)

// ErrUnknownVariant is returned for a variant name that is not registered.
var ErrUnknownVariant = errors.New("unknown preset variant")

// ErrInvalidPreset is returned by Generate when validation reports errors.
var ErrInvalidPreset = errors.New("preset has validation errors")

// Timing configures press-timing fire modes.
type Timing struct {
	LongPressMs      int
	SinglePressMaxMs int
}

// Options tune a generation run. Zero values fall back to the variant's
// defaults.
type Options struct {
	Geometry assembly.Geometry
	Timing   Timing
}

// Variant is a registered preset layout.
type Variant struct {
	Name            string
	Description     string
	DefaultGeometry assembly.Geometry

	plan func(t Tables, opts Options) assembly.Plan
}

var variants = map[string]Variant{
	VariantGrid: {
		Name:            VariantGrid,
		Description:     "pad grid with faders, track displays and dedicated mode buttons",
		DefaultGeometry: assembly.Geometry{Columns: 8, Rows: 5, Channels: 8},
		plan:            gridPlan,
	},
	VariantKeys: {
		Name:            VariantKeys,
		Description:     "compact keyboard controller, modes selected with shift",
		DefaultGeometry: assembly.Geometry{Columns: 8, Rows: 5, Channels: 8},
		plan:            keysPlan,
	},
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	v, ok := variants[name]

	return v, ok
}

// Names lists the registered variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resolve fills the zero fields of opts from v.
func (v Variant) Resolve(opts Options) Options {
	if opts.Geometry.Columns == 0 {
		opts.Geometry.Columns = v.DefaultGeometry.Columns
	}

	if opts.Geometry.Rows == 0 {
		opts.Geometry.Rows = v.DefaultGeometry.Rows
	}

	if opts.Geometry.Channels == 0 {
		opts.Geometry.Channels = v.DefaultGeometry.Channels
	}

	if opts.Timing.LongPressMs == 0 {
		opts.Timing.LongPressMs = DefaultLongPressMs
	}

	if opts.Timing.SinglePressMaxMs == 0 {
		opts.Timing.SinglePressMaxMs = DefaultSinglePressMaxMs
	}

	return opts
}

// Build assembles the emitter input of a variant without validating it.
func Build(name string, opts Options) (document.Input, error) {
	in, _, err := build(name, opts)

	return in, err
}

func build(name string, opts Options) (document.Input, Tables, error) {
	v, ok := Lookup(name)
	if !ok {
		return document.Input{}, Tables{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownVariant, name, Names())
	}

	opts = v.Resolve(opts)
	if err := opts.Geometry.Validate(); err != nil {
		return document.Input{}, Tables{}, err
	}

	t := NewTables()

	return document.Input{
		Parameters: t.Parameters,
		ModeTables: []*registry.Table{t.ColumnModes, t.KnobModes},
		Groups:     t.Groups,
		Mappings:   assembly.Assemble(opts.Geometry, v.plan(t, opts)),
	}, t, nil
}

// Generate builds, validates and emits a variant. Warnings and infos are
// returned alongside the document; any error diagnostic aborts with
// ErrInvalidPreset and a nil document.
func Generate(name string, opts Options) (*document.Document, *diagnostic.Diagnostics, error) {
	in, t, err := build(name, opts)
	if err != nil {
		return nil, nil, err
	}

	diags := document.Validate(in)
	diags.Merge(checkModeSelectors(t, in.Mappings))

	if diags.HasErrors() {
		return nil, diags, fmt.Errorf("%w: %w", ErrInvalidPreset, diags.Error())
	}

	return document.Emit(in), diags, nil
}
