// Package assembly enumerates a controller's geometry and composes one
// mapping per control and recipe.
//
// Enumeration is deterministic: static mappings first, then every column
// ascending, every row ascending, every slot (column outer, row inner) and
// every channel ascending. Within one coordinate the recipes run in the
// order they are listed in the Plan. Identical input always yields an
// identical list.
package assembly

import (
	"fmt"

	"preset-generator/internal/mapping"
)

// Geometry is the size of the virtual controller.
type Geometry struct {
	Columns  int `yaml:"columns" json:"columns"`
	Rows     int `yaml:"rows" json:"rows"`
	Channels int `yaml:"channels" json:"channels"`
}

// Validate rejects negative sizes.
func (g Geometry) Validate() error {
	if g.Columns < 0 || g.Rows < 0 || g.Channels < 0 {
		return fmt.Errorf("invalid geometry %s: sizes must not be negative", g)
	}

	return nil
}

// String formats g as columns x rows x channels.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%dx%d", g.Columns, g.Rows, g.Channels)
}

// Recipes compose one mapping for a coordinate.
type (
	ColumnRecipe  func(col int) mapping.Partial
	RowRecipe     func(row int) mapping.Partial
	SlotRecipe    func(col, row int) mapping.Partial
	ChannelRecipe func(ch int) mapping.Partial
)

// Plan lists what Assemble emits.
type Plan struct {
	Static   []mapping.Partial
	Columns  []ColumnRecipe
	Rows     []RowRecipe
	Slots    []SlotRecipe
	Channels []ChannelRecipe
}

// Count returns how many mappings Assemble emits for g.
func (p Plan) Count(g Geometry) int {
	return len(p.Static) +
		g.Columns*len(p.Columns) +
		g.Rows*len(p.Rows) +
		g.Columns*g.Rows*len(p.Slots) +
		g.Channels*len(p.Channels)
}

// Assemble runs the plan over g.
func Assemble(g Geometry, p Plan) []mapping.Partial {
	out := make([]mapping.Partial, 0, p.Count(g))

	for _, m := range p.Static {
		out = append(out, m.Clone())
	}

	EachColumn(g, func(col int) {
		for _, r := range p.Columns {
			out = append(out, r(col))
		}
	})

	EachRow(g, func(row int) {
		for _, r := range p.Rows {
			out = append(out, r(row))
		}
	})

	EachSlot(g, func(col, row int) {
		for _, r := range p.Slots {
			out = append(out, r(col, row))
		}
	})

	EachChannel(g, func(ch int) {
		for _, r := range p.Channels {
			out = append(out, r(ch))
		}
	})

	return out
}

// EachColumn calls fn for every column ascending.
func EachColumn(g Geometry, fn func(col int)) {
	for col := 0; col < g.Columns; col++ {
		fn(col)
	}
}

// EachRow calls fn for every row ascending.
func EachRow(g Geometry, fn func(row int)) {
	for row := 0; row < g.Rows; row++ {
		fn(row)
	}
}

// EachSlot calls fn for every cell, column outer and row inner.
func EachSlot(g Geometry, fn func(col, row int)) {
	for col := 0; col < g.Columns; col++ {
		for row := 0; row < g.Rows; row++ {
			fn(col, row)
		}
	}
}

// EachChannel calls fn for every channel ascending.
func EachChannel(g Geometry, fn func(ch int)) {
	for ch := 0; ch < g.Channels; ch++ {
		fn(ch)
	}
}
