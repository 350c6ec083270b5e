package registry

import (
	"cmp"
	"fmt"
	"slices"
)

// Entry is one indexed entry of a table.
type Entry struct {
	// Key is the stable identifier used by preset code to look the entry up.
	Key string
	// Index is the entry's position in the host-facing enumeration.
	Index int
	// Name is the human-readable label.
	Name string
	// ValueCount is the number of discrete steps of a parameter (0 = continuous).
	ValueCount int
	// ValueLabels names each step; position i labels the value with index i.
	ValueLabels []string
}

// Table is an immutable index table. Entries are kept sorted by index.
type Table struct {
	name    string
	entries []Entry
	byKey   map[string]int
}

// NewTable builds a table from entries. The entries are copied and sorted by
// index; gaps and duplicates are preserved so validation can report them.
// Duplicate keys are a programming error and make NewTable fail.
func NewTable(name string, entries ...Entry) (*Table, error) {
	sorted := make([]Entry, len(entries))
	for i, e := range entries {
		e.ValueLabels = slices.Clone(e.ValueLabels)
		sorted[i] = e
	}

	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Index, b.Index)
	})

	byKey := make(map[string]int, len(sorted))
	for i, e := range sorted {
		if _, ok := byKey[e.Key]; ok {
			return nil, fmt.Errorf("table %s: duplicate key %q", name, e.Key)
		}

		byKey[e.Key] = i
	}

	return &Table{name: name, entries: sorted, byKey: byKey}, nil
}

// MustTable is NewTable for static definitions; it panics on error.
func MustTable(name string, entries ...Entry) *Table {
	t, err := NewTable(name, entries...)
	if err != nil {
		panic(err)
	}

	return t
}

// Sequential builds entries with indices 0..n-1 in argument order.
// Every pair is key, name.
func Sequential(pairs ...[2]string) []Entry {
	out := make([]Entry, len(pairs))
	for i, p := range pairs {
		out[i] = Entry{Key: p[0], Index: i, Name: p[1]}
	}

	return out
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries sorted by index.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		e.ValueLabels = slices.Clone(e.ValueLabels)
		out[i] = e
	}

	return out
}

// Indices returns the sorted index sequence.
func (t *Table) Indices() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Index
	}

	return out
}

// Labels returns the entry names in index order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}

	return out
}

// Lookup returns the entry with key.
func (t *Table) Lookup(key string) (Entry, bool) {
	i, ok := t.byKey[key]
	if !ok {
		return Entry{}, false
	}

	e := t.entries[i]
	e.ValueLabels = slices.Clone(e.ValueLabels)

	return e, true
}

// Get returns the entry with key and panics when it is missing. Preset
// definitions look up keys they declared themselves.
func (t *Table) Get(key string) Entry {
	e, ok := t.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("table %s: no entry %q", t.name, key))
	}

	return e
}

// Index is shorthand for Get(key).Index.
func (t *Table) Index(key string) int {
	return t.Get(key).Index
}

// SelectorFor returns a parameter entry whose discrete values enumerate modes:
// value_count is the mode count and value_labels are the mode names.
func SelectorFor(key string, index int, name string, modes *Table) Entry {
	return Entry{
		Key:         key,
		Index:       index,
		Name:        name,
		ValueCount:  modes.Len(),
		ValueLabels: modes.Labels(),
	}
}
