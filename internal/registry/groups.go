package registry

import (
	"preset-generator/internal/fragment"
)

// GroupDef declares a group under a registry key.
type GroupDef struct {
	Key                 string
	Name                string
	ActivationCondition fragment.Fragment
}

// Group is a registered group. ID is copied from the registry key.
type Group struct {
	ID                  string            `json:"id" yaml:"id"`
	Name                string            `json:"name" yaml:"name"`
	ActivationCondition fragment.Fragment `json:"activation_condition,omitempty" yaml:"activation_condition,omitempty"`
}

// Groups is an immutable group registry preserving registration order.
type Groups struct {
	groups []Group
	byID   map[string]int
}

// NewGroups registers defs in order. A later def with an already used key
// is kept as well so validation can report the duplicate.
func NewGroups(defs ...GroupDef) *Groups {
	g := &Groups{byID: make(map[string]int, len(defs))}

	for _, d := range defs {
		if _, ok := g.byID[d.Key]; !ok {
			g.byID[d.Key] = len(g.groups)
		}

		g.groups = append(g.groups, Group{
			ID:                  d.Key,
			Name:                d.Name,
			ActivationCondition: d.ActivationCondition.Clone(),
		})
	}

	return g
}

// All returns copies of the groups in registration order.
func (g *Groups) All() []Group {
	out := make([]Group, len(g.groups))
	for i, gr := range g.groups {
		gr.ActivationCondition = gr.ActivationCondition.Clone()
		out[i] = gr
	}

	return out
}

// Len returns the number of registered groups.
func (g *Groups) Len() int {
	return len(g.groups)
}

// Has reports whether id is registered.
func (g *Groups) Has(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Lookup returns the first group registered under id.
func (g *Groups) Lookup(id string) (Group, bool) {
	i, ok := g.byID[id]
	if !ok {
		return Group{}, false
	}

	gr := g.groups[i]
	gr.ActivationCondition = gr.ActivationCondition.Clone()

	return gr, true
}
