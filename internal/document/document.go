package document

import (
	"preset-generator/internal/common"
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
)

// KindMainCompartment is the only document kind produced.
const KindMainCompartment = "MainCompartment"

// Document is the generated preset.
type Document struct {
	Kind  string      `json:"kind" yaml:"kind"`
	Value Compartment `json:"value" yaml:"value"`
}

// Compartment is the document body.
type Compartment struct {
	Parameters []Parameter       `json:"parameters" yaml:"parameters"`
	Groups     []registry.Group  `json:"groups" yaml:"groups"`
	Mappings   []mapping.Partial `json:"mappings" yaml:"mappings"`
}

// Parameter is the host-facing form of a parameter table entry.
type Parameter struct {
	Index       int      `json:"index" yaml:"index"`
	Name        string   `json:"name" yaml:"name"`
	ValueCount  int      `json:"value_count,omitempty" yaml:"value_count,omitempty"`
	ValueLabels []string `json:"value_labels,omitempty" yaml:"value_labels,omitempty"`
}

// Input is everything the emitter and the validator look at.
type Input struct {
	// Parameters is the parameter table emitted into the document.
	Parameters *registry.Table
	// ModeTables are index tables addressed through parameters; they are
	// validated but only reach the document as value labels.
	ModeTables []*registry.Table
	// Groups is the group registry.
	Groups *registry.Groups
	// Mappings are the assembled mappings in emission order.
	Mappings []mapping.Partial
}

func toParameter(e registry.Entry) Parameter {
	return Parameter{
		Index:       e.Index,
		Name:        e.Name,
		ValueCount:  e.ValueCount,
		ValueLabels: e.ValueLabels,
	}
}

// Emit builds the document from in. It performs no validation.
func Emit(in Input) *Document {
	doc := &Document{
		Kind: KindMainCompartment,
		Value: Compartment{
			Parameters: []Parameter{},
			Groups:     []registry.Group{},
			Mappings:   make([]mapping.Partial, 0, len(in.Mappings)),
		},
	}

	if in.Parameters != nil {
		doc.Value.Parameters = common.Map(in.Parameters.Entries(), toParameter)
	}

	if in.Groups != nil {
		doc.Value.Groups = append(doc.Value.Groups, in.Groups.All()...)
	}

	for _, m := range in.Mappings {
		m = m.Clone()
		if m.Glue == nil {
			m.Glue = fragment.Fragment{}
		}

		doc.Value.Mappings = append(doc.Value.Mappings, m)
	}

	return doc
}
