package mapping

import (
	"preset-generator/internal/fragment"
)

// Partial is a possibly incomplete mapping. The zero value is the identity
// element of Merge.
type Partial struct {
	// Name is a human-readable label shown by the host.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Group is the id of the group this mapping belongs to.
	Group string `json:"group,omitempty" yaml:"group,omitempty"`

	// ControlEnabled switches the control direction on or off.
	ControlEnabled *bool `json:"control_enabled,omitempty" yaml:"control_enabled,omitempty"`

	// FeedbackEnabled switches the feedback direction on or off.
	FeedbackEnabled *bool `json:"feedback_enabled,omitempty" yaml:"feedback_enabled,omitempty"`

	// ActivationCondition gates whether the mapping currently has effect.
	ActivationCondition fragment.Fragment `json:"activation_condition,omitempty" yaml:"activation_condition,omitempty"`

	// Source identifies the virtual control.
	Source fragment.Fragment `json:"source" yaml:"source"`

	// Target identifies the action or destination.
	Target fragment.Fragment `json:"target" yaml:"target"`

	// Glue shapes the behavior between source and target.
	Glue fragment.Fragment `json:"glue" yaml:"glue"`
}

// IsComplete reports whether p carries both a source and a target.
func (p Partial) IsComplete() bool {
	return !p.Source.IsEmpty() && !p.Target.IsEmpty()
}

// SourceID returns the source control id, or "" when unset.
func (p Partial) SourceID() string {
	return p.Source.StringAt("id")
}

// TargetKind returns the target kind tag, or "" when unset.
func (p Partial) TargetKind() string {
	return p.Target.StringAt("kind")
}

// Add is the chaining form of Merge: a.Add(b).Add(c).
func (p Partial) Add(other Partial) Partial {
	return Merge(p, other)
}

// Clone returns a deep copy of p.
func (p Partial) Clone() Partial {
	out := p
	out.ControlEnabled = cloneBool(p.ControlEnabled)
	out.FeedbackEnabled = cloneBool(p.FeedbackEnabled)
	out.ActivationCondition = p.ActivationCondition.Clone()
	out.Source = p.Source.Clone()
	out.Target = p.Target.Clone()
	out.Glue = p.Glue.Clone()

	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}

	v := *b

	return &v
}
