package mapping

import (
	"preset-generator/internal/fragment"
)

// Merge returns left overridden by right. Neither operand is modified.
func Merge(left, right Partial) Partial {
	out := left.Clone()

	if right.Name != "" {
		out.Name = right.Name
	}

	if right.Group != "" {
		out.Group = right.Group
	}

	if right.ControlEnabled != nil {
		out.ControlEnabled = cloneBool(right.ControlEnabled)
	}

	if right.FeedbackEnabled != nil {
		out.FeedbackEnabled = cloneBool(right.FeedbackEnabled)
	}

	out.ActivationCondition = mergeOptional(left.ActivationCondition, right.ActivationCondition)
	out.Glue = mergeOptional(left.Glue, right.Glue)
	out.Source = mergeTagged(left.Source, right.Source)
	out.Target = mergeTagged(left.Target, right.Target)

	return out
}

// Compose folds Merge over parts from left to right.
func Compose(parts ...Partial) Partial {
	var out Partial
	for _, p := range parts {
		out = Merge(out, p)
	}

	return out
}

// mergeOptional keeps an unset side unset instead of materializing an
// empty fragment, so omitempty fields stay omitted.
func mergeOptional(left, right fragment.Fragment) fragment.Fragment {
	switch {
	case right == nil:
		return left.Clone()
	case left == nil:
		return right.Clone()
	default:
		return fragment.Merge(left, right)
	}
}

// mergeTagged replaces left wholesale when right names a different kind.
func mergeTagged(left, right fragment.Fragment) fragment.Fragment {
	lk, rk := left.StringAt("kind"), right.StringAt("kind")
	if lk != "" && rk != "" && lk != rk {
		return right.Clone()
	}

	return mergeOptional(left, right)
}
