package vocab

import (
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
)

func glue(f fragment.Fragment) mapping.Partial {
	return mapping.Partial{Glue: f}
}

// Toggle flips the target on every press.
func Toggle() mapping.Partial {
	return glue(fragment.Of("absolute_mode", string(AbsoluteToggleButton)))
}

// Increment steps the target up by one on every press.
func Increment(wrap bool) mapping.Partial {
	return glue(fragment.Of(
		"absolute_mode", string(AbsoluteIncrementalButton),
		"wrap", wrap,
	))
}

// Decrement steps the target down by one on every press.
func Decrement(wrap bool) mapping.Partial {
	return glue(fragment.Of(
		"absolute_mode", string(AbsoluteIncrementalButton),
		"wrap", wrap,
		"reverse", true,
	))
}

// AfterTimeout fires once the button has been held for timeoutMs.
func AfterTimeout(timeoutMs int) mapping.Partial {
	return fireMode(fragment.Of("kind", string(FireAfterTimeout), "timeout", timeoutMs))
}

// OnSinglePress fires on a press shorter than maxDurationMs that is not
// followed by a second press.
func OnSinglePress(maxDurationMs int) mapping.Partial {
	return fireMode(fragment.Of("kind", string(FireOnSinglePress), "max_duration", maxDurationMs))
}

// OnDoublePress fires on the second of two quick presses.
func OnDoublePress() mapping.Partial {
	return fireMode(fragment.Of("kind", string(FireOnDoublePress)))
}

func fireMode(f fragment.Fragment) mapping.Partial {
	return glue(fragment.Of("fire_mode", f))
}

// TextFeedback sends the host-evaluated text expression as feedback.
func TextFeedback(expression string) mapping.Partial {
	return glue(fragment.Of("feedback", fragment.Of(
		"kind", string(FeedbackText),
		"text_expression", expression,
	)))
}

// NumericFeedback sends the target value through transformation as feedback.
func NumericFeedback(transformation string) mapping.Partial {
	return glue(fragment.Of("feedback", fragment.Of(
		"kind", string(FeedbackNumeric),
		"transformation", transformation,
	)))
}

// ControlEnabled switches the control direction.
func ControlEnabled(on bool) mapping.Partial {
	return mapping.Partial{ControlEnabled: &on}
}

// FeedbackEnabled switches the feedback direction.
func FeedbackEnabled(on bool) mapping.Partial {
	return mapping.Partial{FeedbackEnabled: &on}
}

// ControlOnly disables feedback.
func ControlOnly() mapping.Partial {
	return FeedbackEnabled(false)
}

// FeedbackOnly disables control.
func FeedbackOnly() mapping.Partial {
	return ControlEnabled(false)
}
