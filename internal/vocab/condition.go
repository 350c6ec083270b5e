package vocab

import (
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
)

// ModifierState requires the boolean parameter at Parameter to equal On.
type ModifierState struct {
	Parameter int
	On        bool
}

// ModifierCondition is active while every state holds.
func ModifierCondition(states ...ModifierState) fragment.Fragment {
	mods := make([]any, len(states))
	for i, s := range states {
		mods[i] = fragment.Of("parameter", s.Parameter, "on", s.On)
	}

	return fragment.Of("kind", string(ConditionModifier), "modifiers", mods)
}

// BankCondition is active while the parameter at paramIndex selects bank.
func BankCondition(paramIndex, bank int) fragment.Fragment {
	return fragment.Of(
		"kind", string(ConditionBank),
		"parameter", paramIndex,
		"bank_index", bank,
	)
}

// When gates a mapping by condition.
func When(condition fragment.Fragment) mapping.Partial {
	return mapping.Partial{ActivationCondition: condition}
}

// Modifier gates a mapping on one modifier parameter being pressed (on) or
// released (!on).
func Modifier(paramIndex int, on bool) mapping.Partial {
	return When(ModifierCondition(ModifierState{Parameter: paramIndex, On: on}))
}

// Modifiers gates a mapping on several modifier states at once.
func Modifiers(states ...ModifierState) mapping.Partial {
	return When(ModifierCondition(states...))
}

// BankEquals gates a mapping on a bank parameter, e.g. column_mode == bank.
func BankEquals(paramIndex, bank int) mapping.Partial {
	return When(BankCondition(paramIndex, bank))
}
