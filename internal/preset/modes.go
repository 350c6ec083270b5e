package preset

import (
	"fmt"

	"preset-generator/internal/diagnostic"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
	"preset-generator/internal/vocab"
)

// checkModeSelectors warns about modes no mapping can switch to. Their
// groups are emitted but can never become active.
func checkModeSelectors(t Tables, ms []mapping.Partial) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	selectors := []struct {
		param string
		modes *registry.Table
		group func(string) string
	}{
		{ParamColumnMode, t.ColumnModes, ColumnModeGroup},
		{ParamKnobMode, t.KnobModes, KnobModeGroup},
	}

	for _, s := range selectors {
		selected := selectedModes(ms, t.Parameters.Index(s.param))

		for _, mode := range s.modes.Entries() {
			if _, ok := selected[vocab.ModeValue(mode.Index, s.modes.Len())]; ok {
				continue
			}

			res.AddWarning(diagnostic.CodeUnreachableMode,
				fmt.Sprintf("no control selects this mode; group %q can never be active", s.group(mode.Key)),
				s.modes.Name(), fmt.Sprintf("%s[%s]", s.modes.Name(), mode.Key))
		}
	}

	return res
}

// selectedModes collects the values pinned into parameter param.
func selectedModes(ms []mapping.Partial, param int) map[float64]struct{} {
	selected := map[float64]struct{}{}

	for _, m := range ms {
		if m.TargetKind() != string(vocab.TargetFxParameterValue) {
			continue
		}

		if index, _ := m.Target.Lookup("parameter", "index"); index != param {
			continue
		}

		bounds, _ := m.Glue["target_interval"].([]any)
		if len(bounds) != 2 || bounds[0] != bounds[1] {
			continue
		}

		if v, ok := bounds[0].(float64); ok {
			selected[v] = struct{}{}
		}
	}

	return selected
}
