package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"preset-generator/internal/diagnostic"
	"preset-generator/internal/fragment"
	"preset-generator/internal/mapping"
	"preset-generator/internal/registry"
)

// Validate checks in and reports every violation found. It never stops at
// the first problem.
func Validate(in Input) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if in.Parameters != nil {
		validateTable(res, in.Parameters)
		validateLabels(res, in.Parameters)
	}

	for _, t := range in.ModeTables {
		if t != nil {
			validateTable(res, t)
		}
	}

	validateGroups(res, in.Groups)
	validateMappings(res, in.Mappings, in.Groups)
	validateGroupUse(res, in.Groups, in.Mappings)

	return res
}

// validateTable requires the sorted indices to be exactly 0..n-1.
func validateTable(res *diagnostic.Diagnostics, t *registry.Table) {
	expected := 0

	for _, e := range t.Entries() {
		path := fmt.Sprintf("%s[%s]", t.Name(), e.Key)

		switch {
		case e.Index < 0:
			res.AddError(diagnostic.CodeIndexGap,
				fmt.Sprintf("negative index %d", e.Index), t.Name(), path)
			continue
		case e.Index < expected:
			res.AddError(diagnostic.CodeIndexGap,
				fmt.Sprintf("index %d is used more than once", e.Index), t.Name(), path)
			continue
		case e.Index > expected:
			res.AddError(diagnostic.CodeIndexGap,
				fmt.Sprintf("missing %s before index %d", describeRange(expected, e.Index-1), e.Index),
				t.Name(), path)
		}

		expected = e.Index + 1
	}
}

func describeRange(from, to int) string {
	if from == to {
		return fmt.Sprintf("index %d", from)
	}

	return fmt.Sprintf("indices %d..%d", from, to)
}

func validateLabels(res *diagnostic.Diagnostics, t *registry.Table) {
	for _, e := range t.Entries() {
		if len(e.ValueLabels) == 0 || e.ValueCount == len(e.ValueLabels) {
			continue
		}

		res.AddError(diagnostic.CodeLabelCountMismatch,
			fmt.Sprintf("value_count is %d but %d value labels are given", e.ValueCount, len(e.ValueLabels)),
			t.Name(), fmt.Sprintf("%s[%s]", t.Name(), e.Key))
	}
}

func validateGroups(res *diagnostic.Diagnostics, groups *registry.Groups) {
	if groups == nil {
		return
	}

	seen := map[string]struct{}{}

	for i, g := range groups.All() {
		if _, ok := seen[g.ID]; ok {
			res.AddError(diagnostic.CodeDuplicateGroup,
				fmt.Sprintf("group id %q is registered more than once", g.ID),
				"groups", fmt.Sprintf("groups[%d]", i))

			continue
		}

		seen[g.ID] = struct{}{}
	}
}

// validateGroupUse notes registered groups no mapping refers to.
func validateGroupUse(res *diagnostic.Diagnostics, groups *registry.Groups, ms []mapping.Partial) {
	if groups == nil {
		return
	}

	used := map[string]struct{}{}
	for _, m := range ms {
		used[m.Group] = struct{}{}
	}

	for i, g := range groups.All() {
		if _, ok := used[g.ID]; !ok {
			res.AddInfo(diagnostic.CodeUnusedGroup, "group has no mappings",
				"groups", fmt.Sprintf("groups[%d] (%s)", i, g.ID))
		}
	}
}

func validateMappings(res *diagnostic.Diagnostics, ms []mapping.Partial, groups *registry.Groups) {
	firstByKey := map[string]int{}

	for i, m := range ms {
		path := mappingPath(i, m)

		if missing := missingParts(m); len(missing) > 0 {
			res.AddError(diagnostic.CodeIncompleteMapping,
				"mapping has no "+strings.Join(missing, " and "), "mappings", path)

			continue
		}

		if m.Group != "" && (groups == nil || !groups.Has(m.Group)) {
			res.AddError(diagnostic.CodeUnknownGroup,
				fmt.Sprintf("group %q is not registered", m.Group), "mappings", path)
		}

		key := alternativeKey(m)
		if first, ok := firstByKey[key]; ok {
			res.AddWarning(diagnostic.CodeOverlappingAlternatives,
				fmt.Sprintf("control %q has the same group, activation condition and fire mode as mappings[%d]",
					m.SourceID(), first),
				"mappings", path)

			continue
		}

		firstByKey[key] = i
	}
}

func mappingPath(i int, m mapping.Partial) string {
	if id := m.SourceID(); id != "" {
		return fmt.Sprintf("mappings[%d] (%s)", i, id)
	}

	return fmt.Sprintf("mappings[%d]", i)
}

func missingParts(m mapping.Partial) []string {
	var missing []string
	if m.Source.IsEmpty() {
		missing = append(missing, "source")
	}

	if m.Target.IsEmpty() {
		missing = append(missing, "target")
	}

	return missing
}

// alternativeKey identifies what the host can use to tell two mappings on the
// same control apart at runtime.
func alternativeKey(m mapping.Partial) string {
	var fireMode fragment.Fragment
	if v, ok := m.Glue.Lookup("fire_mode"); ok {
		fireMode, _ = v.(fragment.Fragment)
	}

	return strings.Join([]string{
		m.SourceID(),
		m.Group,
		canonical(m.ActivationCondition),
		canonical(fireMode),
		fmt.Sprint(m.ControlEnabled == nil || *m.ControlEnabled),
	}, "\x00")
}

// canonical renders f with sorted keys.
func canonical(f fragment.Fragment) string {
	if f == nil {
		return ""
	}

	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Sprintf("%v", f)
	}

	return string(data)
}
