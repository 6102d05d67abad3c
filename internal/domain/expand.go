package domain

import (
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Expander derives zero or more independently buildable templates from one.
// Implementations must be pure and deterministic.
type Expander func(m.AttackTemplate) []m.AttackTemplate

// IdentityExpander returns the template unchanged.
func IdentityExpander(t m.AttackTemplate) []m.AttackTemplate {
	return []m.AttackTemplate{t.Clone()}
}

// ExpandPumpPairs returns the original template followed by one variant per
// pump pair in which only that pair is pumped. Earlier pairs are folded into
// the prefix with a single repetition and later pairs into the suffix.
func ExpandPumpPairs(t m.AttackTemplate) []m.AttackTemplate {
	out := []m.AttackTemplate{t.Clone()}

	if len(t.PumpPairs) < 2 {
		return out
	}

	for i, pair := range t.PumpPairs {
		prefix := ""
		for _, before := range t.PumpPairs[:i] {
			prefix += before.Prefix + before.Pump
		}

		suffix := ""
		for _, after := range t.PumpPairs[i+1:] {
			suffix += after.Prefix + after.Pump
		}

		out = append(out, m.AttackTemplate{
			CouldParse: t.CouldParse,
			PumpPairs:  []m.PumpPair{{Prefix: prefix + pair.Prefix, Pump: pair.Pump}},
			Suffix:     suffix + t.Suffix,
		})
	}

	return out
}

func expandAll(templates []m.AttackTemplate, expand Expander) []m.AttackTemplate {
	if expand == nil {
		return templates
	}

	var out []m.AttackTemplate
	for _, t := range templates {
		out = append(out, expand(t)...)
	}

	return out
}
