package domain

import (
	"fmt"
	"sort"
	"strings"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

// InvariantViolationError lists every structural bound a record set broke.
type InvariantViolationError struct {
	Pattern    m.Pattern
	Violations []string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%d invariant violation(s) for /%s/: %s", len(e.Violations), e.Pattern, strings.Join(e.Violations, "; "))
}

// Validator checks cost records against the structural space bounds.
type Validator struct{}

// NewValidator constructs a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks each pump count independently and returns an
// *InvariantViolationError describing every violation, or nil.
func (v *Validator) Validate(pattern m.Pattern, records []m.CostRecord) error {
	byPump := make(map[int]map[m.SchemePair]m.CostRecord)

	for _, r := range records {
		if byPump[r.PumpCount] == nil {
			byPump[r.PumpCount] = make(map[m.SchemePair]m.CostRecord)
		}

		byPump[r.PumpCount][r.Pair()] = r
	}

	pumps := make([]int, 0, len(byPump))
	for p := range byPump {
		pumps = append(pumps, p)
	}

	sort.Ints(pumps)

	var violations []string

	for _, p := range pumps {
		violations = append(violations, checkPumpCount(p, byPump[p])...)
	}

	if len(violations) == 0 {
		return nil
	}

	return &InvariantViolationError{Pattern: pattern, Violations: violations}
}

func checkPumpCount(pumps int, cells map[m.SchemePair]m.CostRecord) []string {
	var violations []string

	fullNone := m.SchemePair{Selection: m.SelectionFull, Encoding: m.EncodingNone}

	upper, hasUpper := cells[fullNone]
	if !hasUpper {
		violations = append(violations, fmt.Sprintf("pumps=%d: missing %s baseline", pumps, fullNone))
	} else {
		expected := int64(upper.AutomatonSize) * int64(upper.InputLength+1)
		if upper.SpaceCost != expected {
			violations = append(violations, fmt.Sprintf("pumps=%d: space(%s)=%d, want |Q|*(n+1)=%d*%d=%d",
				pumps, fullNone, upper.SpaceCost, upper.AutomatonSize, upper.InputLength+1, expected))
		}
	}

	for _, selection := range m.MemoizingSelections {
		for _, encoding := range m.AllEncodings {
			pair := m.SchemePair{Selection: selection, Encoding: encoding}

			rec, ok := cells[pair]
			if !ok {
				continue
			}

			if hasUpper && rec.SpaceCost > upper.SpaceCost {
				violations = append(violations, fmt.Sprintf("pumps=%d: space(%s)=%d exceeds space(%s)=%d",
					pumps, pair, rec.SpaceCost, fullNone, upper.SpaceCost))
			}

			if encoding == m.EncodingNone {
				continue
			}

			basePair := m.SchemePair{Selection: selection, Encoding: m.EncodingNone}

			base, ok := cells[basePair]
			if !ok {
				violations = append(violations, fmt.Sprintf("pumps=%d: missing %s baseline for %s", pumps, basePair, pair))
				continue
			}

			if rec.SpaceCost > base.SpaceCost {
				violations = append(violations, fmt.Sprintf("pumps=%d: space(%s)=%d exceeds space(%s)=%d",
					pumps, pair, rec.SpaceCost, basePair, base.SpaceCost))
			}
		}
	}

	return violations
}
