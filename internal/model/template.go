// Package model defines the data structures shared by the measurement pipeline.
package model

import "strings"

// Pattern is the regular expression under test. It is opaque to memoprof.
type Pattern = string

// PumpPair is one (prefix, repeated unit) component of an attack template.
type PumpPair struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Pump   string `json:"pump" yaml:"pump"`
}

// AttackTemplate generates attack strings parameterized by a pump count.
type AttackTemplate struct {
	CouldParse bool       `json:"couldParse" yaml:"couldParse"`
	PumpPairs  []PumpPair `json:"pumpPairs" yaml:"pumpPairs"`
	Suffix     string     `json:"suffix" yaml:"suffix"`
}

// Build produces the concrete input for nPumps repetitions of every pump.
// Negative counts are treated as zero.
func (t AttackTemplate) Build(nPumps int) string {
	if nPumps < 0 {
		nPumps = 0
	}

	var b strings.Builder

	for _, pair := range t.PumpPairs {
		b.WriteString(pair.Prefix)
		b.WriteString(strings.Repeat(pair.Pump, nPumps))
	}

	b.WriteString(t.Suffix)

	return b.String()
}

// Clone returns a deep copy so derived templates never share pump slices.
func (t AttackTemplate) Clone() AttackTemplate {
	pairs := make([]PumpPair, len(t.PumpPairs))
	copy(pairs, t.PumpPairs)

	return AttackTemplate{
		CouldParse: t.CouldParse,
		PumpPairs:  pairs,
		Suffix:     t.Suffix,
	}
}

// String renders the template in the compact prefix:pump:suffix notation.
func (t AttackTemplate) String() string {
	parts := make([]string, 0, len(t.PumpPairs)+1)
	for _, pair := range t.PumpPairs {
		parts = append(parts, pair.Prefix+":"+pair.Pump)
	}

	parts = append(parts, t.Suffix)

	return strings.Join(parts, ":")
}

// Regex is a pattern together with its candidate attack templates.
// Template order is the priority order used to break ranking ties.
type Regex struct {
	Pattern   Pattern
	Nick      string
	Templates []AttackTemplate
}
