package model

// SuiteFile is the on-disk form of an engine self-test suite.
type SuiteFile struct {
	Semantic    []SemanticEntry    `yaml:"semantic"`
	Performance []PerformanceEntry `yaml:"performance"`
}

// SemanticEntry expects a match, a mismatch or a syntax error.
type SemanticEntry struct {
	Pattern Pattern `yaml:"pattern"`
	Input   string  `yaml:"input"`
	Expect  string  `yaml:"expect"`
}

// PerformanceEntry expects a visit-count growth curve.
// Template uses the compact prefix:pump:suffix notation.
type PerformanceEntry struct {
	Pattern  Pattern `yaml:"pattern"`
	Template string  `yaml:"template"`
	Memo     string  `yaml:"memo"`
	Curve    string  `yaml:"curve"`
}

// CaseResult is the verdict of one self-test case.
type CaseResult struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Passed      bool     `json:"passed"`
	Failures    []string `json:"failures,omitempty"`
}

// SuiteResult tallies one suite run.
type SuiteResult struct {
	Source string       `json:"source"`
	Cases  []CaseResult `json:"cases"`
}

// FailedCases counts cases with at least one failing configuration.
func (r SuiteResult) FailedCases() int {
	n := 0

	for _, c := range r.Cases {
		if !c.Passed {
			n++
		}
	}

	return n
}
