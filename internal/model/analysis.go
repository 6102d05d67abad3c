package model

// MemoizationStaticAnalysis records |Phi| for each memoizing selection policy.
type MemoizationStaticAnalysis struct {
	Pattern                  Pattern        `json:"pattern"`
	AutomatonSize            int            `json:"nStates"`
	Policy2nSelectedVertices map[string]int `json:"policy2nSelectedVertices"`
}

// CurvePoint is one sample of a growth-curve case study.
type CurvePoint struct {
	Regex       string `json:"regex"`
	Memoized    bool   `json:"memoized"`
	Pumps       int    `json:"nPumps"`
	MatchTimeMS int64  `json:"matchTimeMS"`
}
