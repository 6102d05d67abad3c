package model

import (
	"fmt"
	"strconv"
	"time"
)

// GrowthRate is the acceleration observed for the selected attack template.
type GrowthRate struct {
	Unbounded    bool  `json:"unbounded"`
	Acceleration int64 `json:"acceleration"`
}

func (g GrowthRate) String() string {
	if g.Unbounded {
		return "INF"
	}

	return strconv.FormatInt(g.Acceleration, 10)
}

// CostRecord is the reduced cost of one scheme pair at one pump count.
type CostRecord struct {
	Pattern             Pattern         `json:"pattern"`
	Selection           SelectionScheme `json:"selectionScheme"`
	Encoding            EncodingScheme  `json:"encodingScheme"`
	PumpCount           int             `json:"pumpCount"`
	InputLength         int             `json:"inputLength"`
	AutomatonSize       int             `json:"automatonSize"`
	SelectedVertexCount int             `json:"selectedVertexCount"`
	TimeCostUS          int64           `json:"timeCostUS"`
	SpaceCost           int64           `json:"spaceCost"`
	SpaceBytes          int64           `json:"spaceBytes"`
	TimeCV              float64         `json:"timeCV"`
	Trials              int             `json:"trials"`
	Matched             bool            `json:"matched"`
}

// Pair returns the scheme pair the record was measured under.
func (c CostRecord) Pair() SchemePair {
	return SchemePair{Selection: c.Selection, Encoding: c.Encoding}
}

// DynamicAnalysisResult owns every cost record for one (pattern, template) pair.
type DynamicAnalysisResult struct {
	Pattern       Pattern           `json:"pattern"`
	Template      AttackTemplate    `json:"evilInput"`
	GrowthRate    GrowthRate        `json:"growthRate"`
	CostRecords   []CostRecord      `json:"costRecords,omitempty"`
	Valid         bool              `json:"valid"`
	ReferenceTags map[string]string `json:"referenceTags,omitempty"`
}

// FlatRecord is one tabular row: a scheme pair plus per-pattern metadata.
type FlatRecord struct {
	Pattern             Pattern           `json:"pattern"`
	Selection           string            `json:"selectionScheme"`
	Encoding            string            `json:"encodingScheme"`
	PumpCount           int               `json:"pumpCount"`
	InputLength         int               `json:"inputLength"`
	AutomatonSize       int               `json:"automatonSize"`
	SelectedVertexCount int               `json:"selectedVertexCount"`
	TimeCostUS          int64             `json:"timeCostUS"`
	SpaceCost           int64             `json:"spaceCost"`
	SpaceBytes          int64             `json:"spaceBytes"`
	GrowthRate          string            `json:"growthRate"`
	ReferenceTags       map[string]string `json:"referenceTags,omitempty"`
}

// ReportStatus classifies the outcome of analyzing one pattern.
type ReportStatus int

const (
	// StatusSuperLinear means an attack template showed super-linear growth.
	StatusSuperLinear ReportStatus = iota
	// StatusNotSuperLinear means no template showed super-linear growth.
	StatusNotSuperLinear
	// StatusInvalidPattern means the engine rejected the pattern syntax.
	StatusInvalidPattern
	// StatusMeasurementTimeout means a memoized measurement timed out.
	StatusMeasurementTimeout
	// StatusInvariantViolation means cost records broke a structural bound.
	StatusInvariantViolation
	// StatusEngineFailure means the engine failed in some other way.
	StatusEngineFailure
)

// AllStatuses lists every status in display order.
var AllStatuses = []ReportStatus{
	StatusSuperLinear,
	StatusNotSuperLinear,
	StatusInvalidPattern,
	StatusMeasurementTimeout,
	StatusInvariantViolation,
	StatusEngineFailure,
}

func (s ReportStatus) String() string {
	switch s {
	case StatusSuperLinear:
		return "sl"
	case StatusNotSuperLinear:
		return "not-sl"
	case StatusInvalidPattern:
		return "invalid-pattern"
	case StatusMeasurementTimeout:
		return "measurement-timeout"
	case StatusInvariantViolation:
		return "invariant-violation"
	case StatusEngineFailure:
		return "engine-failure"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// IsFailure reports whether the status counts as a failed analysis.
func (s ReportStatus) IsFailure() bool {
	switch s {
	case StatusMeasurementTimeout, StatusInvariantViolation, StatusEngineFailure:
		return true
	case StatusSuperLinear, StatusNotSuperLinear, StatusInvalidPattern:
		return false
	}

	return true
}

// MarshalText implements encoding.TextMarshaler.
func (s ReportStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ReportStatus) UnmarshalText(text []byte) error {
	for _, candidate := range AllStatuses {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown report status %q", string(text))
}

// Report is the serializable outcome of analyzing one pattern.
type Report struct {
	RunID    string                 `json:"runId"`
	Index    int                    `json:"index"`
	Pattern  Pattern                `json:"pattern"`
	Nick     string                 `json:"nick,omitempty"`
	Status   ReportStatus           `json:"status"`
	Cause    string                 `json:"cause,omitempty"`
	Result   *DynamicAnalysisResult `json:"result,omitempty"`
	Elapsed  time.Duration          `json:"elapsed"`
	Finished time.Time              `json:"finished"`
}

// Failure pairs an offending pattern with a human-readable cause.
type Failure struct {
	Pattern Pattern      `json:"pattern"`
	Status  ReportStatus `json:"status"`
	Cause   string       `json:"cause"`
}

// Summary is the final tally of a batch run.
type Summary struct {
	RunID    string               `json:"runId"`
	Total    int                  `json:"total"`
	ByStatus map[ReportStatus]int `json:"byStatus"`
	Failures []Failure            `json:"failures,omitempty"`
}

// NewSummary returns an empty summary for the run.
func NewSummary(runID string) Summary {
	return Summary{
		RunID:    runID,
		ByStatus: make(map[ReportStatus]int, len(AllStatuses)),
	}
}

// Add accounts for one report.
func (s *Summary) Add(report Report) {
	s.Total++
	s.ByStatus[report.Status]++

	if report.Status.IsFailure() || report.Status == StatusInvalidPattern {
		s.Failures = append(s.Failures, Failure{
			Pattern: report.Pattern,
			Status:  report.Status,
			Cause:   report.Cause,
		})
	}
}
