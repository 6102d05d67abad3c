package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Reference engine behavior tags.
const (
	TagMatch    = "match"
	TagMismatch = "mismatch"
	TagTimeout  = "timeout"
	TagInvalid  = "invalid"
	TagError    = "error"
)

// FailureKind distinguishes the fatal per-pattern failures.
type FailureKind int

const (
	// FailureMeasurementTimeout is a timeout under memoization.
	FailureMeasurementTimeout FailureKind = iota
	// FailureInvariantViolation is an inconsistent cost record set.
	FailureInvariantViolation
	// FailureEngine is any other engine or pipeline failure.
	FailureEngine
)

func (k FailureKind) String() string {
	return k.Status().String()
}

// Status maps the failure kind onto a report status.
func (k FailureKind) Status() m.ReportStatus {
	switch k {
	case FailureMeasurementTimeout:
		return m.StatusMeasurementTimeout
	case FailureInvariantViolation:
		return m.StatusInvariantViolation
	case FailureEngine:
		return m.StatusEngineFailure
	}

	return m.StatusEngineFailure
}

// Outcome is the closed set of per-pattern results. Implementations are
// OutcomeSuperLinear, OutcomeNotSuperLinear, OutcomeInvalidPattern and OutcomeFailed.
type Outcome interface {
	outcome()
}

// OutcomeSuperLinear carries the accepted analysis result.
type OutcomeSuperLinear struct {
	Result m.DynamicAnalysisResult
}

// OutcomeNotSuperLinear means no template showed accelerating growth.
type OutcomeNotSuperLinear struct {
	Considered int
}

// OutcomeInvalidPattern means the engine rejected the pattern.
type OutcomeInvalidPattern struct {
	Cause string
}

// OutcomeFailed is fatal for the pattern. Result is set when cost records
// were collected but rejected.
type OutcomeFailed struct {
	Kind   FailureKind
	Err    error
	Result *m.DynamicAnalysisResult
}

func (OutcomeSuperLinear) outcome()    {}
func (OutcomeNotSuperLinear) outcome() {}
func (OutcomeInvalidPattern) outcome() {}
func (OutcomeFailed) outcome()         {}

// Analyzer runs the per-pattern pipeline: select, measure, validate, tag.
type Analyzer interface {
	Analyze(ctx context.Context, regex m.Regex) Outcome
}

type analyzer struct {
	selector   *Selector
	measurer   *Measurer
	validator  *Validator
	references adapter.ReferenceEngines
	cfg        Config
}

// NewAnalyzer wires the pipeline stages around one engine.
// references may be nil when no reference engines are configured.
func NewAnalyzer(engine adapter.EngineAdapter, references adapter.ReferenceEngines, cfg Config, expand Expander) Analyzer {
	return &analyzer{
		selector:   NewSelector(engine, cfg, expand),
		measurer:   NewMeasurer(engine, cfg),
		validator:  NewValidator(),
		references: references,
		cfg:        cfg,
	}
}

func (a *analyzer) Analyze(ctx context.Context, regex m.Regex) Outcome {
	slog.Info("Working on regex", "pattern", regex.Pattern)

	detection, err := a.selector.Select(ctx, regex)
	if err != nil {
		return classifyError(err, nil)
	}

	if !detection.SuperLinear {
		return OutcomeNotSuperLinear{Considered: detection.Considered}
	}

	result := m.DynamicAnalysisResult{
		Pattern:    regex.Pattern,
		Template:   detection.Template,
		GrowthRate: detection.GrowthRate,
	}

	if a.cfg.DetectOnly {
		return OutcomeSuperLinear{Result: result}
	}

	records, err := a.measurer.Measure(ctx, regex.Pattern, detection.Template)
	if err != nil {
		return classifyError(err, nil)
	}

	result.CostRecords = records

	if err := a.validator.Validate(regex.Pattern, records); err != nil {
		slog.Error("invariant violation", "pattern", regex.Pattern, "error", err)
		return OutcomeFailed{Kind: FailureInvariantViolation, Err: err, Result: &result}
	}

	result.Valid = true
	result.ReferenceTags = a.referenceTags(ctx, result)

	slog.Info("Completed regex", "pattern", regex.Pattern, "records", len(records))

	return OutcomeSuperLinear{Result: result}
}

func (a *analyzer) referenceTags(ctx context.Context, result m.DynamicAnalysisResult) map[string]string {
	if a.references == nil || len(a.references.Names()) == 0 || len(result.CostRecords) == 0 {
		return nil
	}

	baseline := result.CostRecords[0]
	query := adapter.ReferenceQuery{
		Pattern:   result.Pattern,
		EvilInput: result.Template,
		NPumps:    baseline.PumpCount,
		TimeoutMS: a.cfg.ReferenceTimeout.Milliseconds(),
	}

	tags := make(map[string]string, len(a.references.Names()))

	for _, name := range a.references.Names() {
		res, err := a.references.Query(ctx, name, query, a.cfg.ReferenceTimeout)
		tags[name] = ReferenceTag(res, err, baseline.Matched)
		slog.Debug("reference engine", "pattern", result.Pattern, "engine", name, "tag", tags[name], "error", err)
	}

	return tags
}

// ReferenceTag summarizes how a reference engine behaved relative to the memoizing engine.
func ReferenceTag(res adapter.ReferenceResult, err error, memoMatched bool) string {
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		return TagTimeout
	case err != nil:
		return TagError
	case res.ExceptionString == adapter.InvalidInputException:
		return TagInvalid
	case res.ExceptionString == adapter.MatchTimeoutException:
		return TagTimeout
	case res.ExceptionString != "" && res.ExceptionString != adapter.NoException:
		return TagError
	case res.Matched == memoMatched:
		return TagMatch
	}

	return TagMismatch
}

func classifyError(err error, result *m.DynamicAnalysisResult) Outcome {
	var violation *InvariantViolationError

	switch {
	case errors.Is(err, adapter.ErrSyntax):
		return OutcomeInvalidPattern{Cause: err.Error()}
	case errors.Is(err, adapter.ErrTimeout):
		return OutcomeFailed{Kind: FailureMeasurementTimeout, Err: err, Result: result}
	case errors.Is(err, ErrNondeterministicSpace), errors.As(err, &violation):
		return OutcomeFailed{Kind: FailureInvariantViolation, Err: err, Result: result}
	}

	return OutcomeFailed{Kind: FailureEngine, Err: fmt.Errorf("analysis failed: %w", err), Result: result}
}
