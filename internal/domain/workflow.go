package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/controller"
	m "memoprof.dev/pkg/memoprof/internal/model"
	"memoprof.dev/pkg/memoprof/pkg/spill"
)

// MeasureArgs contains the arguments for a batch measurement run.
type MeasureArgs struct {
	RegexFile  string
	Output     string
	EngineName string
	Config     Config
	Engine     adapter.EngineAdapter
	References adapter.ReferenceEngines
	Sink       adapter.CostSink
	SpillDir   string
}

// ViewArgs contains the arguments for browsing stored reports.
type ViewArgs struct {
	Output string
}

// Workflow defines the user-facing operations of the profiler.
type Workflow interface {
	Measure(ctx context.Context, args MeasureArgs) error
	Phi(ctx context.Context, args PhiArgs) error
	Curve(ctx context.Context, args CurveArgs) error
	SelfTest(ctx context.Context, args SelfTestArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.RegexSource
	adapter.ReportStore
	adapter.SuiteLoader
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.RegexSource,
	store adapter.ReportStore,
	suites adapter.SuiteLoader,
	ui controller.UI,
) Workflow {
	return &workflow{
		RegexSource: source,
		ReportStore: store,
		SuiteLoader: suites,
		UI:          ui,
	}
}

// Measure analyzes every pattern in the regex file and persists the results.
// Per-pattern failures are recorded in the reports; only infrastructure
// failures are returned.
func (w *workflow) Measure(ctx context.Context, args MeasureArgs) error {
	if err := args.Config.Validate(); err != nil {
		return err
	}

	regexes, err := w.Load(ctx, args.RegexFile)
	if err != nil {
		return fmt.Errorf("load regexes: %w", err)
	}

	runID := uuid.NewString()
	workers := args.Config.EffectiveWorkers()

	if err := w.Start(ctx, controller.WithMeasureMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayRunInfo(ctx, controller.RunInfo{
		RunID:    runID,
		Engine:   args.EngineName,
		Patterns: len(regexes),
		Workers:  workers,
	})

	slog.Info("Starting run", "run", runID, "patterns", len(regexes), "workers", workers)

	reports, err := w.analyzeAll(ctx, runID, regexes, args, workers)
	if err != nil {
		return err
	}

	if err := w.persist(ctx, runID, reports, args); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		slog.Warn("Run interrupted", "run", runID, "completed", len(reports), "patterns", len(regexes))
		return fmt.Errorf("run interrupted after %d of %d pattern(s): %w", len(reports), len(regexes), err)
	}

	return nil
}

func (w *workflow) analyzeAll(ctx context.Context, runID string, regexes []m.Regex, args MeasureArgs, workers int) ([]m.Report, error) {
	buffer, err := spill.NewFileSpill[m.Report](args.SpillDir)
	if err != nil {
		return nil, fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if err := buffer.Close(); err != nil {
			slog.Warn("failed to close spill", "error", err)
		}
	}()

	analyzer := NewAnalyzer(args.Engine, args.References, args.Config, ExpandPumpPairs)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, regex := range regexes {
		if groupCtx.Err() != nil {
			break
		}

		index, current := i, regex

		group.Go(func() error {
			started := time.Now()
			outcome := analyzer.Analyze(groupCtx, current)

			if groupCtx.Err() != nil {
				return nil
			}

			report := newReport(runID, index, current, outcome, time.Since(started))

			if err := buffer.Append(report); err != nil {
				return fmt.Errorf("spill report %d: %w", index, err)
			}

			w.DisplayCompletedPattern(groupCtx, report)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, buffer.Len())

	err = buffer.Range(func(_ uint64, report m.Report) error {
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read spilled reports: %w", err)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Index < reports[j].Index })

	return reports, nil
}

func (w *workflow) persist(ctx context.Context, runID string, reports []m.Report, args MeasureArgs) error {
	// Partial results are persisted even after cancellation.
	saveCtx := context.WithoutCancel(ctx)

	summary := m.NewSummary(runID)

	var flat []m.FlatRecord

	for _, report := range reports {
		summary.Add(report)

		if report.Status == m.StatusSuperLinear && report.Result != nil && report.Result.Valid {
			flat = append(flat, Assemble(*report.Result)...)
		}
	}

	if err := w.SaveReports(saveCtx, args.Output, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.SaveFlatRecords(saveCtx, args.Output, flat); err != nil {
		return fmt.Errorf("save cost records: %w", err)
	}

	if err := w.SaveSummary(saveCtx, args.Output, summary); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	if args.Sink != nil {
		if err := args.Sink.WriteCostRecords(saveCtx, runID, flat); err != nil {
			return fmt.Errorf("write cost records: %w", err)
		}
	}

	for _, failure := range summary.Failures {
		slog.Warn("Pattern failed", "pattern", failure.Pattern, "status", failure.Status, "cause", failure.Cause)
	}

	return w.DisplaySummary(saveCtx, summary)
}

// View loads stored reports and displays them.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func newReport(runID string, index int, regex m.Regex, outcome Outcome, elapsed time.Duration) m.Report {
	report := m.Report{
		RunID:    runID,
		Index:    index,
		Pattern:  regex.Pattern,
		Nick:     regex.Nick,
		Elapsed:  elapsed,
		Finished: time.Now().UTC(),
	}

	switch o := outcome.(type) {
	case OutcomeSuperLinear:
		result := o.Result
		report.Status = m.StatusSuperLinear
		report.Result = &result
	case OutcomeNotSuperLinear:
		report.Status = m.StatusNotSuperLinear
		report.Cause = fmt.Sprintf("no accelerating growth across %d template(s)", o.Considered)
	case OutcomeInvalidPattern:
		report.Status = m.StatusInvalidPattern
		report.Cause = o.Cause
	case OutcomeFailed:
		report.Status = o.Kind.Status()
		report.Result = o.Result

		if o.Err != nil {
			report.Cause = o.Err.Error()
		}
	default:
		report.Status = m.StatusEngineFailure
		report.Cause = fmt.Sprintf("unexpected outcome %T", outcome)
	}

	return report
}
