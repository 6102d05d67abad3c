package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/controller"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// phiProbeInput is the input used for the static selection queries.
// Selection does not depend on the input.
const phiProbeInput = "a"

// PhiArgs contains the arguments for the static selection analysis.
type PhiArgs struct {
	RegexFile string
	Output    string
	Engine    adapter.EngineAdapter
	Workers   int
	Timeout   time.Duration
}

// Phi records how many vertices each memoizing selection policy picks per pattern.
func (w *workflow) Phi(ctx context.Context, args PhiArgs) error {
	regexes, err := w.Load(ctx, args.RegexFile)
	if err != nil {
		return fmt.Errorf("load regexes: %w", err)
	}

	if err := w.Start(ctx, controller.WithPhiMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	timeout := args.Timeout
	if timeout <= 0 {
		timeout = DefaultDetectionTimeout
	}

	var (
		mu       sync.Mutex
		analyses []m.MemoizationStaticAnalysis
		invalid  int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Workers > 0 {
		group.SetLimit(args.Workers)
	}

	for _, regex := range regexes {
		current := regex

		group.Go(func() error {
			analysis, err := AnalyzeSelection(groupCtx, args.Engine, current.Pattern, timeout)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, adapter.ErrSyntax):
				invalid++
				return nil
			case err != nil:
				return fmt.Errorf("phi for /%s/: %w", current.Pattern, err)
			}

			analyses = append(analyses, analysis)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	sort.Slice(analyses, func(i, j int) bool { return analyses[i].Pattern < analyses[j].Pattern })

	slog.Info("Static selection analysis complete", "patterns", len(analyses), "invalid", invalid)

	if err := w.SaveStaticAnalyses(ctx, args.Output, analyses); err != nil {
		return fmt.Errorf("save static analyses: %w", err)
	}

	return w.DisplayStaticAnalyses(ctx, analyses)
}

// AnalyzeSelection queries the engine once per memoizing selection policy.
func AnalyzeSelection(ctx context.Context, engine adapter.EngineAdapter, pattern m.Pattern, timeout time.Duration) (m.MemoizationStaticAnalysis, error) {
	analysis := m.MemoizationStaticAnalysis{
		Pattern:                  pattern,
		Policy2nSelectedVertices: make(map[string]int, len(m.MemoizingSelections)),
	}

	query := m.Query{Pattern: pattern, Input: phiProbeInput}

	for _, selection := range m.MemoizingSelections {
		resp, err := adapter.ResponseOf(engine.Query(ctx, selection, m.EncodingNone, query, timeout))
		if err != nil {
			return m.MemoizationStaticAnalysis{}, fmt.Errorf("selection %s: %w", selection, err)
		}

		analysis.AutomatonSize = resp.AutomatonSize
		analysis.Policy2nSelectedVertices[selection.PolicyName()] = resp.SelectedVertexCount
	}

	return analysis, nil
}
