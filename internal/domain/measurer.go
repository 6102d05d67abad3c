package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// ErrNondeterministicSpace means repeated trials reported different space costs.
var ErrNondeterministicSpace = errors.New("space cost varied across trials")

// Measurer builds the selection x encoding cost matrix for one template.
type Measurer struct {
	engine adapter.EngineAdapter
	cfg    Config
}

// NewMeasurer constructs a Measurer.
func NewMeasurer(engine adapter.EngineAdapter, cfg Config) *Measurer {
	return &Measurer{engine: engine, cfg: cfg}
}

// Measure runs every memoizing scheme pair at every measurement pump count.
// Pairs run strictly one after another. Any non-OK engine outcome is fatal.
func (mm *Measurer) Measure(ctx context.Context, pattern m.Pattern, template m.AttackTemplate) ([]m.CostRecord, error) {
	records := make([]m.CostRecord, 0, len(mm.cfg.MeasurementPumpCounts)*len(m.MemoizingSelections)*len(m.AllEncodings))

	for _, pumps := range mm.cfg.MeasurementPumpCounts {
		query := m.Query{Pattern: pattern, Input: template.Build(pumps)}

		for _, selection := range m.MemoizingSelections {
			for _, encoding := range m.AllEncodings {
				record, err := mm.measurePair(ctx, query, pumps, selection, encoding)
				if err != nil {
					return nil, err
				}

				records = append(records, record)
			}
		}
	}

	return records, nil
}

func (mm *Measurer) measurePair(ctx context.Context, query m.Query, pumps int, selection m.SelectionScheme, encoding m.EncodingScheme) (m.CostRecord, error) {
	pair := m.SchemePair{Selection: selection, Encoding: encoding}
	trials := mm.cfg.TrialsPerCondition

	if trials < 1 {
		trials = 1
	}

	times := make([]int64, 0, trials)

	var first m.EngineResponse

	for trial := range trials {
		if err := ctx.Err(); err != nil {
			return m.CostRecord{}, err
		}

		resp, err := adapter.ResponseOf(mm.engine.Query(ctx, selection, encoding, query, mm.cfg.MeasurementTimeout))
		if err != nil {
			slog.Error("measurement failed", "pattern", query.Pattern, "pair", pair.String(), "pumps", pumps, "trial", trial, "error", err)
			return m.CostRecord{}, fmt.Errorf("measuring %s at %d pumps: %w", pair, pumps, err)
		}

		if trial == 0 {
			first = resp
		} else if resp.SpaceCost() != first.SpaceCost() {
			return m.CostRecord{}, fmt.Errorf("%w: %s at %d pumps: trial 0 = %d, trial %d = %d",
				ErrNondeterministicSpace, pair, pumps, first.SpaceCost(), trial, resp.SpaceCost())
		}

		times = append(times, resp.SimTimeUS)
	}

	cv := coefficientOfVariation(times)
	if mm.cfg.CVWarnThreshold > 0 && cv > mm.cfg.CVWarnThreshold {
		slog.Warn("noisy time measurements", "pattern", query.Pattern, "pair", pair.String(), "pumps", pumps, "cv", cv)
	}

	return m.CostRecord{
		Pattern:             query.Pattern,
		Selection:           selection,
		Encoding:            encoding,
		PumpCount:           pumps,
		InputLength:         first.InputLength,
		AutomatonSize:       first.AutomatonSize,
		SelectedVertexCount: first.SelectedVertexCount,
		TimeCostUS:          lowMedian(times),
		SpaceCost:           first.SpaceCost(),
		SpaceBytes:          first.SpaceBytes(),
		TimeCV:              cv,
		Trials:              len(times),
		Matched:             first.Matched,
	}, nil
}
