package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// ErrNoTemplates is returned when a regex has no attack templates to evaluate.
var ErrNoTemplates = errors.New("regex has no attack templates")

// Detection is the verdict of the super-linear input search.
type Detection struct {
	SuperLinear bool
	Template    m.AttackTemplate
	GrowthRate  m.GrowthRate
	// Considered is the number of templates after expansion.
	Considered int
}

// Selector finds the attack template with the most super-linear growth.
type Selector struct {
	engine adapter.EngineAdapter
	cfg    Config
	expand Expander
}

// NewSelector constructs a Selector. A nil expand disables expansion.
func NewSelector(engine adapter.EngineAdapter, cfg Config, expand Expander) *Selector {
	return &Selector{engine: engine, cfg: cfg, expand: expand}
}

// Select samples every template on the detection ladder without memoization.
// Invalid patterns yield an error wrapping adapter.ErrSyntax.
func (s *Selector) Select(ctx context.Context, regex m.Regex) (Detection, error) {
	if len(regex.Templates) == 0 {
		return Detection{}, ErrNoTemplates
	}

	if len(s.cfg.DetectionPumpLadder) < 3 {
		return Detection{}, fmt.Errorf("%w: detection ladder needs at least 3 pump counts", ErrInvalidConfig)
	}

	templates := regex.Templates
	if s.cfg.ExpandTemplates {
		templates = expandAll(regex.Templates, s.expand)
	}

	slog.Debug("considering templates", "pattern", regex.Pattern, "expanded", len(templates), "original", len(regex.Templates))

	var (
		best      Detection
		bestFound bool
	)

	for i, template := range templates {
		visits, timedOut, err := s.sample(ctx, regex.Pattern, template)
		if err != nil {
			return Detection{}, err
		}

		if timedOut {
			slog.Info("detection timeout, unbounded growth", "pattern", regex.Pattern, "template", template.String())

			return Detection{
				SuperLinear: true,
				Template:    template,
				GrowthRate:  m.GrowthRate{Unbounded: true},
				Considered:  len(templates),
			}, nil
		}

		superLinear, acceleration := ClassifyGrowth(visits)
		if !superLinear {
			slog.Debug("template not super-linear", "pattern", regex.Pattern, "index", i, "visits", visits)
			continue
		}

		if !bestFound || acceleration > best.GrowthRate.Acceleration {
			best = Detection{
				SuperLinear: true,
				Template:    template,
				GrowthRate:  m.GrowthRate{Acceleration: acceleration},
			}
			bestFound = true
		}
	}

	best.Considered = len(templates)

	if bestFound {
		slog.Info("super-linear regex", "pattern", regex.Pattern, "acceleration", best.GrowthRate.Acceleration)
	} else {
		slog.Info("regex not super-linear", "pattern", regex.Pattern)
	}

	return best, nil
}

// sample collects nTotalVisits at each ladder step, stopping at the first timeout.
func (s *Selector) sample(ctx context.Context, pattern m.Pattern, template m.AttackTemplate) ([]int64, bool, error) {
	visits := make([]int64, 0, len(s.cfg.DetectionPumpLadder))

	for _, pumps := range s.cfg.DetectionPumpLadder {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		query := m.Query{Pattern: pattern, Input: template.Build(pumps)}
		outcome := s.engine.Query(ctx, m.SelectionNone, m.EncodingNone, query, s.cfg.DetectionTimeout)

		switch o := outcome.(type) {
		case adapter.QueryOK:
			visits = append(visits, o.Response.TotalVisits)
		case adapter.QueryTimeout:
			return visits, true, nil
		case adapter.QueryInvalidPattern, adapter.QueryFailure:
			_, err := adapter.ResponseOf(o)
			return nil, false, fmt.Errorf("detection at %d pumps: %w", pumps, err)
		default:
			return nil, false, fmt.Errorf("detection at %d pumps: unexpected outcome %T", pumps, outcome)
		}
	}

	return visits, false, nil
}

// ClassifyGrowth reports whether successive first differences strictly increase
// and, if so, the final second difference.
func ClassifyGrowth(visits []int64) (bool, int64) {
	if len(visits) < 3 {
		return false, 0
	}

	diffs := make([]int64, 0, len(visits)-1)
	for i := 1; i < len(visits); i++ {
		diffs = append(diffs, visits[i]-visits[i-1])
	}

	for i := 1; i < len(diffs); i++ {
		if diffs[i-1] >= diffs[i] {
			return false, 0
		}
	}

	return true, diffs[len(diffs)-1] - diffs[len(diffs)-2]
}
