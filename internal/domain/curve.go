package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/controller"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Curve defaults.
const (
	DefaultCurveTrials       = 5
	DefaultCurveMaxMatchMS   = 1000
	DefaultCurveQueryTimeout = 30 * time.Second
	// minCurveMatchMS floors every sample so sub-resolution runs stay comparable.
	minCurveMatchMS = 10
	baselineNick    = "Baseline"
)

// CurveArgs contains the arguments for the match-time case study.
type CurveArgs struct {
	RegexFile  string
	Output     string
	Engine     adapter.EngineAdapter
	Trials     int
	MaxMatchMS int64
	Timeout    time.Duration
}

// CurveSchedule returns the increasing pump counts sampled by Curve.
func CurveSchedule() []int {
	var schedule []int

	steps := []struct{ from, to, step int }{
		{1, 10, 1},
		{10, 30, 2},
		{50, 100, 10},
		{100, 200, 25},
		{200, 1000, 100},
		{1000, 10000, 1000},
	}

	for _, s := range steps {
		for n := s.from; n < s.to; n += s.step {
			schedule = append(schedule, n)
		}
	}

	return schedule
}

// Curve samples match time against pump count without memoization until the
// median reaches MaxMatchMS, then repeats the same pump counts under
// in-degree memoization.
func (w *workflow) Curve(ctx context.Context, args CurveArgs) error {
	regexes, err := w.Load(ctx, args.RegexFile)
	if err != nil {
		return fmt.Errorf("load regexes: %w", err)
	}

	args = withCurveDefaults(args)

	if err := w.Start(ctx, controller.WithCurveMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	var points []m.CurvePoint

	for _, regex := range regexes {
		if regex.Nick == baselineNick || len(regex.Templates) == 0 {
			continue
		}

		regexPoints, err := curveFor(ctx, args, regex)

		switch {
		case errors.Is(err, adapter.ErrSyntax):
			slog.Warn("Skipping invalid pattern", "pattern", regex.Pattern, "error", err)
			continue
		case err != nil:
			return err
		}

		points = append(points, regexPoints...)
	}

	if err := w.SaveCurve(ctx, args.Output, points); err != nil {
		return fmt.Errorf("save curve: %w", err)
	}

	return w.DisplayCurve(ctx, points)
}

func withCurveDefaults(args CurveArgs) CurveArgs {
	if args.Trials <= 0 {
		args.Trials = DefaultCurveTrials
	}

	if args.MaxMatchMS <= 0 {
		args.MaxMatchMS = DefaultCurveMaxMatchMS
	}

	if args.Timeout <= 0 {
		args.Timeout = DefaultCurveQueryTimeout
	}

	return args
}

func curveFor(ctx context.Context, args CurveArgs, regex m.Regex) ([]m.CurvePoint, error) {
	label := regex.Nick
	if label == "" {
		label = regex.Pattern
	}

	template := regex.Templates[0]

	var (
		points []m.CurvePoint
		pumps  []int
		prev   int64
	)

	for _, n := range CurveSchedule() {
		if prev >= args.MaxMatchMS {
			break
		}

		ms, err := medianMatchMS(ctx, args, m.SelectionNone, regex.Pattern, template, n)
		if err != nil {
			return nil, err
		}

		slog.Debug("curve sample", "regex", label, "memoized", false, "pumps", n, "ms", ms)

		points = append(points, m.CurvePoint{Regex: label, Memoized: false, Pumps: n, MatchTimeMS: ms})
		pumps = append(pumps, n)
		prev = ms
	}

	for _, n := range pumps {
		ms, err := medianMatchMS(ctx, args, m.SelectionInDegree, regex.Pattern, template, n)
		if err != nil {
			return nil, err
		}

		points = append(points, m.CurvePoint{Regex: label, Memoized: true, Pumps: n, MatchTimeMS: ms})
	}

	return points, nil
}

// medianMatchMS reports the median match time of several trials.
// A timed-out trial counts as args.MaxMatchMS.
func medianMatchMS(ctx context.Context, args CurveArgs, selection m.SelectionScheme, pattern m.Pattern, template m.AttackTemplate, pumps int) (int64, error) {
	query := m.Query{Pattern: pattern, Input: template.Build(pumps)}
	samples := make([]int64, 0, args.Trials)

	for range args.Trials {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		resp, err := adapter.ResponseOf(args.Engine.Query(ctx, selection, m.EncodingNone, query, args.Timeout))

		switch {
		case errors.Is(err, adapter.ErrTimeout):
			samples = append(samples, args.MaxMatchMS)
			continue
		case err != nil:
			return 0, fmt.Errorf("curve for /%s/ at %d pumps: %w", pattern, pumps, err)
		}

		samples = append(samples, max(resp.SimTimeUS/1000, minCurveMatchMS))
	}

	return lowMedian(samples), nil
}
