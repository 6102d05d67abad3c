package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/controller"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Self-test expectations and curve shapes.
const (
	ExpectMatch    = "MATCH"
	ExpectMismatch = "MISMATCH"
	ExpectSyntax   = "SYNTAX"

	CurveExponential = "EXP"
	CurvePolynomial  = "POLY"
	CurveLinear      = "LIN"

	observedTimeout = "TIMEOUT"
	observedError   = "ERROR"

	maxPumpsExponential = 10
	maxPumpsOther       = 50
)

// ErrSelfTestFailed is returned when at least one self-test case fails.
var ErrSelfTestFailed = errors.New("self-test failed")

// SelfTestArgs contains the arguments for the engine self-test.
type SelfTestArgs struct {
	SuiteFiles []string
	Engine     adapter.EngineAdapter
	Timeout    time.Duration
}

// SelfTestCase is one runnable check. Implementations are SemanticCase and PerformanceCase.
type SelfTestCase interface {
	Run(ctx context.Context, engine adapter.EngineAdapter, timeout time.Duration) m.CaseResult
	selfTestCase()
}

// SemanticCase expects the same verdict under every meaningful scheme pair.
type SemanticCase struct {
	Pattern m.Pattern
	Input   string
	Expect  string
}

// PerformanceCase expects a visit-count growth curve under one selection scheme.
type PerformanceCase struct {
	Pattern   m.Pattern
	Template  m.AttackTemplate
	Selection m.SelectionScheme
	Curve     string
}

func (SemanticCase) selfTestCase()    {}
func (PerformanceCase) selfTestCase() {}

// SelfTest runs every case of every suite and displays the verdicts per suite.
func (w *workflow) SelfTest(ctx context.Context, args SelfTestArgs) error {
	if len(args.SuiteFiles) == 0 {
		return errors.New("no self-test suite given")
	}

	timeout := args.Timeout
	if timeout <= 0 {
		timeout = DefaultDetectionTimeout
	}

	if err := w.Start(ctx, controller.WithSelfTestMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	failed, total := 0, 0

	for _, path := range args.SuiteFiles {
		result, err := w.runSuite(ctx, path, args.Engine, timeout)
		if err != nil {
			return err
		}

		if err := w.DisplaySelfTest(ctx, result); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		slog.Info("Suite complete", "suite", path, "failed", result.FailedCases(), "cases", len(result.Cases))

		failed += result.FailedCases()
		total += len(result.Cases)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d case(s)", ErrSelfTestFailed, failed, total)
	}

	return nil
}

func (w *workflow) runSuite(ctx context.Context, path string, engine adapter.EngineAdapter, timeout time.Duration) (m.SuiteResult, error) {
	suite, err := w.LoadSuite(ctx, path)
	if err != nil {
		return m.SuiteResult{}, fmt.Errorf("load suite: %w", err)
	}

	cases, err := BuildSelfTestCases(suite)
	if err != nil {
		return m.SuiteResult{}, fmt.Errorf("suite %s: %w", path, err)
	}

	result := m.SuiteResult{Source: path}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return m.SuiteResult{}, err
		}

		result.Cases = append(result.Cases, c.Run(ctx, engine, timeout))
	}

	return result, nil
}

// BuildSelfTestCases converts the suite entries into runnable cases.
func BuildSelfTestCases(suite m.SuiteFile) ([]SelfTestCase, error) {
	cases := make([]SelfTestCase, 0, len(suite.Semantic)+len(suite.Performance))

	var errs []error

	for i, entry := range suite.Semantic {
		expect := strings.ToUpper(strings.TrimSpace(entry.Expect))
		switch expect {
		case ExpectMatch, ExpectMismatch, ExpectSyntax:
		case "NOMATCH", "NO_MATCH":
			expect = ExpectMismatch
		default:
			errs = append(errs, fmt.Errorf("semantic case %d: unknown expectation %q", i+1, entry.Expect))
			continue
		}

		cases = append(cases, SemanticCase{Pattern: entry.Pattern, Input: entry.Input, Expect: expect})
	}

	for i, entry := range suite.Performance {
		c, err := parsePerformanceEntry(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("performance case %d: %w", i+1, err))
			continue
		}

		cases = append(cases, c)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cases, nil
}

func parsePerformanceEntry(entry m.PerformanceEntry) (PerformanceCase, error) {
	template, err := ParseCompactTemplate(entry.Template)
	if err != nil {
		return PerformanceCase{}, err
	}

	selection, err := parseMemoName(entry.Memo)
	if err != nil {
		return PerformanceCase{}, err
	}

	curve := strings.ToUpper(strings.TrimSpace(entry.Curve))
	switch curve {
	case CurveExponential, CurvePolynomial, CurveLinear:
	default:
		return PerformanceCase{}, fmt.Errorf("unknown curve %q", entry.Curve)
	}

	return PerformanceCase{Pattern: entry.Pattern, Template: template, Selection: selection, Curve: curve}, nil
}

// ParseCompactTemplate parses the prefix:pump:suffix notation.
func ParseCompactTemplate(s string) (m.AttackTemplate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return m.AttackTemplate{}, fmt.Errorf("template %q: want prefix:pump:suffix", s)
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return m.AttackTemplate{
		CouldParse: true,
		PumpPairs:  []m.PumpPair{{Prefix: parts[0], Pump: parts[1]}},
		Suffix:     parts[2],
	}, nil
}

func parseMemoName(name string) (m.SelectionScheme, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ANCESTOR":
		return m.SelectionLoop, nil
	case "INDEG":
		return m.SelectionInDegree, nil
	}

	return m.ParseSelectionScheme(strings.ToLower(strings.TrimSpace(name)))
}

// Run queries every scheme pair except unmemoized selection with a non-trivial encoding.
func (c SemanticCase) Run(ctx context.Context, engine adapter.EngineAdapter, timeout time.Duration) m.CaseResult {
	result := m.CaseResult{
		Kind:        "semantic",
		Description: fmt.Sprintf("/%s/ on %q expects %s", c.Pattern, c.Input, c.Expect),
	}

	var expected, observed []string

	for _, selection := range m.AllSelections {
		for _, encoding := range m.AllEncodings {
			if selection == m.SelectionNone && encoding != m.EncodingNone {
				continue
			}

			pair := m.SchemePair{Selection: selection, Encoding: encoding}
			outcome := engine.Query(ctx, selection, encoding, m.Query{Pattern: c.Pattern, Input: c.Input}, timeout)

			expected = append(expected, fmt.Sprintf("%s: %s", pair, c.Expect))
			observed = append(observed, fmt.Sprintf("%s: %s", pair, observedVerdict(outcome)))
		}
	}

	result.Failures = diffVerdicts(expected, observed)
	result.Passed = len(result.Failures) == 0

	return result
}

func observedVerdict(outcome adapter.QueryOutcome) string {
	switch o := outcome.(type) {
	case adapter.QueryOK:
		if o.Response.Matched {
			return ExpectMatch
		}

		return ExpectMismatch
	case adapter.QueryInvalidPattern:
		return ExpectSyntax
	case adapter.QueryTimeout:
		return observedTimeout
	}

	return observedError
}

func diffVerdicts(expected, observed []string) []string {
	if strings.Join(expected, "\n") == strings.Join(observed, "\n") {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(expected, "\n")),
		B:        difflib.SplitLines(strings.Join(observed, "\n")),
		FromFile: "expected",
		ToFile:   "observed",
		Context:  0,
	})
	if err != nil {
		return []string{fmt.Sprintf("verdicts differ: %v", err)}
	}

	return strings.Split(strings.TrimRight(diff, "\n"), "\n")
}

// Run collects visit counts for pumps 1..maxPumps-1 and checks their shape
// after subtracting the single-pump baseline.
func (c PerformanceCase) Run(ctx context.Context, engine adapter.EngineAdapter, timeout time.Duration) m.CaseResult {
	result := m.CaseResult{
		Kind:        "performance",
		Description: fmt.Sprintf("/%s/ %s under %s expects %s", c.Pattern, c.Template, c.Selection, c.Curve),
	}

	maxPumps := maxPumpsOther
	if c.Curve == CurveExponential {
		maxPumps = maxPumpsExponential
	}

	adjusted := make([]int64, 0, maxPumps-1)

	var baseline int64

	for pumps := 1; pumps < maxPumps; pumps++ {
		query := m.Query{Pattern: c.Pattern, Input: c.Template.Build(pumps)}

		resp, err := adapter.ResponseOf(engine.Query(ctx, c.Selection, m.EncodingNone, query, timeout))
		if err != nil {
			result.Failures = []string{fmt.Sprintf("%d pumps: %v", pumps, err)}
			return result
		}

		if pumps == 1 {
			baseline = resp.TotalVisits
		}

		adjusted = append(adjusted, resp.TotalVisits-baseline)
	}

	if !MatchesCurve(adjusted, c.Curve) {
		result.Failures = []string{fmt.Sprintf("expected curve %s but visits %v", c.Curve, adjusted)}
		return result
	}

	result.Passed = true

	return result
}

// MatchesCurve reports whether visit counts fit the named growth curve.
// Polynomial only requires half of the first differences to be distinct.
func MatchesCurve(visits []int64, curve string) bool {
	if len(visits) < 2 {
		return false
	}

	distinct := make(map[int64]struct{}, len(visits))
	minRatio := 0.0

	for i := 1; i < len(visits); i++ {
		a, b := visits[i-1], visits[i]
		distinct[b-a] = struct{}{}

		ratio := 2.0
		if a > 0 {
			ratio = float64(b) / float64(a)
		}

		if i == 1 || ratio < minRatio {
			minRatio = ratio
		}
	}

	switch curve {
	case CurveExponential:
		return minRatio >= 2
	case CurvePolynomial:
		return float64(len(distinct)) >= float64(len(visits))/2
	case CurveLinear:
		return len(distinct) == 1
	}

	return false
}
