package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	adaptermocks "memoprof.dev/pkg/memoprof/internal/adapter/mocks"
	"memoprof.dev/pkg/memoprof/internal/controller"
	controllermocks "memoprof.dev/pkg/memoprof/internal/controller/mocks"
	"memoprof.dev/pkg/memoprof/internal/domain"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

const (
	regexFile = "regexes.ndjson"
	outputDir = "out"
)

type workflowMocks struct {
	source *adaptermocks.MockRegexSource
	store  *adaptermocks.MockReportStore
	suites *adaptermocks.MockSuiteLoader
	ui     *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) (domain.Workflow, workflowMocks) {
	mocks := workflowMocks{
		source: adaptermocks.NewMockRegexSource(t),
		store:  adaptermocks.NewMockReportStore(t),
		suites: adaptermocks.NewMockSuiteLoader(t),
		ui:     controllermocks.NewMockUI(t),
	}

	return domain.NewWorkflow(mocks.source, mocks.store, mocks.suites, mocks.ui), mocks
}

func (w workflowMocks) expectSession() {
	w.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	w.ui.EXPECT().Close(mock.Anything).Return().Once()
}

func TestWorkflow_Measure(t *testing.T) {
	t.Run("analyzes every pattern and persists the results", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		wf, mocks := newWorkflowMocks(t)
		sink := adaptermocks.NewMockCostSink(t)

		regexes := []m.Regex{
			{Pattern: quadraticPattern, Nick: "quadratic", Templates: []m.AttackTemplate{aTemplate()}},
			{Pattern: linearPattern, Templates: []m.AttackTemplate{aTemplate()}},
			{Pattern: invalidPattern, Templates: []m.AttackTemplate{aTemplate()}},
		}

		var (
			saved   []m.Report
			flat    []m.FlatRecord
			summary m.Summary
			runInfo controller.RunInfo
		)

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return(regexes, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).
			Run(func(_ context.Context, info controller.RunInfo) { runInfo = info }).
			Return().Once()
		mocks.ui.EXPECT().DisplayCompletedPattern(mock.Anything, mock.Anything).Return().Times(3)
		mocks.store.EXPECT().SaveReports(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, reports []m.Report) { saved = reports }).
			Return(nil).Once()
		mocks.store.EXPECT().SaveFlatRecords(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, records []m.FlatRecord) { flat = records }).
			Return(nil).Once()
		mocks.store.EXPECT().SaveSummary(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, s m.Summary) { summary = s }).
			Return(nil).Once()
		sink.EXPECT().WriteCostRecords(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()

		err := wf.Measure(context.Background(), domain.MeasureArgs{
			RegexFile:  regexFile,
			Output:     outputDir,
			EngineName: "fake",
			Config:     testConfig(),
			Engine:     newWellBehavedEngine(),
			Sink:       sink,
			SpillDir:   t.TempDir(),
		})
		require.NoError(t, err)

		assert.Equal(t, 3, runInfo.Patterns)
		assert.Equal(t, 2, runInfo.Workers)
		assert.Equal(t, "fake", runInfo.Engine)
		assert.NotEmpty(t, runInfo.RunID)

		require.Len(t, saved, 3)

		for i, report := range saved {
			assert.Equal(t, i, report.Index)
			assert.Equal(t, regexes[i].Pattern, report.Pattern)
			assert.Equal(t, runInfo.RunID, report.RunID)
		}

		assert.Equal(t, m.StatusSuperLinear, saved[0].Status)
		assert.Equal(t, "quadratic", saved[0].Nick)
		require.NotNil(t, saved[0].Result)
		assert.True(t, saved[0].Result.Valid)
		assert.Equal(t, m.StatusNotSuperLinear, saved[1].Status)
		assert.Equal(t, "no accelerating growth across 1 template(s)", saved[1].Cause)
		assert.Equal(t, m.StatusInvalidPattern, saved[2].Status)

		assert.Len(t, flat, 18)

		for _, record := range flat {
			assert.Equal(t, quadraticPattern, string(record.Pattern))
			assert.Equal(t, "18", record.GrowthRate)
		}

		assert.Equal(t, runInfo.RunID, summary.RunID)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 1, summary.ByStatus[m.StatusSuperLinear])
		assert.Equal(t, 1, summary.ByStatus[m.StatusNotSuperLinear])
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, m.StatusInvalidPattern, summary.Failures[0].Status)
	})

	t.Run("invalid configuration is rejected before loading", func(t *testing.T) {
		wf, _ := newWorkflowMocks(t)

		cfg := testConfig()
		cfg.MeasurementPumpCounts = nil

		err := wf.Measure(context.Background(), domain.MeasureArgs{RegexFile: regexFile, Config: cfg})
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("load failure", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return(nil, errBoom).Once()

		err := wf.Measure(context.Background(), domain.MeasureArgs{RegexFile: regexFile, Config: testConfig()})
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return(nil, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).Return().Once()
		mocks.store.EXPECT().SaveReports(mock.Anything, outputDir, mock.Anything).Return(errBoom).Once()

		err := wf.Measure(context.Background(), domain.MeasureArgs{
			RegexFile: regexFile,
			Output:    outputDir,
			Config:    testConfig(),
			Engine:    newWellBehavedEngine(),
			SpillDir:  t.TempDir(),
		})
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("cancelled run still persists and reports the interruption", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		wf, mocks := newWorkflowMocks(t)
		engine := newWellBehavedEngine()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mocks.source.EXPECT().Load(mock.Anything, regexFile).
			Return([]m.Regex{{Pattern: quadraticPattern, Templates: []m.AttackTemplate{aTemplate()}}}, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).Return().Once()
		mocks.store.EXPECT().SaveReports(mock.Anything, outputDir, mock.Anything).Return(nil).Once()
		mocks.store.EXPECT().SaveFlatRecords(mock.Anything, outputDir, mock.Anything).Return(nil).Once()
		mocks.store.EXPECT().SaveSummary(mock.Anything, outputDir, mock.Anything).Return(nil).Once()
		mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return(nil).Once()

		err := wf.Measure(ctx, domain.MeasureArgs{
			RegexFile: regexFile,
			Output:    outputDir,
			Config:    testConfig(),
			Engine:    engine,
			SpillDir:  t.TempDir(),
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "interrupted after 0 of 1 pattern(s)")
		assert.Empty(t, engine.Calls())
	})
}

func TestWorkflow_View(t *testing.T) {
	t.Run("displays stored reports", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)
		reports := []m.Report{{Pattern: quadraticPattern, Status: m.StatusSuperLinear}}

		mocks.store.EXPECT().LoadReports(mock.Anything, outputDir).Return(reports, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplayReports(mock.Anything, reports).Return(nil).Once()
		mocks.ui.EXPECT().Wait(mock.Anything).Return().Once()

		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Output: outputDir}))
	})

	t.Run("load failure", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		mocks.store.EXPECT().LoadReports(mock.Anything, outputDir).Return(nil, errBoom).Once()

		err := wf.View(context.Background(), domain.ViewArgs{Output: outputDir})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestWorkflow_Phi(t *testing.T) {
	t.Run("records selected vertices per policy and skips invalid patterns", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		wf, mocks := newWorkflowMocks(t)

		var analyses []m.MemoizationStaticAnalysis

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return([]m.Regex{
			{Pattern: linearPattern},
			{Pattern: invalidPattern},
			{Pattern: quadraticPattern},
		}, nil).Once()
		mocks.expectSession()
		mocks.store.EXPECT().SaveStaticAnalyses(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, a []m.MemoizationStaticAnalysis) { analyses = a }).
			Return(nil).Once()
		mocks.ui.EXPECT().DisplayStaticAnalyses(mock.Anything, mock.Anything).Return(nil).Once()

		err := wf.Phi(context.Background(), domain.PhiArgs{
			RegexFile: regexFile,
			Output:    outputDir,
			Engine:    newWellBehavedEngine(),
			Workers:   2,
		})
		require.NoError(t, err)

		require.Len(t, analyses, 2)
		assert.Equal(t, m.Pattern(quadraticPattern), analyses[0].Pattern)
		assert.Equal(t, m.Pattern(linearPattern), analyses[1].Pattern)

		want := map[string]int{
			m.SelectionFull.PolicyName():     fakeStates,
			m.SelectionInDegree.PolicyName(): 2,
			m.SelectionLoop.PolicyName():     1,
		}

		for _, a := range analyses {
			assert.Equal(t, fakeStates, a.AutomatonSize)
			assert.Equal(t, want, a.Policy2nSelectedVertices)
		}
	})

	t.Run("engine failure aborts the analysis", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)
		engine := &fakeEngine{respond: func(engineCall) adapter.QueryOutcome {
			return adapter.QueryFailure{ExitCode: 1, Err: errBoom}
		}}

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return([]m.Regex{{Pattern: quadraticPattern}}, nil).Once()
		mocks.expectSession()

		err := wf.Phi(context.Background(), domain.PhiArgs{RegexFile: regexFile, Output: outputDir, Engine: engine})
		require.ErrorIs(t, err, adapter.ErrInvocation)
	})
}

func TestCurveSchedule(t *testing.T) {
	schedule := domain.CurveSchedule()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12}, schedule[:11])
	assert.Equal(t, 9000, schedule[len(schedule)-1])
	assert.Len(t, schedule, 45)

	for i := 1; i < len(schedule); i++ {
		assert.Greater(t, schedule[i], schedule[i-1])
	}
}

func TestWorkflow_Curve(t *testing.T) {
	t.Run("samples until the time budget then repeats memoized", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		// Unmemoized time grows 100ms per input character; memoized stays at the floor.
		engine := &fakeEngine{respond: func(call engineCall) adapter.QueryOutcome {
			if call.Query.Pattern == invalidPattern {
				return adapter.QueryInvalidPattern{Stderr: "bad"}
			}

			var simTime int64
			if call.Selection == m.SelectionNone {
				simTime = int64(len(call.Query.Input)) * 100_000
			}

			return adapter.QueryOK{Response: m.EngineResponse{SimTimeUS: simTime}}
		}}

		var points []m.CurvePoint

		mocks.source.EXPECT().Load(mock.Anything, regexFile).Return([]m.Regex{
			{Pattern: quadraticPattern, Nick: "Baseline", Templates: []m.AttackTemplate{aTemplate()}},
			{Pattern: linearPattern},
			{Pattern: invalidPattern, Templates: []m.AttackTemplate{aTemplate()}},
			{Pattern: quadraticPattern, Nick: "alternation", Templates: []m.AttackTemplate{aTemplate()}},
		}, nil).Once()
		mocks.expectSession()
		mocks.store.EXPECT().SaveCurve(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, p []m.CurvePoint) { points = p }).
			Return(nil).Once()
		mocks.ui.EXPECT().DisplayCurve(mock.Anything, mock.Anything).Return(nil).Once()

		err := wf.Curve(context.Background(), domain.CurveArgs{
			RegexFile:  regexFile,
			Output:     outputDir,
			Engine:     engine,
			Trials:     3,
			MaxMatchMS: 1000,
		})
		require.NoError(t, err)

		require.Len(t, points, 18)

		for i, p := range points[:9] {
			assert.Equal(t, "alternation", p.Regex)
			assert.False(t, p.Memoized)
			assert.Equal(t, i+1, p.Pumps)
			assert.Equal(t, int64(i+2)*100, p.MatchTimeMS)
		}

		for i, p := range points[9:] {
			assert.True(t, p.Memoized)
			assert.Equal(t, i+1, p.Pumps)
			assert.Equal(t, int64(10), p.MatchTimeMS)
		}
	})

	t.Run("timeouts count as the time budget", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		var points []m.CurvePoint

		mocks.source.EXPECT().Load(mock.Anything, regexFile).
			Return([]m.Regex{{Pattern: hangingPattern, Templates: []m.AttackTemplate{aTemplate()}}}, nil).Once()
		mocks.expectSession()
		mocks.store.EXPECT().SaveCurve(mock.Anything, outputDir, mock.Anything).
			Run(func(_ context.Context, _ string, p []m.CurvePoint) { points = p }).
			Return(nil).Once()
		mocks.ui.EXPECT().DisplayCurve(mock.Anything, mock.Anything).Return(nil).Once()

		err := wf.Curve(context.Background(), domain.CurveArgs{
			RegexFile:  regexFile,
			Output:     outputDir,
			Engine:     newWellBehavedEngine(),
			Trials:     1,
			MaxMatchMS: 500,
		})
		require.NoError(t, err)

		require.Len(t, points, 2)
		assert.Equal(t, hangingPattern, points[0].Regex)
		assert.Equal(t, int64(500), points[0].MatchTimeMS)
		assert.True(t, points[1].Memoized)
	})
}

func TestWorkflow_SelfTest(t *testing.T) {
	passing := m.SuiteFile{
		Semantic: []m.SemanticEntry{
			{Pattern: quadraticPattern, Input: "aab", Expect: "nomatch"},
			{Pattern: invalidPattern, Input: "a", Expect: "SYNTAX"},
		},
		Performance: []m.PerformanceEntry{
			{Pattern: quadraticPattern, Template: ":a:b", Memo: "full", Curve: "poly"},
		},
	}

	failing := m.SuiteFile{
		Performance: []m.PerformanceEntry{
			{Pattern: linearPattern, Template: ":a:b", Memo: "INDEG", Curve: "EXP"},
		},
	}

	t.Run("all suites pass", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		var result m.SuiteResult

		mocks.suites.EXPECT().LoadSuite(mock.Anything, "pass.yaml").Return(passing, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplaySelfTest(mock.Anything, mock.Anything).
			Run(func(_ context.Context, r m.SuiteResult) { result = r }).
			Return(nil).Once()

		err := wf.SelfTest(context.Background(), domain.SelfTestArgs{
			SuiteFiles: []string{"pass.yaml"},
			Engine:     newWellBehavedEngine(),
		})
		require.NoError(t, err)

		assert.Equal(t, "pass.yaml", result.Source)
		require.Len(t, result.Cases, 3)
		assert.Zero(t, result.FailedCases())
	})

	t.Run("failing case fails the run", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		mocks.suites.EXPECT().LoadSuite(mock.Anything, "pass.yaml").Return(passing, nil).Once()
		mocks.suites.EXPECT().LoadSuite(mock.Anything, "fail.yaml").Return(failing, nil).Once()
		mocks.expectSession()
		mocks.ui.EXPECT().DisplaySelfTest(mock.Anything, mock.Anything).Return(nil).Times(2)

		err := wf.SelfTest(context.Background(), domain.SelfTestArgs{
			SuiteFiles: []string{"pass.yaml", "fail.yaml"},
			Engine:     newWellBehavedEngine(),
		})
		require.ErrorIs(t, err, domain.ErrSelfTestFailed)
		assert.Contains(t, err.Error(), "1 of 4 case(s)")
	})

	t.Run("no suites", func(t *testing.T) {
		wf, _ := newWorkflowMocks(t)

		err := wf.SelfTest(context.Background(), domain.SelfTestArgs{Engine: newWellBehavedEngine()})
		require.Error(t, err)
	})

	t.Run("malformed suite", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)

		mocks.suites.EXPECT().LoadSuite(mock.Anything, "bad.yaml").Return(m.SuiteFile{}, errors.New("yaml: bad")).Once()
		mocks.expectSession()

		err := wf.SelfTest(context.Background(), domain.SelfTestArgs{
			SuiteFiles: []string{"bad.yaml"},
			Engine:     newWellBehavedEngine(),
		})
		require.ErrorContains(t, err, "load suite")
	})
}
