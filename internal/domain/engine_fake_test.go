package domain_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/domain"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

const (
	quadraticPattern = "(a|a)*b"
	linearPattern    = "a*b"
	invalidPattern   = "(a"
	hangingPattern   = "(a*)*b"
	fakeStates       = 6
)

type engineCall struct {
	Selection m.SelectionScheme
	Encoding  m.EncodingScheme
	Query     m.Query
}

// fakeEngine answers queries from a function and records every call.
type fakeEngine struct {
	mu      sync.Mutex
	calls   []engineCall
	respond func(call engineCall) adapter.QueryOutcome
}

func (e *fakeEngine) Query(_ context.Context, selection m.SelectionScheme, encoding m.EncodingScheme, query m.Query, _ time.Duration) adapter.QueryOutcome {
	call := engineCall{Selection: selection, Encoding: encoding, Query: query}

	e.mu.Lock()
	e.calls = append(e.calls, call)
	e.mu.Unlock()

	return e.respond(call)
}

func (e *fakeEngine) Calls() []engineCall {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]engineCall(nil), e.calls...)
}

// newWellBehavedEngine simulates an engine whose space costs respect every
// structural bound. Visits grow quadratically for quadraticPattern, linearly
// for linearPattern; invalidPattern is rejected and hangingPattern times out.
func newWellBehavedEngine() *fakeEngine {
	return &fakeEngine{respond: wellBehaved}
}

func wellBehaved(call engineCall) adapter.QueryOutcome {
	switch call.Query.Pattern {
	case invalidPattern:
		return adapter.QueryInvalidPattern{Stderr: "syntax error: missing )"}
	case hangingPattern:
		return adapter.QueryTimeout{After: time.Second}
	}

	return adapter.QueryOK{Response: simulatedResponse(call)}
}

func simulatedResponse(call engineCall) m.EngineResponse {
	n := len(call.Query.Input)

	selected := map[m.SelectionScheme]int{
		m.SelectionNone:     0,
		m.SelectionFull:     fakeStates,
		m.SelectionInDegree: 2,
		m.SelectionLoop:     1,
	}[call.Selection]

	perVertex := int64(n + 1)

	switch call.Encoding {
	case m.EncodingNegative:
		perVertex = int64(n/2 + 1)
	case m.EncodingRLE:
		perVertex = 2
	}

	costs := make([]int64, selected)
	for i := range costs {
		costs[i] = perVertex
	}

	visits := int64(3*n + 1)
	if call.Query.Pattern == quadraticPattern {
		visits = int64(n * n)
	}

	return m.EngineResponse{
		InputLength:         n,
		AutomatonSize:       fakeStates,
		SelectedVertexCount: selected,
		MaxCostPerVertex:    costs,
		MaxBytesPerVertex:   costs,
		TotalVisits:         visits,
		Matched:             false,
		SimTimeUS:           1500,
	}
}

var errBoom = errors.New("boom")

func aTemplate() m.AttackTemplate {
	return m.AttackTemplate{
		CouldParse: true,
		PumpPairs:  []m.PumpPair{{Prefix: "", Pump: "a"}},
		Suffix:     "b",
	}
}

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.MeasurementPumpCounts = []int{10, 20}
	cfg.TrialsPerCondition = 3
	cfg.Workers = 2
	cfg.DetectionTimeout = time.Second
	cfg.MeasurementTimeout = time.Second
	cfg.ReferenceTimeout = time.Second

	return cfg
}
