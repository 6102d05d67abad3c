// Package adapter provides the process, file and storage boundaries used by memoprof.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

const (
	noMatchMarker     = "-no match-"
	syntaxErrorMarker = "syntax error"

	// processWaitDelay bounds how long Wait blocks on pipes after the engine is killed.
	processWaitDelay = 2 * time.Second
)

var needBitsPattern = regexp.MustCompile(`Need (\d+) bits`)

// Sentinel errors returned by ResponseOf.
var (
	ErrSyntax     = errors.New("engine reported a syntax error")
	ErrTimeout    = errors.New("engine query timed out")
	ErrInvocation = errors.New("engine invocation failed")
)

// QueryOutcome is the closed set of results of one engine query.
// Implementations are QueryOK, QueryInvalidPattern, QueryTimeout and QueryFailure.
type QueryOutcome interface {
	queryOutcome()
}

// QueryOK carries a decoded engine response.
type QueryOK struct {
	Response m.EngineResponse
}

// QueryInvalidPattern means the engine rejected the pattern.
type QueryInvalidPattern struct {
	Stderr string
}

// QueryTimeout means no response arrived within the deadline.
type QueryTimeout struct {
	After time.Duration
}

// QueryFailure is any other failed invocation.
type QueryFailure struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (QueryOK) queryOutcome()             {}
func (QueryInvalidPattern) queryOutcome() {}
func (QueryTimeout) queryOutcome()        {}
func (QueryFailure) queryOutcome()        {}

// ResponseOf converts an outcome into a response or a typed error.
func ResponseOf(outcome QueryOutcome) (m.EngineResponse, error) {
	switch o := outcome.(type) {
	case QueryOK:
		return o.Response, nil
	case QueryInvalidPattern:
		return m.EngineResponse{}, fmt.Errorf("%w: %s", ErrSyntax, firstLine(o.Stderr))
	case QueryTimeout:
		return m.EngineResponse{}, fmt.Errorf("%w after %s", ErrTimeout, o.After)
	case QueryFailure:
		return m.EngineResponse{}, fmt.Errorf("%w (exit %d): %w: %s", ErrInvocation, o.ExitCode, o.Err, firstLine(o.Stderr))
	}

	return m.EngineResponse{}, fmt.Errorf("%w: unknown outcome %T", ErrInvocation, outcome)
}

// EngineAdapter queries the memoizing regex engine.
type EngineAdapter interface {
	Query(ctx context.Context, selection m.SelectionScheme, encoding m.EncodingScheme, query m.Query, timeout time.Duration) QueryOutcome
}

// EngineOption configures a LocalEngineAdapter.
type EngineOption func(*LocalEngineAdapter)

// WithKeepArtifacts retains query files after each call.
func WithKeepArtifacts(keep bool) EngineOption {
	return func(a *LocalEngineAdapter) {
		a.keepArtifacts = keep
	}
}

// WithArtifactDir sets the directory query files are written to.
func WithArtifactDir(dir string) EngineOption {
	return func(a *LocalEngineAdapter) {
		a.artifactDir = dir
	}
}

// LocalEngineAdapter runs the engine binary as a child process.
type LocalEngineAdapter struct {
	path          string
	artifactDir   string
	keepArtifacts bool
}

// NewLocalEngineAdapter constructs a LocalEngineAdapter for the engine at path.
func NewLocalEngineAdapter(path string, opts ...EngineOption) *LocalEngineAdapter {
	a := &LocalEngineAdapter{path: path}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Path returns the engine binary path.
func (a *LocalEngineAdapter) Path() string {
	return a.path
}

// Query writes the query file, invokes the engine and classifies the result.
func (a *LocalEngineAdapter) Query(ctx context.Context, selection m.SelectionScheme, encoding m.EncodingScheme, query m.Query, timeout time.Duration) QueryOutcome {
	queryFile, err := writeQueryFile(a.artifactDir, "memoprof-query-*.json", query)
	if err != nil {
		return QueryFailure{ExitCode: -1, Err: err}
	}

	defer a.releaseArtifact(queryFile)

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, a.path, selection.Code(), encoding.Code(), "-f", queryFile)
	cmd.WaitDelay = processWaitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Debug("engine query timed out", "pattern", query.Pattern, "selection", selection, "encoding", encoding, "timeout", timeout)
		return QueryTimeout{After: timeout}
	}

	if err := ctx.Err(); err != nil {
		slog.Debug("engine query cancelled", "pattern", query.Pattern, "selection", selection, "encoding", encoding)
		return QueryFailure{ExitCode: -1, Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	}

	if runErr != nil {
		return classifyFailure(runErr, stdout.String(), stderr.String())
	}

	if bits := needBitsPattern.FindStringSubmatch(stdout.String()); bits != nil {
		slog.Debug("engine advisory", "pattern", query.Pattern, "needBits", bits[1])
	}

	response, err := decodeEngineResponse(stdout.String(), stderr.Bytes())
	if err != nil {
		return QueryFailure{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	}

	return QueryOK{Response: response}
}

func (a *LocalEngineAdapter) releaseArtifact(path string) {
	if a.keepArtifacts {
		slog.Debug("keeping query artifact", "path", path)
		return
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Failed to remove query artifact", "path", path, "error", err)
	}
}

func classifyFailure(runErr error, stdout, stderr string) QueryOutcome {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitCode = exitErr.ExitCode()

		if strings.Contains(strings.ToLower(stderr), syntaxErrorMarker) {
			return QueryInvalidPattern{Stderr: stderr}
		}
	}

	slog.Error("engine invocation failed", "exitCode", exitCode, "error", runErr, "stdout", stdout, "stderr", stderr)

	return QueryFailure{ExitCode: exitCode, Stdout: stdout, Stderr: stderr, Err: runErr}
}

func writeQueryFile(dir, pattern string, payload any) (string, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create query file: %w", err)
	}

	encodeErr := json.NewEncoder(file).Encode(payload)
	closeErr := file.Close()

	if err := errors.Join(encodeErr, closeErr); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to write query file: %w", err)
	}

	return file.Name(), nil
}

type engineOutput struct {
	InputInfo struct {
		LenW    int `json:"lenW"`
		NStates int `json:"nStates"`
	} `json:"inputInfo"`
	MemoizationInfo struct {
		Config struct {
			Encoding        string `json:"encoding"`
			VertexSelection string `json:"vertexSelection"`
		} `json:"config"`
		Results struct {
			MaxAsymptoticCosts []int64 `json:"maxObservedAsymptoticCostsPerMemoizedVertex"`
			LegacyMaxCosts     []int64 `json:"maxObservedCostPerMemoizedVertex"`
			MaxMemoryBytes     []int64 `json:"maxObservedMemoryBytesPerMemoizedVertex"`
			NSelectedVertices  int     `json:"nSelectedVertices"`
			LenW               int     `json:"lenW"`
		} `json:"results"`
	} `json:"memoizationInfo"`
	SimulationInfo struct {
		NTotalVisits                 int64 `json:"nTotalVisits"`
		SimTimeUS                    int64 `json:"simTimeUS"`
		VisitsToMostVisitedSimPos    int64 `json:"visitsToMostVisitedSimPos"`
		NPossibleTotalVisitsWithMemo int64 `json:"nPossibleTotalVisitsWithMemoization"`
	} `json:"simulationInfo"`
}

func decodeEngineResponse(stdout string, stderr []byte) (m.EngineResponse, error) {
	payload := extractJSONObject(stderr)
	if payload == nil {
		return m.EngineResponse{}, fmt.Errorf("no JSON object in engine stderr")
	}

	var out engineOutput
	if err := json.Unmarshal(payload, &out); err != nil {
		return m.EngineResponse{}, fmt.Errorf("failed to decode engine output: %w", err)
	}

	costs := out.MemoizationInfo.Results.MaxAsymptoticCosts
	if costs == nil {
		costs = out.MemoizationInfo.Results.LegacyMaxCosts
	}

	inputLength := out.InputInfo.LenW
	if inputLength == 0 {
		inputLength = out.MemoizationInfo.Results.LenW
	}

	response := m.EngineResponse{
		InputLength:         inputLength,
		AutomatonSize:       out.InputInfo.NStates,
		SelectedVertexCount: out.MemoizationInfo.Results.NSelectedVertices,
		ConfiguredSelection: out.MemoizationInfo.Config.VertexSelection,
		ConfiguredEncoding:  out.MemoizationInfo.Config.Encoding,
		MaxCostPerVertex:    costs,
		MaxBytesPerVertex:   out.MemoizationInfo.Results.MaxMemoryBytes,
		TotalVisits:         out.SimulationInfo.NTotalVisits,
		MostVisitedSimPos:   out.SimulationInfo.VisitsToMostVisitedSimPos,
		PossibleMemoVisits:  out.SimulationInfo.NPossibleTotalVisitsWithMemo,
		Matched:             !strings.Contains(stdout, noMatchMarker),
		SimTimeUS:           out.SimulationInfo.SimTimeUS,
	}

	if bits := needBitsPattern.FindStringSubmatch(stdout); bits != nil {
		response.NeedBits, _ = strconv.Atoi(bits[1])
	}

	return response, nil
}

// extractJSONObject returns the outermost {...} span, tolerating log lines around it.
func extractJSONObject(data []byte) []byte {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')

	if start < 0 || end < start {
		return nil
	}

	return data[start : end+1]
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
