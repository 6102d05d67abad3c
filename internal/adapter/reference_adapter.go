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
	"sort"
	"time"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Exception strings written by the reference engines.
const (
	// InvalidInputException marks a pattern the engine cannot compile.
	InvalidInputException = "INVALID_INPUT"
	// NoException is written by the .NET engine after a completed match.
	NoException = "No exception"
	// MatchTimeoutException is written by the .NET engine when its own match timeout fires.
	MatchTimeoutException = "Regex match timed out"
)

// ReferenceQuery is the query file handed to a reference engine.
type ReferenceQuery struct {
	Pattern   m.Pattern        `json:"pattern"`
	EvilInput m.AttackTemplate `json:"evilInput"`
	NPumps    int              `json:"nPumps"`
	TimeoutMS int64            `json:"timeoutMS"`
}

// ReferenceResult is the decoded answer of a reference engine.
type ReferenceResult struct {
	Matched         bool
	InputLength     int
	ExceptionString string
}

// ReferenceEngines runs the configured production regex engines.
type ReferenceEngines interface {
	Names() []string
	Query(ctx context.Context, name string, query ReferenceQuery, timeout time.Duration) (ReferenceResult, error)
}

type localReferenceEngines struct {
	argv        map[string][]string
	artifactDir string
}

// NewLocalReferenceEngines builds ReferenceEngines from name to argv mappings.
// The query file path is appended as the last argument.
func NewLocalReferenceEngines(argv map[string][]string, artifactDir string) ReferenceEngines {
	engines := make(map[string][]string, len(argv))

	for name, args := range argv {
		if len(args) == 0 {
			slog.Warn("ignoring reference engine without command", "name", name)
			continue
		}

		engines[name] = append([]string(nil), args...)
	}

	return &localReferenceEngines{argv: engines, artifactDir: artifactDir}
}

func (r *localReferenceEngines) Names() []string {
	names := make([]string, 0, len(r.argv))
	for name := range r.argv {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (r *localReferenceEngines) Query(ctx context.Context, name string, query ReferenceQuery, timeout time.Duration) (ReferenceResult, error) {
	argv, ok := r.argv[name]
	if !ok {
		return ReferenceResult{}, fmt.Errorf("unknown reference engine %q", name)
	}

	queryFile, err := writeQueryFile(r.artifactDir, "memoprof-ref-*.json", query)
	if err != nil {
		return ReferenceResult{}, err
	}

	defer func() {
		if err := os.Remove(queryFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to remove reference query", "path", queryFile, "error", err)
		}
	}()

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	args := append(append([]string(nil), argv[1:]...), queryFile)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.WaitDelay = processWaitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ReferenceResult{}, fmt.Errorf("%w: reference engine %s", ErrTimeout, name)
	}

	if err := ctx.Err(); err != nil {
		return ReferenceResult{}, fmt.Errorf("reference engine %s: %w", name, err)
	}

	if runErr != nil {
		return ReferenceResult{}, fmt.Errorf("%w: reference engine %s: %v: %s", ErrInvocation, name, runErr, firstLine(stderr.String()))
	}

	return decodeReferenceOutput(stdout.Bytes())
}

func decodeReferenceOutput(stdout []byte) (ReferenceResult, error) {
	payload := extractJSONObject(stdout)
	if payload == nil {
		return ReferenceResult{}, fmt.Errorf("%w: no JSON object in reference output", ErrInvocation)
	}

	var raw struct {
		Matched         json.RawMessage `json:"matched"`
		InputLength     int             `json:"inputLength"`
		ExceptionString string          `json:"exceptionString"`
	}

	if err := json.Unmarshal(payload, &raw); err != nil {
		return ReferenceResult{}, fmt.Errorf("%w: failed to decode reference output: %v", ErrInvocation, err)
	}

	return ReferenceResult{
		Matched:         truthy(raw.Matched),
		InputLength:     raw.InputLength,
		ExceptionString: raw.ExceptionString,
	}, nil
}

// truthy accepts the booleans and 0/1 integers different engines emit.
func truthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "true", "1":
		return true
	}

	return false
}
