package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "engine.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))

	return path
}

func TestLocalReferenceEngines_Query(t *testing.T) {
	matching := writeScript(t, `echo 'log line' >&2; echo '{"matched":1,"inputLength":4,"exceptionString":""}'`)
	invalid := writeScript(t, `echo '{"matched":false,"inputLength":4,"exceptionString":"INVALID_INPUT"}'`)
	echoQuery := writeScript(t, `cat "$1"`)
	slow := writeScript(t, `exec sleep 5`)
	broken := writeScript(t, `exit 2`)

	engines := NewLocalReferenceEngines(map[string][]string{
		"php":    {"/bin/sh", matching},
		"csharp": {invalid},
		"echo":   {echoQuery},
		"slow":   {slow},
		"broken": {broken},
		"empty":  {},
	}, t.TempDir())

	assert.Equal(t, []string{"broken", "csharp", "echo", "php", "slow"}, engines.Names())

	query := ReferenceQuery{
		Pattern:   "(a+)+b",
		EvilInput: m.AttackTemplate{PumpPairs: []m.PumpPair{{Pump: "a"}}, Suffix: "!"},
		NPumps:    3,
		TimeoutMS: 1000,
	}

	ctx := context.Background()

	res, err := engines.Query(ctx, "php", query, time.Second)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, 4, res.InputLength)

	res, err = engines.Query(ctx, "csharp", query, time.Second)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Equal(t, InvalidInputException, res.ExceptionString)

	_, err = engines.Query(ctx, "echo", query, time.Second)
	require.NoError(t, err, "query file is valid JSON")

	_, err = engines.Query(ctx, "slow", query, 100*time.Millisecond)
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)

	_, err = engines.Query(ctx, "broken", query, time.Second)
	assert.True(t, errors.Is(err, ErrInvocation), "got %v", err)

	_, err = engines.Query(ctx, "missing", query, time.Second)
	require.Error(t, err)
}

func TestLocalReferenceEngines_DotnetOutput(t *testing.T) {
	matched := writeScript(t, `echo 'Attempting match' >&2; echo '{"pattern":"(a+)+b","matched":1,"inputLength":4,"exceptionString":"No exception"}'`)
	timedOut := writeScript(t, `echo 'Regex match timed out' >&2; echo '{"pattern":"(a+)+b","matched":0,"inputLength":4,"exceptionString":"Regex match timed out"}'`)

	engines := NewLocalReferenceEngines(map[string][]string{
		"csharp":         {matched},
		"csharp-timeout": {timedOut},
	}, t.TempDir())

	query := ReferenceQuery{Pattern: "(a+)+b", EvilInput: m.AttackTemplate{PumpPairs: []m.PumpPair{{Pump: "a"}}, Suffix: "!"}, NPumps: 3}

	res, err := engines.Query(context.Background(), "csharp", query, time.Second)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, NoException, res.ExceptionString)

	res, err = engines.Query(context.Background(), "csharp-timeout", query, time.Second)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Equal(t, MatchTimeoutException, res.ExceptionString)
}

func TestLocalReferenceEngines_Cancelled(t *testing.T) {
	slow := writeScript(t, `exec sleep 5`)
	engines := NewLocalReferenceEngines(map[string][]string{"slow": {slow}}, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(100*time.Millisecond, cancel)
	t.Cleanup(func() {
		timer.Stop()
		cancel()
	})

	_, err := engines.Query(ctx, "slow", ReferenceQuery{Pattern: "a"}, 5*time.Second)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrInvocation))
	assert.False(t, errors.Is(err, ErrTimeout))
}
