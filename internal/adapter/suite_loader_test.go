package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSuite = `
semantic:
  - pattern: "a+"
    input: "aaa"
    expect: match
  - pattern: "("
    input: "a"
    expect: syntax
performance:
  - pattern: "(a|a)+$"
    template: ":a:!"
    memo: none
    curve: exp
`

func TestSuiteLoader_LoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSuite), 0o600))

	suite, err := NewSuiteLoader().LoadSuite(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, suite.Semantic, 2)
	assert.Equal(t, "syntax", suite.Semantic[1].Expect)
	require.Len(t, suite.Performance, 1)
	assert.Equal(t, ":a:!", suite.Performance[0].Template)
	assert.Equal(t, "exp", suite.Performance[0].Curve)
}

func TestSuiteLoader_Errors(t *testing.T) {
	_, err := NewSuiteLoader().LoadSuite(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("semantic: [unterminated"), 0o600))

	_, err = NewSuiteLoader().LoadSuite(context.Background(), path)
	require.Error(t, err)
}

func TestSuiteLoader_ExampleSuite(t *testing.T) {
	suite, err := NewSuiteLoader().LoadSuite(context.Background(), filepath.Join("..", "..", "examples", "selftest.yaml"))
	require.NoError(t, err)

	assert.Len(t, suite.Semantic, 5)
	assert.Len(t, suite.Performance, 5)
	assert.Equal(t, "ancestor", suite.Performance[4].Memo)
}
