// Package controller provides output adapters for displaying memoization cost results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMeasure StartMode = iota
	ModePhi
	ModeCurve
	ModeSelfTest
	ModeView
)

func (s StartMode) String() string {
	switch s {
	case ModeMeasure:
		return "measure"
	case ModePhi:
		return "phi"
	case ModeCurve:
		return "curve"
	case ModeSelfTest:
		return "selftest"
	case ModeView:
		return "view"
	}

	return "unknown"
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode reports the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithMeasureMode sets the UI to batch measurement mode.
func WithMeasureMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMeasure
	}
}

// WithPhiMode sets the UI to static selection analysis mode.
func WithPhiMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePhi
	}
}

// WithCurveMode sets the UI to match-time curve mode.
func WithCurveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCurve
	}
}

// WithSelfTestMode sets the UI to engine self-test mode.
func WithSelfTestMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSelfTest
	}
}

// WithViewMode sets the UI to report browsing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMeasure}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// RunInfo describes a batch before it starts.
type RunInfo struct {
	RunID    string
	Engine   string
	Patterns int
	Workers  int
}

// UI defines the interface for displaying measurement progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayCompletedPattern(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayReports(ctx context.Context, reports []m.Report) error
	DisplayStaticAnalyses(ctx context.Context, analyses []m.MemoizationStaticAnalysis) error
	DisplayCurve(ctx context.Context, points []m.CurvePoint) error
	DisplaySelfTest(ctx context.Context, result m.SuiteResult) error
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
