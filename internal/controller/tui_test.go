package controller

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

func TestTUI_ProgressCountsCompletedPatterns(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewTUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithMeasureMode()))
	ui.DisplayRunInfo(ctx, RunInfo{RunID: "r1", Engine: "memo-engine", Patterns: 2, Workers: 1})
	ui.DisplayCompletedPattern(ctx, m.Report{Pattern: "a*b", Status: m.StatusNotSuperLinear})
	ui.DisplayCompletedPattern(ctx, m.Report{Pattern: "(a|a)*b", Status: m.StatusSuperLinear})

	got := out.String()
	assert.Contains(t, got, headerTitle)
	assert.Contains(t, got, "measure: 2 pattern(s), 1 worker(s), engine memo-engine")
	assert.Contains(t, got, "[1/2]")
	assert.Contains(t, got, "[2/2]")
}

func TestTUI_DisplayReportsWithoutTerminalPrintsEverything(t *testing.T) {
	cmd, out := newTestCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.DisplayReports(context.Background(), sampleReports()))

	got := out.String()
	assert.Contains(t, got, "Stored reports:")
	assert.Contains(t, got, "(a|a)*b")
	assert.Contains(t, got, "growth=18 records=9 refs=node=match php=mismatch")
	assert.Contains(t, got, "Total: 2 report(s), 1 super-linear, 1 failure(s)")
	assert.NotContains(t, got, "Page ")
}

func TestTUI_DisplayEmptyViews(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		display func(*TUI) error
		want    string
	}{
		{name: "reports", display: func(ui *TUI) error { return ui.DisplayReports(ctx, nil) }, want: "No reports found"},
		{name: "curve", display: func(ui *TUI) error { return ui.DisplayCurve(ctx, nil) }, want: "REGEX"},
		{name: "self-test", display: func(ui *TUI) error { return ui.DisplaySelfTest(ctx, m.SuiteResult{}) }, want: "No cases in suite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCmd()
			require.NoError(t, tt.display(NewTUI(cmd)))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func pagerWithLines(n, height int) pagerModel {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}

	pm := newPagerModel("title", lines, []string{"footer"}, "empty")
	pm.height = height

	return pm
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPagerModel_Pagination(t *testing.T) {
	t.Run("unknown height never paginates", func(t *testing.T) {
		pm := pagerWithLines(100, 0)
		assert.False(t, pm.needsPagination())
	})

	t.Run("fits on one page", func(t *testing.T) {
		pm := pagerWithLines(5, 40)
		assert.False(t, pm.needsPagination())
	})

	t.Run("long lists are paged", func(t *testing.T) {
		pm := pagerWithLines(30, 19)

		assert.Equal(t, 10, pm.itemsPerPage())
		assert.Equal(t, 20, pm.maxOffset())
		require.True(t, pm.needsPagination())

		view := pm.View()
		assert.Contains(t, view, "line 09")
		assert.NotContains(t, view, "line 10")
		assert.Contains(t, view, "Page 1/3 | Showing 1-10 of 30")
	})

	t.Run("tiny terminal still shows one line", func(t *testing.T) {
		pm := pagerWithLines(3, 2)
		assert.Equal(t, 1, pm.itemsPerPage())
	})
}

func TestPagerModel_Keys(t *testing.T) {
	pm := pagerWithLines(30, 19)

	next, _ := pm.Update(keyMsg("j"))
	pm = next.(pagerModel)
	assert.Equal(t, 1, pm.offset)

	next, _ = pm.Update(keyMsg("d"))
	pm = next.(pagerModel)
	assert.Equal(t, 11, pm.offset)

	next, _ = pm.Update(keyMsg("G"))
	pm = next.(pagerModel)
	assert.Equal(t, 20, pm.offset)

	next, _ = pm.Update(keyMsg("j"))
	pm = next.(pagerModel)
	assert.Equal(t, 20, pm.offset)

	next, _ = pm.Update(keyMsg("g"))
	pm = next.(pagerModel)
	assert.Zero(t, pm.offset)

	next, _ = pm.Update(keyMsg("k"))
	pm = next.(pagerModel)
	assert.Zero(t, pm.offset)

	next, cmd := pm.Update(keyMsg("q"))
	pm = next.(pagerModel)
	assert.True(t, pm.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPagerModel_WindowResize(t *testing.T) {
	pm := pagerWithLines(5, 0)

	next, _ := pm.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	pm = next.(pagerModel)

	assert.Equal(t, 80, pm.width)
	assert.Equal(t, 12, pm.height)
}
