package controller

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

const headerTitle = "memoprof - Memoization Cost Profiler"

var headerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Bold(true).
	Padding(0, 2)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

var statusStyles = map[m.ReportStatus]lipgloss.Style{
	m.StatusSuperLinear:        passStyle,
	m.StatusNotSuperLinear:     mutedStyle,
	m.StatusInvalidPattern:     warnStyle,
	m.StatusMeasurementTimeout: failStyle,
	m.StatusInvariantViolation: failStyle,
	m.StatusEngineFailure:      failStyle,
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd    *cobra.Command
	mu     sync.Mutex
	config StartConfig
	done   int
	total  int
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start records the mode and prints the banner.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	p.config = newStartConfig(options)
	p.done = 0
	p.mu.Unlock()

	p.printf("%s\n", headerStyle.Render(headerTitle))

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait returns immediately; paginated views block inside their Display call.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo prints the batch parameters.
func (p *TUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	p.total = info.Patterns
	mode := p.config.Mode()
	p.mu.Unlock()

	p.printf("  🔬 %s: %d pattern(s), %d worker(s), engine %s\n  %s\n\n",
		mode, info.Patterns, info.Workers, info.Engine, mutedStyle.Render("run "+info.RunID))
}

// DisplayCompletedPattern prints a progress line for a finished pattern.
func (p *TUI) DisplayCompletedPattern(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	p.done++
	done, total := p.done, p.total
	p.mu.Unlock()

	p.printf("  [%d/%d] %s /%s/ %s\n", done, total,
		styleStatus(report.Status), truncatePattern(report.Pattern),
		mutedStyle.Render(report.Elapsed.Round(time.Millisecond).String()))
}

// DisplaySummary prints the per-status tally.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString("\n  📊 Summary:\n")

	for _, status := range m.AllStatuses {
		if count := summary.ByStatus[status]; count > 0 {
			fmt.Fprintf(&b, "  %-22s %d\n", styleStatus(status), count)
		}
	}

	fmt.Fprintf(&b, "  Total: %d\n", summary.Total)

	for _, failure := range summary.Failures {
		fmt.Fprintf(&b, "  %s /%s/: %s\n", styleStatus(failure.Status), truncatePattern(failure.Pattern), failure.Cause)
	}

	p.printf("%s", b.String())

	return nil
}

// DisplayReports shows stored reports in a paginated view.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(reports))

	for _, row := range buildReportRows(reports) {
		lines = append(lines, fmt.Sprintf("  %4s  %-48s  %s  growth=%s records=%s refs=%s",
			row[0], row[1], styleStatusText(row[2]), row[3], row[4], row[5]))
	}

	summary := m.NewSummary("")
	for _, r := range reports {
		summary.Add(r)
	}

	footer := []string{fmt.Sprintf("  📊 Total: %d report(s), %d super-linear, %d failure(s)",
		summary.Total, summary.ByStatus[m.StatusSuperLinear], len(summary.Failures))}

	return p.page("🧾 Stored reports:", lines, footer, "📭 No reports found")
}

// DisplayStaticAnalyses shows selected-vertex counts per policy.
func (p *TUI) DisplayStaticAnalyses(ctx context.Context, analyses []m.MemoizationStaticAnalysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	header, rows := buildStaticRows(analyses)

	return p.page("🧮 Selected vertices per policy:", splitLines(renderTable(header, rows, nil)), nil, "📭 No patterns analyzed")
}

// DisplayCurve shows the match-time curve.
func (p *TUI) DisplayCurve(ctx context.Context, points []m.CurvePoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page("📈 Match time curve:", splitLines(renderTable(curveHeader, buildCurveRows(points), nil)), nil, "📭 No curve points")
}

// DisplaySelfTest shows each case verdict.
func (p *TUI) DisplaySelfTest(ctx context.Context, result m.SuiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var lines []string

	for _, c := range result.Cases {
		verdict := passStyle.Render("✓")
		if !c.Passed {
			verdict = failStyle.Render("✗")
		}

		lines = append(lines, fmt.Sprintf("  %s %-11s %s", verdict, c.Kind, c.Description))

		for _, f := range c.Failures {
			lines = append(lines, "      "+f)
		}
	}

	footer := []string{fmt.Sprintf("  📊 %s: %d/%d case(s) failed", result.Source, result.FailedCases(), len(result.Cases))}

	return p.page("🧪 Engine self-test:", lines, footer, "📭 No cases in suite")
}

func (p *TUI) page(title string, lines, footer []string, empty string) error {
	model := newPagerModel(title, lines, footer, empty)

	output := p.cmd.OutOrStdout()

	// Get initial terminal size
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		p.printf("%s", model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (p *TUI) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.cmd.OutOrStdout(), format, args...)
}

func styleStatus(status m.ReportStatus) string {
	style, ok := statusStyles[status]
	if !ok {
		return status.String()
	}

	return style.Render(status.String())
}

func styleStatusText(text string) string {
	var status m.ReportStatus
	if err := status.UnmarshalText([]byte(text)); err != nil {
		return text
	}

	return styleStatus(status)
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

type pagerKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
	}
}

func (k pagerKeyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Quit}
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		parts = append(parts, b.Help().Key+": "+b.Help().Desc)
	}

	return "  " + helpStyle.Render(strings.Join(parts, " | "))
}

// pagerModel is a scrollable list of pre-rendered lines.
type pagerModel struct {
	title    string
	lines    []string
	footer   []string
	empty    string
	keys     pagerKeyMap
	height   int
	width    int
	offset   int
	quitting bool
}

func newPagerModel(title string, lines, footer []string, empty string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  lines,
		footer: footer,
		empty:  empty,
		keys:   defaultPagerKeys(),
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Down):
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case key.Matches(msg, pm.keys.Up):
		pm.offset = max(pm.offset-1, 0)

	case key.Matches(msg, pm.keys.Top):
		pm.offset = 0

	case key.Matches(msg, pm.keys.Bottom):
		pm.offset = pm.maxOffset()

	case key.Matches(msg, pm.keys.PageDown):
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case key.Matches(msg, pm.keys.PageUp):
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit between header and footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	// header box 3, title 2, footer block, pagination 3
	reserved := 8 + len(pm.footer)

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(headerTitle))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n\n", titleStyle.Render(pm.title))

	if len(pm.lines) == 0 {
		fmt.Fprintf(&b, "  %s\n", pm.empty)
		return b.String()
	}

	paginate := pm.needsPagination()
	start, end := 0, len(pm.lines)

	if paginate {
		start = min(pm.offset, len(pm.lines)-1)
		end = min(start+pm.itemsPerPage(), len(pm.lines))
	}

	for _, line := range pm.lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(pm.footer) > 0 {
		b.WriteString("\n")

		for _, line := range pm.footer {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if paginate {
		perPage := pm.itemsPerPage()
		fmt.Fprintf(&b, "\n  Page %d/%d | Showing %d-%d of %d\n",
			pm.offset/perPage+1, (len(pm.lines)+perPage-1)/perPage, start+1, end, len(pm.lines))
		b.WriteString(pm.keys.helpLine())
		b.WriteString("\n")
	}

	return b.String()
}
