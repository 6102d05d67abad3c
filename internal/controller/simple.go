package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

const maxPatternWidth = 48

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo prints the batch parameters.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Measuring %d pattern(s) with %d worker(s) using %s (run %s)\n",
		info.Patterns, info.Workers, info.Engine, info.RunID)
}

// DisplayCompletedPattern prints one line per finished pattern.
func (s *SimpleUI) DisplayCompletedPattern(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d] /%s/ -> %s (%s)\n", report.Index, truncatePattern(report.Pattern), report.Status, report.Elapsed.Round(time.Millisecond))

	if report.Cause != "" && report.Status != m.StatusNotSuperLinear {
		s.printf("    %s\n", report.Cause)
	}
}

// DisplaySummary prints the per-status tally and the failing patterns.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	for _, failure := range summary.Failures {
		s.printf("  %s /%s/: %s\n", failure.Status, truncatePattern(failure.Pattern), failure.Cause)
	}

	return nil
}

// DisplayReports prints stored reports as a table.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.printf("%s", renderTable(reportHeader, buildReportRows(reports),
		[]string{fmt.Sprintf("Total %d", len(reports)), "", "", "", "", ""}))

	return nil
}

// DisplayStaticAnalyses prints selected-vertex counts per policy.
func (s *SimpleUI) DisplayStaticAnalyses(ctx context.Context, analyses []m.MemoizationStaticAnalysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	header, rows := buildStaticRows(analyses)
	s.printf("%s", renderTable(header, rows, nil))

	return nil
}

// DisplayCurve prints the match-time curve points.
func (s *SimpleUI) DisplayCurve(ctx context.Context, points []m.CurvePoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTable(curveHeader, buildCurveRows(points), nil))

	return nil
}

// DisplaySelfTest prints each case verdict and its failing configurations.
func (s *SimpleUI) DisplaySelfTest(ctx context.Context, result m.SuiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, c := range result.Cases {
		verdict := "PASS"
		if !c.Passed {
			verdict = "FAIL"
		}

		s.printf("%s %-11s %s\n", verdict, c.Kind, c.Description)

		for _, f := range c.Failures {
			s.printf("    %s\n", f)
		}
	}

	s.printf("%s: %d/%d case(s) failed\n", result.Source, result.FailedCases(), len(result.Cases))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

var (
	reportHeader = []string{"#", "Pattern", "Status", "Growth", "Records", "References"}
	curveHeader  = []string{"Regex", "Memoized", "Pumps", "Match ms"}
)

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}

	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)

	if len(footer) > 0 {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(summary m.Summary) string {
	rows := make([][]string, 0, len(m.AllStatuses))

	for _, status := range m.AllStatuses {
		count := summary.ByStatus[status]
		if count == 0 {
			continue
		}

		rows = append(rows, []string{status.String(), strconv.Itoa(count)})
	}

	return renderTable([]string{"Status", "Patterns"}, rows,
		[]string{"Total", strconv.Itoa(summary.Total)})
}

func buildReportRows(reports []m.Report) [][]string {
	rows := make([][]string, 0, len(reports))

	for _, r := range reports {
		growth, records, refs := "-", "-", "-"

		if r.Result != nil {
			growth = r.Result.GrowthRate.String()
			records = strconv.Itoa(len(r.Result.CostRecords))
			refs = formatTags(r.Result.ReferenceTags)
		}

		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			truncatePattern(r.Pattern),
			r.Status.String(),
			growth,
			records,
			refs,
		})
	}

	return rows
}

func buildStaticRows(analyses []m.MemoizationStaticAnalysis) ([]string, [][]string) {
	policies := make([]string, 0, len(m.MemoizingSelections))
	for _, sel := range m.MemoizingSelections {
		policies = append(policies, sel.PolicyName())
	}

	header := append([]string{"Pattern", "|Q|"}, policies...)
	rows := make([][]string, 0, len(analyses))

	for _, a := range analyses {
		row := []string{truncatePattern(a.Pattern), strconv.Itoa(a.AutomatonSize)}
		for _, policy := range policies {
			row = append(row, strconv.Itoa(a.Policy2nSelectedVertices[policy]))
		}

		rows = append(rows, row)
	}

	return header, rows
}

func buildCurveRows(points []m.CurvePoint) [][]string {
	rows := make([][]string, 0, len(points))

	for _, p := range points {
		rows = append(rows, []string{
			p.Regex,
			strconv.FormatBool(p.Memoized),
			strconv.Itoa(p.Pumps),
			strconv.FormatInt(p.MatchTimeMS, 10),
		})
	}

	return rows
}

func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return "-"
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}

	sort.Strings(names)

	var b bytes.Buffer

	for i, name := range names {
		if i > 0 {
			b.WriteString(" ")
		}

		fmt.Fprintf(&b, "%s=%s", name, tags[name])
	}

	return b.String()
}

func truncatePattern(p m.Pattern) string {
	runes := []rune(p)
	if len(runes) <= maxPatternWidth {
		return p
	}

	return string(runes[:maxPatternWidth-3]) + "..."
}
