package adapter

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Output file names inside a results directory.
const (
	ReportsFileName = "results.ndjson"
	CostsFileName   = "costs.csv"
	SummaryFileName = "summary.json"
	PhiFileName     = "phi.ndjson"
	CurveFileName   = "curve.csv"
)

var costsHeader = []string{
	"pattern", "selectionScheme", "encodingScheme", "pumpCount", "inputLength",
	"automatonSize", "selectedVertexCount", "timeCostUS", "spaceCost", "spaceBytes",
	"growthRate", "referenceTags",
}

var curveHeader = []string{"regex", "memoized", "nPumps", "matchTimeMS"}

// ReportStore persists analysis output to a results directory.
type ReportStore interface {
	SaveReports(ctx context.Context, dir string, reports []m.Report) error
	LoadReports(ctx context.Context, dir string) ([]m.Report, error)
	SaveFlatRecords(ctx context.Context, dir string, records []m.FlatRecord) error
	SaveSummary(ctx context.Context, dir string, summary m.Summary) error
	SaveStaticAnalyses(ctx context.Context, dir string, analyses []m.MemoizationStaticAnalysis) error
	SaveCurve(ctx context.Context, dir string, points []m.CurvePoint) error
}

type fileReportStore struct{}

// NewReportStore returns a ReportStore writing NDJSON, CSV and JSON files.
func NewReportStore() ReportStore {
	return &fileReportStore{}
}

func (s *fileReportStore) SaveReports(ctx context.Context, dir string, reports []m.Report) error {
	sorted := make([]m.Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	return writeNDJSON(ctx, dir, ReportsFileName, sorted)
}

func (s *fileReportStore) LoadReports(ctx context.Context, dir string) ([]m.Report, error) {
	path := filepath.Join(dir, ReportsFileName)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reports: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close reports file", "path", path, "error", err)
		}
	}()

	var reports []m.Report

	decoder := json.NewDecoder(file)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var report m.Report

		err := decoder.Decode(&report)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode report %d: %w", len(reports), err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (s *fileReportStore) SaveFlatRecords(ctx context.Context, dir string, records []m.FlatRecord) error {
	rows := make([][]string, 0, len(records))

	for _, r := range records {
		tags := ""

		if len(r.ReferenceTags) > 0 {
			raw, err := json.Marshal(r.ReferenceTags)
			if err != nil {
				return fmt.Errorf("failed to encode reference tags: %w", err)
			}

			tags = string(raw)
		}

		rows = append(rows, []string{
			r.Pattern,
			r.Selection,
			r.Encoding,
			strconv.Itoa(r.PumpCount),
			strconv.Itoa(r.InputLength),
			strconv.Itoa(r.AutomatonSize),
			strconv.Itoa(r.SelectedVertexCount),
			strconv.FormatInt(r.TimeCostUS, 10),
			strconv.FormatInt(r.SpaceCost, 10),
			strconv.FormatInt(r.SpaceBytes, 10),
			r.GrowthRate,
			tags,
		})
	}

	return writeCSV(ctx, dir, CostsFileName, costsHeader, rows)
}

func (s *fileReportStore) SaveSummary(ctx context.Context, dir string, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	path := filepath.Join(dir, SummaryFileName)
	if err := os.WriteFile(path, append(raw, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

func (s *fileReportStore) SaveStaticAnalyses(ctx context.Context, dir string, analyses []m.MemoizationStaticAnalysis) error {
	return writeNDJSON(ctx, dir, PhiFileName, analyses)
}

func (s *fileReportStore) SaveCurve(ctx context.Context, dir string, points []m.CurvePoint) error {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Regex,
			strconv.FormatBool(p.Memoized),
			strconv.Itoa(p.Pumps),
			strconv.FormatInt(p.MatchTimeMS, 10),
		})
	}

	return writeCSV(ctx, dir, CurveFileName, curveHeader, rows)
}

func writeNDJSON[T any](ctx context.Context, dir, name string, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)

	for i, item := range items {
		if err := encoder.Encode(item); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to encode %s line %d: %w", name, i, err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	slog.Debug("wrote ndjson", "path", path, "count", len(items))

	return nil
}

func writeCSV(ctx context.Context, dir, name string, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	w := csv.NewWriter(file)
	_ = w.Write(header)
	_ = w.WriteAll(rows)

	if err := errors.Join(w.Error(), file.Close()); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	slog.Debug("wrote csv", "path", path, "rows", len(rows))

	return nil
}

// ReadCSV loads a CSV file written by the store, header included.
func ReadCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close csv file", "path", path, "error", err)
		}
	}()

	return csv.NewReader(file).ReadAll()
}
