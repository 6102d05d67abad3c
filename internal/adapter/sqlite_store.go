package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	m "memoprof.dev/pkg/memoprof/internal/model"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

const createCostRecordsTable = `
CREATE TABLE IF NOT EXISTS cost_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	pattern TEXT NOT NULL,
	selection_scheme TEXT NOT NULL,
	encoding_scheme TEXT NOT NULL,
	pump_count INTEGER NOT NULL,
	input_length INTEGER NOT NULL,
	automaton_size INTEGER NOT NULL,
	selected_vertex_count INTEGER NOT NULL,
	time_cost_us INTEGER NOT NULL,
	space_cost INTEGER NOT NULL,
	space_bytes INTEGER NOT NULL,
	growth_rate TEXT NOT NULL,
	reference_tags TEXT
)`

const insertCostRecord = `
INSERT INTO cost_records (
	run_id, pattern, selection_scheme, encoding_scheme, pump_count, input_length,
	automaton_size, selected_vertex_count, time_cost_us, space_cost, space_bytes,
	growth_rate, reference_tags
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CostSink receives flat cost records for a run.
type CostSink interface {
	WriteCostRecords(ctx context.Context, runID string, records []m.FlatRecord) error
	Close() error
}

// SQLiteCostSink stores flat cost records in a SQLite database.
type SQLiteCostSink struct {
	db   *sql.DB
	path string
}

// NewSQLiteCostSink opens (or creates) the database at path.
func NewSQLiteCostSink(path string) (*SQLiteCostSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(createCostRecordsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cost_records table: %w", err)
	}

	slog.Debug("opened sqlite cost sink", "path", path)

	return &SQLiteCostSink{db: db, path: path}, nil
}

// WriteCostRecords inserts every record in a single transaction.
func (s *SQLiteCostSink) WriteCostRecords(ctx context.Context, runID string, records []m.FlatRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertCostRecord)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	defer func() {
		if err := stmt.Close(); err != nil {
			slog.Error("failed to close statement", "path", s.path, "error", err)
		}
	}()

	for _, r := range records {
		var tags sql.NullString

		if len(r.ReferenceTags) > 0 {
			raw, err := json.Marshal(r.ReferenceTags)
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to encode reference tags: %w", err)
			}

			tags = sql.NullString{String: string(raw), Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			runID, r.Pattern, r.Selection, r.Encoding, r.PumpCount, r.InputLength,
			r.AutomatonSize, r.SelectedVertexCount, r.TimeCostUS, r.SpaceCost, r.SpaceBytes,
			r.GrowthRate, tags,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert cost record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cost records: %w", err)
	}

	slog.Info("stored cost records", "path", s.path, "runId", runID, "count", len(records))

	return nil
}

// CountCostRecords returns the number of rows stored for runID.
func (s *SQLiteCostSink) CountCostRecords(ctx context.Context, runID string) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cost_records WHERE run_id = ?", runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count cost records: %w", err)
	}

	return n, nil
}

// Close closes the database.
func (s *SQLiteCostSink) Close() error {
	return s.db.Close()
}
