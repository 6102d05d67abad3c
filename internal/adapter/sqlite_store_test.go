package adapter

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

func TestSQLiteCostSink_WriteCostRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.db")

	sink, err := NewSQLiteCostSink(path)
	require.NoError(t, err)

	records := []m.FlatRecord{
		{Pattern: "(a+)+b", Selection: "full", Encoding: "none", PumpCount: 5, InputLength: 6, AutomatonSize: 4, SpaceCost: 28, GrowthRate: "180", ReferenceTags: map[string]string{"php": "mismatch"}},
		{Pattern: "(a+)+b", Selection: "indeg", Encoding: "neg", PumpCount: 5, InputLength: 6, AutomatonSize: 4, SpaceCost: 7, GrowthRate: "180"},
	}

	ctx := context.Background()
	require.NoError(t, sink.WriteCostRecords(ctx, "run-1", records))
	require.NoError(t, sink.WriteCostRecords(ctx, "run-2", records[:1]))

	n, err := sink.CountCostRecords(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, sink.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	defer db.Close()

	var (
		space int64
		tags  sql.NullString
	)

	err = db.QueryRow(`SELECT space_cost, reference_tags FROM cost_records WHERE run_id = ? AND selection_scheme = 'full'`, "run-2").Scan(&space, &tags)
	require.NoError(t, err)
	assert.Equal(t, int64(28), space)
	assert.Equal(t, `{"php":"mismatch"}`, tags.String)

	err = db.QueryRow(`SELECT reference_tags FROM cost_records WHERE selection_scheme = 'indeg'`).Scan(&tags)
	require.NoError(t, err)
	assert.False(t, tags.Valid)
}
