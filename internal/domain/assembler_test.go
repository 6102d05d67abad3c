package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoprof.dev/pkg/memoprof/internal/domain"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

func TestAssemble(t *testing.T) {
	records := measuredRecords(t)
	tags := map[string]string{"php": domain.TagMatch}

	result := m.DynamicAnalysisResult{
		Pattern:       quadraticPattern,
		Template:      aTemplate(),
		GrowthRate:    m.GrowthRate{Acceleration: 18},
		CostRecords:   records,
		Valid:         true,
		ReferenceTags: tags,
	}

	flat := domain.Assemble(result)
	require.Len(t, flat, len(records))

	for i, row := range flat {
		assert.Equal(t, quadraticPattern, row.Pattern)
		assert.Equal(t, records[i].Selection.Code(), row.Selection)
		assert.Equal(t, records[i].Encoding.Code(), row.Encoding)
		assert.Equal(t, records[i].SpaceCost, row.SpaceCost)
		assert.Equal(t, "18", row.GrowthRate)
		assert.Equal(t, tags, row.ReferenceTags)
	}

	flat[0].ReferenceTags["php"] = domain.TagMismatch
	assert.Equal(t, domain.TagMatch, tags["php"])

	unbounded := domain.Assemble(m.DynamicAnalysisResult{
		GrowthRate:  m.GrowthRate{Unbounded: true},
		CostRecords: records[:1],
	})
	require.Len(t, unbounded, 1)
	assert.Equal(t, "INF", unbounded[0].GrowthRate)
	assert.Nil(t, unbounded[0].ReferenceTags)
}
