package domain

import (
	"maps"

	m "memoprof.dev/pkg/memoprof/internal/model"
)

// Assemble flattens a result into one row per scheme pair per pump count.
// It performs no validation.
func Assemble(result m.DynamicAnalysisResult) []m.FlatRecord {
	records := make([]m.FlatRecord, 0, len(result.CostRecords))
	growth := result.GrowthRate.String()

	for _, r := range result.CostRecords {
		var tags map[string]string
		if len(result.ReferenceTags) > 0 {
			tags = maps.Clone(result.ReferenceTags)
		}

		records = append(records, m.FlatRecord{
			Pattern:             result.Pattern,
			Selection:           r.Selection.Code(),
			Encoding:            r.Encoding.Code(),
			PumpCount:           r.PumpCount,
			InputLength:         r.InputLength,
			AutomatonSize:       r.AutomatonSize,
			SelectedVertexCount: r.SelectedVertexCount,
			TimeCostUS:          r.TimeCostUS,
			SpaceCost:           r.SpaceCost,
			SpaceBytes:          r.SpaceBytes,
			GrowthRate:          growth,
			ReferenceTags:       tags,
		})
	}

	return records
}
