package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoprof.dev/pkg/memoprof/internal/domain"
	m "memoprof.dev/pkg/memoprof/internal/model"
)

func TestExpandPumpPairs(t *testing.T) {
	t.Run("single pair yields only the original", func(t *testing.T) {
		out := domain.ExpandPumpPairs(aTemplate())
		require.Len(t, out, 1)
		assert.Equal(t, aTemplate(), out[0])
	})

	t.Run("one variant per pair", func(t *testing.T) {
		template := m.AttackTemplate{
			CouldParse: true,
			PumpPairs: []m.PumpPair{
				{Prefix: "p1", Pump: "x"},
				{Prefix: "p2", Pump: "y"},
				{Prefix: "p3", Pump: "z"},
			},
			Suffix: "!",
		}

		out := domain.ExpandPumpPairs(template)
		require.Len(t, out, 4)

		assert.Equal(t, template, out[0])
		assert.Equal(t, "p1xxxp2yyyp3zzz!", out[0].Build(3))

		built := make([]string, 0, 3)
		for _, variant := range out[1:] {
			require.Len(t, variant.PumpPairs, 1)
			built = append(built, variant.Build(3))
		}

		assert.Equal(t, []string{"p1xxxp2yp3z!", "p1xp2yyyp3z!", "p1xp2yp3zzz!"}, built)
	})

	t.Run("variants do not share pump slices", func(t *testing.T) {
		template := m.AttackTemplate{PumpPairs: []m.PumpPair{{Pump: "a"}, {Pump: "b"}}}

		out := domain.ExpandPumpPairs(template)
		out[0].PumpPairs[0].Pump = "changed"

		assert.Equal(t, "a", template.PumpPairs[0].Pump)
	})

	t.Run("identity expander clones", func(t *testing.T) {
		out := domain.IdentityExpander(aTemplate())
		require.Len(t, out, 1)
		assert.Equal(t, aTemplate(), out[0])
	})
}
