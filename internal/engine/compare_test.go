package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/palletpack/internal/model"
)

func TestCompareScenariosRunsEachVariant(t *testing.T) {
	pallet := model.PalletConfig{Length: 120, Width: 80, Height: 100, MaxWeight: 1000}
	products := makeMixedProducts(14)

	base := defaultTestOptions()
	scenarios := BuildDefaultScenarios(base)
	require.GreaterOrEqual(t, len(scenarios), 2, "expected at least 2 scenarios (current + alternate algorithm)")

	results, err := CompareScenarios(scenarios, products, pallet)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name, "scenario order should be preserved at index %d", i)
	}
}

func TestBuildDefaultScenariosTogglesAlgorithm(t *testing.T) {
	base := model.DefaultOptions()
	base.Algorithm = model.AlgorithmGenetic

	scenarios := BuildDefaultScenarios(base)
	foundGreedy := false
	for _, s := range scenarios {
		if s.Options.Algorithm == model.AlgorithmGreedy {
			foundGreedy = true
		}
	}
	assert.True(t, foundGreedy, "expected a greedy alternative scenario when base algorithm is genetic")
}
