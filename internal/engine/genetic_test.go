package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/palletpack/internal/model"
)

func makeMixedProducts(n int) []model.Product {
	sizes := [][3]float64{{30, 20, 15}, {40, 40, 10}, {25, 25, 25}, {60, 30, 20}}
	products := make([]model.Product, n)
	for i := range products {
		s := sizes[i%len(sizes)]
		products[i] = model.Product{ID: "p", Code: "MIX", Length: s[0], Width: s[1], Height: s[2], Weight: 5}
	}
	return products
}

func TestGeneticOptimizerNeverRegressesBelowIdentityOrder(t *testing.T) {
	pallet := model.PalletConfig{Length: 120, Width: 80, Height: 100, MaxWeight: 1000}
	products := makeMixedProducts(12)

	cfg := geneticConfig{populationSize: 10, generations: 5, mutationRate: 0.30, tournamentSize: 3, eliteCount: 2}
	ga := newGeneticOptimizer(cfg, pallet, products, false, 1)

	identityFitness := ga.evaluate(chromosome{perm: identityPerm(len(products))})

	_, history := ga.optimize()
	require.NotEmpty(t, history)
	best := history[len(history)-1]
	assert.GreaterOrEqual(t, best, identityFitness, "GA best fitness should never regress below identity order")
}

func TestGeneticOptimizerDeterministicWithSameSeed(t *testing.T) {
	pallet := model.PalletConfig{Length: 120, Width: 80, Height: 100, MaxWeight: 1000}
	products := makeMixedProducts(10)
	cfg := geneticConfig{populationSize: 8, generations: 4, mutationRate: 0.30, tournamentSize: 3, eliteCount: 2}

	ga1 := newGeneticOptimizer(cfg, pallet, products, false, 42)
	order1, _ := ga1.optimize()

	ga2 := newGeneticOptimizer(cfg, pallet, products, false, 42)
	order2, _ := ga2.optimize()

	require.Len(t, order2, len(order1))
	for i := range order1 {
		assert.Equal(t, order1[i].ID, order2[i].ID, "diverged at index %d", i)
		assert.Equal(t, order1[i].Length, order2[i].Length, "diverged at index %d", i)
	}
}

func TestOrderCrossoverProducesValidPermutation(t *testing.T) {
	cfg := geneticConfig{populationSize: 2, generations: 1, mutationRate: 0, tournamentSize: 2, eliteCount: 1}
	ga := newGeneticOptimizer(cfg, model.PalletConfig{Length: 1, Width: 1, Height: 1, MaxWeight: 1}, makeMixedProducts(8), false, 7)

	p1 := chromosome{perm: identityPerm(8)}
	p2 := chromosome{perm: []int{7, 6, 5, 4, 3, 2, 1, 0}}
	child := ga.orderCrossover(p1, p2)

	require.Len(t, child.perm, 8)
	seen := make(map[int]bool)
	for _, g := range child.perm {
		assert.Falsef(t, seen[g], "crossover produced a duplicate gene %d: %v", g, child.perm)
		seen[g] = true
	}
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
