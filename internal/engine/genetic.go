package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/piwi3910/palletpack/internal/model"
)

// geneticConfig holds parameters for the genetic algorithm optimizer.
type geneticConfig struct {
	populationSize int
	generations    int
	mutationRate   float64
	tournamentSize int
	eliteCount     int
}

func configFromOptions(o model.Options) geneticConfig {
	return geneticConfig{
		populationSize: o.Population,
		generations:    o.Generations,
		mutationRate:   o.MutationRate,
		tournamentSize: o.TournamentSize,
		eliteCount:     o.Elitism,
	}
}

// chromosome is a permutation over the mix-pool's product indices.
type chromosome struct {
	perm    []int
	fitness float64
}

// geneticOptimizer searches the permutation space of a mix pool for the
// ordering that, once run through the packer, minimizes pallet count and
// maximizes fill.
type geneticOptimizer struct {
	cfg          geneticConfig
	pallet       model.PalletConfig
	products     []model.Product
	fullRotation bool
	rng          *rand.Rand
	history      []float64
}

func newGeneticOptimizer(cfg geneticConfig, pallet model.PalletConfig, products []model.Product, fullRotation bool, seed int64) *geneticOptimizer {
	return &geneticOptimizer{
		cfg:          cfg,
		pallet:       pallet,
		products:     products,
		fullRotation: fullRotation,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// optimize runs the GA and returns the best ordering found, plus the
// per-generation best-fitness trajectory for diagnostics.
func (g *geneticOptimizer) optimize() ([]model.Product, []float64) {
	n := len(g.products)
	if n == 0 {
		return nil, nil
	}

	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.cfg.generations; gen++ {
		sort.Slice(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})
		g.history = append(g.history, population[0].fitness)

		elite := g.cfg.eliteCount
		if elite > len(population) {
			elite = len(population)
		}
		newPop := make([]chromosome, 0, g.cfg.populationSize)
		for i := 0; i < elite; i++ {
			newPop = append(newPop, copyChromosome(population[i]))
		}

		for len(newPop) < g.cfg.populationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)
			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}
		population = newPop
	}

	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
	return g.decodeOrder(population[0]), g.history
}

// initPopulation seeds one individual with the input order — guaranteeing
// the GA never regresses below the greedy baseline — and fills the rest
// with random permutations.
func (g *geneticOptimizer) initPopulation() []chromosome {
	n := len(g.products)
	population := make([]chromosome, g.cfg.populationSize)
	for i := range population {
		perm := g.rng.Perm(n)
		population[i] = chromosome{perm: perm}
	}
	if len(population) > 0 {
		identity := make([]int, n)
		for i := range identity {
			identity[i] = i
		}
		population[0] = chromosome{perm: identity}
	}
	return population
}

// evaluate decodes a chromosome through the packer and scores it: pallet
// count dominates, fill ratio breaks ties, variance among fill ratios is
// penalized lightly. The constants are design knobs; the ordering
// property — fewer pallets always wins — is what matters.
func (g *geneticOptimizer) evaluate(c chromosome) float64 {
	ordered := g.decodeOrder(c)
	pk := newPacker(g.pallet)
	pallets, _ := pk.pack(ordered, g.fullRotation)

	k := len(pallets)
	if k == 0 {
		return 0
	}

	fills := make([]float64, k)
	var sum float64
	for i, pl := range pallets {
		fills[i] = pl.Fill(g.pallet)
		sum += fills[i]
	}
	avgFill := sum / float64(k)

	var variance float64
	for _, f := range fills {
		d := f - avgFill
		variance += d * d
	}
	variance /= float64(k)

	return -1000*float64(k) + 100*avgFill - 10*variance
}

// decodeOrder materializes a chromosome's permutation into a product slice.
func (g *geneticOptimizer) decodeOrder(c chromosome) []model.Product {
	ordered := make([]model.Product, len(c.perm))
	for i, idx := range c.perm {
		ordered[i] = g.products[idx]
	}
	return ordered
}

// tournamentSelect samples tournamentSize distinct draws and returns a copy
// of the best.
func (g *geneticOptimizer) tournamentSelect(population []chromosome) chromosome {
	k := g.cfg.tournamentSize
	if k > len(population) {
		k = len(population)
	}
	if k < 1 {
		k = 1
	}
	picks := g.rng.Perm(len(population))[:k]
	best := population[picks[0]]
	for _, idx := range picks[1:] {
		candidate := population[idx]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return copyChromosome(best)
}

// orderCrossover implements OX1: a slice of parent1's permutation is copied
// verbatim, and the remaining positions are filled with parent2's genes in
// order, skipping whatever is already present. This always yields a valid
// permutation, unlike a naive single-point crossover.
func (g *geneticOptimizer) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.perm)
	if n <= 2 {
		return copyChromosome(parent1)
	}

	i := g.rng.Intn(n)
	j := g.rng.Intn(n)
	if i > j {
		i, j = j, i
	}

	child := chromosome{perm: make([]int, n)}
	inSegment := make(map[int]bool, n)
	for k := i; k <= j; k++ {
		child.perm[k] = parent1.perm[k]
		inSegment[parent1.perm[k]] = true
	}

	childIdx := (j + 1) % n
	for _, gene := range parent2.perm {
		if !inSegment[gene] {
			child.perm[childIdx] = gene
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

// mutate applies swap mutation at mutationRate, and occasionally an
// inversion of a random segment for extra diversity.
func (g *geneticOptimizer) mutate(c *chromosome) {
	n := len(c.perm)
	if n < 2 {
		return
	}

	swaps := int(math.Ceil(float64(n) / 20))
	if g.rng.Float64() < g.cfg.mutationRate {
		for s := 0; s < swaps; s++ {
			i := g.rng.Intn(n)
			j := g.rng.Intn(n)
			c.perm[i], c.perm[j] = c.perm[j], c.perm[i]
		}
	}

	if g.rng.Float64() < g.cfg.mutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.perm[i], c.perm[j] = c.perm[j], c.perm[i]
			i++
			j--
		}
	}
}

func copyChromosome(c chromosome) chromosome {
	perm := make([]int, len(c.perm))
	copy(perm, c.perm)
	return chromosome{perm: perm, fitness: c.fitness}
}
