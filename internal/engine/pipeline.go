// Package engine implements the packing pipeline: geometry-aware grouping,
// a single-SKU grid simulator, a 3-D Maximal-Rectangles packer, and a
// genetic-algorithm search over mix-pool orderings.
package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/piwi3910/palletpack/internal/model"
)

// Optimize is the engine's entry point, with no per-stage logging. It
// splits products into homogeneous single-SKU groups and a heterogeneous
// mix pool, packs each, and returns the concatenated pallet list with
// aggregate stats.
func Optimize(products []model.Product, pallet model.PalletConfig, opts model.Options) (model.Result, error) {
	return OptimizeWithLogger(products, pallet, opts, zap.NewNop())
}

// OptimizeWithLogger runs the same pipeline as Optimize but emits one
// structured log line per stage: grouping complete, GA generation
// milestones, packer fallback to additional pallets, and final stats.
// The engine stages below this orchestrator (C1-C5) stay log-free; all
// logging here is derived from their return values, not threaded into them.
func OptimizeWithLogger(products []model.Product, pallet model.PalletConfig, opts model.Options, logger *zap.Logger) (model.Result, error) {
	start := time.Now()
	if err := model.ValidatePallet(pallet); err != nil {
		return model.Result{}, err
	}
	for _, p := range products {
		if err := model.ValidateProduct(p); err != nil {
			return model.Result{}, err
		}
	}
	if len(products) == 0 {
		return model.Result{Stats: model.Stats{}}, nil
	}

	order, groups := groupProducts(products)
	logger.Info("grouping complete", zap.Int("groups", len(order)), zap.Int("products", len(products)))

	var pallets []model.Pallet
	var unplaced []string
	var mixPool []model.Product

	for _, k := range order {
		group := groups[k]
		sim := simulateSingle(group, pallet, opts.FullRotation, opts.SingleFillThreshold)
		if !sim.canBeSingle {
			mixPool = append(mixPool, group...)
			continue
		}

		nx := int(pallet.Length / sim.chosen.L)
		ny := int(pallet.Width / sim.chosen.W)
		nz := int(pallet.Height / sim.chosen.H)
		cap := sim.capacity

		full := len(group) / cap
		remainder := len(group) % cap

		for i := 0; i < full; i++ {
			chunk := group[i*cap : (i+1)*cap]
			pl := model.NewPallet(model.KindSingle)
			pl.Placements = gridPlacement(chunk, sim.chosen, nx, ny, nz)
			for _, pc := range pl.Placements {
				pl.Weight += pc.Product.Weight
			}
			pallets = append(pallets, *pl)
		}

		if remainder > 0 {
			rem := group[full*cap:]
			itemVol := sim.chosen.L * sim.chosen.W * sim.chosen.H
			fill := float64(remainder) * itemVol / pallet.Volume()
			if fill >= opts.PartialFillThreshold {
				pl := model.NewPallet(model.KindSingle)
				pl.Placements = gridPlacement(rem, sim.chosen, nx, ny, nz)
				for _, pc := range pl.Placements {
					pl.Weight += pc.Product.Weight
				}
				pallets = append(pallets, *pl)
			} else {
				mixPool = append(mixPool, rem...)
			}
		}
	}

	var history []float64
	if len(mixPool) > 0 {
		var ordered []model.Product
		if opts.Algorithm == model.AlgorithmGreedy {
			logger.Info("mix pool using greedy fallback ordering", zap.Int("mix_pool", len(mixPool)))
			ordered = mixPool
		} else {
			ga := newGeneticOptimizer(configFromOptions(opts), pallet, mixPool, opts.FullRotation, opts.Seed)
			ordered, history = ga.optimize()
			logGAMilestones(logger, history)
		}

		pk := newPacker(pallet)
		mixPallets, mixUnplaced := pk.pack(ordered, opts.FullRotation)
		if len(mixPallets) > 1 {
			logger.Info("packer fell back to additional pallets",
				zap.Int("pallets_opened", len(mixPallets)-1),
				zap.Int("mix_pool", len(mixPool)),
			)
		}
		for _, pl := range mixPallets {
			pallets = append(pallets, *pl)
		}
		unplaced = append(unplaced, mixUnplaced...)
	}

	stats := computeStats(pallets, unplaced, products, pallet)
	stats.GAHistory = history
	stats.ElapsedMs = time.Since(start).Milliseconds()
	logger.Info("optimization stage complete",
		zap.Int("total_pallets", stats.TotalPallets),
		zap.Int("single_count", stats.SingleCount),
		zap.Int("mix_count", stats.MixCount),
		zap.Float64("avg_fill", stats.AvgFill),
		zap.Int("unplaced", len(unplaced)),
	)

	return model.Result{Pallets: pallets, Unplaced: unplaced, Stats: stats}, nil
}

// computeStats aggregates pallet counts, fill distribution, and the
// theoretical lower bound (by volume and by weight — whichever is
// stricter) from the final pallet list.
func computeStats(pallets []model.Pallet, unplaced []string, products []model.Product, pallet model.PalletConfig) model.Stats {
	stats := model.Stats{TotalPallets: len(pallets)}
	if len(pallets) == 0 {
		stats.TheoreticalMin = theoreticalMin(products, pallet)
		return stats
	}

	var sum, min, max float64
	min = math.Inf(1)
	for _, pl := range pallets {
		if pl.Kind == model.KindSingle {
			stats.SingleCount++
		} else {
			stats.MixCount++
		}
		f := pl.Fill(pallet)
		sum += f
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	stats.AvgFill = sum / float64(len(pallets))
	stats.MinFill = min
	stats.MaxFill = max
	stats.TheoreticalMin = theoreticalMin(products, pallet)
	return stats
}

// theoreticalMin returns max(ceil(total volume / pallet volume), ceil(total
// weight / pallet max weight)) — a weak but cheap lower bound used purely
// for diagnostics, never enforced.
func theoreticalMin(products []model.Product, pallet model.PalletConfig) int {
	var totalVol, totalWeight float64
	for _, p := range products {
		totalVol += p.Volume()
		totalWeight += p.Weight
	}

	byVol := 0
	if pallet.Volume() > 0 {
		byVol = int(math.Ceil(totalVol / pallet.Volume()))
	}
	byWeight := 0
	if pallet.MaxWeight > 0 {
		byWeight = int(math.Ceil(totalWeight / pallet.MaxWeight))
	}
	if byWeight > byVol {
		return byWeight
	}
	return byVol
}

// logGAMilestones emits one log line per quarter of the GA's generation
// history, plus the final generation, so a long run doesn't flood the log
// with one line per generation.
func logGAMilestones(logger *zap.Logger, history []float64) {
	n := len(history)
	if n == 0 {
		return
	}
	step := n / 4
	if step == 0 {
		step = 1
	}
	for gen := 0; gen < n; gen += step {
		logger.Info("ga generation milestone", zap.Int("generation", gen), zap.Float64("best_fitness", history[gen]))
	}
	if last := n - 1; last%step != 0 {
		logger.Info("ga generation milestone", zap.Int("generation", last), zap.Float64("best_fitness", history[last]))
	}
}
