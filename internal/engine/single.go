package engine

import "github.com/piwi3910/palletpack/internal/model"

// singleSimResult is the outcome of evaluating whether a homogeneous group
// of identical products can be laid out as one uniform grid pallet.
type singleSimResult struct {
	canBeSingle bool
	capacity    int
	efficiency  float64
	chosen      orientation
	reason      string
}

// simulateSingle evaluates every orientation of the group's representative
// item against the pallet envelope and picks the orientation yielding the
// highest grid capacity (ties broken by efficiency, then enumeration order).
func simulateSingle(group []model.Product, pallet model.PalletConfig, fullRotation bool, fillThreshold float64) singleSimResult {
	if len(group) == 0 {
		return singleSimResult{reason: "empty group"}
	}
	item := group[0]

	best := singleSimResult{reason: "no orientation fits"}
	haveBest := false

	for _, o := range orientations(item, fullRotation) {
		if o.L <= 0 || o.W <= 0 || o.H <= 0 {
			continue
		}
		nx := int(pallet.Length / o.L)
		ny := int(pallet.Width / o.W)
		nz := int(pallet.Height / o.H)
		cap := nx * ny * nz
		if cap <= 0 {
			continue
		}

		if item.Weight > 0 && pallet.MaxWeight > 0 {
			maxByWeight := int(pallet.MaxWeight / item.Weight)
			if maxByWeight < cap {
				cap = maxByWeight
			}
		}
		if cap <= 0 {
			continue
		}

		efficiency := 0.0
		if pallet.Volume() > 0 {
			efficiency = float64(cap) * (o.L * o.W * o.H) / pallet.Volume()
		}

		candidate := singleSimResult{canBeSingle: false, capacity: cap, efficiency: efficiency, chosen: o}
		if !haveBest {
			best = candidate
			haveBest = true
			continue
		}
		if cap > best.capacity || (cap == best.capacity && efficiency > best.efficiency) {
			best = candidate
		}
	}

	if !haveBest {
		return best
	}
	best.canBeSingle = best.capacity >= 1 && best.efficiency >= fillThreshold
	if best.canBeSingle {
		best.reason = "fits as uniform grid"
	} else {
		best.reason = "capacity below fill threshold"
	}
	return best
}

// gridPlacement lays items row-major in x (innermost), then y, then z, at
// coordinates (i*L, j*W, k*H), consuming items in order until exhausted or
// the grid is full.
func gridPlacement(items []model.Product, o orientation, nx, ny, nz int) []model.Placement {
	placements := make([]model.Placement, 0, len(items))
	idx := 0
	for k := 0; k < nz && idx < len(items); k++ {
		for j := 0; j < ny && idx < len(items); j++ {
			for i := 0; i < nx && idx < len(items); i++ {
				placements = append(placements, model.Placement{
					Product: items[idx],
					X:       float64(i) * o.L,
					Y:       float64(j) * o.W,
					Z:       float64(k) * o.H,
					L:       o.L, W: o.W, H: o.H,
				})
				idx++
			}
		}
	}
	return placements
}
