package engine

import (
	"math"

	"github.com/piwi3910/palletpack/internal/geometry"
	"github.com/piwi3910/palletpack/internal/model"
)

// packer packs an ordered list of products into pallets using a
// Maximal-Rectangles strategy generalized to three dimensions: every free
// cuboid that intersects a new placement is removed and replaced by up to
// six axis-aligned residual sub-cuboids (one per face the placement cuts
// into), rather than the four-way split a 2-D guillotine cut produces.
type packer struct {
	cfg model.PalletConfig
}

// newPacker returns a packer bound to a pallet envelope.
func newPacker(cfg model.PalletConfig) *packer {
	return &packer{cfg: cfg}
}

// freeSlot is a free cuboid plus the load-bearing strength of whatever lies
// directly beneath it: math.Inf(1) when the slot rests on the pallet floor,
// otherwise the Strength of the product whose top face the slot sits on.
type freeSlot struct {
	rect    geometry.Cuboid
	support float64
}

// candidate scores one (orientation, free rect) pairing during best-fit
// search. Lower shortSide wins; ties broken by lower volume residual, then
// earlier orientation index, then higher support strength (prefer resting
// a new placement on the sturdier of two equally good slots), then earlier
// free-rect insertion order.
type candidate struct {
	rectIdx   int
	orient    orientation
	shortSide float64
	volResid  float64
	orientIdx int
	support   float64
}

func (c candidate) betterThan(other candidate) bool {
	if c.shortSide != other.shortSide {
		return c.shortSide < other.shortSide
	}
	if c.volResid != other.volResid {
		return c.volResid < other.volResid
	}
	if c.orientIdx != other.orientIdx {
		return c.orientIdx < other.orientIdx
	}
	if c.support != other.support {
		return c.support > other.support
	}
	return c.rectIdx < other.rectIdx
}

// pack places products, in the given order, across as many pallets as
// needed. Orientation is chosen per item by the packer; the caller's order
// is never rearranged. Items that cannot be placed even on an empty pallet
// are returned as unplaced IDs.
func (pk *packer) pack(products []model.Product, fullRotation bool) ([]*model.Pallet, []string) {
	var pallets []*model.Pallet
	var unplaced []string

	var current *model.Pallet
	var freeSlots []freeSlot
	openPallet := func() {
		current = model.NewPallet(model.KindMix)
		freeSlots = []freeSlot{{
			rect:    geometry.Cuboid{X: 0, Y: 0, Z: 0, Length: pk.cfg.Length, Width: pk.cfg.Width, Height: pk.cfg.Height},
			support: math.Inf(1),
		}}
	}
	closePallet := func() {
		if current != nil && len(current.Placements) > 0 {
			pallets = append(pallets, current)
		}
		current = nil
	}
	openPallet()

	for _, p := range products {
		// An item heavier than the pallet's own weight cap can never be
		// placed, on this or any other pallet: route it straight to
		// unplaced rather than letting bestFit find it a geometric fit.
		if pk.cfg.MaxWeight > 0 && p.Weight > pk.cfg.MaxWeight {
			unplaced = append(unplaced, p.ID)
			continue
		}

		if current != nil && pk.cfg.MaxWeight > 0 && current.Weight+p.Weight > pk.cfg.MaxWeight && len(current.Placements) > 0 {
			closePallet()
			openPallet()
		}

		best, ok := pk.bestFit(freeSlots, p, fullRotation)
		if !ok {
			closePallet()
			openPallet()
			best, ok = pk.bestFit(freeSlots, p, fullRotation)
		}
		if !ok {
			unplaced = append(unplaced, p.ID)
			continue
		}

		rect := freeSlots[best.rectIdx].rect
		o := best.orient
		placement := model.Placement{
			Product: p,
			X:       rect.X, Y: rect.Y, Z: rect.Z,
			L: o.L, W: o.W, H: o.H,
		}
		current.Add(placement)
		freeSlots = splitFreeRects(freeSlots, geometry.Cuboid{X: rect.X, Y: rect.Y, Z: rect.Z, Length: o.L, Width: o.W, Height: o.H}, p.Strength)
	}
	closePallet()

	return pallets, unplaced
}

// bestFit searches orientations(p) x freeRects for the Best-Short-Side-Fit
// candidate: the pairing minimizing the smaller of the two residual edges
// on the rectangle's horizontal footprint.
func (pk *packer) bestFit(freeSlots []freeSlot, p model.Product, fullRotation bool) (candidate, bool) {
	var best candidate
	have := false

	for oi, o := range orientations(p, fullRotation) {
		for ri, slot := range freeSlots {
			r := slot.rect
			if !geometry.Fits(r, o.L, o.W, o.H) {
				continue
			}
			short := r.Length - o.L
			if other := r.Width - o.W; other < short {
				short = other
			}
			c := candidate{
				rectIdx:   ri,
				orient:    o,
				shortSide: short,
				volResid:  r.Volume() - o.L*o.W*o.H,
				orientIdx: oi,
				support:   slot.support,
			}
			if !have || c.betterThan(best) {
				best = c
				have = true
			}
		}
	}
	return best, have
}

// splitFreeRects removes every free slot that intersects placed and
// replaces it with up to six axis-aligned residual sub-cuboids — one for
// each face of the free rect the placement juts into — then prunes any
// rect now fully contained in another. Overlapping residuals are expected:
// that overlap is the maximal-rectangles property. The residual sitting
// directly above placed inherits placedStrength as its support rating;
// every other residual inherits the support of the slot it was split from.
func splitFreeRects(freeSlots []freeSlot, placed geometry.Cuboid, placedStrength float64) []freeSlot {
	var out []freeSlot
	px, py, pz := placed.X, placed.Y, placed.Z
	pl, pw, ph := placed.Length, placed.Width, placed.Height

	for _, s := range freeSlots {
		r := s.rect
		if !geometry.Intersects(r, placed) {
			out = append(out, s)
			continue
		}

		if r.X < px {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: r.X, Y: r.Y, Z: r.Z, Length: px - r.X, Width: r.Width, Height: r.Height}, support: s.support})
		}
		if px+pl < r.X+r.Length {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: px + pl, Y: r.Y, Z: r.Z, Length: (r.X + r.Length) - (px + pl), Width: r.Width, Height: r.Height}, support: s.support})
		}
		if r.Y < py {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: r.X, Y: r.Y, Z: r.Z, Length: r.Length, Width: py - r.Y, Height: r.Height}, support: s.support})
		}
		if py+pw < r.Y+r.Width {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: r.X, Y: py + pw, Z: r.Z, Length: r.Length, Width: (r.Y + r.Width) - (py + pw), Height: r.Height}, support: s.support})
		}
		if r.Z < pz {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: r.X, Y: r.Y, Z: r.Z, Length: r.Length, Width: r.Width, Height: pz - r.Z}, support: s.support})
		}
		if pz+ph < r.Z+r.Height {
			out = append(out, freeSlot{rect: geometry.Cuboid{X: r.X, Y: r.Y, Z: pz + ph, Length: r.Length, Width: r.Width, Height: (r.Z + r.Height) - (pz + ph)}, support: placedStrength})
		}
	}

	return pruneContained(out)
}

// pruneContained drops any slot whose rect is fully contained in another,
// keeping the larger. Quadratic in the free-rect count, which stays small
// in practice since splits only fire on intersection.
func pruneContained(slots []freeSlot) []freeSlot {
	if len(slots) <= 1 {
		return slots
	}
	kept := make([]freeSlot, 0, len(slots))
	for i, a := range slots {
		redundant := false
		for j, b := range slots {
			if i == j || !geometry.Contains(b.rect, a.rect) {
				continue
			}
			// Equal rects mutually contain each other; keep only the
			// earlier one so a tie doesn't drop both.
			if geometry.Contains(a.rect, b.rect) && i < j {
				continue
			}
			redundant = true
			break
		}
		if !redundant {
			kept = append(kept, a)
		}
	}
	return kept
}
