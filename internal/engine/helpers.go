package engine

import "github.com/piwi3910/palletpack/internal/model"

// orientation is one candidate (L, W, H) an item may be placed in.
type orientation struct {
	L, W, H float64
}

// volume returns a product's bounding-box volume.
func volume(p model.Product) float64 {
	return p.Length * p.Width * p.Height
}

// groupKey is the identity used to cluster identical SKUs together before
// attempting a single-SKU pallet: same code and same physical footprint.
type groupKey struct {
	code   string
	length float64
	width  float64
	height float64
	weight float64
}

func keyOf(p model.Product) groupKey {
	return groupKey{code: p.Code, length: p.Length, width: p.Width, height: p.Height, weight: p.Weight}
}

// groupProducts clusters products sharing code, dimensions, and weight.
// Insertion order is preserved both across groups and within each group.
func groupProducts(products []model.Product) ([]groupKey, map[groupKey][]model.Product) {
	groups := make(map[groupKey][]model.Product)
	var order []groupKey
	for _, p := range products {
		k := keyOf(p)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], p)
	}
	return order, groups
}

// orientations returns the ordered, deduplicated set of (L, W, H) triples a
// product may be placed in. The base triple is always first; when the
// product is horizontally rotatable, the length/width swap is added if
// distinct. Full six-way 3-D rotation is not enumerated here by default —
// see Options.FullRotation in the pipeline, which selects the richer set.
func orientations(p model.Product, fullRotation bool) []orientation {
	base := orientation{p.Length, p.Width, p.Height}
	if !fullRotation {
		out := []orientation{base}
		if p.RotatableHorizontal {
			swap := orientation{p.Width, p.Length, p.Height}
			if swap != base {
				out = append(out, swap)
			}
		}
		return out
	}

	candidates := []orientation{
		{p.Length, p.Width, p.Height},
		{p.Width, p.Length, p.Height},
		{p.Length, p.Height, p.Width},
		{p.Height, p.Length, p.Width},
		{p.Width, p.Height, p.Length},
		{p.Height, p.Width, p.Length},
	}
	seen := make(map[orientation]bool, len(candidates))
	var out []orientation
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
