// Package model defines the data types shared across the pallet-packing
// engine: products, pallet envelopes, placements, and the aggregate result
// returned by a packing run.
package model

import "github.com/google/uuid"

// Product is a single rectangular cuboid item to be placed on a pallet.
// Values are immutable after construction; the engine never mutates a
// Product, only copies placements derived from it.
type Product struct {
	ID     string `json:"id"`
	Code   string `json:"code"` // grouping key for identical SKUs
	Length float64 `json:"length"` // cm, X axis
	Width  float64 `json:"width"`  // cm, Y axis
	Height float64 `json:"height"` // cm, Z axis
	Weight float64 `json:"weight"` // kg

	// RotatableHorizontal allows length/width to swap. Height stays the
	// vertical axis unless FullRotation is enabled on the run (see Options).
	RotatableHorizontal bool `json:"rotatable_horizontal"`

	// Strength is the maximum load (kg) the product can bear on top of it.
	// Carried through the data model for forward compatibility; the engine
	// only uses it to break ties between otherwise-equal placements.
	Strength float64 `json:"strength"`
}

// NewProduct builds a Product with a generated ID.
func NewProduct(code string, length, width, height, weight float64) Product {
	return Product{
		ID:     uuid.New().String(),
		Code:   code,
		Length: length,
		Width:  width,
		Height: height,
		Weight: weight,
	}
}

// Volume returns the product's bounding-box volume in cm³.
func (p Product) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// PalletConfig describes the pallet envelope items are packed into.
type PalletConfig struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MaxWeight float64 `json:"max_weight"`
}

// Volume returns the pallet's total volume in cm³.
func (pc PalletConfig) Volume() float64 {
	return pc.Length * pc.Width * pc.Height
}

// PalletKind distinguishes single-SKU pallets from heterogeneous ones.
type PalletKind string

const (
	KindSingle PalletKind = "SINGLE"
	KindMix    PalletKind = "MIX"
)

// Placement pins one product at a coordinate with a chosen orientation.
type Placement struct {
	Product Product `json:"product"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	L       float64 `json:"l"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
}

// Volume returns the oriented bounding-box volume occupied by the placement.
func (pl Placement) Volume() float64 {
	return pl.L * pl.W * pl.H
}

// Pallet is an ordered list of placements plus bookkeeping.
type Pallet struct {
	ID         string      `json:"id"`
	Kind       PalletKind  `json:"kind"`
	Placements []Placement `json:"items"`
	Weight     float64     `json:"weight"`
}

// NewPallet starts an empty pallet of the given kind with a generated ID.
func NewPallet(kind PalletKind) *Pallet {
	return &Pallet{ID: uuid.New().String(), Kind: kind}
}

// Add appends a placement and updates the running weight.
func (pl *Pallet) Add(placement Placement) {
	pl.Placements = append(pl.Placements, placement)
	pl.Weight += placement.Product.Weight
}

// UsedVolume returns the sum of all placement volumes on the pallet.
func (pl Pallet) UsedVolume() float64 {
	var total float64
	for _, p := range pl.Placements {
		total += p.Volume()
	}
	return total
}

// Fill returns used volume divided by pallet volume, in [0, 1].
func (pl Pallet) Fill(cfg PalletConfig) float64 {
	v := cfg.Volume()
	if v == 0 {
		return 0
	}
	return pl.UsedVolume() / v
}

// Algorithm selects the mix-pool ordering strategy.
type Algorithm string

const (
	AlgorithmGenetic Algorithm = "genetic"
	AlgorithmGreedy  Algorithm = "greedy"
)

// Options configures a single Optimize call. Zero-value Options is invalid;
// use DefaultOptions as a base.
type Options struct {
	Algorithm   Algorithm `json:"algorithm"`
	Population  int       `json:"population"`
	Generations int       `json:"generations"`

	MutationRate   float64 `json:"mutation_rate"`
	TournamentSize int     `json:"tournament_size"`
	Elitism        int     `json:"elitism"`

	// Seed seeds the GA's RNG. Two runs with the same Seed and inputs
	// produce the same pallets and placements; pallet IDs and elapsed time
	// differ between runs.
	Seed int64 `json:"seed"`

	SingleFillThreshold  float64 `json:"single_fill_threshold"`
	PartialFillThreshold float64 `json:"partial_fill_threshold"`

	// FullRotation enables the six-way 3-D orientation enumeration instead
	// of the default two-orientation horizontal-swap set.
	FullRotation bool `json:"full_rotation"`
}

// DefaultOptions returns the reference pipeline's default parameters.
func DefaultOptions() Options {
	return Options{
		Algorithm:            AlgorithmGenetic,
		Population:           50,
		Generations:          50,
		MutationRate:         0.30,
		TournamentSize:       3,
		Elitism:              2,
		Seed:                 1,
		SingleFillThreshold:  0.50,
		PartialFillThreshold: 0.90,
	}
}

// Stats summarizes an optimization run.
type Stats struct {
	TotalPallets   int       `json:"total_pallets"`
	SingleCount    int       `json:"single_count"`
	MixCount       int       `json:"mix_count"`
	AvgFill        float64   `json:"avg_fill"`
	MinFill        float64   `json:"min_fill"`
	MaxFill        float64   `json:"max_fill"`
	TheoreticalMin int       `json:"theoretical_min"`
	ElapsedMs      int64     `json:"elapsed_ms"`
	GAHistory      []float64 `json:"ga_history,omitempty"`
}

// Result is the full output of an Optimize call.
type Result struct {
	Pallets  []Pallet `json:"pallets"`
	Unplaced []string `json:"unplaced"` // product IDs
	Stats    Stats    `json:"stats"`
}
