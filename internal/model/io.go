package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// InputContainer mirrors the "container" object of the external JSON
// schema (spec section 6): pallet dimensions and weight cap.
type InputContainer struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// InputProduct mirrors one entry of the external JSON schema's "products"
// array. Field names follow the original Turkish-language source this
// system was distilled from (boy=length, en=width, yukseklik=height,
// agirlik=weight, donus_serbest=rotatable, mukavemet=strength).
type InputProduct struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Boy           float64 `json:"boy"`
	En             float64 `json:"en"`
	Yukseklik     float64 `json:"yukseklik"`
	Agirlik       float64 `json:"agirlik"`
	Quantity      int     `json:"quantity"`
	DonusSerbest  *bool   `json:"donus_serbest,omitempty"`
	Mukavemet     *float64 `json:"mukavemet,omitempty"`
}

// InputDocument is the top-level shape of the external input JSON.
type InputDocument struct {
	Container InputContainer `json:"container"`
	Products  []InputProduct `json:"products"`
}

// ParseInput decodes an InputDocument and expands quantities into distinct
// Product instances, returning the pallet config alongside them. quantity>1
// expands to that many Products with distinct generated ids, per spec
// section 6. This is a thin, schema-accurate codec for round-trip testing
// and the CLI's "run" subcommand; general-purpose JSON ingestion is an
// external collaborator's job per spec section 1.
func ParseInput(data []byte) (PalletConfig, []Product, error) {
	var doc InputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return PalletConfig{}, nil, err
	}

	pallet := PalletConfig{
		Length:    doc.Container.Length,
		Width:     doc.Container.Width,
		Height:    doc.Container.Height,
		MaxWeight: doc.Container.Weight,
	}

	var products []Product
	for _, ip := range doc.Products {
		qty := ip.Quantity
		if qty <= 0 {
			qty = 1
		}
		rotatable := false
		if ip.DonusSerbest != nil {
			rotatable = *ip.DonusSerbest
		}
		strength := 0.0
		if ip.Mukavemet != nil {
			strength = *ip.Mukavemet
		}

		for i := 0; i < qty; i++ {
			id := ip.ID
			if qty > 1 || id == "" {
				id = ip.ID + "-" + uuid.New().String()[:8]
			}
			products = append(products, Product{
				ID:                  id,
				Code:                ip.Code,
				Length:              ip.Boy,
				Width:               ip.En,
				Height:              ip.Yukseklik,
				Weight:              ip.Agirlik,
				RotatableHorizontal: rotatable,
				Strength:            strength,
			})
		}
	}

	return pallet, products, nil
}

// OutputPlacement mirrors one entry of the external output JSON's
// per-pallet placement list.
type OutputPlacement struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	L  float64 `json:"L"`
	W  float64 `json:"W"`
	H  float64 `json:"H"`
}

// OutputPallet mirrors one entry of the external output JSON's pallet list.
type OutputPallet struct {
	Kind   PalletKind        `json:"kind"`
	Items  []OutputPlacement `json:"items"`
	Weight float64           `json:"weight"`
}

// OutputDocument mirrors the full external output JSON report (spec
// section 6), used for round-trip tests: MarshalResult then ParseOutput
// should reconstruct an equivalent pallet count and fill distribution.
type OutputDocument struct {
	Pallets  []OutputPallet `json:"pallets"`
	Unplaced []string       `json:"unplaced"`
	Stats    Stats          `json:"stats"`
}

// MarshalResult renders a Result as the external output JSON shape.
func MarshalResult(r Result) ([]byte, error) {
	doc := OutputDocument{Unplaced: r.Unplaced, Stats: r.Stats}
	for _, pallet := range r.Pallets {
		op := OutputPallet{Kind: pallet.Kind, Weight: pallet.Weight}
		for _, pl := range pallet.Placements {
			op.Items = append(op.Items, OutputPlacement{
				ID: pl.Product.ID,
				X:  pl.X, Y: pl.Y, Z: pl.Z,
				L: pl.L, W: pl.W, H: pl.H,
			})
		}
		doc.Pallets = append(doc.Pallets, op)
	}
	return json.Marshal(doc)
}

// ParseOutput decodes a previously marshaled output document, for
// round-trip tests (spec section 8).
func ParseOutput(data []byte) (OutputDocument, error) {
	var doc OutputDocument
	err := json.Unmarshal(data, &doc)
	return doc, err
}

// ResultFromOutput reconstructs a Result from a previously marshaled
// OutputDocument, for the CLI's report subcommand: re-rendering a saved
// run's PDF/XLSX/labels without having kept the original Product records.
// Each reconstructed placement carries only the id, position, and
// orientation the output schema captured — product code, weight, and
// strength are not part of the output document and come back zero-valued.
func ResultFromOutput(doc OutputDocument) Result {
	pallets := make([]Pallet, len(doc.Pallets))
	for i, op := range doc.Pallets {
		pl := Pallet{ID: uuid.New().String(), Kind: op.Kind, Weight: op.Weight}
		for _, item := range op.Items {
			pl.Placements = append(pl.Placements, Placement{
				Product: Product{ID: item.ID},
				X:       item.X, Y: item.Y, Z: item.Z,
				L: item.L, W: item.W, H: item.H,
			})
		}
		pallets[i] = pl
	}
	return Result{Pallets: pallets, Unplaced: doc.Unplaced, Stats: doc.Stats}
}
