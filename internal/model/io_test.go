package model

import (
	"testing"
)

func TestParseInputExpandsQuantity(t *testing.T) {
	input := `{
		"container": {"length": 120, "width": 80, "height": 100, "weight": 1000},
		"products": [
			{"id": "box-a", "code": "A", "boy": 30, "en": 20, "yukseklik": 15, "agirlik": 5, "quantity": 3},
			{"id": "box-b", "code": "B", "boy": 40, "en": 40, "yukseklik": 10, "agirlik": 8, "donus_serbest": true, "mukavemet": 50}
		]
	}`

	pallet, products, err := ParseInput([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pallet.Length != 120 || pallet.Width != 80 || pallet.Height != 100 || pallet.MaxWeight != 1000 {
		t.Errorf("unexpected pallet config: %+v", pallet)
	}
	if len(products) != 4 {
		t.Fatalf("expected 3 expanded box-a + 1 box-b, got %d", len(products))
	}

	aCount := 0
	for _, p := range products {
		if p.Code == "A" {
			aCount++
			if p.Length != 30 || p.Width != 20 || p.Height != 15 || p.Weight != 5 {
				t.Errorf("unexpected dimensions for box-a copy: %+v", p)
			}
		}
	}
	if aCount != 3 {
		t.Errorf("expected 3 box-a copies, got %d", aCount)
	}

	var b Product
	for _, p := range products {
		if p.Code == "B" {
			b = p
		}
	}
	if !b.RotatableHorizontal {
		t.Error("expected box-b to carry rotatable_horizontal true")
	}
	if b.Strength != 50 {
		t.Errorf("expected box-b strength 50, got %.1f", b.Strength)
	}
}

func TestParseInputRejectsMalformedJSON(t *testing.T) {
	_, _, err := ParseInput([]byte("not json"))
	if err == nil {
		t.Error("expected an error for malformed input JSON")
	}
}

func TestMarshalResultParseOutputRoundTrip(t *testing.T) {
	result := Result{
		Pallets: []Pallet{
			{
				ID:     "pallet-1",
				Kind:   KindSingle,
				Weight: 12.5,
				Placements: []Placement{
					{Product: Product{ID: "item-1"}, X: 0, Y: 0, Z: 0, L: 10, W: 10, H: 10},
					{Product: Product{ID: "item-2"}, X: 10, Y: 0, Z: 0, L: 10, W: 10, H: 10},
				},
			},
		},
		Unplaced: []string{"item-3"},
		Stats:    Stats{TotalPallets: 1, SingleCount: 1, AvgFill: 0.42},
	}

	data, err := MarshalResult(result)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	doc, err := ParseOutput(data)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(doc.Pallets) != 1 {
		t.Fatalf("expected 1 pallet, got %d", len(doc.Pallets))
	}
	if doc.Pallets[0].Kind != KindSingle {
		t.Errorf("expected kind SINGLE, got %s", doc.Pallets[0].Kind)
	}
	if doc.Pallets[0].Weight != 12.5 {
		t.Errorf("expected weight 12.5, got %.2f", doc.Pallets[0].Weight)
	}
	if len(doc.Pallets[0].Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(doc.Pallets[0].Items))
	}
	if len(doc.Unplaced) != 1 || doc.Unplaced[0] != "item-3" {
		t.Errorf("unexpected unplaced list: %v", doc.Unplaced)
	}
	if doc.Stats.TotalPallets != 1 || doc.Stats.AvgFill != 0.42 {
		t.Errorf("unexpected stats: %+v", doc.Stats)
	}

	// ResultFromOutput should reconstruct a Result whose pallet/fill
	// shape matches what MarshalResult produced, even though individual
	// products come back id-only.
	rebuilt := ResultFromOutput(doc)
	if len(rebuilt.Pallets) != len(result.Pallets) {
		t.Fatalf("expected %d pallets after round trip, got %d", len(result.Pallets), len(rebuilt.Pallets))
	}
	if rebuilt.Pallets[0].Weight != result.Pallets[0].Weight {
		t.Errorf("expected weight %.2f, got %.2f", result.Pallets[0].Weight, rebuilt.Pallets[0].Weight)
	}
	if len(rebuilt.Pallets[0].Placements) != len(result.Pallets[0].Placements) {
		t.Fatalf("expected %d placements, got %d", len(result.Pallets[0].Placements), len(rebuilt.Pallets[0].Placements))
	}
	for i, pc := range rebuilt.Pallets[0].Placements {
		want := result.Pallets[0].Placements[i]
		if pc.Product.ID != want.Product.ID || pc.X != want.X || pc.L != want.L {
			t.Errorf("placement %d diverged: got %+v, want %+v", i, pc, want)
		}
	}
	if len(rebuilt.Unplaced) != 1 || rebuilt.Unplaced[0] != "item-3" {
		t.Errorf("unexpected rebuilt unplaced list: %v", rebuilt.Unplaced)
	}
	if rebuilt.Stats.TotalPallets != 1 {
		t.Errorf("expected stats to carry through unchanged, got %+v", rebuilt.Stats)
	}
}

func TestParseOutputRejectsMalformedJSON(t *testing.T) {
	_, err := ParseOutput([]byte(`{"pallets": "not-an-array"}`))
	if err == nil {
		t.Error("expected an error for malformed output JSON")
	}
}
