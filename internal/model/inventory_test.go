package model

import (
	"testing"
)

func TestNewPalletPresetGeneratesID(t *testing.T) {
	p := NewPalletPreset("Test Pallet", PalletConfig{Length: 100, Width: 80, Height: 120, MaxWeight: 500})
	if p.ID == "" {
		t.Error("expected a generated ID, got empty string")
	}
	if p.Name != "Test Pallet" {
		t.Errorf("expected name 'Test Pallet', got %s", p.Name)
	}
	if p.Config.Length != 100 {
		t.Errorf("expected length 100, got %.2f", p.Config.Length)
	}
}

func TestDefaultCatalogHasKnownPresets(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Pallets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(cat.Pallets))
	}

	names := cat.Names()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["EUR-pallet (120x80x180cm, 1000kg)"] {
		t.Error("expected default catalog to include the EUR-pallet preset")
	}
	if !found["US GMA pallet (121.9x101.6x180cm, 1200kg)"] {
		t.Error("expected default catalog to include the US GMA pallet preset")
	}
}

func TestCatalogFindByName(t *testing.T) {
	cat := DefaultCatalog()

	p := cat.FindByName("Half-pallet (80x60x180cm, 500kg)")
	if p == nil {
		t.Fatal("expected to find half-pallet preset by name")
	}
	if p.Config.Length != 80 || p.Config.MaxWeight != 500 {
		t.Errorf("unexpected config for half-pallet: %+v", p.Config)
	}

	if cat.FindByName("does not exist") != nil {
		t.Error("expected nil for unknown preset name")
	}
}

func TestCatalogFindByID(t *testing.T) {
	cat := DefaultCatalog()
	want := cat.Pallets[0]

	got := cat.FindByID(want.ID)
	if got == nil {
		t.Fatal("expected to find preset by ID")
	}
	if got.Name != want.Name {
		t.Errorf("expected name %s, got %s", want.Name, got.Name)
	}

	if cat.FindByID("unknown-id") != nil {
		t.Error("expected nil for unknown preset ID")
	}
}

func TestCatalogNamesPreservesOrder(t *testing.T) {
	cat := DefaultCatalog()
	names := cat.Names()
	if len(names) != len(cat.Pallets) {
		t.Fatalf("expected %d names, got %d", len(cat.Pallets), len(names))
	}
	for i, p := range cat.Pallets {
		if names[i] != p.Name {
			t.Errorf("name at index %d: expected %s, got %s", i, p.Name, names[i])
		}
	}
}
