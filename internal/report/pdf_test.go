package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/palletpack/internal/model"
)

func buildTestResult() (model.Result, model.PalletConfig) {
	cfg := model.PalletConfig{Length: 120, Width: 80, Height: 100, MaxWeight: 500}

	pallet1 := model.Pallet{
		ID:   "pallet-1",
		Kind: model.KindSingle,
		Placements: []model.Placement{
			{Product: model.Product{ID: "p1", Code: "SKU-A", Weight: 5}, X: 0, Y: 0, Z: 0, L: 40, W: 40, H: 50},
			{Product: model.Product{ID: "p2", Code: "SKU-A", Weight: 5}, X: 40, Y: 0, Z: 0, L: 40, W: 40, H: 50},
		},
		Weight: 10,
	}
	pallet2 := model.Pallet{
		ID:   "pallet-2",
		Kind: model.KindMix,
		Placements: []model.Placement{
			{Product: model.Product{ID: "p3", Code: "SKU-B", Weight: 8}, X: 0, Y: 0, Z: 0, L: 60, W: 40, H: 30},
		},
		Weight: 8,
	}

	return model.Result{
		Pallets:  []model.Pallet{pallet1, pallet2},
		Unplaced: []string{"p4"},
		Stats:    model.Stats{TotalPallets: 2, SingleCount: 1, MixCount: 1, AvgFill: 0.35, TheoreticalMin: 1},
	}, cfg
}

func TestExportManifestPDFCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.pdf")

	result, cfg := buildTestResult()
	if err := ExportManifestPDF(path, result, cfg); err != nil {
		t.Fatalf("ExportManifestPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportManifestPDFEmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportManifestPDF(path, model.Result{}, model.PalletConfig{Length: 1, Width: 1, Height: 1, MaxWeight: 1})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
