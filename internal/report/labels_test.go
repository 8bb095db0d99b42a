package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/palletpack/internal/model"
)

func TestExportPalletLabelsCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	result, cfg := buildTestResult()
	if err := ExportPalletLabels(path, result, cfg); err != nil {
		t.Fatalf("ExportPalletLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("label PDF was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("label PDF is empty")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result, cfg := buildTestResult()
	labels := CollectLabelInfos(result, cfg)

	if len(labels) != len(result.Pallets) {
		t.Fatalf("expected %d labels, got %d", len(result.Pallets), len(labels))
	}
	if labels[0].PalletIndex != 1 {
		t.Errorf("expected first label's pallet index to be 1, got %d", labels[0].PalletIndex)
	}
	if labels[0].ItemCount != len(result.Pallets[0].Placements) {
		t.Errorf("expected item count to match placement count")
	}
}

func TestExportPalletLabelsEmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty-labels.pdf")

	_, cfg := buildTestResult()
	err := ExportPalletLabels(path, model.Result{}, cfg)
	if err == nil {
		t.Fatal("expected error when there are no pallets to label")
	}
}
