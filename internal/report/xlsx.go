package report

import (
	"fmt"

	"github.com/piwi3910/palletpack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportManifestXLSX writes a spreadsheet manifest: one "Pallets" sheet
// summarizing each pallet, one "Placements" sheet with every item's
// coordinates, and an "Unplaced" sheet of product IDs when any item was
// left unplaced, for warehouse systems that consume XLSX rather than PDF.
func ExportManifestXLSX(path string, result model.Result, cfg model.PalletConfig) error {
	f := excelize.NewFile()
	defer f.Close()

	const palletsSheet = "Pallets"
	f.SetSheetName(f.GetSheetName(0), palletsSheet)

	palletHeaders := []string{"Pallet", "Kind", "Items", "Weight (kg)", "Fill %"}
	for col, h := range palletHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(palletsSheet, cell, h)
	}
	for i, pl := range result.Pallets {
		row := i + 2
		values := []interface{}{i + 1, string(pl.Kind), len(pl.Placements), pl.Weight, pl.Fill(cfg) * 100}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(palletsSheet, cell, v)
		}
	}

	const placementsSheet = "Placements"
	if _, err := f.NewSheet(placementsSheet); err != nil {
		return fmt.Errorf("create placements sheet: %w", err)
	}

	placementHeaders := []string{"Pallet", "Product ID", "Code", "X", "Y", "Z", "L", "W", "H"}
	for col, h := range placementHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(placementsSheet, cell, h)
	}
	row := 2
	for i, pl := range result.Pallets {
		for _, pc := range pl.Placements {
			values := []interface{}{i + 1, pc.Product.ID, pc.Product.Code, pc.X, pc.Y, pc.Z, pc.L, pc.W, pc.H}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(placementsSheet, cell, v)
			}
			row++
		}
	}

	if len(result.Unplaced) > 0 {
		const unplacedSheet = "Unplaced"
		if _, err := f.NewSheet(unplacedSheet); err != nil {
			return fmt.Errorf("create unplaced sheet: %w", err)
		}
		f.SetCellValue(unplacedSheet, "A1", "Product ID")
		for i, id := range result.Unplaced {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			f.SetCellValue(unplacedSheet, cell, id)
		}
	}

	return f.SaveAs(path)
}
