// Package report renders a packing Result into operator-facing documents:
// a per-pallet PDF manifest with a top-down loading diagram, a QR-coded
// pallet label sheet, and an XLSX manifest for spreadsheet tooling.
package report

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/palletpack/internal/model"
)

// placementColor is an RGB color assigned to a placement by layer index,
// so stacked items at different heights are visually distinguishable on
// the top-down diagram.
type placementColor struct {
	R, G, B int
}

var placementColors = []placementColor{
	{R: 76, G: 175, B: 80},
	{R: 33, G: 150, B: 243},
	{R: 255, G: 152, B: 0},
	{R: 156, G: 39, B: 176},
	{R: 0, G: 188, B: 212},
	{R: 244, G: 67, B: 54},
	{R: 255, G: 235, B: 59},
	{R: 121, G: 85, B: 72},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportManifestPDF renders one page per pallet (a top-down loading
// diagram keyed by height layer) followed by a summary page of aggregate
// stats, mirroring a warehouse pick sheet.
func ExportManifestPDF(path string, result model.Result, pallet model.PalletConfig) error {
	if len(result.Pallets) == 0 {
		return fmt.Errorf("no pallets to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, pl := range result.Pallets {
		pdf.AddPage()
		renderPalletPage(pdf, pl, pallet, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, pallet)

	return pdf.OutputFileAndClose(path)
}

// renderPalletPage draws one pallet's top-down (X/Y) footprint, coloring
// each placement by its Z layer so a loader can read off stacking order.
func renderPalletPage(pdf *fpdf.Fpdf, pl model.Pallet, cfg model.PalletConfig, palletNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Pallet %d: %s (%.0f x %.0f x %.0f cm)", palletNum, pl.Kind, cfg.Length, cfg.Width, cfg.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Weight: %.1f / %.1f kg | Fill: %.1f%%",
		len(pl.Placements), pl.Weight, cfg.MaxWeight, pl.Fill(cfg)*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 20

	scaleX := drawWidth / cfg.Length
	scaleY := drawHeight / cfg.Width
	scale := math.Min(scaleX, scaleY)

	canvasW := cfg.Length * scale
	canvasH := cfg.Width * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(222, 184, 135)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	layers := layerIndex(pl.Placements)
	for _, pc := range pl.Placements {
		col := placementColors[layers[pc.Z]%len(placementColors)]
		pw := pc.L * scale
		ph := pc.W * scale
		px := offsetX + pc.X*scale
		py := offsetY + pc.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%s z%.0f", pc.Product.Code, pc.Z)
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawLegend(pdf, pl, layers, offsetY+canvasH+5)
}

// layerIndex assigns each distinct Z coordinate a stable small integer so
// the diagram's coloring is consistent top-to-bottom within a pallet.
func layerIndex(placements []model.Placement) map[float64]int {
	var zs []float64
	seen := map[float64]bool{}
	for _, pc := range placements {
		if !seen[pc.Z] {
			seen[pc.Z] = true
			zs = append(zs, pc.Z)
		}
	}
	idx := map[float64]int{}
	for i, z := range zs {
		idx[z] = i
	}
	return idx
}

// drawLegend renders a compact per-layer item count below the diagram.
func drawLegend(pdf *fpdf.Fpdf, pl model.Pallet, layers map[float64]int, startY float64) {
	if len(pl.Placements) == 0 {
		return
	}
	counts := map[int]int{}
	for _, pc := range pl.Placements {
		counts[layers[pc.Z]]++
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Layers:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	for i := 0; i < len(counts); i++ {
		col := placementColors[i%len(placementColors)]
		label := fmt.Sprintf("layer %d: %d items", i, counts[i])
		labelW := pdf.GetStringWidth(label) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 4
	}
}

// renderSummaryPage draws the final summary page with aggregate stats.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result, cfg model.PalletConfig) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Pallet Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct{ label, value string }{
		{"Total Pallets", fmt.Sprintf("%d", result.Stats.TotalPallets)},
		{"Single-SKU Pallets", fmt.Sprintf("%d", result.Stats.SingleCount)},
		{"Mixed Pallets", fmt.Sprintf("%d", result.Stats.MixCount)},
		{"Average Fill", fmt.Sprintf("%.1f%%", result.Stats.AvgFill*100)},
		{"Theoretical Minimum", fmt.Sprintf("%d", result.Stats.TheoreticalMin)},
		{"Unplaced Items", fmt.Sprintf("%d", len(result.Unplaced))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pallet Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 30, 30, 50, 50}
	headers := []string{"Pallet", "Kind", "Items", "Weight", "Fill"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, h := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, pl := range result.Pallets {
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			string(pl.Kind),
			fmt.Sprintf("%d", len(pl.Placements)),
			fmt.Sprintf("%.1f kg", pl.Weight),
			fmt.Sprintf("%.1f%%", pl.Fill(cfg)*100),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(result.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Items", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, id := range result.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+id, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by palletpack", "", 0, "C", false, 0, "")
}
