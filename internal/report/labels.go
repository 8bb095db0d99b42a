package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/palletpack/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each pallet label's QR code.
type LabelInfo struct {
	PalletIndex int     `json:"pallet"`
	Kind        string  `json:"kind"`
	ItemCount   int      `json:"item_count"`
	Weight      float64 `json:"weight_kg"`
	Fill        float64 `json:"fill_pct"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page, US Letter).
const (
	labelPageWidth  = 215.9
	labelPageHeight = 279.4
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportPalletLabels generates a PDF of QR-coded labels, one per pallet,
// for a forklift operator to scan at load time.
func ExportPalletLabels(path string, result model.Result, cfg model.PalletConfig) error {
	if len(result.Pallets) == 0 {
		return fmt.Errorf("no pallets to generate labels for")
	}

	labels := CollectLabelInfos(result, cfg)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for pallet %d: %w", label.PalletIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single pallet label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_pallet_%d", info.PalletIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	title := fmt.Sprintf("Pallet %d (%s)", info.PalletIndex, info.Kind)
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d items, %.1f kg", info.ItemCount, info.Weight), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Fill: %.0f%%", info.Fill), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a packing Result, for
// use in testing or alternative export formats.
func CollectLabelInfos(result model.Result, cfg model.PalletConfig) []LabelInfo {
	labels := make([]LabelInfo, 0, len(result.Pallets))
	for i, pl := range result.Pallets {
		labels = append(labels, LabelInfo{
			PalletIndex: i + 1,
			Kind:        string(pl.Kind),
			ItemCount:   len(pl.Placements),
			Weight:      pl.Weight,
			Fill:        pl.Fill(cfg) * 100,
		})
	}
	return labels
}
