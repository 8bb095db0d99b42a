// Package importer provides CSV and Excel import functionality for product
// lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition, as an alternative to
// the JSON document ParseInput expects.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/palletpack/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Products []model.Product
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Code      int
	Length    int
	Width     int
	Height    int
	Weight    int
	Quantity  int
	Rotatable int
	Strength  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"code":      {"code", "sku", "label", "name", "part", "description", "desc", "item"},
	"length":    {"length", "len", "l", "x"},
	"width":     {"width", "w", "y"},
	"height":    {"height", "h", "depth", "d", "z"},
	"weight":    {"weight", "kg", "mass"},
	"quantity":  {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"rotatable": {"rotatable", "rotate", "rotatable_horizontal", "can_rotate", "turnable"},
	"strength":  {"strength", "max_load", "stack_limit", "mukavemet"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Code: -1, Length: -1, Width: -1, Height: -1,
		Weight: -1, Quantity: -1, Rotatable: -1, Strength: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "code":
						if mapping.Code == -1 {
							mapping.Code = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "weight":
						if mapping.Weight == -1 {
							mapping.Weight = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "rotatable":
						if mapping.Rotatable == -1 {
							mapping.Rotatable = i
						}
					case "strength":
						if mapping.Strength == -1 {
							mapping.Strength = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Code, Length, Width, Height,
		// Weight, Quantity, Rotatable, Strength.
		return ColumnMapping{
			Code: 0, Length: 1, Width: 2, Height: 3,
			Weight: 4, Quantity: 5, Rotatable: 6, Strength: 7,
		}, false
	}

	return mapping, true
}

// parseRotatable converts a rotatable-column string to a bool. Any of the
// standard truthy tokens count; anything else (including empty) is false.
func parseRotatable(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Product from a row using the given column mapping.
// Returns the product, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, productCount int) (model.Product, string, string) {
	code := getCell(row, mapping.Code)
	if code == "" {
		code = fmt.Sprintf("PRODUCT-%d", productCount+1)
	}

	length, errMsg := parseDimension(row, mapping.Length, rowLabel, "length")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	width, errMsg := parseDimension(row, mapping.Width, rowLabel, "width")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	height, errMsg := parseDimension(row, mapping.Height, rowLabel, "height")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}
	weight, errMsg := parseDimension(row, mapping.Weight, rowLabel, "weight")
	if errMsg != "" {
		return model.Product{}, errMsg, ""
	}

	qtyStr := getCell(row, mapping.Quantity)
	qty := 1
	if qtyStr != "" {
		parsed, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.Product{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr), ""
		}
		qty = parsed
	}

	if length <= 0 || width <= 0 || height <= 0 || weight <= 0 || qty <= 0 {
		return model.Product{}, fmt.Sprintf("%s: length, width, height, weight, and quantity must be positive", rowLabel), ""
	}

	product := model.NewProduct(code, length, width, height, weight)
	product.RotatableHorizontal = parseRotatable(getCell(row, mapping.Rotatable))

	var warning string
	if strengthCell := getCell(row, mapping.Strength); strengthCell != "" {
		if v, err := strconv.ParseFloat(strengthCell, 64); err == nil {
			product.Strength = v
		} else {
			warning = fmt.Sprintf("%s: invalid strength %q, ignored", rowLabel, strengthCell)
		}
	}
	if qty > 1 {
		if warning != "" {
			warning += fmt.Sprintf("; quantity %d expands to %d identical products", qty, qty)
		} else {
			warning = fmt.Sprintf("%s: quantity %d expands to %d identical products", rowLabel, qty, qty)
		}
	}

	return product, "", warning
}

func parseDimension(row []string, idx int, rowLabel, field string) (float64, string) {
	cell := getCell(row, idx)
	if cell == "" {
		return 0, fmt.Sprintf("%s: missing %s value", rowLabel, field)
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: invalid %s %q", rowLabel, field, cell)
	}
	return v, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports products from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports products from a CSV reader with a specific delimiter.
// Useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot read CSV: %v", err)}}
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports products from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot open Excel file: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"Excel file has no sheets"}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot read Excel data: %v", err)}}
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into products.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		var missing []string
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Weight == -1 {
			missing = append(missing, "Weight")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Products))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		qty := 1
		if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
			if parsed, err := strconv.Atoi(qtyStr); err == nil && parsed > 0 {
				qty = parsed
			}
		}
		for n := 0; n < qty; n++ {
			copy := product
			if qty > 1 {
				copy.ID = fmt.Sprintf("%s-%d", product.ID, n+1)
			}
			result.Products = append(result.Products, copy)
		}
	}

	return result
}
