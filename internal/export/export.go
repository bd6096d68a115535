// Package export writes scan results to the supported output formats.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	models "github.com/emilioroldan/iban-phones/internal/models"
)

const sheetName = "Extracted Phone Numbers"

// Write picks the output format from the file extension: .xlsx gets a
// workbook, .csv gets line/text/phones triples, anything else a plain
// phone list.
func Write(path string, results []models.MatchLine) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, results)
	case ".csv":
		return WriteCSV(path, results)
	default:
		return WriteText(path, results)
	}
}

// WriteText writes every matched phone number on its own line.
func WriteText(path string, results []models.MatchLine) error {
	var sb strings.Builder
	for _, line := range results {
		for _, phone := range line.PhoneNumbers {
			sb.WriteString(phone)
			sb.WriteString("\n")
		}
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes line number, original text and the comma-joined phone
// list as one CSV row per matched line.
func WriteCSV(path string, results []models.MatchLine) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"line_number", "text", "phone_numbers"}); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	for _, line := range results {
		record := []string{
			strconv.Itoa(line.LineNumber),
			line.Text,
			strings.Join(line.PhoneNumbers, ", "),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("exporting to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	return nil
}

// WriteXLSX writes results to a workbook with a header row and column
// widths sized to content, capped at 50 characters.
func WriteXLSX(path string, results []models.MatchLine) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}

	headers := []string{"Line Number", "Original Text", "Phone Numbers"}
	widths := []int{len(headers[0]), len(headers[1]), len(headers[2])}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("exporting to %s: %w", path, err)
		}
	}

	for rowIdx, line := range results {
		values := []string{
			strconv.Itoa(line.LineNumber),
			line.Text,
			strings.Join(line.PhoneNumbers, ", "),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("exporting to %s: %w", path, err)
			}
			if len(value) > widths[colIdx] {
				widths[colIdx] = len(value)
			}
		}
	}

	for i, width := range widths {
		adjusted := float64(width + 2)
		if adjusted > 50 {
			adjusted = 50
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, adjusted); err != nil {
			return fmt.Errorf("exporting to %s: %w", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	return nil
}
