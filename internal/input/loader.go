// Package input loads scan input from text, CSV and spreadsheet files.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ReadFile loads any supported input file as plain scan text. Spreadsheets
// are flattened to tab-separated lines; everything else is read as text.
func ReadFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadWorkbook(path)
	default:
		return ReadText(path)
	}
}

// ReadText reads a text file as UTF-8 with byte-order-mark tolerance,
// falling back to Latin-1 when the content is not valid UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeText(data), nil
}

// DecodeText converts raw file bytes to a string, stripping a UTF-8 BOM
// and decoding Latin-1 when the bytes are not valid UTF-8.
func DecodeText(data []byte) string {
	data = stripBOM(data)
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding cannot fail on arbitrary bytes; keep the raw
		// string as a last resort.
		return string(data)
	}
	return string(decoded)
}

func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

// ReadWorkbook flattens a spreadsheet to scan text: every sheet row
// becomes one tab-separated line, sheet after sheet in workbook order.
func ReadWorkbook(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %s of %s: %w", sheet, path, err)
		}
		for _, row := range rows {
			sb.WriteString(strings.Join(row, "\t"))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
