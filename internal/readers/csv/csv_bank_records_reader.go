package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	readers "github.com/emilioroldan/iban-phones/internal/readers"
)

type CSVBankRecordsReader struct {
}

// Column names of the lista-psri-es.csv register. The first three are
// required; the rest are carried through when present.
const (
	colEuropeanCode   = "CÓDIGO EUROPEO"
	colName           = "NOMBRE"
	colAddress        = "DIRECCIÓN"
	colLEI            = "LEI"
	colOperator       = "OPERADOR"
	colProvider       = "PROVEEDOR"
	colSupervisorCode = "CÓDIGO DE SUPERVISOR"
)

var requiredColumns = []string{colEuropeanCode, colName, colAddress}

func (c *CSVBankRecordsReader) ReadBankRecords(reader io.Reader) ([]readers.BankRecord, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty source: missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	headerMap := map[string]int{}
	for i, col := range header {
		col = strings.TrimPrefix(col, "\uFEFF") // utf-8-sig sources
		headerMap[strings.ToUpper(strings.TrimSpace(col))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("invalid header: missing required column '%s'", required)
		}
	}

	var records []readers.BankRecord
	rowNum := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		getVal := func(field string) string {
			idx, ok := headerMap[field]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, readers.BankRecord{
			Index:          rowNum,
			EuropeanCode:   getVal(colEuropeanCode),
			Name:           getVal(colName),
			Address:        getVal(colAddress),
			LEI:            getVal(colLEI),
			Operator:       getVal(colOperator),
			Provider:       getVal(colProvider),
			SupervisorCode: getVal(colSupervisorCode),
		})
		rowNum++
	}

	return records, nil
}
