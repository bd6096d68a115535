package parsers

import (
	"log"
	"regexp"

	models "github.com/emilioroldan/iban-phones/internal/models"
	readers "github.com/emilioroldan/iban-phones/internal/readers"
)

type BankRecordsParser interface {
	ParseBankRecords(bankRecords []readers.BankRecord) ([]models.Bank, error)
}

type DefaultBankRecordsParser struct{}

// IBAN prefix regex: country code plus the 4-digit entity code.
var ibanPrefixRegex = regexp.MustCompile(`^ES\d{4}$`)

func (p DefaultBankRecordsParser) ParseBankRecords(bankRecords []readers.BankRecord) ([]models.Bank, error) {
	var banks []models.Bank

	for _, record := range bankRecords {
		if record.EuropeanCode == "" {
			log.Printf("Validation error at index %d: european code cannot be empty", record.Index)
			continue
		}
		if !ibanPrefixRegex.MatchString(record.EuropeanCode) {
			log.Printf("Validation error at index %d: european code '%s' does not match ES prefix format", record.Index, record.EuropeanCode)
			continue
		}

		if record.Name == "" {
			log.Printf("Validation error for prefix '%s': name cannot be empty", record.EuropeanCode)
			continue
		}

		// Entity code is the prefix minus the 2-character country code. The
		// register's own check-digit positions are not validated.
		entityCode := record.EuropeanCode[2:]

		bank := models.Bank{
			IBANPrefix:     record.EuropeanCode,
			Name:           record.Name,
			EntityCode:     entityCode,
			Address:        record.Address,
			LEI:            record.LEI,
			Operator:       record.Operator,
			Provider:       record.Provider,
			SupervisorCode: record.SupervisorCode,
		}
		banks = append(banks, bank)
	}

	return banks, nil
}
