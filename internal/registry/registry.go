package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	models "github.com/emilioroldan/iban-phones/internal/models"
	parsers "github.com/emilioroldan/iban-phones/internal/parsers"
	csvreader "github.com/emilioroldan/iban-phones/internal/readers/csv"
)

var ErrNotFound = errors.New("bank not found")

// LoadError signals that the registry could not be built from its source.
// This is fatal: callers must not proceed without a loaded registry.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading bank registry from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// BankSummary is the (prefix, name) pair returned by search and the major
// banks shortlist.
type BankSummary struct {
	IBANPrefix string `json:"iban_prefix"`
	Name       string `json:"name"`
}

// Registry holds the bank reference data, keyed by IBAN prefix. It is
// built once, keeps insertion order, and is read-only afterwards, so it is
// safe for concurrent use by any number of scans.
type Registry struct {
	banks map[string]models.Bank
	order []string
}

// New builds a registry from already-parsed banks, keeping their order.
// Later duplicates of a prefix overwrite the earlier entry in place.
func New(banks []models.Bank) *Registry {
	r := &Registry{banks: make(map[string]models.Bank, len(banks))}
	for _, bank := range banks {
		if _, exists := r.banks[bank.IBANPrefix]; !exists {
			r.order = append(r.order, bank.IBANPrefix)
		}
		r.banks[bank.IBANPrefix] = bank
	}
	return r
}

// Load reads, validates and indexes the reference table from source.
func Load(source io.Reader) (*Registry, error) {
	reader := &csvreader.CSVBankRecordsReader{}
	records, err := reader.ReadBankRecords(source)
	if err != nil {
		return nil, err
	}

	parser := parsers.DefaultBankRecordsParser{}
	banks, err := parser.ParseBankRecords(records)
	if err != nil {
		return nil, err
	}

	return New(banks), nil
}

// LoadFile loads the registry from a CSV file on disk.
func LoadFile(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer file.Close()

	reg, err := Load(file)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return reg, nil
}

// LoadFirst tries each candidate path in order and loads the first one
// that exists. It fails when none of them does.
func LoadFirst(paths ...string) (*Registry, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, &LoadError{
		Source: strings.Join(paths, ", "),
		Err:    errors.New("registry source not found in any configured location"),
	}
}

// Lookup returns the bank for an exact IBAN prefix. No normalization is
// performed at this layer.
func (r *Registry) Lookup(ibanPrefix string) (models.Bank, error) {
	bank, ok := r.banks[ibanPrefix]
	if !ok {
		return models.Bank{}, ErrNotFound
	}
	return bank, nil
}

// EntityCode returns only the 4-digit entity code for an IBAN prefix.
func (r *Registry) EntityCode(ibanPrefix string) (string, error) {
	bank, err := r.Lookup(ibanPrefix)
	if err != nil {
		return "", err
	}
	return bank.EntityCode, nil
}

const (
	minSearchTermLen = 2
	maxSearchResults = 100
)

// Search matches term case-insensitively against bank names, in registry
// order. Terms shorter than two characters return nothing, and results are
// capped at 100; both are deliberate bounds, not errors.
func (r *Registry) Search(term string) []BankSummary {
	term = strings.ToLower(strings.TrimSpace(term))
	if len([]rune(term)) < minSearchTermLen {
		return nil
	}

	var matches []BankSummary
	for _, prefix := range r.order {
		bank := r.banks[prefix]
		if strings.Contains(strings.ToLower(bank.Name), term) {
			matches = append(matches, BankSummary{IBANPrefix: prefix, Name: bank.Name})
			if len(matches) >= maxSearchResults {
				break
			}
		}
	}
	return matches
}

// majorBanks is the curated quick-selection shortlist.
var majorBanks = []BankSummary{
	{IBANPrefix: "ES0182", Name: "BBVA (Banco Bilbao Vizcaya Argentaria)"},
	{IBANPrefix: "ES0049", Name: "Santander (Banco Santander)"},
	{IBANPrefix: "ES2100", Name: "Caixabank"},
	{IBANPrefix: "ES0081", Name: "Sabadell (Banco de Sabadell)"},
	{IBANPrefix: "ES0128", Name: "Bankinter"},
	{IBANPrefix: "ES0003", Name: "Banco de Depósitos"},
	{IBANPrefix: "ES0061", Name: "Banca March"},
	{IBANPrefix: "ES0188", Name: "Banco Alcalá"},
	{IBANPrefix: "ES0225", Name: "Banco Cetelem"},
	{IBANPrefix: "ES0198", Name: "Banco Cooperativo Español"},
}

// MajorBanks returns the curated shortlist filtered down to banks that are
// actually present in the loaded registry, preserving the curated order.
func (r *Registry) MajorBanks() []BankSummary {
	var available []BankSummary
	for _, bank := range majorBanks {
		if r.Contains(bank.IBANPrefix) {
			available = append(available, bank)
		}
	}
	return available
}

// AllBanks returns every bank in registry order.
func (r *Registry) AllBanks() []models.Bank {
	banks := make([]models.Bank, 0, len(r.order))
	for _, prefix := range r.order {
		banks = append(banks, r.banks[prefix])
	}
	return banks
}

// Len returns the number of banks in the registry.
func (r *Registry) Len() int { return len(r.banks) }

// Contains reports whether a prefix exists in the registry.
func (r *Registry) Contains(ibanPrefix string) bool {
	_, ok := r.banks[ibanPrefix]
	return ok
}
