package service

import (
	"context"
	"errors"
	"log"
	"regexp"

	extractor "github.com/emilioroldan/iban-phones/internal/extractor"
	models "github.com/emilioroldan/iban-phones/internal/models"
	registry "github.com/emilioroldan/iban-phones/internal/registry"
)

var (
	ErrNotFound     = errors.New("bank not found")
	ErrInvalidInput = errors.New("invalid input provided")
)

// Canonical registry key shape after normalization.
var ibanPrefixRegex = regexp.MustCompile(`^ES\d{4}$`)

// ExtractionService handles business logic for bank selection and
// phone extraction.
type ExtractionService interface {
	GetBankDetails(ctx context.Context, bankIdentifier string) (*models.Bank, error)
	SearchBanks(ctx context.Context, term string) ([]registry.BankSummary, error)
	MajorBanks(ctx context.Context) ([]registry.BankSummary, error)
	AllBanks(ctx context.Context) ([]models.Bank, error)
	Extract(ctx context.Context, bankIdentifier, text string) ([]models.MatchLine, error)
}

// extractionService implements ExtractionService
type extractionService struct {
	registry  *registry.Registry
	extractor *extractor.Extractor
}

// NewExtractionService creates a new instance of the extraction service
func NewExtractionService(reg *registry.Registry, ext *extractor.Extractor) ExtractionService {
	return &extractionService{registry: reg, extractor: ext}
}

// GetBankDetails resolves a bank identifier (bare prefix or sample IBAN)
// and returns the registry entry
func (s *extractionService) GetBankDetails(ctx context.Context, bankIdentifier string) (*models.Bank, error) {
	log.Printf("GetBankDetails called with identifier: %s", bankIdentifier)

	normalized := extractor.NormalizePrefix(bankIdentifier)
	if !ibanPrefixRegex.MatchString(normalized) {
		log.Printf("Invalid bank identifier: %s", bankIdentifier)
		return nil, ErrInvalidInput
	}

	bank, err := s.registry.Lookup(normalized)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			log.Printf("Bank not found: %s", normalized)
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &bank, nil
}

// SearchBanks matches a term against bank names. Sub-minimum terms return
// an empty result, not an error.
func (s *extractionService) SearchBanks(ctx context.Context, term string) ([]registry.BankSummary, error) {
	return s.registry.Search(term), nil
}

// MajorBanks returns the curated shortlist present in the registry
func (s *extractionService) MajorBanks(ctx context.Context) ([]registry.BankSummary, error) {
	return s.registry.MajorBanks(), nil
}

// AllBanks returns the full registry dump in registry order
func (s *extractionService) AllBanks(ctx context.Context) ([]models.Bank, error) {
	return s.registry.AllBanks(), nil
}

// Extract scans text for phone numbers gated by IBANs of the selected
// bank. An identifier that does not resolve to a registered bank is a
// not-found error at this boundary; zero matches is a normal empty result.
func (s *extractionService) Extract(ctx context.Context, bankIdentifier, text string) ([]models.MatchLine, error) {
	if bankIdentifier == "" {
		return nil, ErrInvalidInput
	}

	normalized := extractor.NormalizePrefix(bankIdentifier)
	if _, err := s.registry.EntityCode(normalized); err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			log.Printf("Extract: bank not registered: %s", normalized)
			return nil, ErrNotFound
		}
		return nil, err
	}

	results := s.extractor.ProcessText(bankIdentifier, text)
	log.Printf("Extract: %d matching lines for bank %s", len(results), normalized)
	return results, nil
}
