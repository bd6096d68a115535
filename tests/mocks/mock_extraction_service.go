package mocks

import (
	"context"

	models "github.com/emilioroldan/iban-phones/internal/models"
	registry "github.com/emilioroldan/iban-phones/internal/registry"
)

// MockExtractionService implements service.ExtractionService with
// overridable function fields.
type MockExtractionService struct {
	GetBankDetailsFunc func(ctx context.Context, bankIdentifier string) (*models.Bank, error)
	SearchBanksFunc    func(ctx context.Context, term string) ([]registry.BankSummary, error)
	MajorBanksFunc     func(ctx context.Context) ([]registry.BankSummary, error)
	AllBanksFunc       func(ctx context.Context) ([]models.Bank, error)
	ExtractFunc        func(ctx context.Context, bankIdentifier, text string) ([]models.MatchLine, error)
}

func (m *MockExtractionService) GetBankDetails(ctx context.Context, bankIdentifier string) (*models.Bank, error) {
	if m.GetBankDetailsFunc != nil {
		return m.GetBankDetailsFunc(ctx, bankIdentifier)
	}
	return nil, nil
}

func (m *MockExtractionService) SearchBanks(ctx context.Context, term string) ([]registry.BankSummary, error) {
	if m.SearchBanksFunc != nil {
		return m.SearchBanksFunc(ctx, term)
	}
	return nil, nil
}

func (m *MockExtractionService) MajorBanks(ctx context.Context) ([]registry.BankSummary, error) {
	if m.MajorBanksFunc != nil {
		return m.MajorBanksFunc(ctx)
	}
	return nil, nil
}

func (m *MockExtractionService) AllBanks(ctx context.Context) ([]models.Bank, error) {
	if m.AllBanksFunc != nil {
		return m.AllBanksFunc(ctx)
	}
	return nil, nil
}

func (m *MockExtractionService) Extract(ctx context.Context, bankIdentifier, text string) ([]models.MatchLine, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, bankIdentifier, text)
	}
	return nil, nil
}
