package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	service "github.com/emilioroldan/iban-phones/internal/services"
)

// BankHandler handles API requests for banks and phone extraction
type BankHandler struct {
	service service.ExtractionService
}

// NewBankHandler creates a new handler instance
func NewBankHandler(service service.ExtractionService) *BankHandler {
	return &BankHandler{service: service}
}

// ExtractRequest is the body of POST /extract.
type ExtractRequest struct {
	BankIdentifier string `json:"bank_identifier"`
	Text           string `json:"text"`
}

// GetBank handles requests for a specific bank by IBAN prefix or sample IBAN
func (h *BankHandler) GetBank(c fiber.Ctx) error {
	identifier := strings.ToUpper(c.Params("ibanPrefix"))
	log.Printf("INFO: GetBank called with identifier: %s", identifier)

	bank, err := h.service.GetBankDetails(c.Context(), identifier)
	if err != nil {
		log.Printf("INFO: Error retrieving bank details for %s: %v", identifier, err)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(bank)
}

// SearchBanks handles name-substring search requests
func (h *BankHandler) SearchBanks(c fiber.Ctx) error {
	term := c.Query("q")

	matches, err := h.service.SearchBanks(c.Context(), term)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"matches": matches,
		"count":   len(matches),
	})
}

// MajorBanks handles requests for the curated shortlist
func (h *BankHandler) MajorBanks(c fiber.Ctx) error {
	banks, err := h.service.MajorBanks(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"banks": banks,
		"count": len(banks),
	})
}

// AllBanks handles requests for the full registry dump
func (h *BankHandler) AllBanks(c fiber.Ctx) error {
	banks, err := h.service.AllBanks(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"banks": banks,
		"count": len(banks),
	})
}

// Extract handles phone extraction requests
func (h *BankHandler) Extract(c fiber.Ctx) error {
	var req ExtractRequest

	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	results, err := h.service.Extract(c.Context(), req.BankIdentifier, req.Text)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"matches": results,
		"count":   len(results),
	})
}

// Helper function for error handling
func handleError(c fiber.Ctx, err error) error {
	switch {
	case err == service.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Bank not found",
		})
	case err == service.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input provided",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
