package extractor

import (
	"fmt"
	"strings"

	input "github.com/emilioroldan/iban-phones/internal/input"
	models "github.com/emilioroldan/iban-phones/internal/models"
	registry "github.com/emilioroldan/iban-phones/internal/registry"
)

// Extractor correlates IBAN-qualified text with Spanish phone numbers.
// It is stateless apart from the injected read-only registry, so a single
// instance can serve concurrent scans.
type Extractor struct {
	registry *registry.Registry
}

// New creates an extractor backed by the given registry.
func New(reg *registry.Registry) *Extractor {
	return &Extractor{registry: reg}
}

// Registry exposes the backing registry for bank selection surfaces.
func (e *Extractor) Registry() *registry.Registry { return e.registry }

// NormalizePrefix canonicalizes a bank identifier to the registry key form
// "ES" + 4-digit entity code. It accepts either the bare prefix or a full
// IBAN-like string, from which the entity code following the two check
// digits is recovered. Short or non-ES inputs are returned unchanged.
func NormalizePrefix(ibanPrefix string) string {
	clean := strings.ReplaceAll(ibanPrefix, " ", "")

	if strings.HasPrefix(clean, "ES") && len(clean) > 2 {
		if len(clean) == 6 && isDigits(clean[2:6]) {
			return clean
		}
		if len(clean) >= 6 {
			end := 8
			if end > len(clean) {
				end = len(clean)
			}
			return "ES" + clean[4:end]
		}
	}

	return clean
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ExtractPhoneNumbers returns the distinct phone numbers found in text,
// provided text contains at least one IBAN whose entity code matches the
// selected bank. An unresolvable bank identifier yields no phones rather
// than an error.
func (e *Extractor) ExtractPhoneNumbers(bankIdentifier, text string) []string {
	entityCode, err := e.registry.EntityCode(NormalizePrefix(bankIdentifier))
	if err != nil {
		return nil
	}

	if !e.hasQualifyingIBAN(text, entityCode) {
		return nil
	}

	seen := make(map[string]struct{})
	var phones []string
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			phones = append(phones, match)
		}
	}
	return phones
}

func (e *Extractor) hasQualifyingIBAN(text, entityCode string) bool {
	candidates := ibanPattern.FindAllString(strings.ReplaceAll(text, "-", ""), -1)
	for _, candidate := range candidates {
		clean := strings.ReplaceAll(candidate, " ", "")
		if len(clean) >= 8 && strings.HasPrefix(clean, "ES") && clean[4:8] == entityCode {
			return true
		}
	}
	return false
}

// ProcessText splits text on line breaks and extracts phone numbers per
// line, emitting a MatchLine for each line with at least one match. Line
// numbers are 1-based positions in the original split; blank lines are
// skipped but still counted.
func (e *Extractor) ProcessText(bankIdentifier, text string) []models.MatchLine {
	lines := strings.Split(text, "\n")

	var results []models.MatchLine
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		phones := e.ExtractPhoneNumbers(bankIdentifier, line)
		if len(phones) > 0 {
			results = append(results, models.MatchLine{
				LineNumber:   i + 1,
				Text:         line,
				PhoneNumbers: phones,
				PhoneCount:   len(phones),
			})
		}
	}
	return results
}

// ProcessFile reads the whole file and delegates to ProcessText.
func (e *Extractor) ProcessFile(bankIdentifier, path string) ([]models.MatchLine, error) {
	content, err := input.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("processing file %s: %w", path, err)
	}
	return e.ProcessText(bankIdentifier, content), nil
}

// ValidateIBANFormat reports whether iban has the full Spanish IBAN shape.
// Only the shape is checked; MOD-97 check digits are not validated.
func ValidateIBANFormat(iban string) bool {
	return fullIBANPattern.MatchString(strings.ReplaceAll(iban, " ", ""))
}

// EntityCodeFromIBAN extracts the 4-digit entity code from a Spanish IBAN.
func EntityCodeFromIBAN(iban string) (string, bool) {
	clean := strings.ReplaceAll(iban, " ", "")
	if !strings.HasPrefix(clean, "ES") || len(clean) < 6 {
		return "", false
	}
	end := 8
	if end > len(clean) {
		end = len(clean)
	}
	return clean[4:end], true
}
