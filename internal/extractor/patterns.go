package extractor

import "regexp"

// Spanish IBAN shape: ES, two check digits, then four 4-digit groups with
// optional single spaces between groups. Hyphens are stripped before this
// pattern is applied.
var ibanPattern = regexp.MustCompile(`(?i)ES\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}`)

// Full-IBAN validation pattern, anchored start to end. Applied after
// internal spaces are removed.
var fullIBANPattern = regexp.MustCompile(`^ES\d{2}\d{4}\d{4}\d{4}\d{4}\d{4}$`)

// Phone patterns for Spanish numbers, tried in order. Mobiles and
// 8-prefixed landline-equivalents are matched; 9-prefixed numbers never
// are. Matches are deduplicated by exact string across the whole list.
var phonePatterns = []*regexp.Regexp{
	// +34 123456789 or +34123456789
	regexp.MustCompile(`\+34\s*\d{9}`),
	// +34 12 345 67 89 or +34 123 45 67 89
	regexp.MustCompile(`\+34\s*\d{2,3}\s*\d{3}\s*\d{2}\s*\d{2}`),
	// 612345678, 712345678, 812345678
	regexp.MustCompile(`\b[678]\d{8}\b`),
	// 612 345 67 89, 712 345 67 89, 812 345 67 89
	regexp.MustCompile(`\b[678]\d{2}\s*\d{3}\s*\d{2}\s*\d{2}\b`),
}
