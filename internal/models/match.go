package models

// MatchLine is one scanned line that contained a qualifying IBAN and at
// least one phone number. Line numbers are 1-based positions in the
// original, pre-trim line split.
type MatchLine struct {
	LineNumber   int      `json:"line_number"`
	Text         string   `json:"text"`
	PhoneNumbers []string `json:"phone_numbers"`
	PhoneCount   int      `json:"phone_count"`
}

// SizeEstimate describes a file ahead of a scan so callers can decide
// between the whole-file and the chunked path.
type SizeEstimate struct {
	SizeBytes            int64   `json:"file_size_bytes"`
	SizeMB               float64 `json:"file_size_mb"`
	EstimatedLines       int     `json:"estimated_lines"`
	IsLarge              bool    `json:"is_large_file"`
	RecommendedChunkSize int     `json:"recommended_chunk_size"`
}
