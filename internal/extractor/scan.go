package extractor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	models "github.com/emilioroldan/iban-phones/internal/models"
)

// DefaultChunkSize is the batch size used by ProcessLarge when the caller
// passes a non-positive chunk size.
const DefaultChunkSize = 10000

const (
	estimateSampleLines = 10000
	largeFileBytes      = 10 * 1024 * 1024
	minChunkSize        = 1000
	maxChunkSize        = 5000
)

// ProgressFunc receives percentage progress at batch boundaries.
type ProgressFunc func(percent float64, linesProcessed, totalLines int)

// maxLineBytes bounds a single scanned line.
const maxLineBytes = 4 * 1024 * 1024

type numberedLine struct {
	number int
	text   string
}

// ProcessLarge streams the file line by line in batches of chunkSize,
// reporting progress after each batch. Line numbers are global, so results
// are identical to ProcessText over the whole content regardless of chunk
// boundaries. The total line count comes from a first pass over the file:
// one extra sequential read buys accurate percentages.
//
// Cancellation is cooperative and checked only at batch boundaries; on
// cancellation the accumulated results are discarded and ctx.Err() is
// returned.
func (e *Extractor) ProcessLarge(ctx context.Context, bankIdentifier, path string, chunkSize int, onProgress ProgressFunc) ([]models.MatchLine, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	totalLines, err := countLines(path)
	if err != nil {
		return nil, fmt.Errorf("processing large file %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("processing large file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		results   []models.MatchLine
		batch     []numberedLine
		lineNum   int
		processed int
	)

	flush := func() {
		results = append(results, e.processChunk(bankIdentifier, batch)...)
		processed += len(batch)
		if onProgress != nil && totalLines > 0 {
			onProgress(float64(processed)/float64(totalLines)*100, processed, totalLines)
		}
		batch = batch[:0]
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		batch = append(batch, numberedLine{number: lineNum, text: strings.TrimSpace(line)})

		if len(batch) >= chunkSize {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("processing large file %s: %w", path, err)
	}

	if len(batch) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		flush()
	}

	return results, nil
}

func (e *Extractor) processChunk(bankIdentifier string, chunk []numberedLine) []models.MatchLine {
	var results []models.MatchLine
	for _, line := range chunk {
		if line.text == "" {
			continue
		}
		phones := e.ExtractPhoneNumbers(bankIdentifier, line.text)
		if len(phones) > 0 {
			results = append(results, models.MatchLine{
				LineNumber:   line.number,
				Text:         line.text,
				PhoneNumbers: phones,
				PhoneCount:   len(phones),
			})
		}
	}
	return results
}

func countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	count := 0
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

// EstimateSize samples up to the first 10000 lines and extrapolates the
// total line count from bytes read versus file size. Files within the
// sample report exact counts. The recommended chunk size is proportional
// to the estimate and clamped to [1000, 5000].
func (e *Extractor) EstimateSize(path string) (models.SizeEstimate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.SizeEstimate{}, fmt.Errorf("estimating file size %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return models.SizeEstimate{}, fmt.Errorf("estimating file size %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineCount := 0
	var bytesRead int64
	for scanner.Scan() {
		lineCount++
		bytesRead += int64(len(scanner.Bytes())) + 1
		if lineCount >= estimateSampleLines {
			break
		}
	}

	hasMore := lineCount >= estimateSampleLines && scanner.Scan()
	if err := scanner.Err(); err != nil {
		return models.SizeEstimate{}, fmt.Errorf("estimating file size %s: %w", path, err)
	}

	estimatedLines := lineCount
	if hasMore && bytesRead > 0 {
		estimatedLines = int(float64(info.Size()) / float64(bytesRead) * float64(lineCount))
	}

	recommended := estimatedLines / 100
	if recommended < minChunkSize {
		recommended = minChunkSize
	}
	if recommended > maxChunkSize {
		recommended = maxChunkSize
	}

	return models.SizeEstimate{
		SizeBytes:            info.Size(),
		SizeMB:               float64(info.Size()) / (1024 * 1024),
		EstimatedLines:       estimatedLines,
		IsLarge:              info.Size() > largeFileBytes,
		RecommendedChunkSize: recommended,
	}, nil
}
