package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emilioroldan/iban-phones/internal/export"
	"github.com/emilioroldan/iban-phones/internal/extractor"
	"github.com/emilioroldan/iban-phones/internal/input"
	"github.com/emilioroldan/iban-phones/internal/models"
)

var (
	extractBank      string
	extractOutput    string
	extractChunkSize int
	extractProgress  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <file>",
	Short: "Extract phone numbers from a text, CSV or spreadsheet file",
	Long: `The extract command scans a file line by line, keeps lines carrying an
IBAN of the selected bank, and collects the Spanish phone numbers found on
those lines.

Spreadsheets (.xlsx, .xls) are flattened sheet by sheet, one tab-separated
line per row, before scanning. Plain files larger than the configured
threshold can be streamed in chunks with --chunk-size.

Results go to stdout, or to --output where the extension picks the format:
.txt for a plain phone list, .csv for line/text/phones rows, .xlsx for a
workbook.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadEnvironment()
		if err != nil {
			return err
		}
		_, ext, err := loadExtractor(cfg)
		if err != nil {
			return err
		}

		path := args[0]
		results, err := runExtraction(ext, path, cfg.Scan.ChunkSize)
		if err != nil {
			return err
		}
		logger.Info("scan finished", "file", path, "matching_lines", len(results))

		if extractOutput != "" {
			if err := export.Write(extractOutput, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", extractOutput)
			return nil
		}

		for _, line := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n",
				line.LineNumber, line.Text, strings.Join(line.PhoneNumbers, ", "))
		}
		return nil
	},
}

func runExtraction(ext *extractor.Extractor, path string, defaultChunk int) ([]models.MatchLine, error) {
	isSpreadsheet := false
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		isSpreadsheet = true
	}

	// Spreadsheets cannot be streamed; everything else goes through the
	// chunked path when a chunk size is in play.
	if !isSpreadsheet && extractChunkSize != 0 {
		chunk := extractChunkSize
		if chunk < 0 {
			chunk = defaultChunk
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var onProgress extractor.ProgressFunc
		if extractProgress {
			onProgress = func(percent float64, processed, total int) {
				fmt.Fprintf(os.Stderr, "\rProcessed %d/%d lines (%.1f%%)", processed, total, percent)
				if processed >= total {
					fmt.Fprintln(os.Stderr)
				}
			}
		}

		return ext.ProcessLarge(ctx, extractBank, path, chunk, onProgress)
	}

	content, err := input.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ext.ProcessText(extractBank, content), nil
}

func init() {
	extractCmd.Flags().StringVar(&extractBank, "bank", "", "bank identifier: IBAN prefix (ES0049) or a sample IBAN")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "write results to this file (.txt, .csv or .xlsx)")
	extractCmd.Flags().IntVar(&extractChunkSize, "chunk-size", 0, "stream the file in chunks of this many lines (-1 for the configured default)")
	extractCmd.Flags().BoolVar(&extractProgress, "progress", false, "report progress on stderr during chunked scans")
	extractCmd.MarkFlagRequired("bank")
	rootCmd.AddCommand(extractCmd)
}
