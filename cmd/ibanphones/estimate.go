package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <file>",
	Short: "Estimate file size and recommend a scan chunk size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadEnvironment()
		if err != nil {
			return err
		}
		_, ext, err := loadExtractor(cfg)
		if err != nil {
			return err
		}

		estimate, err := ext.EstimateSize(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Size:             %d bytes (%.2f MB)\n", estimate.SizeBytes, estimate.SizeMB)
		fmt.Fprintf(out, "Estimated lines:  %d\n", estimate.EstimatedLines)
		fmt.Fprintf(out, "Large file:       %t\n", estimate.IsLarge)
		fmt.Fprintf(out, "Recommended chunk size: %d\n", estimate.RecommendedChunkSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
