package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	config "github.com/emilioroldan/iban-phones/internal/configuration"
	"github.com/emilioroldan/iban-phones/internal/extractor"
	"github.com/emilioroldan/iban-phones/internal/logging"
	"github.com/emilioroldan/iban-phones/internal/registry"
)

// cfgFile holds the path to the configuration file, set with --config.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ibanphones",
	Short: "Extract Spanish phone numbers from IBAN-qualified text",
	Long: `ibanphones scans free-form text for Spanish phone numbers, keeping only
numbers that appear on lines also carrying an IBAN of a selected bank.

The bank is chosen by IBAN prefix (e.g. ES0049) or by pasting a sample
IBAN; the entity code is matched against the Spanish payment-service
register (lista-psri-es.csv).

Example Usage:
  ibanphones banks --search santander      # Find the bank prefix
  ibanphones extract --bank ES0049 in.txt  # Scan a file
  ibanphones estimate in.csv               # Size up a file before scanning
  ibanphones serve                         # Run the HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file")
}

// loadEnvironment builds the config and logger shared by all commands.
func loadEnvironment() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	return cfg, logger, nil
}

// loadExtractor loads the bank registry and wires the extractor on top.
// Registry load failure is fatal for every command that gets here.
func loadExtractor(cfg *config.Config) (*registry.Registry, *extractor.Extractor, error) {
	paths := append([]string{cfg.Data.RegistryFile}, cfg.Data.ProbePaths...)
	reg, err := registry.LoadFirst(paths...)
	if err != nil {
		return nil, nil, err
	}
	return reg, extractor.New(reg), nil
}
