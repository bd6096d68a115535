package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	banksSearch string
	banksMajor  bool
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List, search or shortlist registered Spanish banks",
	Long: `The banks command prints banks from the loaded register, one per line as
"prefix<TAB>name". By default the whole register is printed in source
order; --search filters by name substring (two characters minimum, capped
at 100 matches) and --major prints the curated shortlist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadEnvironment()
		if err != nil {
			return err
		}
		reg, _, err := loadExtractor(cfg)
		if err != nil {
			return err
		}

		switch {
		case banksMajor:
			for _, bank := range reg.MajorBanks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", bank.IBANPrefix, bank.Name)
			}
		case banksSearch != "":
			for _, bank := range reg.Search(banksSearch) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", bank.IBANPrefix, bank.Name)
			}
		default:
			for _, bank := range reg.AllBanks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					bank.IBANPrefix, bank.Name, bank.EntityCode, bank.Address)
			}
		}
		return nil
	},
}

func init() {
	banksCmd.Flags().StringVar(&banksSearch, "search", "", "filter banks by name substring")
	banksCmd.Flags().BoolVar(&banksMajor, "major", false, "print only the curated major banks shortlist")
	rootCmd.AddCommand(banksCmd)
}
