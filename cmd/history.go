package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var (
	historyCompany   string
	historyLicenseNo string
	historyChanges   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show representative or license change history for a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if historyChanges {
			return enc.Encode(engine.LicenseChangeHistory(cmd.Context(), historyCompany, historyLicenseNo))
		}
		return enc.Encode(engine.RepresentativeHistory(cmd.Context(), historyCompany, historyLicenseNo))
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyCompany, "company", "", "exact company name (required)")
	historyCmd.Flags().StringVar(&historyLicenseNo, "license-no", "", "license number, speeds up the upstream lookup")
	historyCmd.Flags().BoolVar(&historyChanges, "changes", false, "show license change history instead of representatives")
	_ = historyCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(historyCmd)
}
