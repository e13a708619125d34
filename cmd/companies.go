package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opendatakr/foodsearch/internal/export"
	"github.com/opendatakr/foodsearch/internal/model"
)

var (
	companiesKeyword      string
	companiesRegion       string
	companiesBusinessType string
	companiesPage         int
	companiesPerPage      int
	companiesOut          string
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Search food companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		q := model.CompanyQuery{
			Keyword:      companiesKeyword,
			Region:       regionFilter(companiesRegion),
			BusinessType: companiesBusinessType,
			Page:         companiesPage,
			PerPage:      companiesPerPage,
		}

		result := engine.SearchCompanies(cmd.Context(), q)

		if companiesOut != "" {
			if err := export.WriteCompanies(companiesOut, result); err != nil {
				return err
			}
			zap.L().Info("report written",
				zap.String("path", companiesOut),
				zap.Int("rows", len(result.Items)),
			)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// regionFilter turns a comma separated list of region display names into
// the address tokens company search matches on. Entries already in token
// form pass through unchanged.
func regionFilter(raw string) string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == model.FilterAll {
			continue
		}
		if tok := model.RegionToken(p); tok != "" {
			p = tok
		}
		tokens = append(tokens, p)
	}
	return strings.Join(tokens, ",")
}

func init() {
	companiesCmd.Flags().StringVar(&companiesKeyword, "keyword", "", "company name keyword")
	companiesCmd.Flags().StringVar(&companiesRegion, "region", "", "region name or comma separated list of regions")
	companiesCmd.Flags().StringVar(&companiesBusinessType, "business-type", "", "business type filter")
	companiesCmd.Flags().IntVar(&companiesPage, "page", 1, "result page")
	companiesCmd.Flags().IntVar(&companiesPerPage, "per-page", model.DefaultPerPage, "results per page")
	companiesCmd.Flags().StringVar(&companiesOut, "out", "", "write results to an xlsx report instead of stdout")
	rootCmd.AddCommand(companiesCmd)
}
