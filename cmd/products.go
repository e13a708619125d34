package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opendatakr/foodsearch/internal/export"
	"github.com/opendatakr/foodsearch/internal/model"
)

var (
	productsCompany string
	productsKeyword string
	productsPage    int
	productsPerPage int
	productsOut     string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Search food products by company or keyword",
	RunE: func(cmd *cobra.Command, args []string) error {
		if productsCompany == "" && productsKeyword == "" {
			return eris.New("either --company or --keyword is required")
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}

		var result model.PagedResult[model.ProductRecord]
		if productsCompany != "" {
			result = engine.SearchProductsByCompany(cmd.Context(), productsCompany, productsPage, productsPerPage)
		} else {
			q := model.ProductQuery{
				Keyword: productsKeyword,
				Page:    productsPage,
				PerPage: productsPerPage,
			}
			result = engine.SearchProducts(cmd.Context(), q)
		}

		if productsOut != "" {
			if err := export.WriteProducts(productsOut, result); err != nil {
				return err
			}
			zap.L().Info("report written",
				zap.String("path", productsOut),
				zap.Int("rows", len(result.Items)),
			)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	productsCmd.Flags().StringVar(&productsCompany, "company", "", "exact company name")
	productsCmd.Flags().StringVar(&productsKeyword, "keyword", "", "product name keyword")
	productsCmd.Flags().IntVar(&productsPage, "page", 1, "result page")
	productsCmd.Flags().IntVar(&productsPerPage, "per-page", model.DefaultPerPage, "results per page")
	productsCmd.Flags().StringVar(&productsOut, "out", "", "write results to an xlsx report instead of stdout")
	rootCmd.AddCommand(productsCmd)
}
