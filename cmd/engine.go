package main

import (
	"time"

	"github.com/opendatakr/foodsearch/internal/config"
	"github.com/opendatakr/foodsearch/internal/provider"
	"github.com/opendatakr/foodsearch/internal/search"
	"github.com/opendatakr/foodsearch/pkg/datago"
	"github.com/opendatakr/foodsearch/pkg/foodsafety"
)

// newEngine assembles the search engine from the loaded configuration.
// Upstreams without a credential leave their tiers unset; the engine
// always terminates in the static catalog, so a keyless run still
// answers every query.
func newEngine() (*search.Service, error) {
	tuning := search.DefaultTuning()
	if cfg.Search.TuningFile != "" {
		t, err := search.LoadTuning(cfg.Search.TuningFile)
		if err != nil {
			return nil, err
		}
		tuning = *t
	}

	var p search.Providers

	if cfg.DataGo.Key != "" {
		client := datago.NewClient(cfg.DataGo.Key, datagoOptions(cfg.DataGo)...)
		p.Keyword = append(p.Keyword, provider.NewPortalProducts(client))
	}

	if cfg.FoodSafety.Key != "" {
		client := foodsafety.NewClient(cfg.FoodSafety.Key, foodsafetyOptions(cfg.FoodSafety)...)

		p.Livestock = provider.NewLivestockCompanies(client, tuning.CatalogWindow)
		p.HealthFood = provider.NewHealthFoodCompanies(client, tuning.CatalogWindow)
		p.Companies = provider.NewFoodCompanies(client)

		items := provider.NewFoodItems(client)
		p.ByCompany = []provider.ProductSearcher{
			provider.NewFoodReports(client),
			provider.NewHealthFoodReports(client),
			provider.NewHealthFoodItems(client),
			items,
		}
		p.Keyword = append(p.Keyword, items)

		p.History = provider.NewHealthFoodHistory(client, tuning.HistoryWindow)
		p.Changes = provider.NewLicenseChanges(client, tuning.HistoryWindow)
	}

	return search.NewService(p), nil
}

func datagoOptions(c config.ClientConfig) []datago.Option {
	var opts []datago.Option
	if c.BaseURL != "" {
		opts = append(opts, datago.WithBaseURL(c.BaseURL))
	}
	if c.TimeoutSecs > 0 {
		opts = append(opts, datago.WithTimeout(time.Duration(c.TimeoutSecs)*time.Second))
	}
	if c.RateLimit > 0 {
		opts = append(opts, datago.WithRateLimit(c.RateLimit))
	}
	return opts
}

func foodsafetyOptions(c config.ClientConfig) []foodsafety.Option {
	var opts []foodsafety.Option
	if c.BaseURL != "" {
		opts = append(opts, foodsafety.WithBaseURL(c.BaseURL))
	}
	if c.TimeoutSecs > 0 {
		opts = append(opts, foodsafety.WithTimeout(time.Duration(c.TimeoutSecs)*time.Second))
	}
	if c.RateLimit > 0 {
		opts = append(opts, foodsafety.WithRateLimit(c.RateLimit))
	}
	return opts
}
