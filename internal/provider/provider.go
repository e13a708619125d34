// Package provider defines the adapter contract for upstream food data
// sources and the adapters for each provider.
package provider

import (
	"context"

	"github.com/opendatakr/foodsearch/internal/model"
)

// Default fetch windows for providers that cannot delegate a search and
// instead pull a slice of their dataset for local filtering.
const (
	DefaultCatalogWindow = 500
	DefaultHistoryWindow = 100
)

// ProductQuery addresses the product datasets: by manufacturer, by product
// name keyword, or both.
type ProductQuery struct {
	CompanyName string
	Keyword     string
	Page        int
	PerPage     int
}

// CompanyResult is one tier's raw output for a company search, before
// shared filtering and deduplication.
type CompanyResult struct {
	Records []model.CompanyRecord
	// Total is the provider-reported count. It is query-scoped only when
	// the provider applied the search itself; catalog providers report
	// dataset-wide numbers that mean nothing after local filtering.
	Total int
	// Windowed marks Records as covering only the requested page. Catalog
	// output spans the whole fetched dataset and is paginated locally.
	Windowed bool
}

// ProductResult is one tier's raw output for a product search.
type ProductResult struct {
	Records  []model.ProductRecord
	Total    int
	Windowed bool
}

// LicenseChangeResult is one tier's raw output for a license change lookup.
type LicenseChangeResult struct {
	Records []model.LicenseChangeRecord
	Total   int
}

// CompanySearcher is one tier of the company search chain.
type CompanySearcher interface {
	// Name returns the provider identifier used in tier logs.
	Name() string
	SearchCompanies(ctx context.Context, q model.CompanyQuery) (*CompanyResult, error)
}

// ProductSearcher is one tier of the product search chains.
type ProductSearcher interface {
	Name() string
	SearchProducts(ctx context.Context, q ProductQuery) (*ProductResult, error)
}

// RepHistorySource is one tier of the representative history chain.
// Records come back in provider order; the caller deduplicates and sorts.
type RepHistorySource interface {
	Name() string
	RepresentativeHistory(ctx context.Context, companyName, licenseNo string) ([]model.RepresentativeChangeRecord, error)
}

// LicenseChangeSource is one tier of the license change chain.
type LicenseChangeSource interface {
	Name() string
	LicenseChanges(ctx context.Context, companyName, licenseNo string) (*LicenseChangeResult, error)
}
