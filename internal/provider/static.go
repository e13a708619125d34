package provider

import (
	"context"

	"github.com/opendatakr/foodsearch/internal/model"
)

// Static serves the built-in catalog. It sits at the end of every search
// chain so the engine always has data to answer with, even when no API
// credentials are configured or every upstream is down.
type Static struct {
	catalog Catalog
}

// NewStatic returns a provider backed by the given catalog.
func NewStatic(catalog Catalog) *Static {
	return &Static{catalog: catalog}
}

func (s *Static) Name() string { return "static" }

// SearchCompanies returns the full company catalog. The caller filters
// and paginates; results are copies so callers may reorder them.
func (s *Static) SearchCompanies(ctx context.Context, q model.CompanyQuery) (*CompanyResult, error) {
	records := append([]model.CompanyRecord(nil), s.catalog.Companies...)
	return &CompanyResult{Records: records, Total: len(records), Windowed: false}, nil
}

// SearchProducts looks up products by exact company name, or serves the
// keyword pool when no company is given.
func (s *Static) SearchProducts(ctx context.Context, q ProductQuery) (*ProductResult, error) {
	var records []model.ProductRecord
	if q.CompanyName != "" {
		records = append(records, s.catalog.Products[q.CompanyName]...)
	} else {
		records = append(records, s.catalog.KeywordPool...)
	}
	if records == nil {
		records = []model.ProductRecord{}
	}
	return &ProductResult{Records: records, Total: len(records), Windowed: false}, nil
}

// RepresentativeHistory returns the curated history for known companies,
// newest change first.
func (s *Static) RepresentativeHistory(ctx context.Context, companyName, licenseNo string) ([]model.RepresentativeChangeRecord, error) {
	return append([]model.RepresentativeChangeRecord(nil), s.catalog.RepHistories[companyName]...), nil
}

// LicenseChanges reports no changes. The catalog tracks no license
// amendments, and an empty history is a valid answer.
func (s *Static) LicenseChanges(ctx context.Context, companyName, licenseNo string) (*LicenseChangeResult, error) {
	return &LicenseChangeResult{Records: []model.LicenseChangeRecord{}, Total: 0}, nil
}
