// Package search implements the tiered fallback engine: each operation
// walks its provider tiers in order, filters and deduplicates what they
// return, and lands on the built-in catalog when every live tier comes up
// empty or broken.
package search

import (
	"strings"

	"github.com/opendatakr/foodsearch/internal/model"
)

// FilterCompanies applies the keyword, region, and business type
// predicates. Dimensions compose as AND; the comma-separated region list
// is OR across its tokens, each matched as a substring of the address or
// region field. An empty argument skips that dimension.
func FilterCompanies(records []model.CompanyRecord, keyword, region, businessType string) []model.CompanyRecord {
	out := records

	if keyword != "" {
		kw := strings.ToLower(keyword)
		kept := make([]model.CompanyRecord, 0, len(out))
		for _, r := range out {
			if strings.Contains(strings.ToLower(r.Name), kw) {
				kept = append(kept, r)
			}
		}
		out = kept
	}

	if terms := splitRegions(region); len(terms) > 0 {
		kept := make([]model.CompanyRecord, 0, len(out))
		for _, r := range out {
			if matchesAnyRegion(r, terms) {
				kept = append(kept, r)
			}
		}
		out = kept
	}

	if businessType != "" {
		bt := strings.ToLower(businessType)
		kept := make([]model.CompanyRecord, 0, len(out))
		for _, r := range out {
			if strings.Contains(strings.ToLower(r.BusinessType), bt) {
				kept = append(kept, r)
			}
		}
		out = kept
	}

	return out
}

// FilterProducts keeps products whose name or category contains the
// keyword, case-insensitively. An empty keyword keeps everything.
func FilterProducts(records []model.ProductRecord, keyword string) []model.ProductRecord {
	if keyword == "" {
		return records
	}
	kw := strings.ToLower(keyword)
	kept := make([]model.ProductRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), kw) || strings.Contains(strings.ToLower(r.Category), kw) {
			kept = append(kept, r)
		}
	}
	return kept
}

func splitRegions(region string) []string {
	if region == "" {
		return nil
	}
	var terms []string
	for _, part := range strings.Split(region, ",") {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func matchesAnyRegion(r model.CompanyRecord, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(r.Address, t) || strings.Contains(r.Region, t) {
			return true
		}
	}
	return false
}
