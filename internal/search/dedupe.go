package search

import "github.com/opendatakr/foodsearch/internal/model"

// DedupeCompanies keeps the first record per company name. Several
// upstreams return one row per license or product, so a plain
// concatenation repeats the same company.
func DedupeCompanies(records []model.CompanyRecord) []model.CompanyRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.CompanyRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r)
	}
	return out
}

// DedupeRepresentatives keeps the first change record per representative
// name. The change ledger lists one row per amendment, so a long-serving
// representative appears many times.
func DedupeRepresentatives(records []model.RepresentativeChangeRecord) []model.RepresentativeChangeRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.RepresentativeChangeRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Representative]; ok {
			continue
		}
		seen[r.Representative] = struct{}{}
		out = append(out, r)
	}
	return out
}
