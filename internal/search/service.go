package search

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/opendatakr/foodsearch/internal/model"
	"github.com/opendatakr/foodsearch/internal/provider"
)

// Providers wires the upstream tiers into a Service. Nil entries mean the
// tier is not configured, usually for lack of a credential, and are
// skipped.
type Providers struct {
	// Livestock and HealthFood are specialists tried first when the
	// business type filter selects them exactly.
	Livestock  provider.CompanySearcher
	HealthFood provider.CompanySearcher
	// Companies is the general-purpose company tier. It also backs the
	// current-representative synthesis when the change ledger is empty.
	Companies provider.CompanySearcher

	// ByCompany is the products-by-company chain, in tier order.
	ByCompany []provider.ProductSearcher
	// Keyword holds the branches of the concurrent keyword fan-out.
	Keyword []provider.ProductSearcher

	History provider.RepHistorySource
	Changes provider.LicenseChangeSource

	// Static is the terminal tier. Nil selects the built-in catalog.
	Static *provider.Static
}

// Service is the search engine. Every operation is total: live tiers are
// tried in order, failures are logged and absorbed, and the static
// catalog answers when nothing else does.
type Service struct {
	p Providers
}

// NewService creates the engine over the given provider tiers.
func NewService(p Providers) *Service {
	if p.Static == nil {
		p.Static = provider.NewStatic(provider.DefaultCatalog())
	}
	return &Service{p: p}
}

// SearchCompanies walks the company tiers: the specialist for the exact
// business type first, then the general-purpose tier, then the catalog.
// A live tier only answers when its filtered result is non-empty.
func (s *Service) SearchCompanies(ctx context.Context, q model.CompanyQuery) model.PagedResult[model.CompanyRecord] {
	q = q.Normalize()

	// The business type hint is free text; containment covers both the
	// vocabulary entry and longer forms like 축산물가공업.
	var tiers []provider.CompanySearcher
	switch {
	case strings.Contains(q.BusinessType, model.BusinessTypeLivestock):
		if s.p.Livestock != nil {
			tiers = append(tiers, s.p.Livestock)
		}
	case strings.Contains(q.BusinessType, "건강기능"):
		if s.p.HealthFood != nil {
			tiers = append(tiers, s.p.HealthFood)
		}
	}
	if s.p.Companies != nil {
		tiers = append(tiers, s.p.Companies)
	}

	for _, tier := range tiers {
		res, err := tier.SearchCompanies(ctx, q)
		if err != nil {
			zap.L().Debug("search: company tier failed, trying next",
				zap.String("provider", tier.Name()),
				zap.Error(err),
			)
			continue
		}
		if res.Total == 0 {
			continue
		}
		records := DedupeCompanies(FilterCompanies(res.Records, q.Keyword, q.Region, q.BusinessType))
		if len(records) == 0 {
			zap.L().Debug("search: company tier filtered to empty, trying next",
				zap.String("provider", tier.Name()),
			)
			continue
		}
		if res.Windowed {
			// The upstream already cut this page; after local filtering
			// the page-local count is all that is known.
			return model.NewPagedResult(len(records), q.Page, q.PerPage, records)
		}
		items, total := Paginate(records, q.Page, q.PerPage)
		return model.NewPagedResult(total, q.Page, q.PerPage, items)
	}

	catalog, _ := s.p.Static.SearchCompanies(ctx, q)
	records := DedupeCompanies(FilterCompanies(catalog.Records, q.Keyword, q.Region, q.BusinessType))
	items, total := Paginate(records, q.Page, q.PerPage)
	return model.NewPagedResult(total, q.Page, q.PerPage, items)
}

// SearchProductsByCompany tries the report datasets in tier order and
// falls back to the catalog's per-company product list. The live
// upstreams filter by company name themselves, so their counts are
// query-scoped and trusted.
func (s *Service) SearchProductsByCompany(ctx context.Context, companyName string, page, perPage int) model.PagedResult[model.ProductRecord] {
	name := model.NormalizeText(companyName)
	page, perPage = model.ClampPaging(page, perPage)
	q := provider.ProductQuery{CompanyName: name, Page: page, PerPage: perPage}

	for _, tier := range s.p.ByCompany {
		res, err := tier.SearchProducts(ctx, q)
		if err != nil {
			zap.L().Debug("search: product tier failed, trying next",
				zap.String("provider", tier.Name()),
				zap.String("company", name),
				zap.Error(err),
			)
			continue
		}
		if res.Total == 0 {
			continue
		}
		return model.NewPagedResult(res.Total, page, perPage, res.Records)
	}

	catalog, _ := s.p.Static.SearchProducts(ctx, q)
	items, total := Paginate(catalog.Records, page, perPage)
	return model.NewPagedResult(total, page, perPage, items)
}

// SearchProducts fans out to every keyword branch at once and merges the
// successful answers in branch order, capped at one page. Only an empty
// merge falls back to the catalog pool.
func (s *Service) SearchProducts(ctx context.Context, q model.ProductQuery) model.PagedResult[model.ProductRecord] {
	q = q.Normalize()
	pq := provider.ProductQuery{Keyword: q.Keyword, Page: q.Page, PerPage: q.PerPage}

	results := make([]*provider.ProductResult, len(s.p.Keyword))
	g, gctx := errgroup.WithContext(ctx)
	for i, branch := range s.p.Keyword {
		g.Go(func() error {
			res, err := branch.SearchProducts(gctx, pq)
			if err != nil {
				zap.L().Debug("search: keyword branch failed",
					zap.String("provider", branch.Name()),
					zap.Error(err),
				)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var (
		merged []model.ProductRecord
		total  int
	)
	for _, res := range results {
		if res == nil {
			continue
		}
		merged = append(merged, res.Records...)
		total += res.Total
	}
	if len(merged) > 0 {
		if len(merged) > q.PerPage {
			merged = merged[:q.PerPage]
		}
		return model.NewPagedResult(total, q.Page, q.PerPage, merged)
	}

	pool, _ := s.p.Static.SearchProducts(ctx, pq)
	records := FilterProducts(pool.Records, q.Keyword)
	items, poolTotal := Paginate(records, q.Page, q.PerPage)
	return model.NewPagedResult(poolTotal, q.Page, q.PerPage, items)
}

// RepresentativeHistory reads the change ledger, falls back to a single
// current-representative record from the company tier, then to the
// curated history.
func (s *Service) RepresentativeHistory(ctx context.Context, companyName, licenseNo string) model.RepresentativeHistory {
	name := model.NormalizeText(companyName)

	if s.p.History != nil {
		records, err := s.p.History.RepresentativeHistory(ctx, name, licenseNo)
		if err != nil {
			zap.L().Debug("search: history tier failed, trying next",
				zap.String("provider", s.p.History.Name()),
				zap.String("company", name),
				zap.Error(err),
			)
		} else if items := orderHistory(records); len(items) > 0 {
			return model.RepresentativeHistory{CompanyName: name, TotalCount: len(items), Items: items}
		}
	}

	if rec, ok := s.currentRepresentative(ctx, name); ok {
		return model.RepresentativeHistory{
			CompanyName: name,
			TotalCount:  1,
			Items:       []model.RepresentativeChangeRecord{rec},
		}
	}

	curated, _ := s.p.Static.RepresentativeHistory(ctx, name, licenseNo)
	items := orderHistory(curated)
	return model.RepresentativeHistory{CompanyName: name, TotalCount: len(items), Items: items}
}

// LicenseChangeHistory reads the license change ledger. No curated
// fallback exists; an empty history is the valid answer when the ledger
// is unavailable.
func (s *Service) LicenseChangeHistory(ctx context.Context, companyName, licenseNo string) model.LicenseChangeHistory {
	name := model.NormalizeText(companyName)

	if s.p.Changes != nil {
		res, err := s.p.Changes.LicenseChanges(ctx, name, licenseNo)
		if err != nil {
			zap.L().Debug("search: license change tier failed",
				zap.String("provider", s.p.Changes.Name()),
				zap.String("company", name),
				zap.Error(err),
			)
		} else if res.Total > 0 {
			items := append([]model.LicenseChangeRecord(nil), res.Records...)
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].ChangeDate > items[j].ChangeDate
			})
			return model.LicenseChangeHistory{CompanyName: name, TotalCount: res.Total, Items: items}
		}
	}

	empty, _ := s.p.Static.LicenseChanges(ctx, name, licenseNo)
	return model.LicenseChangeHistory{CompanyName: name, TotalCount: empty.Total, Items: empty.Records}
}

// currentRepresentative synthesizes a one-entry history from the company
// tier's first match.
func (s *Service) currentRepresentative(ctx context.Context, name string) (model.RepresentativeChangeRecord, bool) {
	if s.p.Companies == nil {
		return model.RepresentativeChangeRecord{}, false
	}
	res, err := s.p.Companies.SearchCompanies(ctx, model.CompanyQuery{Keyword: name, Page: 1, PerPage: 1})
	if err != nil {
		zap.L().Debug("search: current representative lookup failed",
			zap.String("provider", s.p.Companies.Name()),
			zap.String("company", name),
			zap.Error(err),
		)
		return model.RepresentativeChangeRecord{}, false
	}
	if len(res.Records) == 0 || res.Records[0].Representative == "" {
		return model.RepresentativeChangeRecord{}, false
	}
	first := res.Records[0]
	return model.RepresentativeChangeRecord{
		Representative: first.Representative,
		ChangeDate:     first.LicenseDate,
		ChangeType:     model.ChangeTypeCurrent,
	}, true
}

// orderHistory deduplicates by representative in arrival order, then
// sorts newest change first. The dedup pass runs before the sort: for a
// repeated representative the earliest-arriving row is the survivor.
func orderHistory(records []model.RepresentativeChangeRecord) []model.RepresentativeChangeRecord {
	items := DedupeRepresentatives(records)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ChangeDate > items[j].ChangeDate
	})
	return items
}
