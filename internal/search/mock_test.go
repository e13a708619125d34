package search

import (
	"context"
	"time"

	"github.com/opendatakr/foodsearch/internal/model"
	"github.com/opendatakr/foodsearch/internal/provider"
)

// stubCompanyTier implements provider.CompanySearcher with a canned
// answer, recording how it was called.
type stubCompanyTier struct {
	name string
	res  *provider.CompanyResult
	err  error

	calls int
	last  model.CompanyQuery
}

func (s *stubCompanyTier) Name() string { return s.name }

func (s *stubCompanyTier) SearchCompanies(_ context.Context, q model.CompanyQuery) (*provider.CompanyResult, error) {
	s.calls++
	s.last = q
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

// stubProductTier implements provider.ProductSearcher. A non-zero delay
// waits against the context, so a short deadline turns into ctx.Err().
type stubProductTier struct {
	name  string
	res   *provider.ProductResult
	err   error
	delay time.Duration

	calls int
	last  provider.ProductQuery
}

func (s *stubProductTier) Name() string { return s.name }

func (s *stubProductTier) SearchProducts(ctx context.Context, q provider.ProductQuery) (*provider.ProductResult, error) {
	s.calls++
	s.last = q
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}

type stubHistoryTier struct {
	name    string
	records []model.RepresentativeChangeRecord
	err     error

	calls int
}

func (s *stubHistoryTier) Name() string { return s.name }

func (s *stubHistoryTier) RepresentativeHistory(_ context.Context, companyName, licenseNo string) ([]model.RepresentativeChangeRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubChangeTier struct {
	name string
	res  *provider.LicenseChangeResult
	err  error

	calls int
}

func (s *stubChangeTier) Name() string { return s.name }

func (s *stubChangeTier) LicenseChanges(_ context.Context, companyName, licenseNo string) (*provider.LicenseChangeResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.res, nil
}
