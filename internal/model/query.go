package model

// Paging bounds shared by all list operations.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// CompanyQuery carries company search parameters. Keyword matches the
// company name; Region and BusinessType are display names from the
// controlled vocabularies, with "전체" (or empty) meaning no filter.
type CompanyQuery struct {
	Keyword      string
	Region       string
	BusinessType string
	Page         int
	PerPage      int
}

// Normalize clamps paging to valid bounds, NFC-normalizes the keyword,
// and drops the "전체" sentinel from the vocabulary filters.
func (q CompanyQuery) Normalize() CompanyQuery {
	q.Keyword = NormalizeText(q.Keyword)
	if q.Region == FilterAll {
		q.Region = ""
	}
	if q.BusinessType == FilterAll {
		q.BusinessType = ""
	}
	q.Page, q.PerPage = ClampPaging(q.Page, q.PerPage)
	return q
}

// ProductQuery carries product search parameters.
type ProductQuery struct {
	Keyword string
	Page    int
	PerPage int
}

// Normalize clamps paging to valid bounds and NFC-normalizes the keyword.
func (q ProductQuery) Normalize() ProductQuery {
	q.Keyword = NormalizeText(q.Keyword)
	q.Page, q.PerPage = ClampPaging(q.Page, q.PerPage)
	return q
}

// ClampPaging forces page to at least 1 and per-page into [1, MaxPerPage],
// substituting the default page size for non-positive values.
func ClampPaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
