package model

// PagedResult is a page of records plus the total the backing source
// reports for the whole filtered result set. Items is never nil.
type PagedResult[T any] struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Items      []T `json:"items"`
}

// NewPagedResult builds a PagedResult with a non-nil Items slice.
func NewPagedResult[T any](total, page, perPage int, items []T) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{TotalCount: total, Page: page, PerPage: perPage, Items: items}
}
