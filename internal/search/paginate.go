package search

// Paginate slices one 1-based page out of records and reports the full
// collection size. A page past the end yields an empty page with the
// total intact.
func Paginate[T any](records []T, page, perPage int) ([]T, int) {
	total := len(records)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= total {
		return []T{}, total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return records[start:end], total
}
