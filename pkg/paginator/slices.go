package paginator

// Page returns the items of the requested page and its metadata. A page past
// the end yields an empty, non-nil slice.
func Page[T any](items []T, q PaginateQuery) ([]T, Paginator) {
	q.Adjust()
	total := int64(len(items))
	start, end := q.window(total)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return page, Paginator{
		Total:       total,
		Count:       end - start,
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}
