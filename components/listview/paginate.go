package listview

// DefaultPageSize is used when a list does not configure one.
const DefaultPageSize = 10

// Page is one slice of a filtered and sorted result set.
type Page[T any] struct {
	Visible    []T `json:"visible"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// TotalPages returns ceil(count/pageSize), never less than one.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices records for the requested page. Pages outside the result
// set produce an empty Visible slice.
func Paginate[T any](records []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	start = clamp(start, 0, len(records))
	end = clamp(end, start, len(records))
	return Page[T]{
		Visible:    records[start:end:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(records), pageSize),
		Total:      len(records),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
