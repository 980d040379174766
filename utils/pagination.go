package utils

import "strconv"

// Pagination describes one window of an ordered collection. Pages are
// 1-based; a page past the end is valid and simply yields no rows.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Paginate normalizes a requested page against a total row count.
func Paginate(page, pageSize int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }

// ParsePage reads a 1-based page number from its query string form,
// defaulting to 1 on absence or garbage.
func ParsePage(raw string) int {
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	return 1
}

// LastPage returns the number of the final page holding any rows, at
// least 1. Used to resolve the "jump to newest comment" page=-1 link.
func LastPage(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int((total-1)/int64(pageSize)) + 1
}
