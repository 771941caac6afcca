package helpers

import (
	"net/http"
	"strconv"

	"thecommons/internal/domain"
)

// MaxPageSize caps page_size so a single board request stays small.
const MaxPageSize = 50

// ParsePagination reads page and page_size. Missing, non-numeric or
// non-positive values fall back to page 1 of domain.BoardPageSize posts.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     min(positiveInt(q.Get("page"), 1), maxPage),
		PageSize: min(positiveInt(q.Get("page_size"), domain.BoardPageSize), MaxPageSize),
	}
}

// maxPage keeps Offset well inside an int for any page size.
const maxPage = 1 << 20

func positiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta describes the page returned alongside a list of posts.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPaginationMeta(params domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: params.Pages(total),
	}
}
