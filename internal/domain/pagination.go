package domain

// BoardPageSize is how many bulletin posts fit on one page of a town's board.
const BoardPageSize = 20

// PaginationParams selects one page of a newest-first listing.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of rows that sit on earlier pages.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Pages is how many pages total rows span at this page size.
func (p PaginationParams) Pages(total int) int {
	if p.PageSize < 1 || total < 1 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
