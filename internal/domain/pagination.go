package domain

// Fixed page sizes per table.
const (
	FamilyPageSize  = 7
	DefaultPageSize = 10
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// NewPaginationParams returns params for page with the given fixed size. Pages below 1 become 1.
func NewPaginationParams(page, pageSize int) PaginationParams {
	if page < 1 {
		page = 1
	}
	return PaginationParams{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceil(total / PageSize), 0 when either is 0.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
