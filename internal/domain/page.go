package domain

// Page size bounds shared by the trip list and the community feed.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams is a 1-based page request passed from handlers to repos.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams applies defaults to optional query values. A missing or
// non-positive page becomes 1, a missing or non-positive limit becomes
// DefaultPageLimit, and limits above MaxPageLimit are clamped.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of rows to skip.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is the number of pages needed for total rows. Zero rows is zero pages.
func (p PaginationParams) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
