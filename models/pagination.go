package models

// Pagination captures the page/limit part of a list request.
// Page numbering starts at 1; neither value is clamped to an upper bound.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize fills zero or negative values with page 1 and the given
// per-entity default limit.
func (p *Pagination) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// Offset returns the row offset for the requested page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListMeta is the pagination envelope returned next to every list payload.
// Total is the full filtered count ignoring pagination.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewListMeta computes the meta block for a list response.
// TotalPages is ceil(total/limit).
func NewListMeta(total int64, p Pagination) ListMeta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return ListMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// ListResponse is the generic {data, meta} list envelope.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}
