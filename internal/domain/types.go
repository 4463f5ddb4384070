package domain

// ID is used across domain entities.
type ID int64

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// Offset is the SQL OFFSET for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// NormalizePagination clamps page/pageSize to sane values.
func NormalizePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// OrderItem is one row of a drag-reorder request.
type OrderItem struct {
	ID           int64 `json:"id" binding:"required,gt=0"`
	DisplayOrder int   `json:"display_order" binding:"gte=0"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID    int64
	Role      string
	RequestID string
}
