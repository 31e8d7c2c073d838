package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Listing page-size policy. Every paginated surface (quotation listings,
// review listings, admin queues) shares these bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is the page window requested through the ?page= and
// ?limit= query parameters.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads the page window from the request. Pages start at
// 1; a missing, non-numeric or out-of-bounds limit falls back to
// DefaultPageSize, and no caller can request more than MaxPageSize records.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}
