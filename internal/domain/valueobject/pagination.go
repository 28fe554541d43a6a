// Package valueobject contains domain value objects for the bookkeeping ledger.
package valueobject

import (
	"strconv"
	"strings"
	"time"
)

// MaxPaginationLimit is the upper bound and the fallback for every listing limit.
const MaxPaginationLimit int64 = 100

// Pagination is a bounded limit/offset pair. Build it with ResolvePagination.
type Pagination struct {
	Limit  int64
	Offset int64
}

// DefaultPagination returns the pagination used when the client sends nothing.
func DefaultPagination() Pagination {
	return Pagination{Limit: MaxPaginationLimit, Offset: 0}
}

// ListFilter is the resolved filter for expense and income listings.
// A nil date means no bound on that side.
type ListFilter struct {
	Pagination
	StartDate *time.Time
	EndDate   *time.Time
}

// ResolvePagination clamps raw query values into a safe Pagination.
// Unparseable or out-of-range input never errors, it falls back to the default.
func ResolvePagination(rawLimit, rawOffset *string) Pagination {
	p := DefaultPagination()

	if limit, ok := parseInt(rawLimit); ok && limit > 0 && limit <= MaxPaginationLimit {
		p.Limit = limit
	}
	if offset, ok := parseInt(rawOffset); ok && offset >= 0 {
		p.Offset = offset
	}

	return p
}

// ResolveListFilter resolves pagination and the optional listing date range.
// Malformed dates are dropped, not rejected.
func ResolveListFilter(rawLimit, rawOffset, rawStartDate, rawEndDate *string) ListFilter {
	return ListFilter{
		Pagination: ResolvePagination(rawLimit, rawOffset),
		StartDate:  ParseLenientDate(rawStartDate),
		EndDate:    ParseLenientDate(rawEndDate),
	}
}

// ResolveBool parses an optional boolean filter; anything unparseable is absent.
func ResolveBool(raw *string) *bool {
	if raw == nil {
		return nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &value
}

// IsEmptyRange reports whether both bounds are set and the start is after the end.
func (f ListFilter) IsEmptyRange() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate)
}

func parseInt(raw *string) (int64, bool) {
	if raw == nil {
		return 0, false
	}
	value, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
