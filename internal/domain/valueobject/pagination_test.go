package valueobject

import (
	"strconv"
	"testing"
	"time"
)

func strPtr(s string) *string {
	return &s
}

func TestResolvePagination(t *testing.T) {
	tests := []struct {
		name           string
		limit          *string
		offset         *string
		expectedLimit  int64
		expectedOffset int64
	}{
		{name: "absent values", expectedLimit: MaxPaginationLimit, expectedOffset: 0},
		{name: "valid values", limit: strPtr("20"), offset: strPtr("5"), expectedLimit: 20, expectedOffset: 5},
		{name: "negative limit", limit: strPtr("-5"), expectedLimit: MaxPaginationLimit},
		{name: "zero limit", limit: strPtr("0"), expectedLimit: MaxPaginationLimit},
		{name: "limit above max", limit: strPtr(strconv.FormatInt(MaxPaginationLimit+10, 10)), expectedLimit: MaxPaginationLimit},
		{name: "limit at max", limit: strPtr("100"), expectedLimit: 100},
		{name: "non-numeric limit", limit: strPtr("ten"), expectedLimit: MaxPaginationLimit},
		{name: "negative offset", offset: strPtr("-3"), expectedLimit: MaxPaginationLimit, expectedOffset: 0},
		{name: "non-numeric offset", offset: strPtr("abc"), expectedLimit: MaxPaginationLimit, expectedOffset: 0},
		{name: "large offset", offset: strPtr("100000"), expectedLimit: MaxPaginationLimit, expectedOffset: 100000},
		{name: "whitespace tolerated", limit: strPtr(" 15 "), offset: strPtr(" 10"), expectedLimit: 15, expectedOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePagination(tt.limit, tt.offset)
			if got.Limit != tt.expectedLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.expectedLimit)
			}
			if got.Offset != tt.expectedOffset {
				t.Errorf("Offset = %d, want %d", got.Offset, tt.expectedOffset)
			}
		})
	}
}

func TestResolveListFilter(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		f := ResolveListFilter(strPtr("10"), strPtr("0"), strPtr("2025-03-01"), strPtr("2025-04-01"))

		if f.StartDate == nil || !f.StartDate.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("StartDate = %v", f.StartDate)
		}
		if f.EndDate == nil || !f.EndDate.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("EndDate = %v", f.EndDate)
		}
		if f.Limit != 10 || f.Offset != 0 {
			t.Errorf("pagination = %+v", f.Pagination)
		}
	})

	t.Run("malformed dates are dropped", func(t *testing.T) {
		f := ResolveListFilter(strPtr("25"), nil, strPtr("2025/03/01"), strPtr("2025-04-32"))

		if f.StartDate != nil {
			t.Errorf("StartDate = %v, want nil", f.StartDate)
		}
		if f.EndDate != nil {
			t.Errorf("EndDate = %v, want nil", f.EndDate)
		}
		if f.Limit != 25 {
			t.Errorf("Limit = %d, want 25", f.Limit)
		}
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		f := ResolveListFilter(nil, nil, strPtr("2025-05-01"), strPtr("2025-04-01"))
		if !f.IsEmptyRange() {
			t.Error("expected inverted range to be empty")
		}
	})

	t.Run("single day range is not empty", func(t *testing.T) {
		f := ResolveListFilter(nil, nil, strPtr("2025-04-01"), strPtr("2025-04-01"))
		if f.IsEmptyRange() {
			t.Error("expected single-day range to be non-empty")
		}
	})
}

func TestResolveBool(t *testing.T) {
	tests := []struct {
		name     string
		raw      *string
		expected *bool
	}{
		{name: "absent", raw: nil, expected: nil},
		{name: "true", raw: strPtr("true"), expected: boolPtr(true)},
		{name: "false", raw: strPtr("false"), expected: boolPtr(false)},
		{name: "invalid", raw: strPtr("invalid"), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBool(tt.raw)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("ResolveBool() = %v, want %v", got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("ResolveBool() = %v, want %v", *got, *tt.expected)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
