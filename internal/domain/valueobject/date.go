package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted and emitted date format.
const DateLayout = "2006-01-02"

// ParseStrictDate parses a write-payload date. Anything other than a real
// calendar date in YYYY-MM-DD form is an error.
func ParseStrictDate(raw string) (time.Time, error) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	return date, nil
}

// ParseLenientDate parses a listing filter date. Absent or malformed input
// yields nil, meaning no filter.
func ParseLenientDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	date, err := time.Parse(DateLayout, *raw)
	if err != nil {
		return nil
	}
	return &date
}

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
