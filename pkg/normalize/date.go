// pkg/normalize/date.go
package normalize

import (
	"strings"
	"time"
)

// DefaultDateFormats are the accepted source date layouts, tried in
// order. Ambiguous inputs are never disambiguated beyond this list.
var DefaultDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
}

// DateLowerBound is the earliest plausible menu date.
var DateLowerBound = time.Date(1840, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseDateMulti tries each layout in order and returns the first parse
// that lands inside [min, max]. Anything else, including an in-format
// but out-of-bounds date, yields nil — values are rejected, never
// clamped.
func ParseDateMulti(s *string, formats []string, min, max time.Time) *time.Time {
	if s == nil {
		return nil
	}

	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil
	}

	for _, format := range formats {
		t, err := time.Parse(format, raw)
		if err != nil {
			continue
		}
		if t.Before(min) || t.After(max) {
			continue
		}
		return &t
	}
	return nil
}
