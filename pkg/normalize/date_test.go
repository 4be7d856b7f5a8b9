package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateMulti(t *testing.T) {
	t.Parallel()

	runDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   *string
		want *time.Time
	}{
		{"nil passes through", nil, nil},
		{"iso date", Str("1900-05-04"), timePtr(1900, time.May, 4)},
		{"us date", Str("05/04/1900"), timePtr(1900, time.May, 4)},
		{"future date rejected", Str("2928-01-01"), nil},
		{"before lower bound rejected", Str("1839-12-31"), nil},
		{"lower bound inclusive", Str("1840-01-01"), timePtr(1840, time.January, 1)},
		{"upper bound inclusive", Str("2025-06-01"), timePtr(2025, time.June, 1)},
		{"free text rejected", Str("circa 1900"), nil},
		{"unlisted format rejected", Str("04.05.1900"), nil},
		{"whitespace only", Str("   "), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseDateMulti(tt.in, DefaultDateFormats, DateLowerBound, runDate)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Ambiguous day/month inputs resolve by format order only — the parser
// never guesses beyond the configured list.
func TestParseDateMultiFormatOrder(t *testing.T) {
	t.Parallel()

	runDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	got := ParseDateMulti(Str("01/02/1900"), DefaultDateFormats, DateLowerBound, runDate)
	require.NotNil(t, got)
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
