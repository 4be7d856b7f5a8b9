// pkg/mapping/states.go
package mapping

// StateSuffix is one trailing-abbreviation rewrite for place values:
// a value ending in ", "+Raw (case-insensitive, after trailing
// punctuation is stripped) gets that suffix replaced by ", "+Code.
type StateSuffix struct {
	Raw  string
	Code string
}

// DefaultStateSuffixes covers the spellings observed in the dataset.
// Matching ignores punctuation, so "n.y." and "ny" need only one entry.
func DefaultStateSuffixes() []StateSuffix {
	return []StateSuffix{
		{Raw: "new york", Code: "NY"},
		{Raw: "ny", Code: "NY"},
		{Raw: "california", Code: "CA"},
		{Raw: "calif", Code: "CA"},
		{Raw: "cal", Code: "CA"},
		{Raw: "connecticut", Code: "CT"},
		{Raw: "conn", Code: "CT"},
		{Raw: "massachusetts", Code: "MA"},
		{Raw: "mass", Code: "MA"},
		{Raw: "pennsylvania", Code: "PA"},
		{Raw: "penn", Code: "PA"},
		{Raw: "pa", Code: "PA"},
		{Raw: "new jersey", Code: "NJ"},
		{Raw: "nj", Code: "NJ"},
		{Raw: "illinois", Code: "IL"},
		{Raw: "ill", Code: "IL"},
		{Raw: "washington", Code: "WA"},
		{Raw: "wash", Code: "WA"},
		{Raw: "florida", Code: "FL"},
		{Raw: "fla", Code: "FL"},
		{Raw: "ohio", Code: "OH"},
		{Raw: "missouri", Code: "MO"},
		{Raw: "mo", Code: "MO"},
		{Raw: "louisiana", Code: "LA"},
		{Raw: "la", Code: "LA"},
	}
}
