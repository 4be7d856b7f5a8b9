// pkg/transform/callnumber.go
package transform

import (
	"regexp"
	"strings"
	"sync"

	"github.com/menulab/menu-ingress/pkg/model"
)

type markerPatterns struct {
	trailing *regexp.Regexp
	only     *regexp.Regexp
}

// Compiled marker expressions, cached per marker token so the hot path
// never recompiles.
var markerCache sync.Map // marker string -> *markerPatterns

func patternsFor(marker string) *markerPatterns {
	if cached, ok := markerCache.Load(marker); ok {
		return cached.(*markerPatterns)
	}
	quoted := regexp.QuoteMeta(marker)
	p := &markerPatterns{
		trailing: regexp.MustCompile(`(?i)[\s_\-]*` + quoted + `\s*$`),
		only:     regexp.MustCompile(`(?i)^[\s_\-]*` + quoted + `\s*$`),
	}
	actual, _ := markerCache.LoadOrStore(marker, p)
	return actual.(*markerPatterns)
}

// TransformCallNumber splits the raw call number into its normalized
// form and the derived collection flag. IsWOTM is true iff the raw
// value carries the marker token (case-insensitive); the normalized
// value is the raw with any trailing marker suffix stripped. A value
// that is nothing but the marker (optionally prefixed by separators)
// normalizes to null.
func TransformCallNumber(raw *model.RawMenu, rules Rules) (*string, bool) {
	if raw.CallNumber == nil {
		return nil, false
	}

	p := patternsFor(rules.WOTMMarker)

	value := strings.TrimSpace(*raw.CallNumber)
	isWOTM := strings.Contains(strings.ToLower(value), strings.ToLower(rules.WOTMMarker))

	if p.only.MatchString(value) {
		return nil, isWOTM
	}

	normalized := strings.TrimSpace(p.trailing.ReplaceAllString(value, ""))
	if normalized == "" {
		return nil, isWOTM
	}
	return &normalized, isWOTM
}
