// pkg/transform/name.go
package transform

import (
	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

// ConsolidateName collapses the redundant location/name/sponsor triple
// into a single name, taking the first candidate in rules.NameOrder
// that survives placeholder rejection and quote stripping. It reads the
// original raw columns only — consolidation never depends on columns
// having been dropped first.
func ConsolidateName(raw *model.RawMenu, rules Rules) (*string, *model.AuditEvent) {
	hadValue := false

	for _, source := range rules.NameOrder {
		var candidate *string
		switch source {
		case SourceLocation:
			candidate = raw.Location
		case SourceName:
			candidate = raw.Name
		case SourceSponsor:
			candidate = raw.Sponsor
		}

		if candidate == nil {
			continue
		}
		hadValue = true

		candidate = normalize.PlaceholderToNull(candidate, rules.PlaceholderPatterns)
		candidate = normalize.StripQuotes(candidate)
		if candidate != nil {
			return candidate, nil
		}
	}

	// Only a placeholder-filled triple is a content defect; a triple
	// that was null to begin with is just a missing value.
	if hadValue {
		return nil, &model.AuditEvent{Field: FieldName, Kind: model.AuditNulled}
	}
	return nil, nil
}
