// pkg/transform/rules.go
package transform

import (
	"errors"
	"time"

	"github.com/menulab/menu-ingress/pkg/mapping"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

// Output field names used in audit reports.
const (
	FieldName         = "name"
	FieldDate         = "date"
	FieldPlace        = "place"
	FieldEvent        = "event"
	FieldVenue        = "venue"
	FieldOccasion     = "occasion"
	FieldCurrency     = "currency"
	FieldCurrencyCode = "currency_code"
	FieldCallNumber   = "call_number"
)

// NameSource identifies one column of the redundant name triple.
type NameSource string

const (
	SourceLocation NameSource = "location"
	SourceName     NameSource = "name"
	SourceSponsor  NameSource = "sponsor"
)

// CurrencyUnknown is the sentinel that replaces a null currency.
const CurrencyUnknown = "Unknown"

// CurrencyCodeFallback is the enforced closed-set fallback for symbols
// that map to nothing and are not themselves valid codes.
const CurrencyCodeFallback = "XXX"

// Rules carries every data-driven piece of the transformers: mapping
// tables, correction rules, patterns, formats and bounds. All of it is
// supplied as data so the tables can grow without touching transform
// logic. A Rules value is read-only after construction.
type Rules struct {
	VenueTable    *mapping.Table
	CurrencyTable *mapping.Table
	StateSuffixes []mapping.StateSuffix

	OCRRules            []normalize.OCRRule
	PlaceholderPatterns []string
	EventTypos          map[string]string

	DateFormats []string
	DateMin     time.Time
	DateMax     time.Time

	// NameOrder makes consolidation priority explicit instead of
	// depending on column-drop timing.
	NameOrder []NameSource

	// WOTMMarker is the collection marker token in call numbers.
	WOTMMarker string
}

// DefaultRules builds the standard rule set. runDate is the upper date
// bound: a menu cannot postdate the pipeline run.
func DefaultRules(runDate time.Time) Rules {
	return Rules{
		VenueTable:    mapping.DefaultVenueTable(),
		CurrencyTable: mapping.DefaultCurrencyTable(),
		StateSuffixes: mapping.DefaultStateSuffixes(),

		OCRRules:            normalize.DefaultOCRRules(),
		PlaceholderPatterns: []string{"not given", "n/a", "none given"},
		EventTypos: map[string]string{
			"CHRISTMAN":  "CHRISTMAS",
			"BREAKFEAST": "BREAKFAST",
			"DINER":      "DINNER",
		},

		DateFormats: normalize.DefaultDateFormats,
		DateMin:     normalize.DateLowerBound,
		DateMax:     runDate,

		NameOrder: []NameSource{SourceLocation, SourceName, SourceSponsor},

		WOTMMarker: "wotm",
	}
}

// Validate checks the structural pieces the transformers cannot run
// without. A failure here is fatal before any record is processed.
func (r Rules) Validate() error {
	if r.VenueTable == nil || r.VenueTable.Len() == 0 {
		return errors.New("venue mapping table is empty")
	}
	if r.CurrencyTable == nil || r.CurrencyTable.Len() == 0 {
		return errors.New("currency mapping table is empty")
	}
	if len(r.DateFormats) == 0 {
		return errors.New("no date formats configured")
	}
	if r.DateMax.Before(r.DateMin) {
		return errors.New("date upper bound precedes lower bound")
	}
	if len(r.NameOrder) == 0 {
		return errors.New("name consolidation order is empty")
	}
	if r.WOTMMarker == "" {
		return errors.New("collection marker token is empty")
	}
	return nil
}
