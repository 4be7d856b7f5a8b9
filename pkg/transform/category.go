// pkg/transform/category.go
package transform

import (
	"github.com/menulab/menu-ingress/pkg/mapping"
	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

// TransformVenue resolves the raw venue through the closed-world venue
// table. The lookup key is the trimmed, upper-cased, punctuation-
// stripped raw value. Unmapped values reject to null and surface as
// unmapped audit events so the table can be extended — never a fuzzy
// match, never a pass-through.
func TransformVenue(raw *model.RawMenu, rules Rules) (model.Venue, *model.AuditEvent) {
	if raw.Venue == nil {
		return "", nil
	}

	s := normalize.StripBracketedNoise(raw.Venue)
	s = normalize.UppercaseFold(s)
	if s == nil {
		return "", &model.AuditEvent{
			Field:    FieldVenue,
			Kind:     model.AuditNulled,
			RawValue: *raw.Venue,
		}
	}

	key := mapping.StripKeyPunct(*s)
	standard, toNull, found := rules.VenueTable.Lookup(key)
	if !found {
		return "", &model.AuditEvent{
			Field:    FieldVenue,
			Kind:     model.AuditUnmapped,
			RawValue: *raw.Venue,
		}
	}
	if toNull {
		return "", nil
	}
	return model.Venue(standard), nil
}

// TransformCurrency passes the currency text through unchanged, except
// that null becomes the "Unknown" sentinel. Never null after transform.
func TransformCurrency(raw *model.RawMenu, _ Rules) (string, *model.AuditEvent) {
	if raw.Currency == nil {
		return CurrencyUnknown, &model.AuditEvent{
			Field: FieldCurrency,
			Kind:  model.AuditFallback,
		}
	}
	return *raw.Currency, nil
}

// TransformCurrencyCode resolves the raw symbol through the symbol
// table and then enforces the closed 23-code set: a symbol that maps to
// nothing and is not itself a valid code falls back to XXX, with an
// unmapped audit event. The table stays a dumb exact-match lookup; the
// closed set is enforced here.
func TransformCurrencyCode(raw *model.RawMenu, rules Rules) (string, *model.AuditEvent) {
	if raw.CurrencySymbol == nil {
		return CurrencyCodeFallback, &model.AuditEvent{
			Field: FieldCurrencyCode,
			Kind:  model.AuditFallback,
		}
	}

	s := normalize.StripBracketedNoise(raw.CurrencySymbol)
	if s == nil {
		return CurrencyCodeFallback, &model.AuditEvent{
			Field:    FieldCurrencyCode,
			Kind:     model.AuditFallback,
			RawValue: *raw.CurrencySymbol,
		}
	}

	if standard, toNull, found := rules.CurrencyTable.Lookup(*s); found && !toNull {
		return standard, nil
	}

	if code := normalize.UppercaseFold(s); code != nil && mapping.IsCurrencyCode(*code) {
		return *code, nil
	}

	return CurrencyCodeFallback, &model.AuditEvent{
		Field:    FieldCurrencyCode,
		Kind:     model.AuditUnmapped,
		RawValue: *raw.CurrencySymbol,
	}
}
