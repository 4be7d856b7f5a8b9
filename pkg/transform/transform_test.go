package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

var testRunDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func testRules() Rules {
	return DefaultRules(testRunDate)
}

func str(s string) *string {
	return normalize.Str(s)
}

func TestConsolidateName(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("location wins with quotes stripped", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Location: str(`"The Dakota"`)}
		name, ev := ConsolidateName(&raw, rules)
		require.NotNil(t, name)
		assert.Equal(t, "The Dakota", *name)
		assert.Nil(t, ev)
	})

	t.Run("priority order location name sponsor", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{
			Location: str("Hotel Astor"),
			Name:     str("Astor"),
			Sponsor:  str("Astor Estate"),
		}
		name, _ := ConsolidateName(&raw, rules)
		require.NotNil(t, name)
		assert.Equal(t, "Hotel Astor", *name)
	})

	t.Run("placeholder location falls through to name", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{
			Location: str("Not Given"),
			Name:     str("Delmonico's"),
		}
		name, ev := ConsolidateName(&raw, rules)
		require.NotNil(t, name)
		assert.Equal(t, "Delmonico's", *name)
		assert.Nil(t, ev)
	})

	t.Run("all placeholders null with audit event", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{
			Location: str("not given"),
			Sponsor:  str("N/A"),
		}
		name, ev := ConsolidateName(&raw, rules)
		assert.Nil(t, name)
		require.NotNil(t, ev)
		assert.Equal(t, FieldName, ev.Field)
		assert.Equal(t, model.AuditNulled, ev.Kind)
	})

	t.Run("all nil is not a defect", func(t *testing.T) {
		t.Parallel()
		name, ev := ConsolidateName(&model.RawMenu{}, rules)
		assert.Nil(t, name)
		assert.Nil(t, ev)
	})
}

func TestTransformDate(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Date: str("1900-05-04")}
		date, ev := TransformDate(&raw, rules)
		require.NotNil(t, date)
		assert.Equal(t, time.Date(1900, time.May, 4, 0, 0, 0, 0, time.UTC), *date)
		assert.Nil(t, ev)
	})

	t.Run("future date nulled not clamped", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Date: str("2928-01-01")}
		date, ev := TransformDate(&raw, rules)
		assert.Nil(t, date)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditNulled, ev.Kind)
		assert.Equal(t, "2928-01-01", ev.RawValue)
	})

	t.Run("nil date no event", func(t *testing.T) {
		t.Parallel()
		date, ev := TransformDate(&model.RawMenu{}, rules)
		assert.Nil(t, date)
		assert.Nil(t, ev)
	})
}

func TestTransformEvent(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("uppercased with typo fix", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Event: str("Christman dinner")}
		event, ev := TransformEvent(&raw, rules)
		require.NotNil(t, event)
		assert.Equal(t, "CHRISTMAS DINNER", *event)
		assert.Nil(t, ev)
	})

	t.Run("pure noise nulled", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Event: str("[?]")}
		event, ev := TransformEvent(&raw, rules)
		assert.Nil(t, event)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditNulled, ev.Kind)
	})
}

func TestTransformVenue(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("abbreviation maps", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Venue: str("COM")}
		venue, ev := TransformVenue(&raw, rules)
		assert.Equal(t, model.VenueCommercial, venue)
		assert.Nil(t, ev)
	})

	t.Run("lowercase with punctuation maps", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Venue: str("com;")}
		venue, _ := TransformVenue(&raw, rules)
		assert.Equal(t, model.VenueCommercial, venue)
	})

	t.Run("unmapped rejects to null and audits", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Venue: str("XYZ")}
		venue, ev := TransformVenue(&raw, rules)
		assert.Empty(t, venue)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditUnmapped, ev.Kind)
		assert.Equal(t, "XYZ", ev.RawValue)
	})

	t.Run("unmapped event carries the raw value, not the lookup key", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Venue: str("xyz?")}
		venue, ev := TransformVenue(&raw, rules)
		assert.Empty(t, venue)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditUnmapped, ev.Kind)
		assert.Equal(t, "xyz?", ev.RawValue)
	})

	t.Run("explicit null entry is silent", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Venue: str("other")}
		venue, ev := TransformVenue(&raw, rules)
		assert.Empty(t, venue)
		assert.Nil(t, ev)
	})
}

func TestTransformOccasion(t *testing.T) {
	t.Parallel()

	rules := testRules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"question marks and abbreviation", "?Anniv?", "Anniv"},
		{"zero confusable", "0ther", "Other"},
		{"anniversary variant", "50TH ANNIVERARY", "50th Anniversary"},
		{"possessive", "NEW YEAR'S DAY", "New Year's Day"},
		{"nth ordinal", "25nth annual banquet", "25th Annual Banquet"},
		{"trailing punctuation", "easter dinner,,", "Easter Dinner"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := model.RawMenu{Occasion: str(tt.in)}
			got, ev := TransformOccasion(&raw, rules)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Nil(t, ev)
		})
	}

	t.Run("pure noise nulled", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Occasion: str("??")}
		got, ev := TransformOccasion(&raw, rules)
		assert.Nil(t, got)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditNulled, ev.Kind)
	})
}

func TestTransformCurrency(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("null becomes Unknown sentinel", func(t *testing.T) {
		t.Parallel()
		currency, ev := TransformCurrency(&model.RawMenu{}, rules)
		assert.Equal(t, CurrencyUnknown, currency)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditFallback, ev.Kind)
	})

	t.Run("non-null passes through", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Currency: str("Dollars")}
		currency, ev := TransformCurrency(&raw, rules)
		assert.Equal(t, "Dollars", currency)
		assert.Nil(t, ev)
	})

	t.Run("Unknown stays Unknown", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Currency: str(CurrencyUnknown)}
		currency, ev := TransformCurrency(&raw, rules)
		assert.Equal(t, CurrencyUnknown, currency)
		assert.Nil(t, ev)
	})
}

func TestTransformCurrencyCode(t *testing.T) {
	t.Parallel()

	rules := testRules()

	t.Run("symbol maps to code", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{CurrencySymbol: str("Fr")}
		code, ev := TransformCurrencyCode(&raw, rules)
		assert.Equal(t, "FRF", code)
		assert.Nil(t, ev)
	})

	t.Run("valid code passes through", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{CurrencySymbol: str("usd")}
		code, ev := TransformCurrencyCode(&raw, rules)
		assert.Equal(t, "USD", code)
		assert.Nil(t, ev)
	})

	t.Run("unmapped non-code falls back to XXX", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{CurrencySymbol: str("zorkmids")}
		code, ev := TransformCurrencyCode(&raw, rules)
		assert.Equal(t, CurrencyCodeFallback, code)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditUnmapped, ev.Kind)
		assert.Equal(t, "zorkmids", ev.RawValue)
	})

	t.Run("nil symbol falls back to XXX", func(t *testing.T) {
		t.Parallel()
		code, ev := TransformCurrencyCode(&model.RawMenu{}, rules)
		assert.Equal(t, CurrencyCodeFallback, code)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditFallback, ev.Kind)
	})
}

func TestTransformCallNumber(t *testing.T) {
	t.Parallel()

	rules := testRules()

	tests := []struct {
		name     string
		in       *string
		wantNorm *string
		wantWOTM bool
	}{
		{"nil", nil, nil, false},
		{"marker suffix stripped", str("1900-2822_wotm"), str("1900-2822"), true},
		{"marker uppercase", str("1900-2822 WOTM"), str("1900-2822"), true},
		{"marker only", str("wotm"), nil, true},
		{"marker only with prefix", str("_wotm"), nil, true},
		{"no marker", str("1900-2822"), str("1900-2822"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := model.RawMenu{CallNumber: tt.in}
			norm, isWOTM := TransformCallNumber(&raw, rules)
			assert.Equal(t, tt.wantNorm, norm)
			assert.Equal(t, tt.wantWOTM, isWOTM)
		})
	}
}

func TestTransformPlace(t *testing.T) {
	t.Parallel()

	rules := testRules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"state abbreviation rewrite", "New York, ny", "New York, NY"},
		{"dotted abbreviation", "New York, N.Y.?", "New York, NY"},
		{"spelled out state", "Boston, mass.", "Boston, MA"},
		{"code already canonical", "Chicago, IL", "Chicago, IL"},
		{"no comma untouched", "San Francisco", "San Francisco"},
		{"unrelated tail untouched", "Paris, France", "Paris, France"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := model.RawMenu{Place: str(tt.in)}
			got, ev := TransformPlace(&raw, rules)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Nil(t, ev)
		})
	}

	t.Run("unknown whole value nulled", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Place: str("Unknown")}
		got, ev := TransformPlace(&raw, rules)
		assert.Nil(t, got)
		require.NotNil(t, ev)
		assert.Equal(t, model.AuditNulled, ev.Kind)
	})

	t.Run("pure noise nulled", func(t *testing.T) {
		t.Parallel()
		raw := model.RawMenu{Place: str("???")}
		got, ev := TransformPlace(&raw, rules)
		assert.Nil(t, got)
		require.NotNil(t, ev)
	})
}

func TestTransformRecordPure(t *testing.T) {
	t.Parallel()

	rules := testRules()

	raw := model.RawMenu{
		ID:             42,
		Location:       str(`"The Dakota"`),
		Date:           str("1900-05-04"),
		Place:          str("New York, ny"),
		Venue:          str("COM"),
		Occasion:       str("?Anniv?"),
		CurrencySymbol: str("Fr"),
		CallNumber:     str("1900-2822_wotm"),
		PageCount:      int64Ptr(4),
	}
	before := raw

	clean, events := TransformRecord(raw, rules)

	// Input is never mutated.
	assert.Equal(t, before, raw)

	assert.Equal(t, int64(42), clean.ID)
	require.NotNil(t, clean.Name)
	assert.Equal(t, "The Dakota", *clean.Name)
	assert.Equal(t, model.VenueCommercial, clean.Venue)
	assert.Equal(t, "FRF", clean.CurrencyCode)
	assert.Equal(t, CurrencyUnknown, clean.Currency)
	assert.True(t, clean.IsWOTM)
	require.NotNil(t, clean.CallNumber)
	assert.Equal(t, "1900-2822", *clean.CallNumber)
	assert.Equal(t, int64Ptr(4), clean.PageCount)

	// The only defect above is the null currency.
	require.Len(t, events, 1)
	assert.Equal(t, FieldCurrency, events[0].Field)
}

func int64Ptr(n int64) *int64 {
	return &n
}
