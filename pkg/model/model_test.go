package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMenuFromRow(t *testing.T) {
	t.Parallel()

	t.Run("driver value shapes", func(t *testing.T) {
		t.Parallel()
		raw, err := RawMenuFromRow(map[string]any{
			"id":         []byte("42"),
			"name":       "Hotel Astor",
			"sponsor":    []byte("Astor Estate"),
			"date":       "1900-05-04",
			"page_count": float64(4),
			"dish_count": "not a number",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(42), raw.ID)
		require.NotNil(t, raw.Name)
		assert.Equal(t, "Hotel Astor", *raw.Name)
		require.NotNil(t, raw.Sponsor)
		assert.Equal(t, "Astor Estate", *raw.Sponsor)
		require.NotNil(t, raw.PageCount)
		assert.Equal(t, int64(4), *raw.PageCount)
		assert.Nil(t, raw.DishCount)
	})

	t.Run("blank strings collapse to nil", func(t *testing.T) {
		t.Parallel()
		raw, err := RawMenuFromRow(map[string]any{
			"id":    int64(1),
			"name":  "   ",
			"place": "",
			"venue": nil,
		})
		require.NoError(t, err)
		assert.Nil(t, raw.Name)
		assert.Nil(t, raw.Place)
		assert.Nil(t, raw.Venue)
	})

	t.Run("unusable id is an error", func(t *testing.T) {
		t.Parallel()
		_, err := RawMenuFromRow(map[string]any{"id": "seventeen"})
		assert.Error(t, err)

		_, err = RawMenuFromRow(map[string]any{"name": "orphan"})
		assert.Error(t, err)
	})
}

func TestIsVenue(t *testing.T) {
	t.Parallel()

	for _, v := range Venues {
		assert.True(t, IsVenue(string(v)))
	}
	assert.False(t, IsVenue("RESTAURANT"))
	assert.False(t, IsVenue(""))
}

func TestAuditReportMerge(t *testing.T) {
	t.Parallel()

	build := func(events ...AuditEvent) AuditReport {
		r := NewAuditReport()
		for _, ev := range events {
			r.CountRecord(ev.Field)
			r.Record(ev)
		}
		return r
	}

	a := build(
		AuditEvent{Field: "venue", Kind: AuditUnmapped, RawValue: "XYZ"},
		AuditEvent{Field: "date", Kind: AuditNulled, RawValue: "garbage"},
	)
	b := build(
		AuditEvent{Field: "venue", Kind: AuditUnmapped, RawValue: "XYZ"},
		AuditEvent{Field: "currency", Kind: AuditFallback},
	)

	left := build()
	left.Merge(a)
	left.Merge(b)

	right := build()
	right.Merge(b)
	right.Merge(a)

	assert.Equal(t, left, right, "merge must be commutative")
	assert.Equal(t, 2, left["venue"].UnmappedValues["XYZ"])
	assert.Equal(t, 2, left["venue"].Total)
	assert.Equal(t, 1, left["date"].Nulled)
	assert.Equal(t, 1, left["currency"].Fallback)
}
