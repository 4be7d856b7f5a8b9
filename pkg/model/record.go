// pkg/model/record.go
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Venue is one of the seven canonical venue categories.
// The empty string stands for "no venue" (unmapped or absent).
type Venue string

const (
	VenueCommercial   Venue = "COMMERCIAL"
	VenueSocial       Venue = "SOCIAL"
	VenueGovernment   Venue = "GOVERNMENT"
	VenueMilitary     Venue = "MILITARY"
	VenueEducational  Venue = "EDUCATIONAL"
	VenueProfessional Venue = "PROFESSIONAL"
	VenueForeign      Venue = "FOREIGN"
)

// Venues lists every canonical venue category.
var Venues = []Venue{
	VenueCommercial,
	VenueSocial,
	VenueGovernment,
	VenueMilitary,
	VenueEducational,
	VenueProfessional,
	VenueForeign,
}

// IsVenue reports whether s is a member of the canonical venue set.
func IsVenue(s string) bool {
	for _, v := range Venues {
		if string(v) == s {
			return true
		}
	}
	return false
}

// RawMenu is a single menu record as it arrives from the source store.
// All text columns are nullable; nothing here is ever mutated by the
// pipeline.
type RawMenu struct {
	ID             int64
	Name           *string
	Sponsor        *string
	Location       *string
	Date           *string
	Place          *string
	Event          *string
	Venue          *string
	Occasion       *string
	Currency       *string
	CurrencySymbol *string
	CallNumber     *string
	PhysicalDesc   *string
	PageCount      *int64
	DishCount      *int64
	Status         *string
	Notes          *string
}

// CleanMenu is the normalized record emitted by the pipeline. ID,
// PageCount, DishCount, Status and Notes carry over unchanged; the
// name/sponsor/location triple is consolidated into Name.
type CleanMenu struct {
	ID           int64
	Name         *string
	Date         *time.Time
	Place        *string
	Event        *string
	Venue        Venue
	Occasion     *string
	Currency     string
	CurrencyCode string
	CallNumber   *string
	IsWOTM       bool
	PageCount    *int64
	DishCount    *int64
	Status       *string
	Notes        *string
}

// RequiredColumns are the source columns the pipeline cannot run without.
// Their absence from every input row is a structural defect.
var RequiredColumns = []string{
	"id",
	"name",
	"sponsor",
	"location",
	"date",
	"place",
	"event",
	"venue",
	"occasion",
	"currency",
	"currency_symbol",
	"call_number",
}

// RawMenuFromRow builds a RawMenu from a loosely typed source row.
// Driver value types vary between stores (string, []byte, int64,
// float64), so each column goes through a tolerant conversion.
func RawMenuFromRow(row map[string]any) (RawMenu, error) {
	id, err := rowInt(row["id"])
	if err != nil {
		return RawMenu{}, fmt.Errorf("invalid id %v: %w", row["id"], err)
	}

	return RawMenu{
		ID:             id,
		Name:           rowString(row["name"]),
		Sponsor:        rowString(row["sponsor"]),
		Location:       rowString(row["location"]),
		Date:           rowString(row["date"]),
		Place:          rowString(row["place"]),
		Event:          rowString(row["event"]),
		Venue:          rowString(row["venue"]),
		Occasion:       rowString(row["occasion"]),
		Currency:       rowString(row["currency"]),
		CurrencySymbol: rowString(row["currency_symbol"]),
		CallNumber:     rowString(row["call_number"]),
		PhysicalDesc:   rowString(row["physical_description"]),
		PageCount:      rowIntPtr(row["page_count"]),
		DishCount:      rowIntPtr(row["dish_count"]),
		Status:         rowString(row["status"]),
		Notes:          rowString(row["notes"]),
	}, nil
}

// rowString converts a driver value to a nullable string. Empty and
// whitespace-only values collapse to nil.
func rowString(v any) *string {
	if v == nil {
		return nil
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case []byte:
		s = string(val)
	default:
		s = fmt.Sprintf("%v", val)
	}

	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// rowInt converts a driver value to int64.
func rowInt(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case float64:
		return int64(val), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(val)), 10, 64)
	case nil:
		return 0, fmt.Errorf("nil value")
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

// rowIntPtr is rowInt for nullable integer columns; unparseable values
// collapse to nil rather than failing the row.
func rowIntPtr(v any) *int64 {
	if v == nil {
		return nil
	}
	n, err := rowInt(v)
	if err != nil {
		return nil
	}
	return &n
}
