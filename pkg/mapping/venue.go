// pkg/mapping/venue.go
package mapping

import "github.com/menulab/menu-ingress/pkg/model"

// DefaultVenueTable maps raw venue abbreviations and typos to the seven
// canonical categories. Closed-world: anything absent here resolves to
// null and is surfaced as an unmapped-value audit event so the table
// can be extended.
func DefaultVenueTable() *Table {
	return MustTable([]Entry{
		{Raw: "COM", Standard: string(model.VenueCommercial)},
		{Raw: "COMM", Standard: string(model.VenueCommercial)},
		{Raw: "COMMERCIAL", Standard: string(model.VenueCommercial)},
		{Raw: "COMMERICAL", Standard: string(model.VenueCommercial)},
		{Raw: "RESTAURANT", Standard: string(model.VenueCommercial)},
		{Raw: "HOTEL", Standard: string(model.VenueCommercial)},

		{Raw: "SOC", Standard: string(model.VenueSocial)},
		{Raw: "SOCIAL", Standard: string(model.VenueSocial)},
		{Raw: "SOCIETY", Standard: string(model.VenueSocial)},
		{Raw: "CLUB", Standard: string(model.VenueSocial)},

		{Raw: "GOV", Standard: string(model.VenueGovernment)},
		{Raw: "GOVT", Standard: string(model.VenueGovernment)},
		{Raw: "GOVERNMENT", Standard: string(model.VenueGovernment)},
		{Raw: "GOVERMENT", Standard: string(model.VenueGovernment)},
		{Raw: "POLITICAL", Standard: string(model.VenueGovernment)},

		{Raw: "MIL", Standard: string(model.VenueMilitary)},
		{Raw: "MILIT", Standard: string(model.VenueMilitary)},
		{Raw: "MILITARY", Standard: string(model.VenueMilitary)},
		{Raw: "NAVAL", Standard: string(model.VenueMilitary)},

		{Raw: "EDU", Standard: string(model.VenueEducational)},
		{Raw: "EDUC", Standard: string(model.VenueEducational)},
		{Raw: "EDUCATION", Standard: string(model.VenueEducational)},
		{Raw: "EDUCATIONAL", Standard: string(model.VenueEducational)},
		{Raw: "SCHOOL", Standard: string(model.VenueEducational)},

		{Raw: "PROF", Standard: string(model.VenueProfessional)},
		{Raw: "PROFESSIONAL", Standard: string(model.VenueProfessional)},

		{Raw: "FOR", Standard: string(model.VenueForeign)},
		{Raw: "FOREIGN", Standard: string(model.VenueForeign)},

		// Explicit map-to-null entries.
		{Raw: "NULL", ToNull: true},
		{Raw: "OTHER", ToNull: true},
		{Raw: "UNKNOWN", ToNull: true},
	})
}
