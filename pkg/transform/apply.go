// pkg/transform/apply.go
package transform

import "github.com/menulab/menu-ingress/pkg/model"

// TransformRecord applies every column transformer to one raw record
// and returns the cleaned record plus the audit events the transformers
// produced. The input is never mutated; field order is irrelevant
// because each transformer reads only original raw columns.
func TransformRecord(raw model.RawMenu, rules Rules) (model.CleanMenu, []model.AuditEvent) {
	var events []model.AuditEvent
	collect := func(ev *model.AuditEvent) {
		if ev != nil {
			events = append(events, *ev)
		}
	}

	name, ev := ConsolidateName(&raw, rules)
	collect(ev)

	date, ev := TransformDate(&raw, rules)
	collect(ev)

	place, ev := TransformPlace(&raw, rules)
	collect(ev)

	event, ev := TransformEvent(&raw, rules)
	collect(ev)

	venue, ev := TransformVenue(&raw, rules)
	collect(ev)

	occasion, ev := TransformOccasion(&raw, rules)
	collect(ev)

	currency, ev := TransformCurrency(&raw, rules)
	collect(ev)

	code, ev := TransformCurrencyCode(&raw, rules)
	collect(ev)

	callNumber, isWOTM := TransformCallNumber(&raw, rules)

	clean := model.CleanMenu{
		ID:           raw.ID,
		Name:         name,
		Date:         date,
		Place:        place,
		Event:        event,
		Venue:        venue,
		Occasion:     occasion,
		Currency:     currency,
		CurrencyCode: code,
		CallNumber:   callNumber,
		IsWOTM:       isWOTM,
		PageCount:    raw.PageCount,
		DishCount:    raw.DishCount,
		Status:       raw.Status,
		Notes:        raw.Notes,
	}

	return clean, events
}
