// pkg/transform/date.go
package transform

import (
	"time"

	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

// TransformDate parses the free-text date column against the configured
// format list and bounds. Unparseable or out-of-bounds values resolve
// to null — never clamped — and count as nulled in the audit report.
func TransformDate(raw *model.RawMenu, rules Rules) (*time.Time, *model.AuditEvent) {
	if raw.Date == nil {
		return nil, nil
	}

	t := normalize.ParseDateMulti(raw.Date, rules.DateFormats, rules.DateMin, rules.DateMax)
	if t == nil {
		return nil, &model.AuditEvent{
			Field:    FieldDate,
			Kind:     model.AuditNulled,
			RawValue: *raw.Date,
		}
	}
	return t, nil
}
