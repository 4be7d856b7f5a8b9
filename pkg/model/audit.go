// pkg/model/audit.go
package model

// AuditKind classifies what a transformer did to a value.
type AuditKind string

const (
	// AuditNulled means a content defect resolved to null.
	AuditNulled AuditKind = "nulled"
	// AuditFallback means a defined default replaced the value
	// (e.g. currency "Unknown").
	AuditFallback AuditKind = "fallback"
	// AuditUnmapped means a closed-world lookup had no entry for the
	// raw value.
	AuditUnmapped AuditKind = "unmapped"
)

// AuditEvent records a single transformation outcome worth surfacing.
type AuditEvent struct {
	Field    string
	Kind     AuditKind
	RawValue string
}

// FieldStats aggregates transformation outcomes for one output field.
type FieldStats struct {
	Total          int
	Nulled         int
	Fallback       int
	UnmappedValues map[string]int
}

// AuditReport maps each output field to its aggregated stats.
type AuditReport map[string]*FieldStats

// NewAuditReport returns an empty report.
func NewAuditReport() AuditReport {
	return make(AuditReport)
}

func (r AuditReport) stats(field string) *FieldStats {
	fs, ok := r[field]
	if !ok {
		fs = &FieldStats{UnmappedValues: make(map[string]int)}
		r[field] = fs
	}
	return fs
}

// CountRecord bumps the per-record total for a field.
func (r AuditReport) CountRecord(field string) {
	r.stats(field).Total++
}

// Record folds a single audit event into the report.
func (r AuditReport) Record(ev AuditEvent) {
	fs := r.stats(ev.Field)
	switch ev.Kind {
	case AuditNulled:
		fs.Nulled++
	case AuditFallback:
		fs.Fallback++
	case AuditUnmapped:
		fs.UnmappedValues[ev.RawValue]++
	}
}

// Merge folds another report into this one. Counter addition is
// commutative and associative, so partial reports from parallel shards
// can merge in any order.
func (r AuditReport) Merge(other AuditReport) {
	for field, ofs := range other {
		fs := r.stats(field)
		fs.Total += ofs.Total
		fs.Nulled += ofs.Nulled
		fs.Fallback += ofs.Fallback
		for raw, n := range ofs.UnmappedValues {
			fs.UnmappedValues[raw] += n
		}
	}
}
