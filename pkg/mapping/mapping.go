// pkg/mapping/mapping.go
package mapping

import (
	"fmt"
	"regexp"
	"strings"
)

// Entry is a single (raw value, standard value) pair. A Standard of the
// literal "NULL", or ToNull set, makes the entry an explicit map-to-null.
type Entry struct {
	Raw      string
	Standard string
	ToNull   bool
}

// Table is an ordered, read-only lookup table. Keys are matched exactly
// after trimming and upper-casing — never fuzzily. Construct once,
// share freely: lookups are safe for concurrent use.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from ordered entries. Duplicate raw keys are
// a construction error, not a silent overwrite.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		key := normalizeKey(e.Raw)
		if key == "" {
			return nil, fmt.Errorf("empty raw key in mapping entry %+v", e)
		}
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("duplicate raw key %q in mapping table", e.Raw)
		}
		if e.Standard == "NULL" {
			e.Standard = ""
			e.ToNull = true
		}
		t.index[key] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// MustTable is NewTable for static built-in tables.
func MustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup resolves a raw value. found=false means the table has no entry
// at all; toNull=true means the table explicitly maps the value to null.
func (t *Table) Lookup(raw string) (standard string, toNull bool, found bool) {
	i, ok := t.index[normalizeKey(raw)]
	if !ok {
		return "", false, false
	}
	e := t.entries[i]
	return e.Standard, e.ToNull, true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

var punctRe = regexp.MustCompile(`[.,;:!'"?\[\]()]+`)

func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// StripKeyPunct removes punctuation from a lookup key. Venue lookups
// apply it before the table; currency lookups do not, since symbols
// like "$" are themselves punctuation-class runes.
func StripKeyPunct(s string) string {
	return strings.TrimSpace(punctRe.ReplaceAllString(s, ""))
}
