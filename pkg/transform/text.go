// pkg/transform/text.go
package transform

import (
	"strings"

	"github.com/menulab/menu-ingress/pkg/mapping"
	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/normalize"
)

// TransformEvent strips OCR noise, upper-cases and fixes known typos
// ("CHRISTMAN" -> "CHRISTMAS"). A value that is pure noise becomes null.
func TransformEvent(raw *model.RawMenu, rules Rules) (*string, *model.AuditEvent) {
	if raw.Event == nil {
		return nil, nil
	}

	s := normalize.StripBracketedNoise(raw.Event)
	s = normalize.UppercaseFold(s)
	if s == nil {
		return nil, &model.AuditEvent{
			Field:    FieldEvent,
			Kind:     model.AuditNulled,
			RawValue: *raw.Event,
		}
	}

	tokens := strings.Fields(*s)
	for i, tok := range tokens {
		if fix, ok := rules.EventTypos[tok]; ok {
			tokens[i] = fix
		}
	}
	out := strings.Join(tokens, " ")
	return &out, nil
}

// TransformOccasion runs the full OCR-repair pipeline: lowercase, noise
// strip, ordered OCR rules, title-casing with the possessive exception,
// trailing punctuation strip, the NTH-ordinal fix and a final
// whitespace collapse.
func TransformOccasion(raw *model.RawMenu, rules Rules) (*string, *model.AuditEvent) {
	if raw.Occasion == nil {
		return nil, nil
	}

	s := normalize.Lowercase(raw.Occasion)
	s = normalize.StripBracketedNoise(s)
	s = normalize.OCRCorrect(s, rules.OCRRules)
	s = normalize.TitleCaseFix(s)
	s = normalize.TrimTrailingPunct(s)
	s = normalize.FixOrdinalNth(s)
	s = normalize.CollapseWhitespace(s)

	if s == nil {
		return nil, &model.AuditEvent{
			Field:    FieldOccasion,
			Kind:     model.AuditNulled,
			RawValue: *raw.Occasion,
		}
	}
	return s, nil
}

// TransformPlace cleans the place column: noise and question marks go,
// trailing punctuation goes, a trailing state spelling after the last
// comma is rewritten to its two-letter code, and a whole-value
// "unknown" resolves to null.
func TransformPlace(raw *model.RawMenu, rules Rules) (*string, *model.AuditEvent) {
	if raw.Place == nil {
		return nil, nil
	}

	s := normalize.StripBracketedNoise(raw.Place)
	s = normalize.TrimTrailingPunct(s)
	if s == nil {
		return nil, &model.AuditEvent{
			Field:    FieldPlace,
			Kind:     model.AuditNulled,
			RawValue: *raw.Place,
		}
	}

	if strings.EqualFold(*s, "unknown") {
		return nil, &model.AuditEvent{
			Field:    FieldPlace,
			Kind:     model.AuditNulled,
			RawValue: *raw.Place,
		}
	}

	out := rewriteStateSuffix(*s, rules)
	return &out, nil
}

// rewriteStateSuffix replaces an exact trailing state spelling after
// the final comma with its canonical code. The comparison ignores case
// and punctuation ("N.Y" matches "ny") but is otherwise exact — no
// fuzzy matching.
func rewriteStateSuffix(s string, rules Rules) string {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return s
	}

	tail := mapping.StripKeyPunct(strings.TrimSpace(s[idx+1:]))
	for _, suffix := range rules.StateSuffixes {
		if strings.EqualFold(tail, mapping.StripKeyPunct(suffix.Raw)) || tail == suffix.Code {
			return strings.TrimSpace(s[:idx]) + ", " + suffix.Code
		}
	}
	return s
}
