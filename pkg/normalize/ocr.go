// pkg/normalize/ocr.go
package normalize

import "regexp"

// OCRRule is a single ordered regex substitution. Rules run on
// lowercased text; replacements are lowercase.
type OCRRule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// DefaultOCRRules returns the standard correction sequence. Order is
// load-bearing: character-level confusable repair runs first so that
// the word-level collapses see repaired text (e.g. "anniver0ry" must
// become "anniverory" before the anniversary collapse can match it).
// TestOCRRuleOrder pins this sequence.
func DefaultOCRRules() []OCRRule {
	return []OCRRule{
		{
			// The zero must not be part of a number: "0ther" is a
			// confusable, the zero in "50th" is not.
			Name:    "confusable-zero-before-letter",
			Pattern: regexp.MustCompile(`(^|[^0-9])0([a-z])`),
			Replace: "${1}o${2}",
		},
		{
			Name:    "confusable-zero-after-letter",
			Pattern: regexp.MustCompile(`([a-z])0([^0-9]|$)`),
			Replace: "${1}o${2}",
		},
		{
			Name:    "annual-typo",
			Pattern: regexp.MustCompile(`\bam+n+ual\b`),
			Replace: "annual",
		},
		{
			Name:    "annual-doubled",
			Pattern: regexp.MustCompile(`\bann?ual+\b`),
			Replace: "annual",
		},
		{
			Name:    "anniversary-variants",
			Pattern: regexp.MustCompile(`\ban+iver[a-z]*y\b`),
			Replace: "anniversary",
		},
		{
			Name:    "anniv-abbreviation",
			Pattern: regexp.MustCompile(`\ban+iv\b\.?`),
			Replace: "anniv",
		},
	}
}

// OCRCorrect applies the rules in order, nil-propagating. Each rule
// replaces every match before the next rule runs.
func OCRCorrect(s *string, rules []OCRRule) *string {
	if s == nil {
		return nil
	}
	out := *s
	for _, rule := range rules {
		out = rule.Pattern.ReplaceAllString(out, rule.Replace)
	}
	return &out
}
