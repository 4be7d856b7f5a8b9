// pkg/normalize/normalize.go
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pre-compiled expressions shared by the primitives.
var (
	noiseCharsRe    = regexp.MustCompile(`[\[\](){}"?]+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	possessiveRe    = regexp.MustCompile(`([A-Za-z])'S\b`)
	trailingPunctRe = regexp.MustCompile(`[\s.,;:!\-\[\]()]+$`)
	ordinalNthRe    = regexp.MustCompile(`(?i)(\d)nth\b`)
)

// StripBracketedNoise removes bracket, quote and question-mark clusters,
// collapses repeated whitespace and trims. An empty result becomes nil.
func StripBracketedNoise(s *string) *string {
	if s == nil {
		return nil
	}
	out := noiseCharsRe.ReplaceAllString(*s, " ")
	out = strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
	if out == "" {
		return nil
	}
	return &out
}

// UppercaseFold case-folds to upper, nil-propagating. Casers are
// stateful, so one is built per call rather than shared.
func UppercaseFold(s *string) *string {
	if s == nil {
		return nil
	}
	out := cases.Upper(language.Und).String(*s)
	return &out
}

// Lowercase case-folds to lower, nil-propagating.
func Lowercase(s *string) *string {
	if s == nil {
		return nil
	}
	out := cases.Lower(language.Und).String(*s)
	return &out
}

// TitleCaseFix title-cases every word, then re-lowercases the letter
// after a possessive apostrophe so "MOTHER'S" comes out "Mother's"
// rather than "Mother'S". Digits are word-internal: "4th" stays "4th",
// which keeps ordinals stable when the result is cleaned again.
func TitleCaseFix(s *string) *string {
	if s == nil {
		return nil
	}

	var b strings.Builder
	b.Grow(len(*s))
	inWord := false
	for _, r := range *s {
		switch {
		case unicode.IsLetter(r):
			if inWord {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			inWord = true
		case unicode.IsDigit(r):
			b.WriteRune(r)
			inWord = true
		default:
			b.WriteRune(r)
			inWord = false
		}
	}

	out := possessiveRe.ReplaceAllString(b.String(), "${1}'s")
	return &out
}

// PlaceholderToNull returns nil when s case-insensitively contains any of
// the supplied placeholder patterns, otherwise s unchanged.
func PlaceholderToNull(s *string, patterns []string) *string {
	if s == nil {
		return nil
	}
	lower := strings.ToLower(*s)
	for _, p := range patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return nil
		}
	}
	return s
}

// StripQuotes removes surrounding single or double quotes and trims.
// An empty result becomes nil.
func StripQuotes(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(*s)
	out = strings.Trim(out, `"'`)
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return &out
}

// TrimTrailingPunct strips trailing punctuation, bracket and whitespace
// runs. An empty result becomes nil.
func TrimTrailingPunct(s *string) *string {
	if s == nil {
		return nil
	}
	out := trailingPunctRe.ReplaceAllString(*s, "")
	if out == "" {
		return nil
	}
	return &out
}

// CollapseWhitespace folds whitespace runs into single spaces and trims.
// An empty result becomes nil.
func CollapseWhitespace(s *string) *string {
	if s == nil {
		return nil
	}
	out := strings.TrimSpace(whitespaceRe.ReplaceAllString(*s, " "))
	if out == "" {
		return nil
	}
	return &out
}

// FixOrdinalNth rewrites the "25NTH" OCR artifact to "25th",
// nil-propagating.
func FixOrdinalNth(s *string) *string {
	if s == nil {
		return nil
	}
	out := ordinalNthRe.ReplaceAllString(*s, "${1}th")
	return &out
}

// Str is a convenience for building *string values in tables and tests.
func Str(s string) *string {
	return &s
}
