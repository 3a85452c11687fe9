package coder

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// separators are the punctuation runes that split words, in addition to
// Unicode whitespace. The hyphen is deliberately absent so compounds like
// "co-operative" survive as one token.
const separators = ",;/&()–—.:!?\"'*<>[]@“”‘’"

// isSeparator reports whether r ends the current word.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// Normalize lowercases text and splits it into words. Order and duplicates
// are preserved and empty tokens are dropped, so Normalize of an empty string
// is an empty slice.
func Normalize(text string) []string {
	if text == "" {
		return []string{}
	}
	// cases.Caser is stateful, build one per call
	lower := cases.Lower(language.Und).String(norm.NFC.String(text))
	return strings.FieldsFunc(norm.NFC.String(lower), isSeparator)
}
