package projar

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minPatternLen is the shortest word, in characters, that gets an
// accent-insensitive pattern. Shorter words use a plain substring test.
const minPatternLen = 2

var accentClasses = map[rune]string{
	'a': "[aáàãâä]",
	'e': "[eéèêë]",
	'i': "[iíìîï]",
	'o': "[oóòõôö]",
	'u': "[uúùûü]",
	'c': "[cç]",
}

// AccentPattern builds a regular expression that matches word regardless
// of the accents on its vowels and on "c". Accented input letters fold to
// their base letter first, so "São" and "Sao" produce the same pattern.
// Every other character is matched literally. The pattern carries no case
// flag; callers match it case-insensitively.
func AccentPattern(word string) string {
	var b strings.Builder
	for _, r := range word {
		if class, ok := accentClasses[unicode.ToLower(baseLetter(r))]; ok {
			b.WriteString(class)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}

// baseLetter strips combining marks from r: 'ã' becomes 'a', 'Ç' becomes 'C'.
func baseLetter(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, string(r))
	if err != nil || s == "" {
		return r
	}
	base, _ := utf8.DecodeRuneInString(s)
	return base
}

// wordPredicate is the per-word test applied to a free-text field.
func wordPredicate(field Field, word string) Predicate {
	if utf8.RuneCountInString(word) < minPatternLen {
		return Contains{Field: field, Text: word, Fold: true}
	}
	return Matches{Field: field, Pattern: AccentPattern(word), Word: word}
}
