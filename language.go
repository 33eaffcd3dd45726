package wordseek

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "English"

// ParseLanguage turns language words as typed by a user into the heading id
// Wiktionary uses for the language section. Every dash-separated part is
// capitalized and words are joined with underscores, so "middle english"
// becomes "Middle_English" and "serbo-croatian" becomes "Serbo-Croatian".
// proto reports whether the language is a reconstructed proto-language.
func ParseLanguage(args []string) (id string, proto bool) {
	words := make([]string, 0, len(args))
	for _, arg := range args {
		for _, w := range strings.Fields(arg) {
			words = append(words, capitalizeParts(w))
		}
	}
	if len(words) == 0 {
		return DefaultLanguage, false
	}

	id = strings.Join(words, "_")
	return id, strings.HasPrefix(id, "Proto-")
}

func capitalizeParts(word string) string {
	parts := strings.Split(word, "-")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, "-")
}
