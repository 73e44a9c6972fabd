package match

import (
	"strings"
	"unicode"
)

// Words splits a JSON member name or Go identifier into lower-case words.
// Words end at '_', '-', '.' and spaces, at a lower-to-upper case change
// ("homeAddress"), and before the last letter of an upper-case run that
// is followed by a lower-case letter ("HTTPServer" -> http, server).
// Digits stay attached to the word before them.
func Words(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isWordBreak(r) {
			flush()
			continue
		}

		if i > 0 && len(word) > 0 && startsWord(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

// Fold reduces a name to the key used to compare names loosely: case and
// separators are ignored, so "public_key", "publicKey" and "PublicKey"
// all fold to "publickey".
func Fold(s string) string {
	return strings.Join(Words(s), "")
}

func isWordBreak(r rune) bool {
	switch r {
	case '_', '-', '.', ' ':
		return true
	default:
		return false
	}
}

// startsWord reports whether runes[i] opens a new word. i > 0.
func startsWord(runes []rune, i int) bool {
	cur, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(cur) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !isWordBreak(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
