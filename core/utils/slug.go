package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prettify turns a machine slug into display text.
//
//	glacio_crownbreaker -> Glacio Crownbreaker
//	glacioCrownbreaker  -> Glacio Crownbreaker
//	rover-havoc2        -> Rover Havoc 2
//
// Only the first rune of each word is changed; the rest keeps its case.
func Prettify(slug string) string {
	if slug == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(slug) + 4)

	var prev rune
	inSep := false
	for _, r := range slug {
		if r == '_' || r == '-' {
			if !inSep {
				b.WriteByte(' ')
				inSep = true
			}
			prev = ' '
			continue
		}
		inSep = false
		if unicode.IsLower(prev) && (unicode.IsUpper(r) || unicode.IsDigit(r)) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
