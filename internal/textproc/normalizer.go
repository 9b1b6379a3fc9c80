package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// spanishExtra are the accented letters kept by CleanText beyond a-z
const spanishExtra = "áéíóúñü"

// CleanText lowercases the text, drops punctuation, digits and emoji (only
// basic and Spanish accented letters survive), removes stopwords and
// collapses whitespace. This feeds auxiliary reporting, never the scorer.
func CleanText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lowered := strings.ToLower(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case strings.ContainsRune(spanishExtra, r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			// punctuation, digits, emoji: dropped
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopwords[w]; !stop {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}

// Tokenize splits text into words with ASCII punctuation stripped
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !isASCIIPunct(r) {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func isASCIIPunct(r rune) bool {
	return strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
}
