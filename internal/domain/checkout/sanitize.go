package checkout

import (
	"strings"
	"unicode"
)

const maxDescriptionLen = 95

// sanitizeDescription strips markup tags, collapses whitespace and truncates
// the result to the provider's 95-character description limit.
func sanitizeDescription(s string) string {
	return truncate(collapseWhitespace(stripTags(s)), maxDescriptionLen)
}

// stripTags removes <...> segments. An unclosed tag is dropped to its end,
// matching the strip-everything behavior the description field needs.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ")
}
