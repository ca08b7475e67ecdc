package topic

import (
	"strings"
	"unicode"
)

// ID derives the URL-safe identifier of a topic from its display name: the name
// is lowercased and every run of whitespace or hyphens becomes one underscore.
// Whitespace is any Unicode space, including NBSP and the byte order mark.
func ID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inRun := false
	for _, r := range strings.ToLower(name) {
		if isSeparator(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '\ufeff' || unicode.IsSpace(r)
}
