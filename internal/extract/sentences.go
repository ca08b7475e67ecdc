package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations never end a sentence. Compared lowercased, without the final dot.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "sen": true, "rep": true,
	"gov": true, "gen": true, "lt": true, "col": true, "sgt": true,
	"inc": true, "ltd": true, "co": true, "corp": true, "no": true,
	"vs": true, "etc": true, "e.g": true, "i.e": true, "u.s": true,
	"a.m": true, "p.m": true, "jan": true, "feb": true, "aug": true,
	"sept": true, "oct": true, "nov": true, "dec": true,
}

// SplitSentences breaks a paragraph into sentences. A sentence ends at '.', '!'
// or '?' (plus any closing quotes or brackets) followed by whitespace and an
// upper-case letter, digit or opening quote. Known abbreviations and single
// letter initials do not end a sentence.
func SplitSentences(paragraph string) []string {
	text := normalizeSpace(paragraph)
	if text == "" {
		return nil
	}

	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Swallow repeated terminators and closing punctuation.
		end := i
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if next != '.' && next != '!' && next != '?' && !isCloser(next) {
				break
			}
			end += n
		}

		if end >= len(text) || text[end] != ' ' {
			i = end
			continue
		}
		following, _ := utf8.DecodeRuneInString(text[end+1:])
		if !startsSentence(following) {
			i = end
			continue
		}
		if r == '.' && isAbbreviation(text[start:i-size]) {
			i = end
			continue
		}

		out = append(out, strings.TrimSpace(text[start:end]))
		start = end + 1
		i = start
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

func startsSentence(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '“', '‘', '«':
		return true
	}
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// isAbbreviation reports whether the last word of before is an abbreviation or
// a single-letter initial.
func isAbbreviation(before string) bool {
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return false
	}
	word := strings.TrimLeft(fields[len(fields)-1], "(['\"“‘")
	if word == "" {
		return false
	}
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsUpper(r)
	}
	return abbreviations[strings.ToLower(word)]
}
