// Package highlight splits text into segments marking literal, case-insensitive
// keyword matches.
package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Segment is a contiguous run of text that either matches a keyword or not.
type Segment struct {
	Content string `json:"content"`
	Match   bool   `json:"match"`
}

// Matcher is a compiled keyword set. The zero value and a nil *Matcher match nothing.
type Matcher struct {
	re       *regexp.Regexp
	keywords []string
}

// Compile builds a matcher for keywords. Keywords are matched literally; blank
// entries and duplicates are ignored. Invalid UTF-8 in a keyword is replaced
// with U+FFFD, which matches invalid bytes in the scanned text.
func Compile(keywords []string) *Matcher {
	seen := make(map[string]bool, len(keywords))
	var kept []string
	for _, kw := range keywords {
		kw = strings.ToValidUTF8(kw, string(utf8.RuneError))
		if kw == "" || seen[strings.ToLower(kw)] {
			continue
		}
		seen[strings.ToLower(kw)] = true
		kept = append(kept, kw)
	}
	if len(kept) == 0 {
		return &Matcher{}
	}

	// Longest first keeps the alternation readable; Longest() below is what
	// actually guarantees the longest keyword wins at a given position.
	sort.SliceStable(kept, func(i, j int) bool { return len(kept[i]) > len(kept[j]) })
	quoted := make([]string, len(kept))
	for i, kw := range kept {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	re, err := regexp.Compile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		// Keyword sets too large for one program are scanned directly.
		return &Matcher{keywords: kept}
	}
	re.Longest()
	return &Matcher{re: re, keywords: kept}
}

// Keywords returns the effective keyword set, longest first.
func (m *Matcher) Keywords() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}

// Empty reports whether the matcher has no keywords.
func (m *Matcher) Empty() bool { return m == nil || len(m.keywords) == 0 }

// Matches reports whether text contains any keyword.
func (m *Matcher) Matches(text string) bool {
	if m.Empty() {
		return false
	}
	if m.re != nil {
		return m.re.MatchString(text)
	}
	return len(m.scan(text, 1)) > 0
}

// find returns the byte ranges of up to n matches (n < 0 means all).
func (m *Matcher) find(text string, n int) [][]int {
	if m.re != nil {
		return m.re.FindAllStringIndex(text, n)
	}
	return m.scan(text, n)
}

// scan is the matching loop without a compiled pattern: at each rune position
// the longest case-insensitive keyword match wins, and scanning resumes after it.
func (m *Matcher) scan(text string, n int) [][]int {
	var out [][]int
	for pos := 0; pos < len(text) && (n < 0 || len(out) < n); {
		best := -1
		for _, kw := range m.keywords {
			if end := foldPrefix(text[pos:], kw); end > best {
				best = end
			}
		}
		if best > 0 {
			out = append(out, []int{pos, pos + best})
			pos += best
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return out
}

// foldPrefix returns the byte length of the prefix of text that equals kw under
// simple case folding, or -1.
func foldPrefix(text, kw string) int {
	i := 0
	for _, kr := range kw {
		if i >= len(text) {
			return -1
		}
		tr, size := utf8.DecodeRuneInString(text[i:])
		if tr != kr && !strings.EqualFold(string(tr), string(kr)) {
			return -1
		}
		i += size
	}
	return i
}

// Segments splits text into matching and non-matching runs, left to right.
// Concatenating the contents always reproduces text. Without keywords the
// whole text is returned as a single non-matching segment; empty text with
// keywords yields no segments.
func (m *Matcher) Segments(text string) []Segment {
	if m.Empty() {
		return []Segment{{Content: text}}
	}
	if text == "" {
		return nil
	}

	var segments []Segment
	pos := 0
	for _, loc := range m.find(text, -1) {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}
		if start > pos {
			segments = append(segments, Segment{Content: text[pos:start]})
		}
		segments = append(segments, Segment{Content: text[start:end], Match: true})
		pos = end
	}
	if pos < len(text) {
		segments = append(segments, Segment{Content: text[pos:]})
	}
	return segments
}

// Highlight is Compile(keywords).Segments(text).
func Highlight(text string, keywords []string) []Segment {
	return Compile(keywords).Segments(text)
}

// Join concatenates the contents of segments.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Count returns the number of matching segments.
func Count(segments []Segment) int {
	n := 0
	for _, s := range segments {
		if s.Match {
			n++
		}
	}
	return n
}
