package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/on-the-issues/internal/walker"
)

// Article is the readable text of one scraped article.
type Article struct {
	Path       string
	Title      string
	Paragraphs []string
}

// blockSelector lists the elements whose text is treated as a paragraph.
const blockSelector = "p, li, blockquote, dd, td"

// noiseSelector lists page chrome removed before text is collected.
const noiseSelector = "script, style, noscript, template, nav, header, footer, aside, form, button, svg"

// ParseArticle reads an article file and returns its paragraphs.
func ParseArticle(f walker.FileInfo) (*Article, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
	}

	var a *Article
	switch f.Format {
	case walker.FormatHTML:
		a, err = ParseHTML(bytes.NewReader(data))
	case walker.FormatMarkdown:
		a, err = ParseMarkdown(data)
	case walker.FormatText:
		a = ParseText(string(data))
	default:
		return nil, fmt.Errorf("%s: unsupported format %q", f.RelPath, f.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.RelPath, err)
	}
	a.Path = f.RelPath
	return a, nil
}

// ParseHTML collects paragraph text from an HTML document. Nested blocks are
// read once, through their innermost element.
func ParseHTML(r io.Reader) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	a := &Article{Title: normalizeSpace(doc.Find("title").First().Text())}
	if a.Title == "" {
		a.Title = normalizeSpace(doc.Find("h1").First().Text())
	}

	doc.Find(noiseSelector).Remove()

	// Prefer the article element when the page has one.
	scope := doc.Find("article").First()
	if scope.Length() == 0 {
		scope = doc.Find("body")
	}

	scope.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := normalizeSpace(s.Text()); text != "" {
			a.Paragraphs = append(a.Paragraphs, text)
		}
	})

	// Pages without block markup fall back to their raw text lines.
	if len(a.Paragraphs) == 0 {
		a.Paragraphs = ParseText(scope.Text()).Paragraphs
	}
	return a, nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ParseMarkdown renders markdown to HTML and collects its paragraphs.
func ParseMarkdown(data []byte) (*Article, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(data, &buf); err != nil {
		return nil, err
	}
	return ParseHTML(&buf)
}

// ParseText splits plain text into paragraphs at blank lines. Lines inside a
// paragraph are joined with a space.
func ParseText(text string) *Article {
	a := &Article{}
	var current []string
	flush := func() {
		if len(current) > 0 {
			a.Paragraphs = append(a.Paragraphs, normalizeSpace(strings.Join(current, " ")))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return a
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
