// Package extract derives topic responses from scraped article files: every
// sentence that mentions one of a topic's keywords, and none of its excluded
// keywords, becomes a quote.
package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/highlight"
	"github.com/ziadkadry99/on-the-issues/internal/progress"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/walker"
)

// Options controls quote selection.
type Options struct {
	Side      topic.Side
	MinLength int // minimum sentence length in characters
	MaxQuotes int // per topic, 0 = unlimited
}

// Quote is one extracted sentence and the article it came from.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// TopicResult holds the quotes found for one topic.
type TopicResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quotes   []Quote `json:"quotes"`
	Excluded int     `json:"excluded"` // sentences dropped for an excluded keyword
	Skipped  bool    `json:"skipped"`  // topic declares no keywords on the side
}

// Result summarizes an extraction run.
type Result struct {
	Files  int           `json:"files"`
	Failed int           `json:"failed"`
	Cached int           `json:"cached"` // articles read from the cache instead of parsed
	Topics []TopicResult `json:"topics"`
}

// Total returns the number of quotes across all topics.
func (r *Result) Total() int {
	n := 0
	for _, t := range r.Topics {
		n += len(t.Quotes)
	}
	return n
}

// Extractor scans articles for quotes.
type Extractor struct {
	opts     Options
	reporter progress.Reporter
	logger   *zap.Logger
	cache    *Cache
}

// New creates an Extractor. A nil reporter or logger discards output.
func New(opts Options, reporter progress.Reporter, logger *zap.Logger) *Extractor {
	if opts.Side == "" {
		opts.Side = topic.SideSource
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{opts: opts, reporter: reporter, logger: logger}
}

// WithCache makes the extractor reuse parsed articles from c.
func (e *Extractor) WithCache(c *Cache) *Extractor {
	e.cache = c
	return e
}

type topicState struct {
	result   *TopicResult
	keywords *highlight.Matcher
	excluded *highlight.Matcher
	seen     map[string]bool
}

// Run scans files in order and collects quotes for every topic in ds.
// Unreadable articles are logged and counted, not fatal.
func (e *Extractor) Run(ctx context.Context, files []walker.FileInfo, ds *topic.Dataset) (*Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("no dataset")
	}

	res := &Result{Topics: make([]TopicResult, len(ds.Topics))}
	states := make([]topicState, len(ds.Topics))
	for i, rec := range ds.Topics {
		op := rec.Opinions(e.opts.Side)
		res.Topics[i] = TopicResult{ID: rec.ID(), Name: rec.Name, Quotes: []Quote{}}
		states[i] = topicState{
			result:   &res.Topics[i],
			keywords: highlight.Compile(op.Keywords),
			excluded: highlight.Compile(op.ExcludedKeywords),
			seen:     make(map[string]bool),
		}
		if states[i].keywords.Empty() {
			res.Topics[i].Skipped = true
			e.logger.Debug("topic has no keywords, skipping", zap.String("topic", rec.Name), zap.String("side", string(e.opts.Side)))
		}
	}

	e.reporter.Start(len(files))
	defer e.reporter.Finish()

	for n, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.reporter.Update(n+1, f.RelPath)

		article, cached, err := e.load(ctx, f)
		if err != nil {
			res.Failed++
			e.logger.Warn("skipping article", zap.String("path", f.RelPath), zap.Error(err))
			continue
		}
		res.Files++
		if cached {
			res.Cached++
		}

		found := 0
		for _, para := range article.Paragraphs {
			for _, sentence := range SplitSentences(para) {
				if utf8.RuneCountInString(sentence) < e.opts.MinLength {
					continue
				}
				for i := range states {
					if e.collect(&states[i], sentence, article.Path) {
						found++
					}
				}
			}
		}
		e.logger.Debug("scanned article", zap.String("path", f.RelPath), zap.Int("quotes", found))
	}

	return res, nil
}

// load returns the parsed article for f, from the cache when it has one.
// Cache failures are logged and fall back to parsing.
func (e *Extractor) load(ctx context.Context, f walker.FileInfo) (*Article, bool, error) {
	if e.cache != nil && f.ContentHash != "" {
		a, ok, err := e.cache.Get(ctx, f.ContentHash)
		if err != nil {
			e.logger.Warn("article cache lookup failed", zap.String("path", f.RelPath), zap.Error(err))
		} else if ok {
			a.Path = f.RelPath
			return a, true, nil
		}
	}

	a, err := ParseArticle(f)
	if err != nil {
		return nil, false, err
	}
	if e.cache != nil && f.ContentHash != "" {
		if err := e.cache.Put(ctx, f.ContentHash, a); err != nil {
			e.logger.Warn("article cache store failed", zap.String("path", f.RelPath), zap.Error(err))
		}
	}
	return a, false, nil
}

// collect adds sentence to the topic if it qualifies. Returns true when added.
func (e *Extractor) collect(st *topicState, sentence, source string) bool {
	if st.result.Skipped || !st.keywords.Matches(sentence) {
		return false
	}
	if st.excluded.Matches(sentence) {
		st.result.Excluded++
		return false
	}
	if e.opts.MaxQuotes > 0 && len(st.result.Quotes) >= e.opts.MaxQuotes {
		return false
	}
	key := strings.ToLower(sentence)
	if st.seen[key] {
		return false
	}
	st.seen[key] = true
	st.result.Quotes = append(st.result.Quotes, Quote{Text: sentence, Source: source})
	return true
}

// Apply writes the extracted quotes into the responses of side. With merge,
// quotes not already present are appended to existing responses; otherwise
// responses of every non-skipped topic are replaced. ds is modified in place.
func Apply(ds *topic.Dataset, res *Result, side topic.Side, merge bool) int {
	byID := make(map[string]*TopicResult, len(res.Topics))
	for i := range res.Topics {
		byID[res.Topics[i].ID] = &res.Topics[i]
	}

	written := 0
	for i := range ds.Topics {
		rec := &ds.Topics[i]
		tr, ok := byID[rec.ID()]
		if !ok || tr.Skipped {
			continue
		}
		op := opinionsFor(rec, side)

		var responses []string
		seen := make(map[string]bool)
		if merge {
			for _, r := range op.Responses {
				responses = append(responses, r)
				seen[strings.ToLower(r)] = true
			}
		}
		for _, q := range tr.Quotes {
			if seen[strings.ToLower(q.Text)] {
				continue
			}
			seen[strings.ToLower(q.Text)] = true
			responses = append(responses, q.Text)
			written++
		}
		op.Responses = responses
	}
	return written
}

func opinionsFor(rec *topic.Record, side topic.Side) *topic.Opinions {
	if side == topic.SideFriends {
		return &rec.Friends
	}
	return &rec.Source
}
