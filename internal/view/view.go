// Package view builds the page model for the topic comparison and renders it
// with html/template.
package view

import (
	"html/template"

	"github.com/ziadkadry99/on-the-issues/internal/highlight"
	"github.com/ziadkadry99/on-the-issues/internal/router"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

// Quote is one response, split into highlighted segments.
type Quote struct {
	Segments []highlight.Segment `json:"segments"`
	Matches  int                 `json:"matches"`
}

// Text returns the original response text.
func (q Quote) Text() string { return highlight.Join(q.Segments) }

// Column is one side of a topic.
type Column struct {
	Side     topic.Side `json:"side"`
	Title    string     `json:"title"`
	URL      string     `json:"url,omitempty"`
	Keywords []string   `json:"keywords,omitempty"`
	Excluded []string   `json:"excluded_keywords,omitempty"`
	Quotes   []Quote    `json:"quotes"`
}

// Detail is the two-column display of a single topic.
type Detail struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Active  bool     `json:"-"`
	Columns []Column `json:"columns"`
}

// NavItem is one topic link in the header.
type NavItem struct {
	ID     string
	Name   string
	Href   string
	Active bool
}

// Page is everything the page template needs.
type Page struct {
	Title       string
	Selected    *Detail
	Nav         []NavItem
	Details     []Detail
	About       template.HTML
	BuildID     string
	AssetPrefix string
	Static      bool
	LiveReload  bool
}

// Options controls how a page is assembled.
type Options struct {
	// Static renders every topic, hidden unless selected, and lets the page
	// script switch between them on fragment changes.
	Static bool
	// LinkPrefix is prepended to topic identifiers in navigation links.
	// Defaults to "#".
	LinkPrefix  string
	AssetPrefix string
	BuildID     string
	LiveReload  bool
}

// BuildColumn highlights the responses of one side of rec. Responses are only
// highlighted when the side declares keywords.
func BuildColumn(store *topic.Store, rec topic.Record, side topic.Side) Column {
	op := rec.Opinions(side)
	label := store.Label(side)
	m := highlight.Compile(op.Keywords)

	col := Column{
		Side:     side,
		Title:    label.Title,
		URL:      label.URL,
		Keywords: op.Keywords,
		Excluded: op.ExcludedKeywords,
		Quotes:   make([]Quote, 0, len(op.Responses)),
	}
	for _, text := range op.Responses {
		segs := m.Segments(text)
		col.Quotes = append(col.Quotes, Quote{Segments: segs, Matches: highlight.Count(segs)})
	}
	return col
}

// BuildDetail assembles both columns for rec.
func BuildDetail(store *topic.Store, rec topic.Record) Detail {
	d := Detail{ID: rec.ID(), Name: rec.Name}
	for _, side := range topic.Sides {
		d.Columns = append(d.Columns, BuildColumn(store, rec, side))
	}
	return d
}

// BuildPage assembles the page for the given selection. Without Static only the
// selected topic is rendered; a selection that was not found renders the
// navigation alone.
func BuildPage(store *topic.Store, sel router.Selection, opts Options) (*Page, error) {
	about, err := RenderMarkdown(store.About())
	if err != nil {
		return nil, err
	}

	prefix := opts.LinkPrefix
	if prefix == "" {
		prefix = "#"
	}

	p := &Page{
		Title:       store.Title(),
		About:       about,
		BuildID:     opts.BuildID,
		AssetPrefix: opts.AssetPrefix,
		Static:      opts.Static,
		LiveReload:  opts.LiveReload,
	}

	for _, rec := range store.Records() {
		id := rec.ID()
		active := sel.Found && id == sel.ID
		p.Nav = append(p.Nav, NavItem{
			ID:     id,
			Name:   rec.Name,
			Href:   prefix + id,
			Active: active,
		})
		if !opts.Static && !active {
			continue
		}
		d := BuildDetail(store, rec)
		d.Active = active
		p.Details = append(p.Details, d)
		if active {
			selected := d
			p.Selected = &selected
		}
	}
	return p, nil
}
