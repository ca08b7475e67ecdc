package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/on-the-issues/internal/highlight"
	"github.com/ziadkadry99/on-the-issues/internal/router"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/view"
)

// handleListTopics lists the topics in display order.
func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := s.store.Records()
	if len(records) == 0 {
		return mcp.NewToolResultText("The dataset has no topics."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d topic(s)\n\n", s.store.Title(), len(records))
	for _, rec := range records {
		fmt.Fprintf(&sb, "- %s (`%s`): %d %s, %d %s\n",
			rec.Name, rec.ID(),
			len(rec.Friends.Responses), strings.ToLower(s.store.Label(topic.SideFriends).Title),
			len(rec.Source.Responses), strings.ToLower(s.store.Label(topic.SideSource).Title),
		)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetTopic resolves a topic the same way the page resolves its fragment.
func (s *Server) handleGetTopic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fragment, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}

	sel := router.Resolve(s.store, fragment)
	if !sel.Found {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No topic %q. Use list_topics to see the available identifiers.", sel.ID,
		)), nil
	}

	only := topic.Side(request.GetString("side", ""))
	if only != "" && only != topic.SideFriends && only != topic.SideSource {
		return mcp.NewToolResultError(fmt.Sprintf("unknown side %q", only)), nil
	}

	detail := view.BuildDetail(s.store, sel.Record)
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", detail.Name)
	for _, col := range detail.Columns {
		if only != "" && col.Side != only {
			continue
		}
		formatColumn(&sb, col)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleHighlightText runs the highlighter over caller-supplied text.
func (s *Server) handleHighlightText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}
	keywords, err := request.RequireStringSlice("keywords")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: keywords (an array of strings)"), nil
	}

	segs := highlight.Highlight(text, trimKeywords(keywords))
	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%d match(es)", formatSegments(segs), highlight.Count(segs))), nil
}

// handleFindQuotes searches every response for a phrase.
func (s *Server) handleFindQuotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	m := highlight.Compile([]string{strings.TrimSpace(query)})
	var sb strings.Builder
	found := 0
	for _, rec := range s.store.Records() {
		for _, side := range topic.Sides {
			for _, resp := range rec.Opinions(side).Responses {
				if !m.Matches(resp) {
					continue
				}
				if found == limit {
					fmt.Fprintf(&sb, "\n(limit of %d reached)\n", limit)
					return mcp.NewToolResultText(sb.String()), nil
				}
				found++
				fmt.Fprintf(&sb, "- [%s / %s] %s\n", rec.Name, s.store.Label(side).Title, formatSegments(m.Segments(resp)))
			}
		}
	}
	if found == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No responses mention %q.", query)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %d quote(s):\n", found) + sb.String()), nil
}

// formatColumn writes one side of a topic as markdown.
func formatColumn(sb *strings.Builder, col view.Column) {
	fmt.Fprintf(sb, "\n## %s\n", col.Title)
	if col.URL != "" {
		fmt.Fprintf(sb, "Source: %s\n", col.URL)
	}
	if len(col.Keywords) > 0 {
		fmt.Fprintf(sb, "Keywords: %s\n", strings.Join(col.Keywords, ", "))
	}
	if len(col.Excluded) > 0 {
		fmt.Fprintf(sb, "Excluding: %s\n", strings.Join(col.Excluded, ", "))
	}
	if len(col.Quotes) == 0 {
		sb.WriteString("\n(no responses)\n")
		return
	}
	sb.WriteString("\n")
	for _, q := range col.Quotes {
		fmt.Fprintf(sb, "> %s\n\n", formatSegments(q.Segments))
	}
}

// formatSegments renders matches in bold.
func formatSegments(segs []highlight.Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Match {
			sb.WriteString("**" + seg.Content + "**")
		} else {
			sb.WriteString(seg.Content)
		}
	}
	return sb.String()
}

// trimKeywords drops surrounding space and blank entries.
func trimKeywords(in []string) []string {
	var out []string
	for _, kw := range in {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
