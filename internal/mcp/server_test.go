package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

func testStore() *topic.Store {
	return topic.NewStore(topic.Dataset{
		Title: "On The Issues",
		Sides: topic.SideLabels{
			Source: topic.SideLabel{Title: "Scraped Articles", URL: "https://example.org/"},
		},
		Topics: []topic.Record{
			{
				Name:    "Paid Leave",
				Friends: topic.Opinions{Responses: []string{"Everyone needs time off."}},
				Source: topic.Opinions{
					Keywords:         []string{"paid leave"},
					ExcludedKeywords: []string{"military"},
					Responses:        []string{"Paid Leave bills advanced this week."},
				},
			},
			{
				Name:   "Minimum Wage",
				Source: topic.Opinions{Responses: []string{"The wage floor rose."}},
			},
		},
	})
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_topics", listTopicsTool, "list_topics"},
		{"get_topic", getTopicTool, "get_topic"},
		{"highlight_text", highlightTextTool, "highlight_text"},
		{"find_quotes", findQuotesTool, "find_quotes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	store := testStore()
	srv := NewServer(store)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store != store {
		t.Error("store not set correctly")
	}
}

func TestHandleListTopics(t *testing.T) {
	srv := NewServer(testStore())
	result := call(t, srv.handleListTopics, map[string]any{})
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	for _, want := range []string{"2 topic(s)", "Paid Leave (`paid_leave`)", "Minimum Wage (`minimum_wage`)"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}

	empty := NewServer(topic.NewStore(topic.Dataset{}))
	result = call(t, empty.handleListTopics, map[string]any{})
	if result.IsError {
		t.Error("empty dataset should not be an error")
	}
}

func TestHandleGetTopic(t *testing.T) {
	srv := NewServer(testStore())

	t.Run("by fragment", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{"topic": "#paid_leave"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{
			"# Paid Leave",
			"## My Friends and Classmates",
			"## Scraped Articles",
			"Source: https://example.org/",
			"Keywords: paid leave",
			"Excluding: military",
			"> **Paid Leave** bills advanced this week.",
			"> Everyone needs time off.",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("one side", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{"topic": "paid_leave", "side": "friends"})
		text := resultText(t, result)
		if strings.Contains(text, "Scraped Articles") {
			t.Errorf("source column should be omitted:\n%s", text)
		}
	})

	t.Run("no responses", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{"topic": "minimum_wage"})
		if !strings.Contains(resultText(t, result), "(no responses)") {
			t.Error("expected empty friends column to be marked")
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{"topic": "#nonexistent_topic"})
		if !result.IsError {
			t.Error("expected error for unknown topic")
		}
	})

	t.Run("bad side", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{"topic": "paid_leave", "side": "both"})
		if !result.IsError {
			t.Error("expected error for unknown side")
		}
	})

	t.Run("missing topic", func(t *testing.T) {
		result := call(t, srv.handleGetTopic, map[string]any{})
		if !result.IsError {
			t.Error("expected error for missing topic")
		}
	})
}

func TestHandleHighlightText(t *testing.T) {
	srv := NewServer(testStore())

	result := call(t, srv.handleHighlightText, map[string]any{
		"text":     "Raise it to $5.00, not 5000.",
		"keywords": []any{"$5.00", " raise "},
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.HasPrefix(text, "**Raise** it to **$5.00**, not 5000.") {
		t.Errorf("unexpected highlight:\n%s", text)
	}
	if !strings.Contains(text, "2 match(es)") {
		t.Errorf("expected match count:\n%s", text)
	}

	result = call(t, srv.handleHighlightText, map[string]any{"text": "x"})
	if !result.IsError {
		t.Error("expected error for missing keywords")
	}

	result = call(t, srv.handleHighlightText, map[string]any{"text": "x", "keywords": "x"})
	if !result.IsError {
		t.Error("expected error when keywords is not an array")
	}
}

func TestHandleHighlightTextKeywordWithComma(t *testing.T) {
	srv := NewServer(testStore())

	result := call(t, srv.handleHighlightText, map[string]any{
		"text":     "Wages rose 1,000 dollars, not 1 or 000.",
		"keywords": []string{"1,000"},
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.HasPrefix(text, "Wages rose **1,000** dollars, not 1 or 000.") {
		t.Errorf("unexpected highlight:\n%s", text)
	}
	if !strings.Contains(text, "1 match(es)") {
		t.Errorf("expected one match:\n%s", text)
	}
}

func TestHandleFindQuotes(t *testing.T) {
	srv := NewServer(testStore())

	result := call(t, srv.handleFindQuotes, map[string]any{"query": "WEEK"})
	text := resultText(t, result)
	if !strings.Contains(text, "Found 1 quote(s)") || !strings.Contains(text, "[Paid Leave / Scraped Articles]") {
		t.Errorf("unexpected result:\n%s", text)
	}
	if !strings.Contains(text, "**week**") {
		t.Errorf("match should be bold and keep its casing:\n%s", text)
	}

	result = call(t, srv.handleFindQuotes, map[string]any{"query": "e", "limit": 1})
	if !strings.Contains(resultText(t, result), "limit of 1 reached") {
		t.Error("expected limit note")
	}

	result = call(t, srv.handleFindQuotes, map[string]any{"query": "zebra"})
	if result.IsError || !strings.Contains(resultText(t, result), "No responses mention") {
		t.Error("a miss should be a normal answer")
	}

	result = call(t, srv.handleFindQuotes, map[string]any{"query": "  "})
	if !result.IsError {
		t.Error("expected error for blank query")
	}
}

func TestTrimKeywords(t *testing.T) {
	got := trimKeywords([]string{" a ", "", "  ", "b,c"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b,c" {
		t.Errorf("trimKeywords = %q", got)
	}
}
