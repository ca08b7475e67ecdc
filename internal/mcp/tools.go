package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listTopicsTool defines the list_topics MCP tool.
var listTopicsTool = mcp.NewTool("list_topics",
	mcp.WithDescription("List every topic on the page with its identifier and the number of responses on each side."),
)

// getTopicTool defines the get_topic MCP tool.
var getTopicTool = mcp.NewTool("get_topic",
	mcp.WithDescription("Get both columns of one topic, with keyword matches in bold. Accepts an identifier or a URL fragment such as #paid_leave."),
	mcp.WithString("topic",
		mcp.Required(),
		mcp.Description("Topic identifier or fragment, e.g. paid_leave or #paid_leave"),
	),
	mcp.WithString("side",
		mcp.Description("Only return one side"),
		mcp.Enum("friends", "source"),
	),
)

// highlightTextTool defines the highlight_text MCP tool.
var highlightTextTool = mcp.NewTool("highlight_text",
	mcp.WithDescription("Highlight keywords in arbitrary text. Matching is literal and case-insensitive; the longest keyword wins at a position."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Text to highlight"),
	),
	mcp.WithArray("keywords",
		mcp.Required(),
		mcp.Description("Keywords to highlight; each entry is matched as a whole, commas included"),
		mcp.Items(map[string]any{"type": "string"}),
	),
)

// findQuotesTool defines the find_quotes MCP tool.
var findQuotesTool = mcp.NewTool("find_quotes",
	mcp.WithDescription("Search all responses on both sides for a phrase."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Phrase to look for (literal, case-insensitive)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of quotes to return (default 20)"),
	),
)
