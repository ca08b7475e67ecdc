package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the topic dataset.
type Server struct {
	store *topic.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over store.
func NewServer(store *topic.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"onissues",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listTopicsTool, s.handleListTopics)
	s.mcp.AddTool(getTopicTool, s.handleGetTopic)
	s.mcp.AddTool(highlightTextTool, s.handleHighlightText)
	s.mcp.AddTool(findQuotesTool, s.handleFindQuotes)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
