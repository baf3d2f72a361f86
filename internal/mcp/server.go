package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/search"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Searcher answers keyword queries over the guide.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]search.Hit, error)
}

// Server wraps an MCP server that exposes the guide to AI agents.
type Server struct {
	reg      *guide.Registry
	searcher Searcher
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(reg *guide.Registry, searcher Searcher) *Server {
	s := &Server{
		reg:      reg,
		searcher: searcher,
	}

	s.mcp = server.NewMCPServer(
		"bpguide",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSectionsTool, s.handleListSections)
	s.mcp.AddTool(getSectionTool, s.handleGetSection)
	s.mcp.AddTool(searchGuideTool, s.handleSearchGuide)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
