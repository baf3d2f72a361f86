package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/search"
)

// handleListSections returns the sidebar outline as Markdown.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, g := range s.reg.Catalog().Groups() {
		sb.WriteString(fmt.Sprintf("## %s\n", g.Category.Title))
		for _, sec := range g.Sections {
			marker := ""
			if _, ok := s.reg.Authored(sec.ID); !ok {
				marker = " (coming soon)"
			}
			sb.WriteString(fmt.Sprintf("- `%s`: %s%s\n", sec.ID, sec.Title, marker))
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSection returns one section with every accordion expanded.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	if !s.reg.Catalog().Has(id) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No section %q. Call list_sections for the available ids.", id,
		)), nil
	}

	return mcp.NewToolResultText(s.reg.Resolve(id).Markdown(nil)), nil
}

// handleSearchGuide runs a keyword search over the indexed guide.
func (s *Server) handleSearchGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", search.DefaultLimit)

	hits, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(hits) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections match %q.", query)), nil
	}

	return mcp.NewToolResultText(formatHits(s.reg, hits)), nil
}

// formatHits renders search hits for AI agent consumption.
func formatHits(reg *guide.Registry, hits []search.Hit) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d section(s):\n", len(hits)))

	for i, h := range hits {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Section: %s (`%s`)\n", h.Title, h.SectionID))
		if cat, ok := guide.LookupCategory(guide.Category(h.Category)); ok {
			sb.WriteString(fmt.Sprintf("Category: %s\n", cat.Title))
		}
		if _, ok := reg.Authored(h.SectionID); !ok {
			sb.WriteString("Status: coming soon\n")
		}
		if h.Snippet != "" {
			sb.WriteString(fmt.Sprintf("Snippet: %s\n", h.Snippet))
		}
	}
	return sb.String()
}
