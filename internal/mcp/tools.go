package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List every section of the Oracle Unifier BP guide, grouped by category, with its id."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the full content of one guide section as Markdown, with every collapsible item expanded."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Section id as returned by list_sections, e.g. cost-bp"),
	),
)

// searchGuideTool defines the search_guide MCP tool.
var searchGuideTool = mcp.NewTool("search_guide",
	mcp.WithDescription("Keyword search over the guide. Returns matching sections with a highlighted snippet."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to look for; every word must match, prefixes count"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 8, at most 20)"),
	),
)
