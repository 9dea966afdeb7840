package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchSareesTool defines the search_sarees MCP tool.
var searchSareesTool = mcp.NewTool("search_sarees",
	mcp.WithDescription("Search the saree catalog by id. Matching is a case-insensitive substring match on the id; an empty query lists every saree."),
	mcp.WithString("query",
		mcp.Description("Id fragment to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 50)"),
	),
)

// getSareeTool defines the get_saree MCP tool.
var getSareeTool = mcp.NewTool("get_saree",
	mcp.WithDescription("Get one saree: its thumbnail, every photo in order and its originals link."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Exact saree id"),
	),
)

// catalogSummaryTool defines the catalog_summary MCP tool.
var catalogSummaryTool = mcp.NewTool("catalog_summary",
	mcp.WithDescription("Summarize the catalog: build id, source, number of sarees and photos."),
)
