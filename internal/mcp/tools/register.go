package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "search_file",
		Description: "Return every line of a text file that contains the query as a literal substring, with 1-based line numbers, in file order. No regular expressions.",
	}, ToolSearchFile(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "search_text",
		Description: "Return every line of the given text that contains the query as a literal substring, with 1-based line numbers.",
	}, ToolSearchText(d))
}
