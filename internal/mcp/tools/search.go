package tools

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/minigrep/pkg/linesearch"
)

// SearchFileInput is the input for search_file.
type SearchFileInput struct {
	Query           string `json:"query" jsonschema:"Literal text to look for. An empty query matches every line."`
	Filename        string `json:"filename" jsonschema:"Path of the text file to search, relative to the server's working directory"`
	CaseInsensitive *bool  `json:"case_insensitive,omitempty" jsonschema:"Lowercase query and lines before comparing. Default: the server's CASE_INSENSITIVE environment variable"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Max matches returned (default: server DEFAULT_MATCH_LIMIT, 0 = all). count always reports the total."`
}

// SearchTextInput is the input for search_text.
type SearchTextInput struct {
	Query           string `json:"query" jsonschema:"Literal text to look for. An empty query matches every line."`
	Text            string `json:"text" jsonschema:"Text body to search, lines separated by newlines"`
	CaseInsensitive *bool  `json:"case_insensitive,omitempty" jsonschema:"Lowercase query and lines before comparing. Default: the server's CASE_INSENSITIVE environment variable"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Max matches returned (default: server DEFAULT_MATCH_LIMIT, 0 = all). count always reports the total."`
}

// SearchOutput is the output for search_file and search_text.
type SearchOutput struct {
	Matches         []linesearch.Match `json:"matches,omitzero"`
	Count           int                `json:"count"`
	Truncated       bool               `json:"truncated,omitempty"`
	CaseInsensitive bool               `json:"case_insensitive"`
}

// ToolSearchFile searches the lines of a file.
func ToolSearchFile(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchFileInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchFileInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
		if input.Filename == "" {
			return nil, SearchOutput{}, ErrInvalidInput("filename is required")
		}

		text, err := d.LoadFile(ctx, input.Filename)
		if err != nil {
			return nil, SearchOutput{}, WrapFileError(input.Filename, err)
		}

		out := d.search(input.Query, text, input.CaseInsensitive, input.Limit)
		slog.Debug("search_file",
			slog.String("file", input.Filename),
			slog.Int("count", out.Count),
		)
		return nil, out, nil
	}
}

// ToolSearchText searches an inline text body.
func ToolSearchText(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchTextInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchTextInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
		return nil, d.search(input.Query, input.Text, input.CaseInsensitive, input.Limit), nil
	}
}

func (d *Deps) search(query, text string, caseInsensitive *bool, limit int) SearchOutput {
	ci := d.resolveCaseInsensitive(caseInsensitive)
	if limit <= 0 && d.Config != nil {
		limit = d.Config.DefaultMatchLimit
	}

	all := linesearch.Matches(query, text, ci)
	matches, truncated := limitMatches(all, limit)

	return SearchOutput{
		Matches:         matches,
		Count:           len(all),
		Truncated:       truncated,
		CaseInsensitive: ci,
	}
}
