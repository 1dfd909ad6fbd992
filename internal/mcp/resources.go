package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/minigrep/internal/mcp/tools"
)

// fileURIPrefix is the prefix of file resource URIs: minigrep://file/{+path}.
const fileURIPrefix = "minigrep://file/"

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: fileURIPrefix + "{+path}",
		Name:        "Text File",
		Description: "Full decoded text of a file. High context cost - search_file already returns the matching lines. Only fetch when surrounding lines are needed.",
		MIMEType:    tools.MimeText,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.3,
		},
	}, s.handleResourceFile)
}

func (s *Server) handleResourceFile(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	path, err := parseFileURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	text, err := s.deps.LoadFile(ctx, path)
	if err != nil {
		return nil, tools.WrapFileError(path, err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{URI: req.Params.URI, MIMEType: tools.MimeText, Text: text},
		},
	}, nil
}

// parseFileURI extracts the file path from a minigrep://file/ URI.
func parseFileURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, fileURIPrefix)
	if !ok || rest == "" {
		return "", fmt.Errorf("invalid file resource URI: %s", uri)
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("invalid file resource URI %s: %w", uri, err)
	}
	return path, nil
}
