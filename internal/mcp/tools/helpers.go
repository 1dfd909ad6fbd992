// Package tools contains the MCP tool implementations for minigrep.
package tools

import "github.com/usestring/minigrep/pkg/linesearch"

// MIME type constant.
const MimeText = "text/plain"

// limitMatches caps matches at limit (0 or less means no cap) and reports
// whether anything was dropped.
func limitMatches(matches []linesearch.Match, limit int) ([]linesearch.Match, bool) {
	if limit <= 0 || len(matches) <= limit {
		return matches, false
	}
	return matches[:limit], true
}
