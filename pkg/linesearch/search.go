package linesearch

import "strings"

// Match is a matching line together with its 1-based line number.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Search returns every line of text that contains query, in original order.
// Comparison is byte-exact.
func Search(query, text string) []string {
	var results []string
	forEachLine(text, func(_ int, line string) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	})
	return results
}

// SearchCaseInsensitive is like Search but lowercases both the query and each
// line before comparing. The returned lines are the original, unmodified ones.
func SearchCaseInsensitive(query, text string) []string {
	query = strings.ToLower(query)

	var results []string
	forEachLine(text, func(_ int, line string) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	})
	return results
}

// Run dispatches to Search or SearchCaseInsensitive.
func Run(query, text string, caseInsensitive bool) []string {
	if caseInsensitive {
		return SearchCaseInsensitive(query, text)
	}
	return Search(query, text)
}

// Matches applies the same predicate as Run and reports line numbers as well.
func Matches(query, text string, caseInsensitive bool) []Match {
	match := matcher(query, caseInsensitive)

	var results []Match
	forEachLine(text, func(n int, line string) {
		if match(line) {
			results = append(results, Match{Line: n, Text: line})
		}
	})
	return results
}

// Lines splits text into lines using the rules described in the package doc.
func Lines(text string) []string {
	var lines []string
	forEachLine(text, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}

func matcher(query string, caseInsensitive bool) func(string) bool {
	if !caseInsensitive {
		return func(line string) bool { return strings.Contains(line, query) }
	}
	query = strings.ToLower(query)
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	}
}

// forEachLine calls fn for each line with its 1-based number.
func forEachLine(text string, fn func(n int, line string)) {
	n := 0
	for len(text) > 0 {
		n++
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		fn(n, strings.TrimSuffix(line, "\r"))
	}
}
