// Package linesearch finds the lines of a text body that contain a literal query.
//
// Results are substrings of the input text, so they share its backing memory
// and stay valid for as long as the caller keeps the text. Matching is a plain
// linear scan; there is no regular expression support.
//
// # Line splitting
//
// Lines are separated by "\n". A "\r" directly before the separator is not part
// of the line, so CRLF input behaves like LF input. A final line without a
// terminator is still a line, and a terminator at the very end of the text does
// not produce an extra empty line.
package linesearch
