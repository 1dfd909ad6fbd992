// Package textfile loads whole files as text.
package textfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidText is the cause of a FileError for content that is not valid UTF-8.
var ErrInvalidText = errors.New("file is not valid UTF-8 text")

// FileError reports a file that could not be loaded as text.
type FileError struct {
	Path string
	Op   string // "read" or "decode"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Read returns the full content of the file at path.
//
// A leading byte-order mark is consumed: a UTF-8 BOM is dropped and UTF-16
// content with a BOM is converted to UTF-8. Anything else must already be
// valid UTF-8.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Op: "read", Err: err}
	}

	text, err := Decode(data)
	if err != nil {
		return "", &FileError{Path: path, Op: "decode", Err: err}
	}
	return text, nil
}

// Decode applies Read's BOM and validity rules to data.
func Decode(data []byte) (string, error) {
	t := transform.Chain(unicode.BOMOverride(transform.Nop), encoding.UTF8Validator)
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	return string(out), nil
}
