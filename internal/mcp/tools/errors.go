package tools

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/usestring/minigrep/internal/textfile"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeReadError    = "READ_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapFileError converts a load failure into a coded error.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	coded := &CodedError{
		Code:    ErrCodeReadError,
		Message: fmt.Sprintf("cannot read %s", path),
		Cause:   err,
	}

	var fileErr *textfile.FileError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		coded.Code = ErrCodeNotFound
		coded.Message = fmt.Sprintf("file not found: %s", path)
	case errors.Is(err, textfile.ErrInvalidText):
		coded.Message = fmt.Sprintf("not a text file: %s", path)
	case errors.As(err, &fileErr):
		coded.Message = fmt.Sprintf("cannot %s %s", fileErr.Op, path)
	}

	slog.Warn("file load failed",
		slog.String("code", coded.Code),
		slog.String("path", path),
		slog.Any("error", err),
	)

	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
