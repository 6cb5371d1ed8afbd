package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"syscall"
)

// ErrorCategory represents the type of error encountered.
type ErrorCategory string

const (
	ErrorCategoryIO      ErrorCategory = "io_error"      // File system, permissions, disk space
	ErrorCategoryDecode  ErrorCategory = "decode_error"  // Corrupt or truncated image data
	ErrorCategoryFormat  ErrorCategory = "unsupported"   // Not a format we can decode
	ErrorCategoryEncode  ErrorCategory = "encode_error"  // Re-encoding the resized image failed
	ErrorCategoryUnknown ErrorCategory = "unknown_error" // Unexpected errors
)

// ProcessError is a per-file failure that does not stop the batch.
type ProcessError struct {
	File     string
	Category ErrorCategory
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.File, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Categorize wraps err with the category inferred from its chain.
func Categorize(file string, err error) *ProcessError {
	if err == nil {
		return nil
	}
	pe := &ProcessError{File: file, Err: err}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, image.ErrFormat):
		pe.Category = ErrorCategoryFormat
	case errors.Is(err, errEncode):
		pe.Category = ErrorCategoryEncode
	case errors.Is(err, syscall.ENOSPC), errors.Is(err, fs.ErrPermission), errors.As(err, &pathErr):
		pe.Category = ErrorCategoryIO
	case errors.Is(err, errDecode):
		pe.Category = ErrorCategoryDecode
	default:
		pe.Category = ErrorCategoryUnknown
	}
	return pe
}

var (
	errDecode = errors.New("decode")
	errEncode = errors.New("encode")
)

// ErrorStats tracks error statistics during a batch.
type ErrorStats struct {
	Total      int
	ByCategory map[ErrorCategory]int
	Errors     []*ProcessError
}

func NewErrorStats() *ErrorStats {
	return &ErrorStats{ByCategory: make(map[ErrorCategory]int)}
}

func (s *ErrorStats) Add(err *ProcessError) {
	s.Total++
	s.ByCategory[err.Category]++
	s.Errors = append(s.Errors, err)
}
