package loader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("file not found")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// ParseError reports malformed content in an otherwise readable file.
// Line and Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path   string
	Format FileType
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error decoding %s in %s at line %d, column %d: %v", strings.ToUpper(string(e.Format)), e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("error decoding %s in %s: %v", strings.ToUpper(string(e.Format)), e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError returns true if err is a ParseError
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
