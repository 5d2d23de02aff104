package grid

import (
	"errors"
	"fmt"
)

// ParseErrorCode categorizes structural problems in puzzle text.
type ParseErrorCode string

const (
	// ErrCodeEmptyGrid indicates the input held no rows.
	ErrCodeEmptyGrid ParseErrorCode = "EMPTY_GRID"

	// ErrCodeRaggedRows indicates a row whose length differs from the first row.
	ErrCodeRaggedRows ParseErrorCode = "RAGGED_ROWS"
)

// ParseError reports why puzzle text could not become a Grid.
type ParseError struct {
	Code    ParseErrorCode
	Message string

	// Line is the 1-based input line at fault, or 0 when not line-specific.
	Line int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
