package solver

import (
	"errors"

	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/loop"
)

// IsStructuralError returns true if err reports malformed puzzle input:
// an empty or ragged grid, a missing or duplicate start, or a start whose
// loop edges match no connector.
func IsStructuralError(err error) bool {
	if grid.IsParseError(err) {
		return true
	}
	var te *loop.TraceError
	if errors.As(err, &te) {
		return te.Code != loop.ErrCodeNoLoop
	}
	return false
}

// Rejection names the kind of rejection for reporting: "malformed" for
// structural errors, "no_loop" when no branch closed, "" otherwise.
func Rejection(err error) string {
	switch {
	case IsStructuralError(err):
		return "malformed"
	case IsNoLoopError(err):
		return "no_loop"
	default:
		return ""
	}
}

// IsNoLoopError returns true if every branch from the start dead-ended.
func IsNoLoopError(err error) bool {
	return loop.IsNoLoopError(err)
}

// ErrorCode extracts the machine-readable code from a solve error, or ""
// when err carries none.
func ErrorCode(err error) string {
	var pe *grid.ParseError
	if errors.As(err, &pe) {
		return string(pe.Code)
	}
	var te *loop.TraceError
	if errors.As(err, &te) {
		return string(te.Code)
	}
	return ""
}
