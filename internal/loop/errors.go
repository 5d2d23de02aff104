package loop

import (
	"errors"
	"fmt"

	"github.com/roach88/pipemaze/internal/grid"
)

// TraceErrorCode categorizes tracing failures.
type TraceErrorCode string

const (
	// ErrCodeMissingStart indicates the grid holds no start tile.
	ErrCodeMissingStart TraceErrorCode = "MISSING_START"

	// ErrCodeDuplicateStart indicates more than one start tile.
	ErrCodeDuplicateStart TraceErrorCode = "DUPLICATE_START"

	// ErrCodeNoLoop indicates every branch from the start dead-ended.
	ErrCodeNoLoop TraceErrorCode = "NO_LOOP"

	// ErrCodeUnresolvedStart indicates the loop's edges at the start match
	// no connector shape.
	ErrCodeUnresolvedStart TraceErrorCode = "UNRESOLVED_START"
)

// TraceError reports why no canonical loop could be produced.
type TraceError struct {
	Code    TraceErrorCode
	Message string

	// Start is the start position when one was located.
	Start *grid.Position
}

func (e *TraceError) Error() string {
	if e.Start != nil {
		return fmt.Sprintf("%s: %s (start=%s)", e.Code, e.Message, e.Start)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNoLoopError returns true if err wraps a NO_LOOP TraceError.
func IsNoLoopError(err error) bool {
	var te *TraceError
	if errors.As(err, &te) {
		return te.Code == ErrCodeNoLoop
	}
	return false
}

func newTraceError(code TraceErrorCode, start *grid.Position, format string, args ...any) *TraceError {
	return &TraceError{Code: code, Message: fmt.Sprintf(format, args...), Start: start}
}
