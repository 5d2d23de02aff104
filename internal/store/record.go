package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/ir"
	"github.com/roach88/pipemaze/internal/solver"
)

// ErrHashMismatch is returned by Verify when a row's fields no longer match
// its stored result hash.
var ErrHashMismatch = errors.New("result hash mismatch")

// SolveRecord is one stored solve.
type SolveRecord struct {
	ID         string        `json:"id"`
	Seq        int64         `json:"seq"`
	PuzzleID   string        `json:"puzzle_id"`
	Source     string        `json:"source,omitempty"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Start      grid.Position `json:"start"`
	StartShape string        `json:"start_shape"`
	LoopLength int           `json:"loop_length"`
	Farthest   int           `json:"farthest"`
	Enclosed   int           `json:"enclosed"`
	ResultHash string        `json:"result_hash"`
}

// NewSolveRecord builds a record for result under run ID id. Seq is
// assigned by WriteSolve.
func NewSolveRecord(id, source string, result solver.Result) (SolveRecord, error) {
	hash, err := ir.ResultHash(result.IRObject())
	if err != nil {
		return SolveRecord{}, fmt.Errorf("hash result: %w", err)
	}
	return SolveRecord{
		ID:         id,
		PuzzleID:   result.PuzzleID,
		Source:     source,
		Width:      result.Width,
		Height:     result.Height,
		Start:      result.Start,
		StartShape: result.StartShape,
		LoopLength: result.LoopLength,
		Farthest:   result.Farthest,
		Enclosed:   result.Enclosed,
		ResultHash: hash,
	}, nil
}

// Result converts the record back to a solver.Result. Exploration stats
// are not stored and come back zero.
func (r SolveRecord) Result() solver.Result {
	return solver.Result{
		PuzzleID:   r.PuzzleID,
		Width:      r.Width,
		Height:     r.Height,
		Start:      r.Start,
		StartShape: r.StartShape,
		LoopLength: r.LoopLength,
		Farthest:   r.Farthest,
		Enclosed:   r.Enclosed,
	}
}

// Verify recomputes the result hash and compares it with the stored one.
func (r SolveRecord) Verify() error {
	hash, err := ir.ResultHash(r.Result().IRObject())
	if err != nil {
		return fmt.Errorf("hash result: %w", err)
	}
	if hash != r.ResultHash {
		return fmt.Errorf("%w: solve %s", ErrHashMismatch, r.ID)
	}
	return nil
}

// RecordedAt returns the time embedded in a UUIDv7 run ID. ok is false for
// IDs that are not UUIDv7, such as the ones tests use.
func (r SolveRecord) RecordedAt() (t time.Time, ok bool) {
	id, err := uuid.Parse(r.ID)
	if err != nil || id.Version() != 7 {
		return time.Time{}, false
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC(), true
}
