package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// WriteSolve inserts rec and returns the seq assigned to it.
//
// Writes are idempotent on rec.ID: writing an ID that already exists leaves
// the row untouched and returns its existing seq with inserted=false.
func (s *Store) WriteSolve(ctx context.Context, rec SolveRecord) (seq int64, inserted bool, err error) {
	if rec.ID == "" {
		return 0, false, fmt.Errorf("write solve: empty run id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("write solve: begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `SELECT seq FROM solves WHERE id = ?`, rec.ID).Scan(&seq)
	switch {
	case err == nil:
		return seq, false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return 0, false, fmt.Errorf("write solve: lookup id: %w", err)
	}

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM solves`).Scan(&seq); err != nil {
		return 0, false, fmt.Errorf("write solve: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO solves
		(id, seq, puzzle_id, source, width, height, start_x, start_y,
		 start_shape, loop_length, farthest, enclosed, result_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		seq,
		rec.PuzzleID,
		rec.Source,
		rec.Width,
		rec.Height,
		rec.Start.X,
		rec.Start.Y,
		rec.StartShape,
		rec.LoopLength,
		rec.Farthest,
		rec.Enclosed,
		rec.ResultHash,
	)
	if err != nil {
		return 0, false, fmt.Errorf("write solve: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("write solve: commit: %w", err)
	}

	return seq, true, nil
}
