package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const solveColumns = `id, seq, puzzle_id, source, width, height, start_x, start_y,
	start_shape, loop_length, farthest, enclosed, result_hash`

// LatestSolve returns the most recent solve of puzzleID. found is false
// when the puzzle has never been recorded.
func (s *Store) LatestSolve(ctx context.Context, puzzleID string) (rec SolveRecord, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+solveColumns+`
		FROM solves
		WHERE puzzle_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`, puzzleID)

	rec, err = scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SolveRecord{}, false, nil
	}
	if err != nil {
		return SolveRecord{}, false, fmt.Errorf("latest solve: %w", err)
	}
	return rec, true, nil
}

// ReadSolve returns the solve with run ID id.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadSolve(ctx context.Context, id string) (SolveRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+solveColumns+`
		FROM solves
		WHERE id = ?
	`, id)
	return scanSolve(row)
}

// ListSolves returns up to limit solves, newest first. A limit of zero or
// less returns every row.
func (s *Store) ListSolves(ctx context.Context, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+solveColumns+`
		FROM solves
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	records := []SolveRecord{}
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solves: %w", err)
	}

	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (SolveRecord, error) {
	var rec SolveRecord
	err := sc.Scan(
		&rec.ID,
		&rec.Seq,
		&rec.PuzzleID,
		&rec.Source,
		&rec.Width,
		&rec.Height,
		&rec.Start.X,
		&rec.Start.Y,
		&rec.StartShape,
		&rec.LoopLength,
		&rec.Farthest,
		&rec.Enclosed,
		&rec.ResultHash,
	)
	return rec, err
}
