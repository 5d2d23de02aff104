package solver

import (
	"fmt"
	"log/slog"

	"github.com/roach88/pipemaze/internal/enclosure"
	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/ir"
	"github.com/roach88/pipemaze/internal/loop"
)

// Result is the outcome of one solve.
type Result struct {
	PuzzleID   string        `json:"puzzle_id"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Start      grid.Position `json:"start"`
	StartShape string        `json:"start_shape"`
	LoopLength int           `json:"loop_length"`
	Farthest   int           `json:"farthest"`
	Enclosed   int           `json:"enclosed"`
	Stats      loop.Stats    `json:"stats"`
}

// IRObject returns the fields that identify a result, for hashing.
// Exploration stats are diagnostic and excluded.
func (r Result) IRObject() ir.IRObject {
	return ir.IRObject{
		"puzzle_id":   ir.IRString(r.PuzzleID),
		"width":       ir.IRInt(r.Width),
		"height":      ir.IRInt(r.Height),
		"start":       ir.IRArray{ir.IRInt(r.Start.X), ir.IRInt(r.Start.Y)},
		"start_shape": ir.IRString(r.StartShape),
		"loop_length": ir.IRInt(r.LoopLength),
		"farthest":    ir.IRInt(r.Farthest),
		"enclosed":    ir.IRInt(r.Enclosed),
	}
}

// Solution bundles a Result with the intermediate values that produced it,
// for callers that render or inspect the loop.
type Solution struct {
	Result         Result
	Grid           *grid.Grid
	Loop           *loop.Loop
	Classification *enclosure.Classification
}

// Solver runs solves. The zero value is not usable; call New.
type Solver struct {
	logger *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for solve diagnostics.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve returns the farthest-point distance and enclosed count for puzzle
// text.
func (s *Solver) Solve(text string) (Result, error) {
	sol, err := s.SolveDetailed(text)
	if err != nil {
		return Result{}, err
	}
	return sol.Result, nil
}

// Check is what Validate learns about a puzzle: every solve stage except
// the enclosure count. Fields stay zero past the stage that failed.
type Check struct {
	PuzzleID   string
	Grid       *grid.Grid
	Loop       *loop.Loop
	StartShape rune
}

// Validate parses text, traces its loop and resolves the start tile. On
// error the returned Check holds whatever the earlier stages produced.
//
// The raw text is parsed; normalization only feeds the puzzle ID, so a
// malformed grid is never repaired into a valid one.
func (s *Solver) Validate(text string) (*Check, error) {
	ck := &Check{PuzzleID: ir.PuzzleID(text)}
	log := s.logger.With("puzzle_id", shortID(ck.PuzzleID))

	g, err := grid.Parse(text)
	if err != nil {
		log.Debug("puzzle rejected", "code", ErrorCode(err), "error", err)
		return ck, fmt.Errorf("parse puzzle: %w", err)
	}
	ck.Grid = g
	log.Debug("grid parsed", "width", g.Width(), "height", g.Height())

	l, err := loop.Trace(g)
	if err != nil {
		log.Debug("trace failed", "code", ErrorCode(err), "error", err)
		return ck, fmt.Errorf("trace loop: %w", err)
	}
	ck.Loop = l
	stats := l.Stats()
	log.Debug("loop traced",
		"loop_length", l.Len(),
		"branches", stats.Branches,
		"closed", stats.Closed,
		"dead_ends", stats.DeadEnds,
	)

	shape, err := loop.ResolveStart(l)
	if err != nil {
		log.Debug("start unresolved", "error", err)
		return ck, fmt.Errorf("resolve start: %w", err)
	}
	ck.StartShape = shape

	return ck, nil
}

// SolveDetailed is like Solve but also returns the grid, loop and
// classification.
func (s *Solver) SolveDetailed(text string) (*Solution, error) {
	ck, err := s.Validate(text)
	if err != nil {
		return nil, err
	}
	g, l := ck.Grid, ck.Loop

	c := enclosure.Classify(g, l, ck.StartShape)

	result := Result{
		PuzzleID:   ck.PuzzleID,
		Width:      g.Width(),
		Height:     g.Height(),
		Start:      l.Start(),
		StartShape: string(ck.StartShape),
		LoopLength: l.Len(),
		Farthest:   l.Farthest(),
		Enclosed:   c.Count(),
		Stats:      l.Stats(),
	}
	s.logger.Info("puzzle solved",
		"puzzle_id", shortID(ck.PuzzleID),
		"start_shape", result.StartShape,
		"farthest", result.Farthest,
		"enclosed", result.Enclosed,
	)

	return &Solution{Result: result, Grid: g, Loop: l, Classification: c}, nil
}

// Solve runs a solve with a default Solver.
func Solve(text string) (Result, error) {
	return New().Solve(text)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
