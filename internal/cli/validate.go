package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/loop"
	"github.com/roach88/pipemaze/internal/pipe"
	"github.com/roach88/pipemaze/internal/solver"
)

// ValidationResult describes a checked puzzle.
type ValidationResult struct {
	File       string         `json:"file"`
	Valid      bool           `json:"valid"`
	Width      int            `json:"width,omitempty"`
	Height     int            `json:"height,omitempty"`
	Start      *grid.Position `json:"start,omitempty"`
	StartShape string         `json:"start_shape,omitempty"`
	LoopLength int            `json:"loop_length,omitempty"`
	StrayPipes int            `json:"stray_pipes,omitempty"`
	Stats      *loop.Stats    `json:"stats,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a puzzle has a loop through its start tile",
		Long: `Parse a puzzle, trace its loop and resolve the start tile's shape
without counting enclosed cells. Reports the error code when the puzzle is
malformed or has no loop.

Exit codes:
  0 - Puzzle is valid
  1 - Puzzle was rejected
  2 - Command error (file not readable)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, file string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := formatter.Logger().With("file", file)

	text, err := readPuzzle(file, cmd.InOrStdin())
	if err != nil {
		_ = formatter.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot validate", err)
	}

	result, err := validatePuzzle(file, text, solver.New(solver.WithLogger(logger)))
	if err != nil {
		code := solver.ErrorCode(err)
		kind := solver.Rejection(err)
		cliErr := &CLIError{Code: code, Message: err.Error()}
		if kind != "" {
			cliErr.Details = map[string]string{"rejection": kind}
		}
		outErr := formatter.Failure(result, cliErr, func(w io.Writer) {
			fmt.Fprintf(w, "✗ %s: %s\n", file, rejectionText(kind))
			fmt.Fprintf(w, "  %s\n", err)
		})
		if outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprintf(w, "✓ %s: %dx%d, loop of %d tiles, start %s is %s\n",
			file, result.Width, result.Height, result.LoopLength, result.Start, result.StartShape)
	})
}

// validatePuzzle runs every solve stage except the enclosure count. The
// returned result is filled in as far as validation got.
func validatePuzzle(file, text string, s *solver.Solver) (ValidationResult, error) {
	result := ValidationResult{File: file}

	ck, err := s.Validate(text)
	if g := ck.Grid; g != nil {
		result.Width, result.Height = g.Width(), g.Height()
	}
	if l := ck.Loop; l != nil {
		start := l.Start()
		stats := l.Stats()
		result.Start = &start
		result.LoopLength = l.Len()
		result.Stats = &stats
		result.StrayPipes = len(ck.Grid.FindAll(pipe.IsConnector)) - (l.Len() - 1)
	}
	if err != nil {
		return result, err
	}

	result.StartShape = string(ck.StartShape)
	result.Valid = true
	return result, nil
}

func rejectionText(kind string) string {
	switch kind {
	case "malformed":
		return "malformed puzzle"
	case "no_loop":
		return "no loop through the start tile"
	default:
		return "rejected"
	}
}
