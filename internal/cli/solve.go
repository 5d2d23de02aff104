package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/pipemaze/internal/ir"
	"github.com/roach88/pipemaze/internal/solver"
	"github.com/roach88/pipemaze/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Database string
	Fresh    bool
	Workers  int

	// RunIDs overrides the run ID generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	RunIDs store.RunIDGenerator
}

// FileResult is the outcome for one puzzle file.
type FileResult struct {
	File   string         `json:"file"`
	Result *solver.Result `json:"result,omitempty"`
	Cached bool           `json:"cached,omitempty"`
	RunID  string         `json:"run_id,omitempty"`
	Error  *CLIError      `json:"error,omitempty"`
}

// SolveReport holds the results of a solve command, in argument order.
type SolveReport struct {
	Files  []FileResult `json:"files"`
	Solved int          `json:"solved"`
	Failed int          `json:"failed"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <file>...",
		Short: "Report the farthest distance and enclosed count for puzzles",
		Long: `Solve one or more puzzle files. Use - to read a puzzle from standard input.

Files are solved concurrently, up to the configured number of workers.
With a database, every solve is recorded and puzzles solved before are
answered from the stored result unless --fresh is given.

Exit codes:
  0 - All puzzles solved
  1 - One or more puzzles were rejected
  2 - Command error (database unavailable, bad flags)

Examples:
  pipemaze solve input.txt
  pipemaze solve --db pipemaze.db puzzles/*.txt
  cat input.txt | pipemaze solve - --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database recording solves")
	cmd.Flags().BoolVar(&opts.Fresh, "fresh", false, "ignore stored results and solve again")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "maximum puzzles solved at once (default from config)")

	return cmd
}

// solveRun carries what every per-file solve shares.
type solveRun struct {
	solver   *solver.Solver
	store    *store.Store
	useCache bool
	runIDs   store.RunIDGenerator
	logger   *slog.Logger
	stdin    io.Reader
}

func runSolve(opts *SolveOptions, files []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := formatter.Logger()

	if err := checkStdinOnce(files); err != nil {
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return err
	}

	workers := opts.Config.Workers
	if cmd.Flags().Changed("workers") {
		workers = opts.Workers
	}
	if workers < 1 {
		msg := fmt.Sprintf("workers must be at least 1, got %d", workers)
		_ = formatter.Error(ErrCodeUsage, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	run := &solveRun{
		solver:   solver.New(solver.WithLogger(logger)),
		useCache: opts.Config.Cache && !opts.Fresh,
		runIDs:   opts.RunIDs,
		logger:   logger,
		stdin:    cmd.InOrStdin(),
	}
	if run.runIDs == nil {
		run.runIDs = store.UUIDv7Generator{}
	}

	if dbPath := stringSetting(cmd, "db", opts.Database, opts.Config.Database); dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			_ = formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		run.store = st
		logger.Debug("database ready", "path", dbPath, "cache", run.useCache)
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, err := run.solveFile(ctx, file)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "solve aborted", err)
	}

	report := SolveReport{Files: results}
	var firstErr *CLIError
	for _, r := range results {
		if r.Error != nil {
			report.Failed++
			if firstErr == nil {
				firstErr = r.Error
			}
		} else {
			report.Solved++
		}
	}

	if report.Failed > 0 {
		msg := fmt.Sprintf("%d of %d puzzle(s) failed", report.Failed, len(files))
		err := formatter.Failure(report, &CLIError{Code: firstErr.Code, Message: msg}, func(w io.Writer) {
			writeSolveText(w, report)
		})
		if err != nil {
			return err
		}
		return NewExitError(ExitFailure, msg)
	}

	return formatter.Success(report, func(w io.Writer) {
		writeSolveText(w, report)
	})
}

// solveFile solves one file. Puzzle and read errors are reported in the
// FileResult; the returned error is reserved for store failures, which
// abort the whole command.
func (r *solveRun) solveFile(ctx context.Context, file string) (FileResult, error) {
	out := FileResult{File: file}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	text, err := readPuzzle(file, r.stdin)
	if err != nil {
		out.Error = &CLIError{Code: ErrCodeIO, Message: err.Error()}
		return out, nil
	}

	if r.store != nil && r.useCache {
		rec, found, err := r.store.LatestSolve(ctx, ir.PuzzleID(text))
		if err != nil {
			return out, fmt.Errorf("cache lookup for %s: %w", file, err)
		}
		if found {
			if err := rec.Verify(); err != nil {
				r.logger.Warn("ignoring stored result", "file", file, "run_id", rec.ID, "error", err)
			} else {
				res := rec.Result()
				out.Result = &res
				out.Cached = true
				out.RunID = rec.ID
				r.logger.Debug("stored result reused", "file", file, "run_id", rec.ID)
				return out, nil
			}
		}
	}

	res, err := r.solver.Solve(text)
	if err != nil {
		code := solver.ErrorCode(err)
		if code == "" {
			code = ErrCodeIO
		}
		out.Error = &CLIError{Code: code, Message: err.Error()}
		if kind := solver.Rejection(err); kind != "" {
			out.Error.Details = map[string]string{"rejection": kind}
		}
		r.logger.Debug("puzzle rejected", "file", file, "code", code)
		return out, nil
	}
	out.Result = &res

	if r.store != nil {
		rec, err := store.NewSolveRecord(r.runIDs.Generate(), file, res)
		if err != nil {
			return out, fmt.Errorf("record %s: %w", file, err)
		}
		seq, _, err := r.store.WriteSolve(ctx, rec)
		if err != nil {
			return out, fmt.Errorf("record %s: %w", file, err)
		}
		out.RunID = rec.ID
		r.logger.Debug("solve recorded", "file", file, "run_id", rec.ID, "seq", seq)
	}

	return out, nil
}

func writeSolveText(w io.Writer, report SolveReport) {
	for _, r := range report.Files {
		if r.Error != nil {
			fmt.Fprintf(w, "%s: error [%s]: %s\n", r.File, r.Error.Code, r.Error.Message)
			continue
		}
		suffix := ""
		if r.Cached {
			suffix = " (cached)"
		}
		fmt.Fprintf(w, "%s: farthest=%d enclosed=%d%s\n", r.File, r.Result.Farthest, r.Result.Enclosed, suffix)
	}
}
