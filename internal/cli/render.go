package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pipemaze/internal/render"
	"github.com/roach88/pipemaze/internal/solver"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Charset string
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	File    string        `json:"file"`
	Charset string        `json:"charset"`
	Result  solver.Result `json:"result"`
	Lines   []string      `json:"lines"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a puzzle's loop and its enclosed cells",
		Long: `Draw the loop with line characters. The start tile is shown as S,
enclosed cells as I, and everything else, including pipes off the loop,
as a dot.

Examples:
  pipemaze render input.txt
  pipemaze render --charset ascii input.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Charset, "charset", "unicode", "glyph set (unicode|ascii)")

	return cmd
}

func runRender(opts *RenderOptions, file string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	charsetName := stringSetting(cmd, "charset", opts.Charset, opts.Config.Charset)
	charset, err := render.ParseCharset(charsetName)
	if err != nil {
		_ = formatter.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid charset", err)
	}

	text, err := readPuzzle(file, cmd.InOrStdin())
	if err != nil {
		_ = formatter.Error(ErrCodeIO, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot render", err)
	}

	sol, err := solver.New(solver.WithLogger(formatter.Logger())).SolveDetailed(text)
	if err != nil {
		_ = formatter.Error(solver.ErrorCode(err), err.Error(), map[string]string{"file": file, "rejection": solver.Rejection(err)})
		return WrapExitError(ExitFailure, "render failed", err)
	}

	drawing := render.String(sol, charset)
	result := RenderResult{
		File:    file,
		Charset: charset.String(),
		Result:  sol.Result,
		Lines:   strings.Split(strings.TrimSuffix(drawing, "\n"), "\n"),
	}

	return formatter.Success(result, func(w io.Writer) {
		fmt.Fprint(w, drawing)
	})
}
