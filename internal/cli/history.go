package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/pipemaze/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// HistoryResult is the JSON payload of the history command.
type HistoryResult struct {
	Solves []store.SolveRecord `json:"solves"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solves, newest first",
		Long: `List solves recorded by solve --db.

Example:
  pipemaze history --db pipemaze.db --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum rows to show (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	dbPath := stringSetting(cmd, "db", opts.Database, opts.Config.Database)
	if dbPath == "" {
		msg := "no database: pass --db or set database in the config file"
		_ = formatter.Error(ErrCodeUsage, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	// Opening would create an empty database; history only reads.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		msg := fmt.Sprintf("database not found: %s", dbPath)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	records, err := st.ListSolves(cmd.Context(), opts.Limit)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	return formatter.Success(HistoryResult{Solves: records}, func(w io.Writer) {
		writeHistoryText(w, records)
	})
}

func writeHistoryText(w io.Writer, records []store.SolveRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No solves recorded.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN ID\tSOURCE\tFARTHEST\tENCLOSED\tRECORDED")
	for _, r := range records {
		recorded := "-"
		if at, ok := r.RecordedAt(); ok {
			recorded = at.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", r.Seq, r.ID, r.Source, r.Farthest, r.Enclosed, recorded)
	}
	tw.Flush()
}
