package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/roach88/boxcar/internal/console"
	"github.com/roach88/boxcar/internal/journal"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Journal string
	Limit   int
	Run     string
}

// RunRecord is one run in the history command's JSON payload.
type RunRecord struct {
	ID         string            `json:"id"`
	Target     string            `json:"target"`
	App        string            `json:"app"`
	Recipe     string            `json:"recipe"`
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
	Modules    []ModuleOutcome   `json:"modules,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded compose runs",
		Long: `List the compose runs recorded in a journal, newest first. With --run,
show one run and what happened to each of its modules.

Example:
  boxcar history --journal ./boxcar.db
  boxcar history --journal ./boxcar.db --run 0190f3c2-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Journal, "journal", "", "path to the SQLite journal")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum number of runs to list")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show a single run with its modules")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	ctx := cmd.Context()

	path := stringFlag(cmd, "journal", opts.Journal, opts.Config.Journal)
	if path == "" {
		return formatter.fail(ExitCommandError, ErrCodeJournal, "no journal given (use --journal or BOXCAR_JOURNAL)", nil)
	}
	j, err := journal.Open(path)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, "failed to open journal", err)
	}
	defer j.Close()

	version, dirty, err := j.SchemaVersion()
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeJournal, "failed to read journal schema", err)
	}
	if dirty {
		return formatter.fail(ExitFailure, ErrCodeJournal, "journal schema is dirty",
			fmt.Errorf("migration %d was left half-applied", version))
	}
	formatter.VerboseLog("journal %s at schema version %d", path, version)

	if opts.Run != "" {
		run, err := j.Get(ctx, opts.Run)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeNotFound, "run not found", err)
		}
		attempts, err := j.Attempts(ctx, run.ID)
		if err != nil {
			return formatter.fail(ExitFailure, ErrCodeJournal, "failed to read run", err)
		}
		rec := runRecord(run)
		for _, a := range attempts {
			rec.Modules = append(rec.Modules, ModuleOutcome{
				Position: a.Position, Module: a.Module, Status: a.Status, Error: a.Error,
			})
		}
		if formatter.JSON() {
			return formatter.Success(rec)
		}
		printRun(cmd.OutOrStdout(), rec)
		return nil
	}

	runs, err := j.Runs(ctx, opts.Limit)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeJournal, "failed to read journal", err)
	}
	records := make([]RunRecord, len(runs))
	for i, run := range runs {
		records[i] = runRecord(run)
	}
	if formatter.JSON() {
		return formatter.Success(records)
	}
	if len(records) == 0 {
		return formatter.Success("No runs recorded")
	}
	for _, rec := range records {
		printRunLine(cmd.OutOrStdout(), rec)
	}
	return nil
}

func runRecord(run journal.Run) RunRecord {
	rec := RunRecord{
		ID:        run.ID,
		Target:    run.Target,
		App:       run.App,
		Recipe:    run.Recipe,
		Status:    run.Status,
		Error:     run.Error,
		StartedAt: run.StartedAt,
	}
	if !run.FinishedAt.IsZero() {
		finished := run.FinishedAt
		rec.FinishedAt = &finished
	}
	return rec
}

func statusStyle(styles console.Styles, status string) lipgloss.Style {
	switch status {
	case journal.RunSucceeded, "applied":
		return styles.Success
	case journal.RunFailed, "failed":
		return styles.Error
	default:
		return styles.Warning
	}
}

func printRunLine(w io.Writer, rec RunRecord) {
	styles := console.NewStyles(lipgloss.NewRenderer(w))
	fmt.Fprintf(w, "%s  %s  %-9s  %s (%s) %s\n",
		styles.Muted.Render(rec.ID),
		rec.StartedAt.Format(time.RFC3339),
		statusStyle(styles, rec.Status).Render(rec.Status),
		rec.App,
		rec.Recipe,
		rec.Target,
	)
}

func printRun(w io.Writer, rec RunRecord) {
	styles := console.NewStyles(lipgloss.NewRenderer(w))
	printRunLine(w, rec)
	if rec.Error != "" {
		fmt.Fprintln(w, "  "+styles.Error.Render(rec.Error))
	}
	for _, a := range rec.Modules {
		fmt.Fprintf(w, "  %2d. %-22s %s\n", a.Position+1, a.Module, statusStyle(styles, a.Status).Render(a.Status))
		if a.Error != "" {
			fmt.Fprintln(w, "      "+styles.Muted.Render(a.Error))
		}
	}
}
