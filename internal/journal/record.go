package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run statuses.
const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Run is one compose invocation.
type Run struct {
	ID         string
	Target     string
	App        string
	Recipe     string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
}

// Attempt is what happened to one requested module in a run.
type Attempt struct {
	Position int
	Module   string
	Status   string // pending, applied or failed
	Error    string
}

// Start inserts a running row for run and returns its id. ID, Status and
// StartedAt are assigned by the journal.
func (j *Journal) Start(ctx context.Context, run Run) (string, error) {
	id := j.ids.Generate()
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs (id, target, app, recipe, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		id,
		run.Target,
		run.App,
		run.Recipe,
		RunRunning,
		formatTime(j.clock.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return id, nil
}

// Finish closes the run and records its module attempts in one transaction.
// A non-empty errMsg marks the run failed.
func (j *Journal) Finish(ctx context.Context, id, errMsg string, attempts []Attempt) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if err := finish(ctx, tx, id, errMsg, formatTime(j.clock.Now()), attempts); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	return nil
}

func finish(ctx context.Context, tx *sql.Tx, id, errMsg, finishedAt string, attempts []Attempt) error {
	status := RunSucceeded
	if errMsg != "" {
		status = RunFailed
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE runs SET status = ?, error = ?, finished_at = ?
		WHERE id = ? AND status = ?
	`, status, errMsg, finishedAt, id, RunRunning)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no running run with id %s", id)
	}

	for _, a := range attempts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO module_attempts (run_id, position, module, status, error)
			VALUES (?, ?, ?, ?, ?)
		`, id, a.Position, a.Module, a.Status, a.Error); err != nil {
			return fmt.Errorf("record %s: %w", a.Module, err)
		}
	}
	return nil
}

// timeLayout keeps a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
