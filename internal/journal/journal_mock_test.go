package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boxcar/internal/testutil"
)

func newMock(t *testing.T) (*Journal, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	j := New(db,
		WithClock(testutil.NewStepClock(epoch, time.Second)),
		WithIDGenerator(testutil.NewFixedIDGenerator("run-x")),
	)
	return j, mock
}

func TestStart_InsertError(t *testing.T) {
	j, mock := newMock(t)
	mock.ExpectExec("INSERT INTO runs").
		WithArgs("run-x", "/tmp/a", "a", "r", RunRunning, "2025-03-01T12:00:00.000000000Z").
		WillReturnError(errors.New("disk I/O error"))

	_, err := j.Start(context.Background(), Run{Target: "/tmp/a", App: "a", Recipe: "r"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinish_RollsBackOnAttemptError(t *testing.T) {
	j, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE runs SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO module_attempts").
		WithArgs("run-x", 0, "anchors", "applied", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO module_attempts").
		WithArgs("run-x", 1, "auth", "failed", "boom").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := j.Finish(context.Background(), "run-x", "boom", []Attempt{
		{Position: 0, Module: "anchors", Status: "applied"},
		{Position: 1, Module: "auth", Status: "failed", Error: "boom"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record auth")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinish_UnknownRunRollsBack(t *testing.T) {
	j, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE runs SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := j.Finish(context.Background(), "run-x", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no running run")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinish_CommitError(t *testing.T) {
	j, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE runs SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	err := j.Finish(context.Background(), "run-x", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRuns_BadTimestamp(t *testing.T) {
	j, mock := newMock(t)
	rows := sqlmock.NewRows([]string{"id", "target", "app", "recipe", "status", "error", "started_at", "finished_at"}).
		AddRow("run-x", "/tmp/a", "a", "r", RunRunning, "", "yesterday", nil)
	mock.ExpectQuery("SELECT (.+) FROM runs").WillReturnRows(rows)

	_, err := j.Runs(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "started_at")
	require.NoError(t, mock.ExpectationsWereMet())
}
