package logs_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bremenlabs/agentops/internal/logs"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var logColumns = []string{"id", "agent_name", "action_detail", "status", "created_at"}

func TestRepo_List_Unfiltered(t *testing.T) {
	db, mock := newMockDB(t)
	sys := logs.New(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, agent_name, action_detail, status, created_at")).
		WithArgs(logs.DefaultLimit).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow("a1b2", "career-scout", "Scanned 14 listings", "success", now).
			AddRow("c3d4", "business-intel", "Report generation", "pending", now.Add(-time.Minute)))

	results, err := sys.List(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(results))
	}
	if results[0].AgentName != "career-scout" {
		t.Errorf("results[0].AgentName = %q, want career-scout", results[0].AgentName)
	}
	if results[1].Status != logs.StatusPending {
		t.Errorf("results[1].Status = %q, want %q", results[1].Status, logs.StatusPending)
	}
}

func TestRepo_List_FilteredByAgent(t *testing.T) {
	db, mock := newMockDB(t)
	sys := logs.New(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE agent_name = $1")).
		WithArgs("career-scout", 5).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow("a1b2", "career-scout", "Scanned 14 listings", "success", time.Now()))

	results, err := sys.List(context.Background(), 5, "career-scout")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(results))
	}
	if results[0].AgentName != "career-scout" {
		t.Errorf("results[0].AgentName = %q, want career-scout", results[0].AgentName)
	}
}

func TestRepo_Latest(t *testing.T) {
	db, mock := newMockDB(t)
	sys := logs.New(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("business-intel").
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow("a1b2", "business-intel", "Report delivered", "success", now))

	entry, err := sys.Latest(context.Background(), "business-intel")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if entry.ActionDetail != "Report delivered" {
		t.Errorf("entry.ActionDetail = %q, want %q", entry.ActionDetail, "Report delivered")
	}
}

func TestRepo_Latest_NoEntriesIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	sys := logs.New(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("linkedin-researcher").
		WillReturnRows(sqlmock.NewRows(logColumns))

	_, err := sys.Latest(context.Background(), "linkedin-researcher")
	if !errors.Is(err, logs.ErrNotFound) {
		t.Errorf("Latest() error = %v, want ErrNotFound", err)
	}
}

func TestRepo_LatestAll(t *testing.T) {
	db, mock := newMockDB(t)
	sys := logs.New(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (agent_name)")).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow("a1b2", "business-intel", "Report delivered", "success", now).
			AddRow("c3d4", "career-scout", "Scan failed", "error", now))

	results, err := sys.LatestAll(context.Background())
	if err != nil {
		t.Fatalf("LatestAll() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("LatestAll() returned %d entries, want 2", len(results))
	}
	if results[1].Status != logs.StatusError {
		t.Errorf("results[1].Status = %q, want %q", results[1].Status, logs.StatusError)
	}
}
