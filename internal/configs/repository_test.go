package configs_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bremenlabs/agentops/internal/configs"
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

var configColumns = []string{"key", "value", "last_updated"}

func TestRepo_Find(t *testing.T) {
	db, mock := newMockDB(t)
	sys := configs.New(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value, last_updated")).
		WithArgs("career-scout").
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow("career-scout", []byte(`{"auto_apply":true,"language_priority":80}`), now))

	cfg, err := sys.Find(context.Background(), "career-scout")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	if cfg.Key != "career-scout" {
		t.Errorf("cfg.Key = %q, want career-scout", cfg.Key)
	}
	if got := cfg.Value["auto_apply"]; got != true {
		t.Errorf("cfg.Value[auto_apply] = %v, want true", got)
	}
	if !cfg.LastUpdated.Equal(now) {
		t.Errorf("cfg.LastUpdated = %v, want %v", cfg.LastUpdated, now)
	}
}

func TestRepo_Find_AbsentIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	sys := configs.New(db, testLogger())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value, last_updated")).
		WithArgs("never-saved").
		WillReturnRows(sqlmock.NewRows(configColumns))

	_, err := sys.Find(context.Background(), "never-saved")
	if !errors.Is(err, configs.ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestRepo_Upsert_RoundTrip(t *testing.T) {
	db, mock := newMockDB(t)
	sys := configs.New(db, testLogger())

	bag := map[string]any{
		"auto_apply":        true,
		"language_priority": float64(80),
		"regions_include":   []any{"EMEA", "UK"},
	}
	stored, err := json.Marshal(bag)
	if err != nil {
		t.Fatalf("marshal bag: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO agent_configs")).
		WithArgs("career-scout", stored).
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow("career-scout", stored, time.Now()))

	cfg, err := sys.Upsert(context.Background(), "career-scout", bag)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Value, bag) {
		t.Errorf("round-trip value = %#v, want %#v", cfg.Value, bag)
	}
	if cfg.LastUpdated.IsZero() {
		t.Error("cfg.LastUpdated is zero, want store-assigned timestamp")
	}
}

func TestRepo_List(t *testing.T) {
	db, mock := newMockDB(t)
	sys := configs.New(db, testLogger())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value, last_updated")).
		WillReturnRows(sqlmock.NewRows(configColumns).
			AddRow("bremen-protocol", []byte(`{"mobility_mode":"auto"}`), now).
			AddRow("career-scout", []byte(`{"auto_apply":true}`), now))

	results, err := sys.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("List() returned %d configs, want 2", len(results))
	}
	if results[0].Key != "bremen-protocol" {
		t.Errorf("results[0].Key = %q, want bremen-protocol", results[0].Key)
	}
}
