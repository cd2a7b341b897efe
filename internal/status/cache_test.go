package status_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bremenlabs/agentops/internal/logs"
	"github.com/bremenlabs/agentops/internal/status"
)

type fakeLogs struct {
	latest []logs.AgentLog
	polled chan struct{}
}

func (f *fakeLogs) List(ctx context.Context, limit int, agentID string) ([]logs.AgentLog, error) {
	return nil, nil
}

func (f *fakeLogs) Latest(ctx context.Context, agentID string) (*logs.AgentLog, error) {
	return nil, logs.ErrNotFound
}

func (f *fakeLogs) LatestAll(ctx context.Context) ([]logs.AgentLog, error) {
	select {
	case f.polled <- struct{}{}:
	default:
	}
	return f.latest, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCache_Latest(t *testing.T) {
	sys := &fakeLogs{
		latest: []logs.AgentLog{
			{ID: "a1", AgentName: "business-intel", ActionDetail: "Report delivered", Status: logs.StatusSuccess},
			{ID: "b2", AgentName: "career-scout", ActionDetail: "Scan running", Status: logs.StatusPending},
		},
		polled: make(chan struct{}),
	}

	cache := status.NewCache(sys, time.Hour, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cache.Run(ctx)

	select {
	case <-sys.polled:
	case <-time.After(2 * time.Second):
		t.Fatal("cache did not poll the log store")
	}

	entry, ok := cache.Latest("career-scout")
	if !ok {
		t.Fatal("Latest(career-scout) ok = false, want true")
	}
	if entry.Status != logs.StatusPending {
		t.Errorf("entry.Status = %q, want %q", entry.Status, logs.StatusPending)
	}

	if _, ok := cache.Latest("linkedin-researcher"); ok {
		t.Error("Latest(linkedin-researcher) ok = true, want false for agent without logs")
	}
}

func TestCache_LatestBeforeFirstPoll(t *testing.T) {
	sys := &fakeLogs{polled: make(chan struct{})}
	cache := status.NewCache(sys, time.Hour, testLogger())

	if _, ok := cache.Latest("business-intel"); ok {
		t.Error("Latest() ok = true before any poll, want false")
	}
}
