package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/store"
)

func settings(t *testing.T) *store.Settings {
	return &store.Settings{
		Path:         t.TempDir(),
		StoreDriver:  store.DriverDiskv,
		AuthSecret:   "test",
		ClockEvery:   "30s",
		LanguageCode: "en",
	}
}

func TestOpenSeedsAndGuards(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, settings(t), WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()

	if got := len(a.Planner.Tasks()); got != 2 {
		t.Fatalf("expected seed tasks, got %d", got)
	}
	if _, err := a.RequireSession(); !errors.Is(err, model.ErrAuthFailure) {
		t.Fatalf("expected signed out, got %v", err)
	}
	if a.ClockEvery() != 30*time.Second {
		t.Fatalf("unexpected clock interval %v", a.ClockEvery())
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s := settings(t)

	a, err := Open(ctx, s, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if ok, err := a.Session.Login(ctx, "a@b.com", "pw"); !ok || err != nil {
		t.Fatalf("login: %v %v", ok, err)
	}
	if _, err := a.Planner.AddTask(ctx, model.TaskFields{Title: "Write report", Date: "2020-03-16"}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := Open(ctx, s, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()
	u, err := b.RequireSession()
	if err != nil || u.Name != "a" {
		t.Fatalf("expected restored session, got %+v %v", u, err)
	}
	if got := len(b.Planner.Tasks()); got != 3 {
		t.Fatalf("expected 3 tasks after reopen, got %d", got)
	}
}

func TestBadClockFallsBack(t *testing.T) {
	s := settings(t)
	s.StoreDriver = store.DriverMemory
	s.ClockEvery = "often"
	a, err := Open(context.Background(), s, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if a.ClockEvery() != time.Minute {
		t.Fatalf("expected 1m fallback, got %v", a.ClockEvery())
	}
}
