package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"tableflip.dev/stepio/pkg/model"
)

func sampleSnapshot() model.Snapshot {
	task := model.Task{ID: "100", Title: "Write report", Time: "14:00", Date: "2026-02-11", Category: "work", Icon: "📝"}
	return model.Snapshot{
		Tasks:       []model.Task{task, {ID: "101", Title: "Gym", Date: "2026-02-12", Category: "health"}},
		Events:      []model.Event{{ID: "200", Title: "Standup", StartTime: "09:30", EndTime: "09:45", Date: "2026-02-11", Participants: 5}},
		PinnedTasks: []model.Task{task},
		Categories:  []model.Category{{ID: "300", Name: "work", Color: model.ColorBlue, CreatedAt: "2026-02-01"}},
	}
}

func TestLoadWithoutDataReturnsSeed(t *testing.T) {
	g := NewGateway(NewMemoryBackend(), WithLogger(zaptest.NewLogger(t)))
	got := g.Load(context.Background())
	if !reflect.DeepEqual(got, Seed()) {
		t.Fatalf("expected seed, got %+v", got)
	}
	if len(got.Tasks) != 2 || len(got.PinnedTasks) != 1 || len(got.Categories) != 0 {
		t.Fatalf("unexpected seed shape: %+v", got)
	}
}

func TestLoadCorruptDataReturnsSeed(t *testing.T) {
	for _, raw := range []string{"{not json", "42", `{"tasks": "nope"}`, ""} {
		b := NewMemoryBackend()
		if err := b.Write(SlotAppData, []byte(raw)); err != nil {
			t.Fatalf("write: %v", err)
		}
		g := NewGateway(b, WithLogger(zaptest.NewLogger(t)))
		if got := g.Load(context.Background()); !reflect.DeepEqual(got, Seed()) {
			t.Fatalf("%q: expected seed, got %+v", raw, got)
		}
	}
}

func TestLoadFillsMissingCollectionsFromSeed(t *testing.T) {
	b := NewMemoryBackend()
	_ = b.Write(SlotAppData, []byte(`{"tasks":[],"categories":[{"id":"c1","name":"work","color":"bg-red-400","createdAt":"2026-01-01"}]}`))
	g := NewGateway(b)

	got := g.Load(context.Background())
	if len(got.Tasks) != 0 {
		t.Fatalf("stored empty tasks should stay empty, got %d", len(got.Tasks))
	}
	if len(got.PinnedTasks) != 1 {
		t.Fatalf("missing pinnedTasks should come from seed, got %d", len(got.PinnedTasks))
	}
	if len(got.Categories) != 1 || got.Categories[0].Color != model.ColorRed {
		t.Fatalf("unexpected categories: %+v", got.Categories)
	}
	if got.Events == nil {
		t.Fatalf("events should never be nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, driver := range []string{DriverDiskv, DriverBolt, DriverSQLite, DriverMemory} {
		t.Run(driver, func(t *testing.T) {
			g, err := Open(testConfig{path: t.TempDir(), driver: driver}, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer g.Close()

			ctx := context.Background()
			want := sampleSnapshot()
			if err := g.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			if got := g.Load(ctx); !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
			}

			// last writer wins
			want.Tasks = want.Tasks[:1]
			if err := g.Save(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			if got := g.Load(ctx); !reflect.DeepEqual(got, want) {
				t.Fatalf("second round trip mismatch: %+v", got)
			}
		})
	}
}

func TestSaveFailureIsStorageUnavailable(t *testing.T) {
	b := NewMemoryBackend()
	b.FailWrites(errors.New("quota exceeded"))
	g := NewGateway(b)
	err := g.Save(context.Background(), sampleSnapshot())
	if !errors.Is(err, model.ErrStorageUnavailable) {
		t.Fatalf("expected storage unavailable, got %v", err)
	}
}

func TestSessionSlots(t *testing.T) {
	g := NewGateway(NewMemoryBackend())

	token, user, err := g.ReadSession()
	if err != nil || user != nil || token != "" {
		t.Fatalf("expected empty session, got %q %v %v", token, user, err)
	}

	want := model.User{ID: "1", Email: "a@b.com", Name: "a"}
	if err := g.WriteSession("tok", want); err != nil {
		t.Fatalf("write session: %v", err)
	}
	token, user, err = g.ReadSession()
	if err != nil {
		t.Fatalf("read session: %v", err)
	}
	if token != "tok" || user == nil || *user != want {
		t.Fatalf("unexpected session %q %+v", token, user)
	}

	if err := g.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, user, _ := g.ReadSession(); user != nil {
		t.Fatalf("expected cleared session, got %+v", user)
	}
}

func TestSessionCorruptUser(t *testing.T) {
	b := NewMemoryBackend()
	_ = b.Write(SlotAuthToken, []byte("tok"))
	_ = b.Write(SlotUserData, []byte("{broken"))
	g := NewGateway(b)
	if _, _, err := g.ReadSession(); !errors.Is(err, model.ErrStorageCorrupt) {
		t.Fatalf("expected storage corrupt, got %v", err)
	}
}

func TestSessionTokenWithoutUserIsAnonymous(t *testing.T) {
	b := NewMemoryBackend()
	_ = b.Write(SlotAuthToken, []byte("tok"))
	g := NewGateway(b)
	if _, user, err := g.ReadSession(); user != nil || err != nil {
		t.Fatalf("expected no session, got %+v %v", user, err)
	}
}

func TestLanguageSlot(t *testing.T) {
	g := NewGateway(NewMemoryBackend())
	if tag, err := g.ReadLanguage(); err != nil || tag != "" {
		t.Fatalf("expected no language, got %q %v", tag, err)
	}
	if err := g.WriteLanguage("id"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if tag, _ := g.ReadLanguage(); tag != "id" {
		t.Fatalf("expected id, got %q", tag)
	}
}

func TestOpenBackendUnknownDriver(t *testing.T) {
	if _, err := OpenBackend(testConfig{path: t.TempDir(), driver: "redis"}); err == nil {
		t.Fatal("expected unknown driver error")
	}
}
