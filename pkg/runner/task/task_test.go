package task

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap/zaptest"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/store"
)

func newApp(t *testing.T) (*app.App, *bytes.Buffer) {
	t.Helper()
	a, err := app.Open(context.Background(), &store.Settings{
		StoreDriver:  store.DriverMemory,
		LanguageCode: "en",
	}, app.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	buf := &bytes.Buffer{}
	old, noColor := color.Output, color.NoColor
	color.Output, color.NoColor = buf, true
	t.Cleanup(func() { color.Output, color.NoColor = old, noColor })
	return a, buf
}

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &d
}

func TestAddAndPin(t *testing.T) {
	a, buf := newApp(t)
	ctx := context.Background()

	add := Add{App: a, Fields: model.TaskFields{Title: "Water plants", Date: "2020-03-15", Time: "18:00"}, Pin: true}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(buf.String(), "Water plants") || !strings.Contains(buf.String(), "Call doctor for tests") {
		t.Fatalf("expected the day's tasks, got:\n%s", buf.String())
	}
	if got := len(a.Planner.PinnedTasks()); got != 2 {
		t.Fatalf("expected two pinned tasks, got %d", got)
	}
}

func TestListJSON(t *testing.T) {
	a, buf := newApp(t)

	l := List{App: a, On: day(t, "2020-03-22"), JSON: true}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []model.Task
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected tasks %+v", got)
	}
}

func TestListFilters(t *testing.T) {
	tests := map[string]struct {
		list List
		want []string
	}{
		"completed": {
			list: List{Completed: boolp(true)},
			want: []string{"1"},
		},
		"open": {
			list: List{Completed: boolp(false)},
			want: []string{"2"},
		},
		"pinned": {
			list: List{Pinned: true},
			want: []string{"1"},
		},
		"category miss": {
			list: List{Category: "work"},
			want: []string{},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a, buf := newApp(t)
			l := tc.list
			l.App, l.JSON = a, true
			if err := l.Do(context.Background()); err != nil {
				t.Fatalf("list: %v", err)
			}
			var got []model.Task
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if strings.Join(ids, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("expected %v, got %v", tc.want, ids)
			}
		})
	}
}

func TestEditRefreshesPin(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	e := Edit{App: a, ID: "1", Update: model.TaskUpdate{Title: model.String("Call the clinic")}}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := a.Planner.PinnedTasks()[0].Title; got != "Call doctor for tests" {
		t.Fatalf("pinned copy should stay frozen, got %q", got)
	}

	e = Edit{App: a, ID: "1", Update: model.TaskUpdate{}, Refresh: true}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := a.Planner.PinnedTasks()[0].Title; got != "Call the clinic" {
		t.Fatalf("expected refreshed pin, got %q", got)
	}
}

func TestUnknownIDs(t *testing.T) {
	a, _ := newApp(t)
	ctx := context.Background()

	for name, r := range map[string]interface{ Do(context.Context) error }{
		"show":   &Show{App: a, ID: "nope"},
		"done":   &Done{App: a, IDs: []string{"nope"}},
		"delete": &Delete{App: a, IDs: []string{"nope"}},
	} {
		if err := r.Do(ctx); !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("%s: expected not found, got %v", name, err)
		}
	}
	if got := len(a.Planner.Tasks()); got != 2 {
		t.Fatalf("nothing should change, got %d tasks", got)
	}
}

func TestUpcomingRejectsBadWindow(t *testing.T) {
	a, _ := newApp(t)

	u := Upcoming{App: a, Window: "soon"}
	if err := u.Do(context.Background()); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func boolp(b bool) *bool { return &b }
