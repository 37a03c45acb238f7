package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/model"
)

func init() {
	color.NoColor = true
}

func TestTasks(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	pp.Tasks(
		model.Task{ID: "1", Title: "Call doctor", Time: "09:00", Date: "2020-03-15", Category: "personal", Completed: true},
		model.Task{ID: "2", Title: "Birthday", Date: "2020-03-22"},
	)
	out := buf.String()
	for _, want := range []string{"Call doctor", "09:00", "2020-03-15", "personal", "--:--", "✔", "□"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tasks()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none, got %q", buf.String())
	}
}

func TestTaskWrapsDescription(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 24}
	pp.Task(model.Task{Title: "x", Date: "2020-03-15", Description: "one two three four five six seven eight"})
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, ":") {
			continue
		}
		if strings.HasPrefix(line, "    ") && len(line) > 24 {
			t.Fatalf("line not wrapped: %q", line)
		}
	}
}

func TestCategories(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Categories(func(c model.Category) int {
		if c.Name == "work" {
			return 3
		}
		return 0
	}, model.Category{ID: "1", Name: "work", Color: model.ColorBlue, CreatedAt: "2020-03-01"})
	if !strings.Contains(buf.String(), "3 tasks") || !strings.Contains(buf.String(), "blue") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLight(t *testing.T) {
	if !Light(model.ColorYellow) {
		t.Fatalf("yellow should take dark text")
	}
	if Light(model.Color("nope")) {
		t.Fatalf("unknown colors are not light")
	}
}

func TestMonth(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	feb := time.Date(2021, time.February, 10, 0, 0, 0, 0, time.Local)
	pp.Month(calendar.Month(feb, feb, time.Time{}, nil))
	out := buf.String()
	if !strings.Contains(out, "February 2021") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, " 1  2  3  4  5  6  7") {
		t.Fatalf("expected first week to start Monday the 1st:\n%s", out)
	}
}

func TestAgenda(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	snap := model.Snapshot{
		Tasks:  []model.Task{{ID: "1", Title: "Call doctor", Date: "2020-03-15", Time: "09:00"}},
		Events: []model.Event{{ID: "2", Title: "Standup", Date: "2020-03-15", StartTime: "10:00"}},
	}
	pp.Agenda(time.Date(2020, time.March, 1, 0, 0, 0, 0, time.Local), snap)
	out := buf.String()
	if !strings.Contains(out, "Sun Mar 15") || !strings.Contains(out, "Standup") || !strings.Contains(out, "Call doctor") {
		t.Fatalf("unexpected agenda:\n%s", out)
	}
}
