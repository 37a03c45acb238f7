package clock

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"
)

var hhmm = regexp.MustCompile(`^\d{2}:\d{2}$`)

func TestOncePlain(t *testing.T) {
	var buf bytes.Buffer
	tty := false
	c := Clock{Once: true, Out: &buf, TTY: &tty}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); !hhmm.MatchString(got) {
		t.Fatalf("expected HH:MM, got %q", got)
	}
}

func TestTicksUntilCancelled(t *testing.T) {
	var buf bytes.Buffer
	tty := false
	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()
	c := Clock{Every: 10 * time.Millisecond, Out: &buf, TTY: &tty}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several readings, got %q", buf.String())
	}
}
