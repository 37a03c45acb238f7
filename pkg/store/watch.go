package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is emitted by Gateway.Watch when the data directory changes. Slot is
// empty when the change cannot be attributed to a single slot (bolt and
// sqlite keep every slot in one file).
type Event struct {
	Slot string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped rather than block the watcher. The
// channel is closed once ctx is done or the watcher fails.
func (g *Gateway) Watch(ctx context.Context) (<-chan Event, error) {
	if g.basePath == "" {
		return nil, errors.New("store: gateway base path unknown")
	}
	if err := os.MkdirAll(g.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				g.logger.Debug("store: watcher close", zap.Error(err))
			}
		})
	}
	if err := watcher.Add(g.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", g.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads everything on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				g.logger.Debug("store: watcher error", zap.Error(err))
				throttle.Enqueue(Event{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				slot, ok := g.slotForPath(evt.Name)
				if !ok {
					continue
				}
				throttle.Enqueue(Event{Slot: slot}, send)
			}
		}
	}()

	return events, nil
}

func (g *Gateway) slotForPath(path string) (string, bool) {
	rel, err := filepath.Rel(g.basePath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, tempDirName) {
		return "", false
	}
	switch rel {
	case SlotAppData, SlotAuthToken, SlotUserData, SlotLanguage:
		return rel, true
	}
	return "", true
}

// eventThrottle coalesces bursts of filesystem notifications so consumers
// reload once per burst. Nothing is sent once Stop returns.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending[ev.Slot] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding mu so it cannot race the channel close that
// follows Stop. send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil

	if _, all := pending[""]; all {
		send(Event{})
		return
	}
	for slot := range pending {
		send(Event{Slot: slot})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
