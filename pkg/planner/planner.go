// Package planner is the single owner of tasks, events, categories and
// pinned tasks. Every successful mutation is written through to durable
// storage before the call returns and then announced to subscribers.
package planner

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/model"
)

// Persister loads and saves complete snapshots. *store.Gateway implements it.
type Persister interface {
	Load(ctx context.Context) model.Snapshot
	Save(ctx context.Context, snap model.Snapshot) error
}

// Store holds the canonical collections.
type Store struct {
	mu sync.Mutex

	persister Persister
	logger    *zap.Logger
	now       func() time.Time
	generate  func() string
	lastID    int64

	state       model.Snapshot
	lastSaveErr error

	subs    map[int]func(model.Snapshot)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for not-found and storage diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now, which drives ids and category creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the id generator. Generated ids already present in the
// target collection are skipped, so the generator must eventually produce a
// fresh one.
func WithIDs(generate func() string) Option {
	return func(s *Store) { s.generate = generate }
}

// New loads the persisted snapshot and returns a ready store.
func New(ctx context.Context, p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    zap.NewNop(),
		now:       time.Now,
		subs:      make(map[int]func(model.Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generate == nil {
		s.generate = s.timestampID
	}
	s.state = p.Load(ctx).Clone()
	s.seedLastID()
	return s
}

// seedLastID raises lastID to the highest numeric id already stored so
// timestamp ids never reuse one from an earlier run with a slower clock.
func (s *Store) seedLastID() {
	bump := func(id string) {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	for _, t := range s.state.Tasks {
		bump(t.ID)
	}
	for _, t := range s.state.PinnedTasks {
		bump(t.ID)
	}
	for _, e := range s.state.Events {
		bump(e.ID)
	}
	for _, c := range s.state.Categories {
		bump(c.ID)
	}
}

// timestampID returns creation-time milliseconds, bumped so that ids issued
// by this process strictly increase.
func (s *Store) timestampID() string {
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func (s *Store) nextID(exists func(id string) bool) string {
	for {
		if id := s.generate(); !exists(id) {
			return id
		}
	}
}

// errUnchanged makes mutate skip the write for an accepted no-op.
var errUnchanged = errors.New("planner: unchanged")

// mutate applies fn to a copy of the state. On success the copy becomes the
// state, is persisted, and subscribers see it. On error nothing changes.
func (s *Store) mutate(ctx context.Context, fn func(next *model.Snapshot) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		if errors.Is(err, errUnchanged) {
			return nil
		}
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("planner: ignored operation", zap.Error(err))
		}
		return err
	}
	s.state = next
	s.saveLocked(ctx)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, notify := range subs {
		notify(next.Clone())
	}
	return nil
}

// saveLocked writes the state. Failures keep the in-memory state and are
// only logged; LastSaveError reports the most recent one.
func (s *Store) saveLocked(ctx context.Context) {
	err := s.persister.Save(ctx, s.state)
	s.lastSaveErr = err
	if err != nil {
		s.logger.Warn("planner: save failed, continuing in memory", zap.Error(err))
	}
}

// LastSaveError returns the error of the latest write, nil if it succeeded.
func (s *Store) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveErr
}

// Subscribe registers fn to receive a snapshot after every mutation or
// reload. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(model.Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Reload replaces the state with what is currently persisted, without
// writing. Used when another process changed the data.
func (s *Store) Reload(ctx context.Context) {
	snap := s.persister.Load(ctx).Clone()
	s.mu.Lock()
	s.state = snap
	s.seedLastID()
	subs := s.subscribersLocked()
	s.mu.Unlock()
	for _, notify := range subs {
		notify(snap.Clone())
	}
}

func (s *Store) subscribersLocked() []func(model.Snapshot) {
	subs := make([]func(model.Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
