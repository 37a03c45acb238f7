// Package session tracks who is signed in. Authentication is simulated: any
// non-empty credentials succeed after a short artificial delay.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/model"
)

// Status is the coarse session state.
type Status int

const (
	// Unknown is the state before Restore and while a request is in flight.
	Unknown Status = iota
	Authenticated
	Anonymous
)

func (s Status) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// State is what the presentation layer renders from.
type State struct {
	User            *model.User
	IsAuthenticated bool
	IsLoading       bool
}

// Status derives the coarse state.
func (s State) Status() Status {
	switch {
	case s.IsAuthenticated:
		return Authenticated
	case s.IsLoading:
		return Unknown
	default:
		return Anonymous
	}
}

// Persister stores the session token and user record.
type Persister interface {
	ReadSession() (string, *model.User, error)
	WriteSession(token string, user model.User) error
	ClearSession() error
}

// ErrSuperseded is returned by a request that finished after a newer one
// started. The newer request decides the state.
var ErrSuperseded = errors.New("session: superseded by a newer request")

// Store owns the session state.
type Store struct {
	mu sync.Mutex

	persister Persister
	logger    *zap.Logger
	latency   time.Duration
	secret    []byte
	now       func() time.Time

	state      State
	generation uint64

	subs    map[int]func(State)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLatency sets the simulated network delay.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithSecret sets the key the mock token is signed with. Empty keeps the
// built-in key.
func WithSecret(secret string) Option {
	return func(s *Store) {
		if secret != "" {
			s.secret = []byte(secret)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// DefaultLatency matches the delay of the simulated backend.
const DefaultLatency = 500 * time.Millisecond

// New returns a store in the Unknown state. Call Restore to leave it.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    zap.NewNop(),
		latency:   DefaultLatency,
		secret:    []byte("stepio-local"),
		now:       time.Now,
		state:     State{IsLoading: true},
		subs:      make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Restore reads the persisted session. A stored user record and a token
// signed with this store's secret for that user sign the user in; anything
// else leaves the session anonymous. A corrupt record or a token that does
// not verify is erased.
func (s *Store) Restore() {
	token, user, err := s.persister.ReadSession()
	if err == nil && token != "" && user != nil {
		err = s.verify(token, user)
	}
	next := State{}
	switch {
	case err != nil && (errors.Is(err, model.ErrStorageCorrupt) || errors.Is(err, model.ErrAuthFailure)):
		s.logger.Warn("session: stored session corrupt, clearing", zap.Error(err))
		if cerr := s.persister.ClearSession(); cerr != nil {
			s.logger.Warn("session: clear corrupt session", zap.Error(cerr))
		}
	case err != nil:
		s.logger.Warn("session: read stored session", zap.Error(err))
	case token != "" && user != nil:
		next = State{User: user, IsAuthenticated: true}
	}

	s.mu.Lock()
	s.generation++
	s.state = next
	s.mu.Unlock()
	s.notify()
}

// Login signs in with any non-empty email and password. The display name is
// the local part of the email.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	return s.authenticate(ctx, email != "" && password != "", "login", func() model.User {
		return model.User{ID: "1", Email: email, Name: localPart(email)}
	})
}

// Register creates an account from any non-empty name, email and password.
func (s *Store) Register(ctx context.Context, name, email, password string) (bool, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	return s.authenticate(ctx, name != "" && email != "" && password != "", "register", func() model.User {
		return model.User{ID: uuid.NewString(), Email: email, Name: name}
	})
}

func (s *Store) authenticate(ctx context.Context, valid bool, op string, user func() model.User) (bool, error) {
	gen := s.begin()

	if !valid {
		// Rejected credentials sign out whoever was signed in.
		s.finish(gen, func(st *State) {
			if err := s.persister.ClearSession(); err != nil {
				s.logger.Warn("session: clear session", zap.Error(err))
			}
			*st = State{}
		})
		s.logger.Info("session: rejected credentials", zap.String("op", op))
		return false, model.WrapError(model.CodeAuthFailure, "session: "+op, errors.New("all fields are required"))
	}

	if err := s.wait(ctx); err != nil {
		s.finish(gen, func(st *State) { st.IsLoading = false })
		return false, err
	}

	u := user()
	token, err := s.issueToken(u)
	if err != nil {
		s.finish(gen, func(st *State) { st.IsLoading = false })
		return false, err
	}

	applied := s.finish(gen, func(st *State) {
		if err := s.persister.WriteSession(token, u); err != nil {
			s.logger.Warn("session: persist session failed, continuing in memory", zap.Error(err))
		}
		*st = State{User: &u, IsAuthenticated: true}
	})
	if !applied {
		return false, ErrSuperseded
	}
	s.logger.Info("session: signed in", zap.String("op", op), zap.String("user_id", u.ID))
	return true, nil
}

// Logout forgets the session unconditionally and supersedes any request in flight.
func (s *Store) Logout() {
	s.mu.Lock()
	if err := s.persister.ClearSession(); err != nil {
		s.logger.Warn("session: clear session", zap.Error(err))
	}
	s.generation++
	s.state = State{}
	s.mu.Unlock()
	s.notify()
}

// ForgotPassword acknowledges a reset request after the simulated delay.
// Nothing is delivered.
func (s *Store) ForgotPassword(ctx context.Context, email string) (bool, error) {
	if err := s.wait(ctx); err != nil {
		return false, err
	}
	s.logger.Info("session: password reset requested", zap.String("email", email))
	return true, nil
}

// Subscribe registers fn to receive every state change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
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

// begin starts a request: it becomes the latest one and the state shows loading.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.IsLoading = true
	s.mu.Unlock()
	s.notify()
	return gen
}

// finish applies fn under the lock only if gen is still the latest request.
func (s *Store) finish(gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	state := copyState(s.state)
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

func copyState(st State) State {
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
