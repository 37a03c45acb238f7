// Package app wires configuration, logging, storage and the stores together
// so the CLI and the dashboard share one setup path.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/i18n"
	"tableflip.dev/stepio/pkg/logging"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/overlay"
	"tableflip.dev/stepio/pkg/planner"
	"tableflip.dev/stepio/pkg/session"
	"tableflip.dev/stepio/pkg/store"
	"tableflip.dev/stepio/pkg/timeutil"
)

// App holds every store for one run.
type App struct {
	Settings   *store.Settings
	Logger     *zap.Logger
	Gateway    *store.Gateway
	Planner    *planner.Store
	Session    *session.Store
	Translator *i18n.Translator
	Overlay    *overlay.Store
}

// Option adjusts how Open builds the App.
type Option func(*options)

type options struct {
	logOutput string
	logger    *zap.Logger
	now       func() time.Time
}

// WithLogOutput sends logs to a zap sink path instead of stderr.
func WithLogOutput(path string) Option {
	return func(o *options) { o.logOutput = path }
}

// WithLogger uses l instead of building one from the settings.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Load reads the configuration and opens the App.
func Load(ctx context.Context, opts ...Option) (*App, error) {
	s, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}
	return Open(ctx, s, opts...)
}

// Open builds the App from s and restores the persisted session.
func Open(ctx context.Context, s *store.Settings, opts ...Option) (*App, error) {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{Level: s.LogLevel, Encoding: s.LogEncoding, Output: o.logOutput})
		if err != nil {
			return nil, err
		}
	}

	g, err := store.Open(s, logger)
	if err != nil {
		return nil, fmt.Errorf("app: open %s store: %w", s.Driver(), err)
	}

	a := &App{
		Settings: s,
		Logger:   logger,
		Gateway:  g,
		Planner:  planner.New(ctx, g, planner.WithLogger(logger), planner.WithClock(o.now)),
		Session: session.New(g,
			session.WithLogger(logger),
			session.WithLatency(s.AuthLatency),
			session.WithSecret(s.AuthSecret),
			session.WithClock(o.now),
		),
		Translator: i18n.New(g, s.LanguageCode, logger),
		Overlay:    overlay.New(),
	}
	a.Session.Restore()
	return a, nil
}

// Close flushes the logger and releases storage.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.Gateway.Close()
}

// ErrSignedOut is returned by RequireSession when nobody is signed in.
var ErrSignedOut = model.WrapError(model.CodeAuthFailure, "not signed in", errors.New("run `stepio login` first"))

// RequireSession guards commands that need a signed-in user.
func (a *App) RequireSession() (*model.User, error) {
	st := a.Session.State()
	if !st.IsAuthenticated || st.User == nil {
		return nil, ErrSignedOut
	}
	return st.User, nil
}

// ClockEvery is the dashboard clock refresh interval, one minute unless
// configured otherwise.
func (a *App) ClockEvery() time.Duration {
	d, _, err := timeutil.ParseWindow(a.Settings.ClockEvery)
	if err != nil {
		a.Logger.Info("app: bad clock_every, using 1m", zap.String("clock_every", a.Settings.ClockEvery))
		return time.Minute
	}
	return d
}

// Unsaved reports a swallowed save failure from the last change, so a CLI
// user is not left believing the change reached disk.
func (a *App) Unsaved() error {
	if err := a.Planner.LastSaveError(); err != nil {
		return fmt.Errorf("change kept in memory only: %w", err)
	}
	return nil
}
