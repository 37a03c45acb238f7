package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/model"
)

// Gateway serializes planner and session state into named slots of a Backend.
// It is the only code that knows the on-disk layout.
type Gateway struct {
	backend  Backend
	basePath string
	logger   *zap.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger used for recovered storage failures.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithBasePath records the directory backing the gateway, enabling Watch.
func WithBasePath(path string) Option {
	return func(g *Gateway) { g.basePath = path }
}

// NewGateway wraps an open backend.
func NewGateway(b Backend, opts ...Option) *Gateway {
	g := &Gateway{backend: b, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Open opens the configured backend and returns a gateway over it.
func Open(cfg Config, logger *zap.Logger) (*Gateway, error) {
	b, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}
	return NewGateway(b, WithLogger(logger), WithBasePath(cfg.BasePath())), nil
}

// Close releases the backend.
func (g *Gateway) Close() error {
	return g.backend.Close()
}

type appData struct {
	Tasks       *[]model.Task     `json:"tasks"`
	Events      *[]model.Event    `json:"events"`
	PinnedTasks *[]model.Task     `json:"pinnedTasks"`
	Categories  *[]model.Category `json:"categories"`
}

// Load reads the appData slot. A missing or unreadable slot yields the seed
// dataset; a stored snapshot missing a collection takes that collection from
// the seed. Load never fails.
func (g *Gateway) Load(ctx context.Context) model.Snapshot {
	seed := Seed()
	if err := ctx.Err(); err != nil {
		return seed
	}
	raw, err := g.backend.Read(SlotAppData)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			g.logger.Warn("store: read app data, using seed", zap.Error(err))
		}
		return seed
	}

	var data appData
	if err := json.Unmarshal(raw, &data); err != nil {
		g.logger.Warn("store: app data corrupt, using seed",
			zap.String("slot", SlotAppData),
			zap.Error(model.WrapError(model.CodeStorageCorrupt, "parse app data", err)))
		return seed
	}

	snap := seed
	if data.Tasks != nil {
		snap.Tasks = *data.Tasks
	}
	if data.Events != nil {
		snap.Events = *data.Events
	}
	if data.PinnedTasks != nil {
		snap.PinnedTasks = *data.PinnedTasks
	}
	if data.Categories != nil {
		snap.Categories = *data.Categories
	}
	return snap.Clone()
}

// Save replaces the appData slot with snap.
func (g *Gateway) Save(ctx context.Context, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(snap.Clone())
	if err != nil {
		return fmt.Errorf("store: encode app data: %w", err)
	}
	if err := g.backend.Write(SlotAppData, data); err != nil {
		return model.WrapError(model.CodeStorageUnavailable, "store: write app data", err)
	}
	return nil
}

// ReadSession returns the persisted token and user. A nil user with a nil
// error means no session is stored. An unparseable user record is reported
// as ErrStorageCorrupt.
func (g *Gateway) ReadSession() (string, *model.User, error) {
	token, err := g.backend.Read(SlotAuthToken)
	if errors.Is(err, ErrSlotNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, model.WrapError(model.CodeStorageUnavailable, "store: read auth token", err)
	}
	raw, err := g.backend.Read(SlotUserData)
	if errors.Is(err, ErrSlotNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, model.WrapError(model.CodeStorageUnavailable, "store: read user data", err)
	}
	if len(token) == 0 {
		return "", nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return "", nil, model.WrapError(model.CodeStorageCorrupt, "store: parse user data", err)
	}
	return string(token), &user, nil
}

// WriteSession persists the token and user record.
func (g *Gateway) WriteSession(token string, user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("store: encode user data: %w", err)
	}
	if err := g.backend.Write(SlotAuthToken, []byte(token)); err != nil {
		return model.WrapError(model.CodeStorageUnavailable, "store: write auth token", err)
	}
	if err := g.backend.Write(SlotUserData, data); err != nil {
		return model.WrapError(model.CodeStorageUnavailable, "store: write user data", err)
	}
	return nil
}

// ClearSession erases the token and user record.
func (g *Gateway) ClearSession() error {
	return errors.Join(
		g.backend.Erase(SlotAuthToken),
		g.backend.Erase(SlotUserData),
	)
}

// ReadLanguage returns the stored language tag, or "" when none is stored.
func (g *Gateway) ReadLanguage() (string, error) {
	raw, err := g.backend.Read(SlotLanguage)
	if errors.Is(err, ErrSlotNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// WriteLanguage stores the language tag.
func (g *Gateway) WriteLanguage(tag string) error {
	return g.backend.Write(SlotLanguage, []byte(tag))
}
