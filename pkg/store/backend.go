package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slot names in durable storage. Each holds one complete value.
const (
	SlotAppData   = "appData"
	SlotAuthToken = "authToken"
	SlotUserData  = "userData"
	SlotLanguage  = "language"
)

// Supported backend drivers.
const (
	DriverDiskv  = "diskv"
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrSlotNotFound is returned by Backend.Read for a slot that was never written.
var ErrSlotNotFound = errors.New("store: slot not found")

// Backend is durable key/value storage for whole-value slots.
type Backend interface {
	Read(slot string) ([]byte, error)
	Write(slot string, value []byte) error
	Erase(slot string) error
	Close() error
}

// OpenBackend opens the backend selected by cfg.Driver under cfg.BasePath.
func OpenBackend(cfg Config) (Backend, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver()))
	if driver == DriverMemory {
		return NewMemoryBackend(), nil
	}
	base := cfg.BasePath()
	if base == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	switch driver {
	case "", DriverDiskv:
		return NewDiskvBackend(base), nil
	case DriverBolt:
		return NewBoltBackend(filepath.Join(base, "stepio.db"))
	case DriverSQLite:
		return NewSQLiteBackend(filepath.Join(base, "stepio.sqlite"))
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver())
	}
}
