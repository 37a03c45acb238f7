package store

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

type diskvBackend struct {
	d *diskv.Diskv
}

// NewDiskvBackend stores each slot as a file directly under base.
func NewDiskvBackend(base string) Backend {
	return &diskvBackend{d: diskv.New(diskv.Options{
		BasePath:  base,
		Transform: func(string) []string { return []string{} },
		TempDir:   filepath.Join(base, tempDirName),
		// No read cache: another stepio process may rewrite a slot at any time.
		CacheSizeMax: 0,
	})}
}

const tempDirName = ".tmp"

func (b *diskvBackend) Read(slot string) ([]byte, error) {
	val, err := b.d.Read(slot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotNotFound
	}
	return val, err
}

func (b *diskvBackend) Write(slot string, value []byte) error {
	return b.d.Write(slot, value)
}

func (b *diskvBackend) Erase(slot string) error {
	err := b.d.Erase(slot)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (b *diskvBackend) Close() error { return nil }
