package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const slotsSchema = `CREATE TABLE IF NOT EXISTS slots (
	name  TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

type sqliteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend keeps every slot as a row of a single sqlite table.
func NewSQLiteBackend(path string) (Backend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(slotsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) Read(slot string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRow("SELECT value FROM slots WHERE name = ?", slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return value, nil
}

func (b *sqliteBackend) Write(slot string, value []byte) error {
	_, err := b.db.Exec(
		"INSERT INTO slots (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value",
		slot, value,
	)
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

func (b *sqliteBackend) Erase(slot string) error {
	if _, err := b.db.Exec("DELETE FROM slots WHERE name = ?", slot); err != nil {
		return fmt.Errorf("erase slot: %w", err)
	}
	return nil
}

func (b *sqliteBackend) Close() error {
	return b.db.Close()
}
