package store

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

var slotsBucket = []byte("slots")

type boltBackend struct {
	db *bolt.DB
}

// NewBoltBackend keeps every slot in one bucket of a bbolt file. bbolt locks
// the file, so only one stepio process can hold it at a time.
func NewBoltBackend(path string) (Backend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotsBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltBackend{db: db}, nil
}

func (b *boltBackend) Read(slot string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(slotsBucket).Get([]byte(slot))
		if v == nil {
			return ErrSlotNotFound
		}
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (b *boltBackend) Write(slot string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(slotsBucket).Put([]byte(slot), value)
	})
}

func (b *boltBackend) Erase(slot string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(slotsBucket).Delete([]byte(slot))
	})
}

func (b *boltBackend) Close() error {
	return b.db.Close()
}
