package store

import "sync"

// MemoryBackend keeps slots in process memory. Writes can be made to fail,
// which lets callers exercise their storage-unavailable paths.
type MemoryBackend struct {
	mu       sync.Mutex
	slots    map[string][]byte
	writeErr error
	writes   int
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (m *MemoryBackend) Read(slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Write(slot string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.slots[slot] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Erase(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, slot)
	return nil
}

func (m *MemoryBackend) Close() error { return nil }

// FailWrites makes every later Write return err; nil restores normal writes.
func (m *MemoryBackend) FailWrites(err error) {
	m.mu.Lock()
	m.writeErr = err
	m.mu.Unlock()
}

// Writes counts successful writes.
func (m *MemoryBackend) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
