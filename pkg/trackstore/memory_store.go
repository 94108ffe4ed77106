package trackstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is a minimal in-memory Store intended for tests, examples, and
// single-process authoring sessions. It keys records by Ref.Identifier() and
// makes no persistence assumptions beyond that.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]Record{}}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, ref Ref) (Record, bool, error) {
	key, err := ref.Identifier()
	if err != nil {
		return Record{}, false, err
	}
	s.mu.RLock()
	record, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return Record{}, false, nil
	}
	return record.Clone(), true, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, ref Ref, record Record) error {
	key, err := ref.Identifier()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[key] = record.Clone()
	s.mu.Unlock()
	return nil
}

// BindTrack mints a track identifier for pointerKey under ref, creating the
// record as needed. Binding an already-bound pointer returns the existing
// identifier, so rebinding is idempotent.
func (s *MemoryStore) BindTrack(_ context.Context, ref Ref, pointerKey string) (string, error) {
	key, err := ref.Identifier()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[key]
	if record.Tracks == nil {
		record.Tracks = map[string]string{}
	}
	if id, ok := record.Tracks[pointerKey]; ok {
		s.records[key] = record
		return id, nil
	}
	id := uuid.NewString()
	record.Tracks[pointerKey] = id
	s.records[key] = record
	return id, nil
}

// UnbindTrack removes the binding for pointerKey under ref. Unbinding an
// unknown pointer is a no-op.
func (s *MemoryStore) UnbindTrack(_ context.Context, ref Ref, pointerKey string) error {
	key, err := ref.Identifier()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[key]
	if !ok || record.Tracks == nil {
		return nil
	}
	delete(record.Tracks, pointerKey)
	s.records[key] = record
	return nil
}

// SaveOverrides replaces the raw static override blob under ref.
func (s *MemoryStore) SaveOverrides(_ context.Context, ref Ref, raw json.RawMessage) error {
	key, err := ref.Identifier()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[key]
	record.Overrides = append(json.RawMessage(nil), raw...)
	s.records[key] = record
	return nil
}
