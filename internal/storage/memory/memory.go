// Package memory is an in-process KV store used by tests and throwaway runs.
package memory

import (
	"context"
	"sync"

	"github.com/anthony-garcia-santos/techstorage/internal/storage"
)

var _ storage.Store = (*Storage)(nil)

type Storage struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{m: make(map[string][]byte)}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error { return nil }

func (s *Storage) Close() error { return nil }
