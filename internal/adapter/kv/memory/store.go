// Package memory provides a process-local key-value store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// Store keeps values in a map. Values are copied on the way in and out.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("kv %q: %w", key, domain.ErrNotFound)
	}
	return slices.Clone(v), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Update holds the store lock while fn runs. fn must not call back into the store.
func (s *Store) Update(_ context.Context, key string, fn func(current []byte, found bool) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.data[key]
	next, err := fn(slices.Clone(cur), ok)
	if err != nil {
		return err
	}
	s.data[key] = slices.Clone(next)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
