package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

// ListRepo stores an owner's records as one JSON array under a base key.
type ListRepo[T any] struct {
	store Store
	key   string
}

func NewListRepo[T any](store Store, key string) *ListRepo[T] {
	return &ListRepo[T]{store: store, key: key}
}

func NewBookingRepo(store Store) *ListRepo[domain.Booking] {
	return NewListRepo[domain.Booking](store, BookingsKey)
}

func NewReminderRepo(store Store) *ListRepo[domain.Reminder] {
	return NewListRepo[domain.Reminder](store, RemindersKey)
}

// List returns the stored records in insertion order. Absent lists are empty.
func (r *ListRepo[T]) List(ctx context.Context) ([]T, error) {
	raw, err := r.store.Get(ctx, ctxutil.ScopedKey(ctx, r.key))
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

// Modify atomically replaces the list with what fn returns. An error from fn
// aborts without writing.
func (r *ListRepo[T]) Modify(ctx context.Context, fn func(items []T) ([]T, error)) error {
	return r.store.Update(ctx, ctxutil.ScopedKey(ctx, r.key), func(current []byte, found bool) ([]byte, error) {
		items := []T{}
		if found {
			decoded, err := r.decode(current)
			if err != nil {
				return nil, err
			}
			items = decoded
		}

		next, err := fn(items)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("%s: encode: %w", r.key, err)
		}
		return raw, nil
	})
}

func (r *ListRepo[T]) decode(raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", r.key, domain.ErrMalformed, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
