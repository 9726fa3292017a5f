// Package kvrepo implements owner-scoped repositories as JSON documents over
// a key-value store. Every backend under internal/adapter/kv satisfies Store.
package kvrepo

import "context"

// Store is the key-value contract shared by the memory, sqlite, redis and
// postgres backends.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn func(current []byte, found bool) ([]byte, error)) error
}

// Storage keys. Each is suffixed with the user id for authenticated callers.
const (
	ProfileKey   = "@mazag_onboarding"
	BookingsKey  = "bookings"
	RemindersKey = "reminders"
)
