package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	tierKey      ctxKey = "tier"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTier stores the caller's subscription tier in the context.
func WithTier(ctx context.Context, tier string) context.Context {
	return context.WithValue(ctx, tierKey, tier)
}

// TierFromCtx extracts the subscription tier. Returns an empty string if absent.
func TierFromCtx(ctx context.Context) string {
	tier, _ := ctx.Value(tierKey).(string)
	return tier
}

// ScopedKey namespaces a storage key by the authenticated user.
// Anonymous callers share the bare key, as a single-device install does.
func ScopedKey(ctx context.Context, key string) string {
	if id, ok := UserIDFromCtx(ctx); ok {
		return key + ":" + id.String()
	}
	return key
}

// OwnerFromCtx identifies the caller for per-owner bookkeeping.
// Anonymous callers map to "anonymous".
func OwnerFromCtx(ctx context.Context) string {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id.String()
	}
	return "anonymous"
}
