package kvrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

// ProfileRepo persists the onboarding response as a single JSON document.
type ProfileRepo struct {
	store Store
}

func NewProfileRepo(store Store) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Get returns the stored response. Returns domain.ErrNotFound when nothing is
// stored and domain.ErrMalformed when the document does not decode into a
// completed, valid response.
func (r *ProfileRepo) Get(ctx context.Context) (*domain.OnboardingResponse, error) {
	raw, err := r.store.Get(ctx, ctxutil.ScopedKey(ctx, ProfileKey))
	if err != nil {
		return nil, err
	}

	var resp domain.OnboardingResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("profile: %w: %w", domain.ErrMalformed, err)
	}
	if resp.CompletedAt.IsZero() {
		return nil, fmt.Errorf("profile: %w: missing completedAt", domain.ErrMalformed)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("profile: %w: %w", domain.ErrMalformed, err)
	}
	return &resp, nil
}

// Put replaces the stored response as a whole.
func (r *ProfileRepo) Put(ctx context.Context, resp domain.OnboardingResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("profile: encode: %w", err)
	}
	return r.store.Set(ctx, ctxutil.ScopedKey(ctx, ProfileKey), raw)
}

func (r *ProfileRepo) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, ctxutil.ScopedKey(ctx, ProfileKey))
}
