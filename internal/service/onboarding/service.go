package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// profileRepo defines the persistence the onboarding service needs.
type profileRepo interface {
	Get(ctx context.Context) (*domain.OnboardingResponse, error)
	Put(ctx context.Context, resp domain.OnboardingResponse) error
	Delete(ctx context.Context) error
}

// Service stores and retrieves the caller's onboarding answers.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	now      func() time.Time
}

// NewService creates a new onboarding service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "onboarding"),
		profiles: profiles,
		now:      time.Now,
	}
}

// Save validates the answers, applies defaults and persists the whole
// record with completedAt set to the current time.
func (s *Service) Save(ctx context.Context, resp domain.OnboardingResponse) (*domain.OnboardingResponse, error) {
	// Step 1: validate as captured.
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	// Step 2: normalize and stamp.
	out := resp.Normalized()
	out.CompletedAt = s.now().UTC()

	// Step 3: persist.
	if err := s.profiles.Put(ctx, out); err != nil {
		return nil, fmt.Errorf("onboarding.Save: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding saved",
		slog.Int("concerns", len(out.PrimaryConcern)),
		slog.Int("severity", out.SeverityLevel),
	)
	return &out, nil
}

// Load returns the stored answers, or nil when onboarding has not been
// completed. A record that no longer decodes is treated as absent.
func (s *Service) Load(ctx context.Context) (*domain.OnboardingResponse, error) {
	resp, err := s.profiles.Get(ctx)
	switch {
	case err == nil:
		out := resp.Normalized()
		return &out, nil
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case errors.Is(err, domain.ErrMalformed):
		s.log.WarnContext(ctx, "stored onboarding record is malformed, treating as absent",
			slog.String("error", err.Error()))
		return nil, nil
	}
	return nil, fmt.Errorf("onboarding.Load: %w", err)
}

// Exists reports whether onboarding has been completed.
func (s *Service) Exists(ctx context.Context) (bool, error) {
	resp, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return resp != nil, nil
}

// Clear removes the stored answers.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.profiles.Delete(ctx); err != nil {
		return fmt.Errorf("onboarding.Clear: %w", err)
	}
	s.log.InfoContext(ctx, "onboarding cleared")
	return nil
}
