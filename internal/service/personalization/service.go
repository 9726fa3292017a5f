package personalization

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

type profileLoader interface {
	Load(ctx context.Context) (*domain.OnboardingResponse, error)
}

type therapistMatcher interface {
	RecommendedTherapists(ctx context.Context, specializations []string) ([]domain.Therapist, error)
}

// Service assembles the personalized home view.
type Service struct {
	profiles   profileLoader
	therapists therapistMatcher
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new personalization service.
func NewService(log *slog.Logger, profiles profileLoader, therapists therapistMatcher) *Service {
	return &Service{
		profiles:   profiles,
		therapists: therapists,
		now:        time.Now,
		log:        log.With("service", "personalization"),
	}
}
