package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// profileLoader returns the caller's onboarding answers, nil when absent.
type profileLoader interface {
	Load(ctx context.Context) (*domain.OnboardingResponse, error)
}

// replier is the external text-completion collaborator.
type replier interface {
	Reply(ctx context.Context, text, personality string) (string, error)
}

// observer records reply outcomes. Satisfied by the prometheus metrics.
type observer interface {
	ObserveChatReply(outcome string, d time.Duration)
}

// Service answers chat messages, intercepting crisis language locally.
type Service struct {
	log      *slog.Logger
	profiles profileLoader
	replier  replier
	metrics  observer
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates a new chat service instance.
func NewService(logger *slog.Logger, profiles profileLoader, r replier, metrics observer) *Service {
	return &Service{
		log:      logger.With("service", "chat"),
		profiles: profiles,
		replier:  r,
		metrics:  metrics,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// acquire marks owner as having a pending reply. Returns false when one is already pending.
func (s *Service) acquire(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[owner]; busy {
		return false
	}
	s.inFlight[owner] = struct{}{}
	return true
}

func (s *Service) release(owner string) {
	s.mu.Lock()
	delete(s.inFlight, owner)
	s.mu.Unlock()
}
