package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

type therapistLookup interface {
	Therapist(ctx context.Context, id string) (*domain.Therapist, error)
}

// listRepo is an owner-scoped list with atomic modification.
type listRepo[T any] interface {
	List(ctx context.Context) ([]T, error)
	Modify(ctx context.Context, fn func(items []T) ([]T, error)) error
}

// Service books therapy sessions and schedules wellness reminders.
type Service struct {
	log        *slog.Logger
	therapists therapistLookup
	bookings   listRepo[domain.Booking]
	reminders  listRepo[domain.Reminder]
	now        func() time.Time
	newID      func() uuid.UUID
}

// NewService creates a new booking service instance.
func NewService(
	logger *slog.Logger,
	therapists therapistLookup,
	bookings listRepo[domain.Booking],
	reminders listRepo[domain.Reminder],
) *Service {
	return &Service{
		log:        logger.With("service", "booking"),
		therapists: therapists,
		bookings:   bookings,
		reminders:  reminders,
		now:        time.Now,
		newID:      uuid.New,
	}
}
