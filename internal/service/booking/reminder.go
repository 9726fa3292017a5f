package booking

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

// ScheduleReminder stores a reminder for the caller.
func (s *Service) ScheduleReminder(ctx context.Context, in ReminderInput) (*domain.Reminder, error) {
	now := s.now()
	if err := in.Validate(now); err != nil {
		return nil, err
	}

	reminder := domain.Reminder{
		ID:        s.newID(),
		Title:     in.Title,
		Body:      in.Body,
		At:        in.At.UTC(),
		CreatedAt: now.UTC(),
	}

	err := s.reminders.Modify(ctx, func(items []domain.Reminder) ([]domain.Reminder, error) {
		return append(items, reminder), nil
	})
	if err != nil {
		return nil, fmt.Errorf("booking.ScheduleReminder: %w", err)
	}

	s.log.InfoContext(ctx, "reminder scheduled", slog.String("reminder_id", reminder.ID.String()))
	return &reminder, nil
}

// Reminders lists the caller's reminders in the order they were scheduled.
func (s *Service) Reminders(ctx context.Context) ([]domain.Reminder, error) {
	items, err := s.reminders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking.Reminders: %w", err)
	}
	return items, nil
}

// CancelReminder removes a reminder. Unknown ids are domain.ErrNotFound.
func (s *Service) CancelReminder(ctx context.Context, id uuid.UUID) error {
	err := s.reminders.Modify(ctx, func(items []domain.Reminder) ([]domain.Reminder, error) {
		idx := slices.IndexFunc(items, func(r domain.Reminder) bool { return r.ID == id })
		if idx < 0 {
			return nil, fmt.Errorf("reminder %s: %w", id, domain.ErrNotFound)
		}
		return slices.Delete(items, idx, idx+1), nil
	})
	if err != nil {
		return fmt.Errorf("booking.CancelReminder: %w", err)
	}
	return nil
}
