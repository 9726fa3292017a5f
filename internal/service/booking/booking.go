package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

// Book reserves one of the therapist's availability slots for the caller.
// The price is quoted with the caller's tier discount.
func (s *Service) Book(ctx context.Context, in BookInput) (*domain.Booking, error) {
	// Step 1: validate.
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Step 2: therapist and slot.
	therapist, err := s.therapists.Therapist(ctx, in.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("booking.Book: %w", err)
	}
	if !therapist.IsAvailableAt(in.Slot) {
		return nil, domain.NewValidationError("datetime", "not an available slot")
	}

	// Step 3: quote.
	tier := domain.ParseTier(ctxutil.TierFromCtx(ctx))

	booking := domain.Booking{
		ID:          s.newID(),
		TherapistID: therapist.ID,
		Slot:        in.Slot.UTC(),
		Price:       tier.DiscountedPrice(therapist.Price),
		Tier:        tier,
		CreatedAt:   s.now().UTC(),
	}

	// Step 4: append unless the slot is already booked by this owner.
	err = s.bookings.Modify(ctx, func(items []domain.Booking) ([]domain.Booking, error) {
		for _, b := range items {
			if b.TherapistID == booking.TherapistID && b.Slot.Equal(booking.Slot) {
				return nil, fmt.Errorf("slot %s: %w", booking.Slot.Format("2006-01-02T15:04Z07:00"), domain.ErrAlreadyExists)
			}
		}
		return append(items, booking), nil
	})
	if err != nil {
		return nil, fmt.Errorf("booking.Book: %w", err)
	}

	s.log.InfoContext(ctx, "session booked",
		slog.String("therapist_id", booking.TherapistID),
		slog.String("booking_id", booking.ID.String()),
		slog.String("tier", tier.String()),
	)
	return &booking, nil
}

// Bookings lists the caller's bookings in the order they were made.
func (s *Service) Bookings(ctx context.Context) ([]domain.Booking, error) {
	items, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking.Bookings: %w", err)
	}
	return items, nil
}
