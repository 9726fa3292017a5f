package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/internal/service/booking"
)

type bookingService interface {
	Book(ctx context.Context, in booking.BookInput) (*domain.Booking, error)
	Bookings(ctx context.Context) ([]domain.Booking, error)
	ScheduleReminder(ctx context.Context, in booking.ReminderInput) (*domain.Reminder, error)
	Reminders(ctx context.Context) ([]domain.Reminder, error)
	CancelReminder(ctx context.Context, id uuid.UUID) error
}

// BookingHandler serves session bookings and wellness reminders.
type BookingHandler struct {
	svc bookingService
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: logger.With("handler", "booking")}
}

// Book handles POST /bookings.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var in booking.BookInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.svc.Book(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// Bookings handles GET /bookings.
func (h *BookingHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Bookings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.Booking]{Items: items, Total: len(items)})
}

// ScheduleReminder handles POST /reminders.
func (h *BookingHandler) ScheduleReminder(w http.ResponseWriter, r *http.Request) {
	var in booking.ReminderInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rem, err := h.svc.ScheduleReminder(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rem)
}

// Reminders handles GET /reminders.
func (h *BookingHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Reminders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.Reminder]{Items: items, Total: len(items)})
}

// CancelReminder handles DELETE /reminders/{id}.
func (h *BookingHandler) CancelReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	if err := h.svc.CancelReminder(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
