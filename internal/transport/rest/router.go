package rest

import (
	"net/http"

	"github.com/heartmarshall/mazag-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Onboarding *OnboardingHandler
	Home       *HomeHandler
	Catalog    *CatalogHandler
	Chat       *ChatHandler
	Booking    *BookingHandler
	// Metrics exposes the Prometheus scrape endpoint. Optional.
	Metrics http.Handler
	// ChatLimit throttles chat messages per client. Optional.
	ChatLimit middleware.Middleware
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("PUT /onboarding", h.Onboarding.Save)
	mux.HandleFunc("GET /onboarding", h.Onboarding.Get)
	mux.HandleFunc("GET /onboarding/status", h.Onboarding.Status)
	mux.HandleFunc("DELETE /onboarding", h.Onboarding.Clear)

	mux.HandleFunc("GET /home", h.Home.Get)

	mux.HandleFunc("GET /therapists", h.Catalog.Therapists)
	mux.HandleFunc("GET /therapists/options", h.Catalog.TherapistOptions)
	mux.HandleFunc("GET /therapists/{id}", h.Catalog.Therapist)
	mux.HandleFunc("GET /exercises", h.Catalog.Exercises)
	mux.HandleFunc("GET /exercises/{id}", h.Catalog.Exercise)

	var send http.Handler = http.HandlerFunc(h.Chat.Send)
	if h.ChatLimit != nil {
		send = h.ChatLimit(send)
	}
	mux.Handle("POST /chat/messages", send)

	mux.HandleFunc("POST /bookings", h.Booking.Book)
	mux.HandleFunc("GET /bookings", h.Booking.Bookings)
	mux.HandleFunc("POST /reminders", h.Booking.ScheduleReminder)
	mux.HandleFunc("GET /reminders", h.Booking.Reminders)
	mux.HandleFunc("DELETE /reminders/{id}", h.Booking.CancelReminder)

	return mux
}
