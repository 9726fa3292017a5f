package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/internal/service/personalization"
)

type homeService interface {
	Home(ctx context.Context, mood domain.Mood) (*personalization.HomeView, error)
}

// HomeHandler serves the personalized home screen.
type HomeHandler struct {
	svc homeService
	log *slog.Logger
}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler(svc homeService, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{svc: svc, log: logger.With("handler", "home")}
}

// Get handles GET /home?mood=.
func (h *HomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	mood := domain.Mood(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("mood"))))

	view, err := h.svc.Home(r.Context(), mood)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
