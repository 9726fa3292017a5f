package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mazag-backend/internal/domain"
)

type onboardingService interface {
	Save(ctx context.Context, resp domain.OnboardingResponse) (*domain.OnboardingResponse, error)
	Load(ctx context.Context) (*domain.OnboardingResponse, error)
	Exists(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

// OnboardingHandler serves the questionnaire endpoints.
type OnboardingHandler struct {
	svc onboardingService
	log *slog.Logger
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(svc onboardingService, logger *slog.Logger) *OnboardingHandler {
	return &OnboardingHandler{svc: svc, log: logger.With("handler", "onboarding")}
}

type onboardingStatusResponse struct {
	Completed bool `json:"completed"`
}

// Save handles PUT /onboarding.
func (h *OnboardingHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.OnboardingResponse
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.svc.Save(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// Get handles GET /onboarding.
func (h *OnboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Load(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if resp == nil {
		writeError(w, http.StatusNotFound, "onboarding not completed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Status handles GET /onboarding/status.
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.Exists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, onboardingStatusResponse{Completed: ok})
}

// Clear handles DELETE /onboarding.
func (h *OnboardingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
