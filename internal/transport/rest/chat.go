package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mazag-backend/internal/service/chat"
)

type chatService interface {
	Send(ctx context.Context, text string) (*chat.Reply, error)
}

// ChatHandler serves the support chat.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatMessageRequest struct {
	Text string `json:"text"`
}

// Send handles POST /chat/messages.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.Send(r.Context(), req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
