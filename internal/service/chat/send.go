package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/internal/service/personalization"
	"github.com/heartmarshall/mazag-backend/pkg/ctxutil"
)

// CrisisMessage is returned verbatim when crisis language is detected.
const CrisisMessage = "I'm really sorry you're feeling this way. If you're thinking about harming yourself, please contact a trusted person or call the Egyptian Suicide Hotline at 16033 (if available). I can't handle emergencies — please seek immediate help."

// FallbackMessage replaces the bot turn when the collaborator fails.
const FallbackMessage = "Sorry, I encountered an error. Please try again."

// MaxMessageLength bounds a single user message in runes.
const MaxMessageLength = 2000

// Reply outcomes reported to the observer.
const (
	OutcomeCrisis   = "crisis"
	OutcomeReplied  = "replied"
	OutcomeFallback = "fallback"
)

var crisisPhrases = []string{"suicide", "kill myself", "i want to die"}

// IsCrisis reports whether text contains a self-harm phrase, ignoring case.
func IsCrisis(text string) bool {
	lowered := strings.ToLower(text)
	for _, p := range crisisPhrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// Reply is the bot turn for one user message.
type Reply struct {
	Text      string    `json:"text"`
	Crisis    bool      `json:"crisis"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"createdAt"`
}

// Send answers one user message. Crisis language never reaches the collaborator.
// A collaborator failure yields the fallback reply, not an error.
func (s *Service) Send(ctx context.Context, text string) (*Reply, error) {
	// Step 1: reject blank input.
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	// Step 2: crisis interceptor. Runs before any other check so crisis
	// language always gets the crisis reply, whatever the message length.
	if IsCrisis(text) {
		s.log.WarnContext(ctx, "crisis language detected", slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)))
		s.observe(OutcomeCrisis, 0)
		return &Reply{Text: CrisisMessage, Crisis: true, CreatedAt: s.now().UTC()}, nil
	}

	if len([]rune(text)) > MaxMessageLength {
		return nil, domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters", MaxMessageLength))
	}

	// Step 3: one pending reply per owner.
	owner := ctxutil.OwnerFromCtx(ctx)
	if !s.acquire(owner) {
		return nil, fmt.Errorf("chat.Send: reply already pending: %w", domain.ErrConflict)
	}
	defer s.release(owner)

	// Step 4: delegate with the caller's tone.
	personality := s.personality(ctx)

	start := time.Now()
	answer, err := s.replier.Reply(ctx, text, personality)
	elapsed := time.Since(start)
	if err != nil {
		s.log.ErrorContext(ctx, "chat reply failed", slog.String("error", err.Error()))
		s.observe(OutcomeFallback, elapsed)
		return &Reply{Text: FallbackMessage, Fallback: true, CreatedAt: s.now().UTC()}, nil
	}

	s.observe(OutcomeReplied, elapsed)
	return &Reply{Text: answer, CreatedAt: s.now().UTC()}, nil
}

// personality derives the tone directive from the stored profile.
// Any load problem falls back to the default tone.
func (s *Service) personality(ctx context.Context) string {
	profile, err := s.profiles.Load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "profile load failed, using default tone", slog.String("error", err.Error()))
		return personalization.ChatbotPersonality("")
	}
	if profile == nil {
		return personalization.ChatbotPersonality("")
	}
	return personalization.ChatbotPersonality(profile.CommunicationStyle)
}

func (s *Service) observe(outcome string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveChatReply(outcome, d)
	}
}
