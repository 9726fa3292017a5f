// Package claude implements the chat replier on the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/mazag-backend/internal/config"
)

const basePrompt = `You are Mazag, a supportive wellness companion inside a mental health app.
You are not a therapist and you never diagnose. Keep replies short (two to four sentences),
warm and practical. When it helps, suggest one of the app's breathing, meditation, journaling
or movement exercises, or booking a session with a therapist.`

// Replier sends a single user turn to Claude with a tone directive as system prompt.
type Replier struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewReplier creates a Replier from chat config. Extra options are appended
// after the API key (tests pass option.WithBaseURL).
func NewReplier(cfg config.ChatConfig, logger *slog.Logger, opts ...option.RequestOption) *Replier {
	all := append([]option.RequestOption{option.WithAPIKey(cfg.AnthropicAPIKey)}, opts...)
	return &Replier{
		client:    anthropic.NewClient(all...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "claude"),
	}
}

// Reply returns the model's text answer to text.
func (r *Replier) Reply(ctx context.Context, text, personality string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	system := basePrompt
	if personality != "" {
		system += "\n\n" + personality
	}

	start := time.Now()
	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: r.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			r.log.WarnContext(ctx, "claude api error", slog.Int("status", apiErr.StatusCode))
		}
		return "", fmt.Errorf("claude: messages.new: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", errors.New("claude: empty response")
	}

	r.log.DebugContext(ctx, "claude reply",
		slog.String("model", r.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return reply, nil
}
