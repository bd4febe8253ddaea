package ai

import (
	"context"
	"fmt"

	"github.com/shoplens-ai/shoplensgo/internal/config"
)

// Message is a single role-tagged entry in a completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer sends a conversation to an upstream completion API and
// returns the raw generated text. The text is NOT guaranteed to be pure
// JSON; callers run it through utils.ExtractJSONObject.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// UpstreamError is a non-success reply from the completion API. The
// upstream body is kept verbatim for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion API error (status %d): %s", e.StatusCode, e.Body)
}

// NewCompleter builds the provider selected by config. Returns an error
// for an unknown provider name; a missing API key is handled later,
// per-request, so the server can start without one.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIClient(cfg), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
}
