package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/shoplens-ai/shoplensgo/internal/config"
)

// GeminiClient adapts Google Gemini to the Completer interface using the
// official SDK
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	// The config default model is an OpenAI id; ignore it here
	modelName := cfg.Model
	if modelName == "" || strings.HasPrefix(modelName, "gpt-") {
		modelName = "gemini-2.0-flash"
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close closes the client connection
func (c *GeminiClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Complete flattens the role-tagged conversation into a single prompt.
// The SDK has its own chat-session API, but the gateway treats every
// request as one-shot, so a transcript-style prompt is enough.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var prompt strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "system":
			prompt.WriteString(m.Content)
			prompt.WriteString("\n\n")
		case "assistant":
			prompt.WriteString("Assistant: " + m.Content + "\n")
		default:
			prompt.WriteString("User: " + m.Content + "\n")
		}
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", &UpstreamError{StatusCode: 502, Body: err.Error()}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var fullText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullText += string(txt)
		}
	}

	return fullText, nil
}
