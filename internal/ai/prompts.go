package ai

import (
	"encoding/json"
	"fmt"
)

const AnalyzeSystemPrompt = `
You are ShopLens, a skeptical shopping analyst. You are given details a
browser extension scraped from a product page. Judge whether the product
is worth buying at the detected price.

### OUTPUT FORMAT
You must return a JSON object with the following structure:
{
  "verdict": "buy" | "wait" | "skip",
  "score": 0-10,
  "summary": "One paragraph for the shopper",
  "priceAssessment": "Is the detected price fair?",
  "redFlags": ["..."],
  "questions": ["What the shopper should check before buying"]
}

### RULES
- Base your judgement only on the details provided. Do not invent specs.
- Inflated review counts with middling ratings are a red flag.
- For bundles, judge the bundle as a whole, not the headline item.
`

const ChatSystemPrompt = `
You are ShopLens, a helpful shopping assistant. The shopper is looking at
a specific product; its scraped context is below. Answer their questions
about it concisely and honestly.

### OUTPUT FORMAT
You must return a JSON object with the following structure:
{
  "reply": "Your answer to the shopper",
  "suggestedQuestions": ["Up to three natural follow-ups"]
}

### PRODUCT CONTEXT
%s
`

// maxChatHistory bounds how much prior conversation is forwarded
// upstream; older entries are dropped.
const maxChatHistory = 6

// AnalyzeInput carries the sanitized product fields for prompt building.
type AnalyzeInput struct {
	ProductName         string
	ProductURL          string
	DetectedPrice       string
	DetectedRating      string
	DetectedReviewCount string
	IsBundle            bool
}

// BuildAnalyzeMessages assembles the conversation for a product analysis
func BuildAnalyzeMessages(in AnalyzeInput) []Message {
	user := fmt.Sprintf(
		"Product: %s\nURL: %s\nDetected price: %s\nDetected rating: %s\nDetected review count: %s\nBundle listing: %t",
		in.ProductName, in.ProductURL, in.DetectedPrice, in.DetectedRating, in.DetectedReviewCount, in.IsBundle,
	)

	return []Message{
		{Role: "system", Content: AnalyzeSystemPrompt},
		{Role: "user", Content: user},
	}
}

// BuildChatMessages assembles the conversation for a product chat turn.
// Only the last maxChatHistory history entries are forwarded. The
// product context is arbitrary scraped data and is embedded as-is.
func BuildChatMessages(message string, productContext map[string]interface{}, history []Message) []Message {
	ctxJSON := "{}"
	if productContext != nil {
		if b, err := json.Marshal(productContext); err == nil {
			ctxJSON = string(b)
		}
	}

	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: fmt.Sprintf(ChatSystemPrompt, ctxJSON)})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	return messages
}
