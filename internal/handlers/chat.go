package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/shoplens-ai/shoplensgo/internal/ai"
	"github.com/shoplens-ai/shoplensgo/internal/utils"
)

// ChatRequest represents one turn of a product conversation
type ChatRequest struct {
	Message interface{} `json:"message"`
	// ProductContext is whatever the extension scraped; it is embedded
	// into the prompt as-is, never validated.
	ProductContext map[string]interface{} `json:"productContext"`
	ChatHistory    []ai.Message           `json:"chatHistory"`
}

// handleChat answers a follow-up question about the current product
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := utils.SanitizeText(body.Message, 500)
	if message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	if r.completer == nil {
		log.Printf("❌ Chat rejected: AI_API_KEY is not configured")
		respondError(w, http.StatusInternalServerError, "AI credential is not configured")
		return
	}

	raw, err := r.completer.Complete(req.Context(), ai.BuildChatMessages(message, body.ProductContext, body.ChatHistory))
	if err != nil {
		respondAIError(w, req, "chat "+snippet(message, 40), err)
		return
	}

	result, err := utils.ExtractJSONObject(raw)
	if err != nil {
		respondAIError(w, req, "chat "+snippet(message, 40), err)
		return
	}

	// Stamped once, after extraction succeeded
	result["processedAt"] = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, http.StatusOK, result)
}

// snippet shortens a message for log lines
func snippet(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n]) + "…"
	}
	return s
}
