package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/shoplens-ai/shoplensgo/internal/ai"
	"github.com/shoplens-ai/shoplensgo/internal/utils"
)

// AnalyzeRequest represents the payload scraped from a product page.
// Free-text fields are typed as interface{} so anything that is not a
// string sanitizes to "" instead of failing the decode.
type AnalyzeRequest struct {
	ProductName         interface{} `json:"productName"`
	ProductURL          interface{} `json:"productUrl"`
	DetectedPrice       interface{} `json:"detectedPrice"`
	DetectedRating      interface{} `json:"detectedRating"`
	DetectedReviewCount interface{} `json:"detectedReviewCount"`
	IsBundle            bool        `json:"isBundle"`
}

// handleAnalyze runs a one-shot product analysis through the model
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := ai.AnalyzeInput{
		ProductName:         utils.SanitizeText(body.ProductName, 200),
		ProductURL:          utils.SanitizeText(body.ProductURL, 200),
		DetectedPrice:       utils.SanitizeText(body.DetectedPrice, 20),
		DetectedRating:      utils.SanitizeText(body.DetectedRating, 10),
		DetectedReviewCount: utils.SanitizeText(body.DetectedReviewCount, 20),
		IsBundle:            body.IsBundle,
	}

	if in.ProductName == "" {
		respondError(w, http.StatusBadRequest, "productName is required")
		return
	}

	if r.completer == nil {
		log.Printf("❌ Analyze %q rejected: AI_API_KEY is not configured", in.ProductName)
		respondError(w, http.StatusInternalServerError, "AI credential is not configured")
		return
	}

	raw, err := r.completer.Complete(req.Context(), ai.BuildAnalyzeMessages(in))
	if err != nil {
		respondAIError(w, req, "analyze "+in.ProductName, err)
		return
	}

	result, err := utils.ExtractJSONObject(raw)
	if err != nil {
		respondAIError(w, req, "analyze "+in.ProductName, err)
		return
	}

	// Stamped once, after extraction succeeded
	result["processedAt"] = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, http.StatusOK, result)
}
