package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/shoplens-ai/shoplensgo/internal/ai"
	"github.com/shoplens-ai/shoplensgo/internal/buildinfo"
	"github.com/shoplens-ai/shoplensgo/internal/config"
	"github.com/shoplens-ai/shoplensgo/internal/middleware"
	"github.com/shoplens-ai/shoplensgo/internal/utils"
)

// Router wraps the mux router, configuration and the completion client
type Router struct {
	*mux.Router
	cfg *config.Config
	// completer is nil when no AI credential is configured; AI routes
	// then fail per-request with a configuration error.
	completer ai.Completer
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(cfg *config.Config, completer ai.Completer) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		cfg:       cfg,
		completer: completer,
	}

	r.Use(middleware.RequestLogMiddleware)
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", r.getStatus).Methods("GET")
	// OPTIONS registered so preflights reach the CORS middleware
	api.HandleFunc("/analyze", r.handleAnalyze).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat", r.handleChat).Methods("POST", "OPTIONS")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   buildinfo.Summary(),
		"startedAt": buildinfo.StartTime,
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "running",
		"service":  "shoplens-gateway",
		"provider": r.cfg.AI.Provider,
	})
}

// respondAIError maps a failed AI pipeline call to a response. Errors
// are terminal for the request; there is no retry. reqCtx identifies
// what was being processed for the server-side log.
func respondAIError(w http.ResponseWriter, req *http.Request, reqCtx string, err error) {
	requestID := middleware.GetRequestID(req.Context())

	var upstream *ai.UpstreamError
	if errors.As(err, &upstream) {
		log.Printf("❌ [%s] Upstream failure (%s): status %d", requestID, reqCtx, upstream.StatusCode)
		// Surface the upstream body for diagnostics
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":    "completion API request failed",
			"upstream": upstream.Body,
		})
		return
	}

	var extraction *utils.ExtractionError
	if errors.As(err, &extraction) {
		log.Printf("❌ [%s] Extraction failure (%s): %v", requestID, reqCtx, err)
		respondError(w, http.StatusInternalServerError, "model reply contained no parseable result")
		return
	}

	log.Printf("❌ [%s] AI request failed (%s): %v", requestID, reqCtx, err)
	respondError(w, http.StatusInternalServerError, "AI request failed")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
