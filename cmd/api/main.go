package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplens-ai/shoplensgo/internal/ai"
	"github.com/shoplens-ai/shoplensgo/internal/buildinfo"
	"github.com/shoplens-ai/shoplensgo/internal/config"
	"github.com/shoplens-ai/shoplensgo/internal/handlers"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Build the completion client. A missing credential is not fatal:
	// the gateway starts and AI routes return a configuration error
	// until AI_API_KEY is set.
	var completer ai.Completer
	if cfg.AI.APIKey == "" {
		log.Println("⚠️ AI_API_KEY is not set; /api/analyze and /api/chat will fail until configured")
	} else {
		completer, err = ai.NewCompleter(context.Background(), cfg.AI)
		if err != nil {
			log.Fatalf("Failed to init AI client: %v", err)
		}
		log.Printf("✅ AI client ready (provider: %s, model: %s)", cfg.AI.Provider, cfg.AI.Model)
	}

	// 3. Set up HTTP router
	router := handlers.NewRouter(cfg, completer)

	// 4. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 ShopLens gateway %s starting on port %s", buildinfo.Summary(), cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("⚠️ Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if gemini, ok := completer.(*ai.GeminiClient); ok {
		gemini.Close()
	}

	log.Println("✅ Shutdown complete")
}
