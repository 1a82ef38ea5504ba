package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/tomc882/supportchat/api"
	"github.com/tomc882/supportchat/chat"
	"github.com/tomc882/supportchat/config"
	"github.com/tomc882/supportchat/docs"
	"github.com/tomc882/supportchat/llm"
	"github.com/tomc882/supportchat/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting support chat backend...")
	log.Printf("HTTP Port: %d", cfg.Port)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Docs: %s", cfg.DocsPath)
	log.Printf("Model: %s", cfg.OpenAIModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Load the documentation corpus once at startup
	corpus, err := docs.Load(cfg.DocsPath)
	if err != nil {
		log.Fatalf("Failed to load docs: %v", err)
	}
	log.Printf("Loaded %d documents", len(corpus))

	// Initialize completion client
	completer := newCompleter(cfg)

	// Initialize pipeline
	pipeline := chat.NewPipeline(db, completer, docs.Render(corpus))

	// Initialize handler
	h := api.NewHandler(pipeline)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.RateLimitMax) / cfg.RateLimitWindow.Seconds()),
			Burst:     cfg.RateLimitMax,
			ExpiresIn: cfg.RateLimitWindow,
		}),
	}))

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %d", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Server stopped")
}

// newCompleter picks the completion client. LLM_MODE=MOCK runs without a
// credential; otherwise an API key is required.
func newCompleter(cfg *config.Config) llm.Completer {
	if os.Getenv("LLM_MODE") == "MOCK" {
		log.Println("LLM_MODE=MOCK detected, using mock completion client")
		return llm.NewMockCompleter()
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatalf("OPENAI_API_KEY is required")
	}
	return llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout)
}
