package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"wordletracker/internal/config"
	"wordletracker/internal/database"
	"wordletracker/internal/handlers"
	"wordletracker/internal/metrics"
	"wordletracker/internal/repository"
	"wordletracker/internal/security"
	"wordletracker/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	puzzleRepo := repository.NewPuzzleRepository(db)
	guessRepo := repository.NewGuessRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	// Initialize services
	tokens, err := security.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}
	authService := service.NewAuthService(userRepo, tokens)
	gameService := service.NewGameService(puzzleRepo, guessRepo)
	statsService := service.NewStatsService(guessRepo, leaderboardRepo)

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize handlers
	limiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	middleware := handlers.NewMiddleware(authService, limiter, collector)

	handler := handlers.NewRouter(
		middleware,
		handlers.NewAuthHandler(authService),
		handlers.NewGameHandler(gameService, collector),
		handlers.NewStatsHandler(statsService),
		handlers.NewHealthHandler(db),
		metrics.Handler(registry),
	)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
