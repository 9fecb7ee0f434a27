// File: cmd/server/main.go
package main

import (
	"context"
	"log" // Standard log for critical startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"

	"quotes_backend/internal/config"
	"quotes_backend/internal/platform/database"
	"quotes_backend/internal/platform/logger"
	"quotes_backend/internal/profile"
	"quotes_backend/internal/quote"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		runSeed()
		return
	}

	// Default: Start server
	startServer()
}

func startServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	go func() {
		if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatalf("FATAL: Server failed to start or crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
	log.Println("INFO: Application exiting.")
}

// runSeed populates the quote table from the fixed corpus. It is an
// administrative operation, idempotent and safe to re-run.
func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration for seed: %v", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger for seed: %v", err)
	}
	db, err := database.NewGORM(cfg)
	if err != nil {
		appLogger.Fatal("FATAL: Failed to initialize database for seed", zap.Error(err))
	}
	defer database.CloseGORMDB(db)

	if err := db.AutoMigrate(&quote.Quote{}, &quote.LikedQuote{}, &profile.Profile{}); err != nil {
		appLogger.Fatal("FATAL: Failed to migrate database schema for seed", zap.Error(err))
	}

	quoteService := quote.NewService(quote.NewGORMRepository(db), appLogger)
	added, total, err := quoteService.SeedQuotes(context.Background())
	if err != nil {
		appLogger.Fatal("FATAL: Quote seeding failed", zap.Error(err))
	}
	appLogger.Info("Quote seeding completed successfully.",
		zap.Int("added", added),
		zap.Int64("total", total),
	)
}
