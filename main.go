package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/readcoach/internal/ai"
	"github.com/example/readcoach/internal/database"
	"github.com/example/readcoach/internal/progress"
	"github.com/example/readcoach/internal/review"
	"github.com/example/readcoach/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := server.LoadConfig()

	if err := database.Connect(cfg.BookDBPath, cfg.ResultsDBPath); err != nil {
		sugar.Fatalw("failed to connect to databases", "error", err)
	}
	defer database.Close()

	enricher, err := ai.New()
	if err != nil {
		sugar.Fatalw("failed to create enrichment client", "error", err)
	}
	analyzer := ai.NewAnalysisClient(cfg.AnalysisURL, cfg.AnalysisModel)
	speech := ai.NewGoogleTTS(cfg.TTSLanguage)

	words := database.NewWordRepository()
	books := database.NewBookRepository()
	results := database.NewResultRepository()
	mistakes := database.NewMistakeRepository(sugar)

	generator := review.NewGenerator(words, mistakes)
	tracker := progress.NewTracker(words, mistakes, enricher, sugar)

	handlers := server.NewHandlers(sugar, words, books, results, generator, tracker, analyzer, speech)
	srv := server.NewServer(cfg, handlers)

	// Shut down cleanly on Ctrl+C / SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		sig := <-sigChan
		sugar.Infow("received signal", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("error during shutdown", "error", err)
		}
		close(done)
	}()

	sugar.Infow("server started", "addr", cfg.Addr)
	if err := srv.Run(); err != nil {
		sugar.Fatalw("server error", "error", err)
	}

	<-done
	sugar.Info("server stopped successfully")
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
