package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blankquiz/internal/config"
	"blankquiz/internal/handlers"
	"blankquiz/internal/jobs"
	"blankquiz/internal/llm"
	_ "blankquiz/internal/llm/gemini"
	"blankquiz/internal/metrics"
	"blankquiz/internal/prompts"
	"blankquiz/internal/question"
	"blankquiz/internal/routers"
	"blankquiz/internal/scoring"
	"blankquiz/internal/store"
	"blankquiz/internal/topics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func registerRoutes(router *chi.Mux, quizHandler *handlers.QuizHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.QuizRoutes(router, quizHandler)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("db_driver", cfg.DBDriver))

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	provider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize provider", zap.Error(err))
	}

	db, err := store.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.Init(db); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	directory := topics.NewDirectory(db)
	ledger := scoring.NewLedger(db)
	generator := question.NewGenerator(provider, promptManager, logger, cfg.GenerationTimeout)

	quizHandler := handlers.NewQuizHandler(generator, directory, ledger, logger)
	healthHandler := handlers.NewHealthHandler(provider, promptManager, db)

	var reporterJob *jobs.ActivityReporterJob
	if cfg.ReportEnabled {
		reporterJob = jobs.NewActivityReporterJob(ledger, directory, logger, cfg.ReportSchedule)
		if err := reporterJob.Start(); err != nil {
			logger.Error("Failed to start activity reporter", zap.Error(err))
		}
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	registerRoutes(router, quizHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Quiz service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Quiz service shutting down...")

	if reporterJob != nil {
		reporterJob.Stop()
	}

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Quiz service exited")
}
