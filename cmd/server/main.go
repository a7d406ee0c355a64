package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/teamsched/scheduler-backend/internal/app"
	"github.com/teamsched/scheduler-backend/internal/config"
	"github.com/teamsched/scheduler-backend/internal/db"
	"github.com/teamsched/scheduler-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("failed to configure logger: %v", err)
	}
	log.SetLevel(l.GetLevel())
	log.SetFormatter(l.Formatter)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect DB
	var pool *pgxpool.Pool
	if cfg.DBDSN != "" {
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			l.Fatalf("failed to connect to db: %v", err)
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := db.Migrate(cfg.DBDSN, l); err != nil {
				l.Fatalf("failed to migrate db: %v", err)
			}
		}
	}

	container, err := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		MaxRangeDays: cfg.MaxRangeDays,
		RateLimit:    cfg.RateLimit,
		DBPool:       pool,
		JWTSecret:    cfg.JWTSecret,
		Logger:       l,
	})
	if err != nil {
		l.Fatalf("failed to initialize app: %v", err)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in separate goroutine
	go func() {
		l.WithField("addr", cfg.HTTPAddr).Info("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	l.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Errorf("server forced to shutdown: %v", err)
	}

	l.Info("server exited gracefully")
}
