package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/container"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	log := config.Logger

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if *migrateOnly {
		config.InitLogger(cfg.Log)
		if err := config.Connect(ctx, cfg.Database); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		if err := container.Migrate(config.DB); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Info("Database migration finished")
		return
	}

	c, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	stop := make(chan struct{})
	go c.RateLimiter.Janitor(stop)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server running on port %s (%s)", cfg.Server.Port, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	close(stop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server exiting")
}
