package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/proposalboard/proposalboard/internal/api"
	"github.com/proposalboard/proposalboard/internal/config"
	"github.com/proposalboard/proposalboard/internal/db"
	"github.com/proposalboard/proposalboard/internal/logging"
)

func main() {
	logger := logging.New("proposalboard")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.NewStore(db.DBConfig{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		DSN:    cfg.DBDSN,
	})
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}
	defer func() { _ = store.Close() }()

	r := api.NewRouter(store)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.Printf("Starting server on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	<-ctx.Done()
	logger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Println("Server exiting")
}
