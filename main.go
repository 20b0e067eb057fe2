package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"doc_relay_backend/bootstrap"
	"doc_relay_backend/config"
	"doc_relay_backend/pkg/logging"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logging.Init(cfg.AppEnv, cfg.LogLevel)

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		logging.Logger.Info("Server listening", "addr", "http://localhost:"+cfg.HttpPort)
		listenErr <- app.Listen()
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			logging.Logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logging.Logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("fail Shutdown", "error", err)
		os.Exit(1)
	}
}
