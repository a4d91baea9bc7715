package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ign-lookup-service/internal/config"
	"ign-lookup-service/internal/logging"
	"ign-lookup-service/internal/server"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "ign-lookup-service",
		Version: server.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
