package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"welcome-app/responder"
	"welcome-app/server"
	"welcome-app/utils"

	"go.uber.org/zap"
)

func main() {
	// Initialize the logger
	logger, err := utils.InitLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load config.yaml (optional) and PORT
	config, err := utils.GetAppConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Setup context to handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(config, responder.NewRouter(), logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.String("addr", srv.Addr()), zap.Error(err))
	}
}
