package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/quickai/server/internal/config"
	"codeberg.org/quickai/server/internal/logger"
)

// @title QuickAI API
// @version 1.0
// @description Usage-metered AI content tools
// @description
// @description Features:
// @description - Article and blog title generation
// @description - Text-to-image generation
// @description - Background and object removal
// @description - Resume review from PDF uploads
// @description - Free plan metering with premium upgrades

// @contact.name API Support
// @contact.url https://codeberg.org/quickai/server

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token issued by the identity provider. Format: Bearer {token}

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment, os.Getenv("LOG_LEVEL"))
	logger.Info("starting quickai server", "environment", cfg.Environment)

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 30 * time.Second,
		// external generation calls can take a while
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.Close()

	logger.Info("server stopped")
}
