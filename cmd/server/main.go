package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/gateway"
	"github.com/example/storefront/pkg/carousel"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/seed"
	"github.com/example/storefront/pkg/store"
	"go.uber.org/zap"
)

func main() {
	// Load config; STOREFRONT_CONFIG is optional, defaults run out of the box
	cfg, err := config.Load(os.Getenv("STOREFRONT_CONFIG"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := buildLogger(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront server",
		zap.String("address", cfg.Server.Addr()))

	// Seed the state container; everything lives in memory and resets on
	// restart
	st := store.New(seed.Initial(), logger)
	defer st.Close()

	// Create gateway
	gw := gateway.NewGateway(cfg, logger, st)
	gw.SetupRoutes()

	// Hero-slide rotation, read-only display refresh
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rotator := carousel.NewRotator(st,
		time.Duration(cfg.Carousel.RotateSeconds)*time.Second,
		logger.Named("carousel"),
		func(slide models.HeroSlide) {
			logger.Debug("carousel slide", zap.String("id", slide.ID), zap.String("title", slide.Title))
		})
	go rotator.Run(ctx)

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	logger.Info("Gateway started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-gwErr:
		logger.Fatal("Gateway error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = parsed
	}
	return cfg.Build()
}
