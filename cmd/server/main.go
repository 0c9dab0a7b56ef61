// Package main is the entry point for the greeting service HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/logging"
	"github.com/sebasr/greeting-service/internal/repository"
	"github.com/sebasr/greeting-service/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Greeting state lives for the lifetime of the process
	deps := &server.Dependencies{
		Config:       cfg,
		Logger:       logger,
		GreetingRepo: repository.NewMemoryGreetingRepository(),
		Registry:     registry,
	}

	router := server.New(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, logger, router, cfg.Server); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}

	logger.Info().Msg("server stopped")
}
