package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resume-engine/internal/analyzer"
	"resume-engine/internal/api/routes"
	"resume-engine/internal/ats"
	"resume-engine/internal/config"
	"resume-engine/internal/extractor"
	"resume-engine/internal/lexicon"
	"resume-engine/internal/logging"
	"resume-engine/internal/logging/types"
	"resume-engine/internal/parser"
	"resume-engine/internal/realtime"
	"resume-engine/internal/workers"
)

func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	adapterConfigs := make([]types.AdapterConfig, 0, len(cfg.Logging.Adapters))
	for _, a := range cfg.Logging.Adapters {
		adapterConfigs = append(adapterConfigs, types.AdapterConfig{
			Name:    a.Name,
			Type:    a.Type,
			Enabled: a.Enabled,
			Options: a.Options,
		})
	}
	if len(adapterConfigs) == 0 {
		adapterConfigs = append(adapterConfigs, types.AdapterConfig{
			Name:    "stdout",
			Type:    "stdout",
			Enabled: true,
			Options: map[string]interface{}{"format": cfg.Logging.Format},
		})
	}

	logger, err := logging.Initialize(cfg.Logging.Level, adapterConfigs)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Info("Starting resume gap analysis engine")

	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		logger.Error("Failed to load lexicon", map[string]interface{}{
			"path":  cfg.Lexicon.Path,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	logger.Info("Lexicon loaded", map[string]interface{}{
		"version":      lex.Version,
		"technologies": len(lex.Technologies),
		"synonyms":     len(lex.Synonyms),
	})

	pool := workers.NewPool(cfg)
	if err := pool.Start(); err != nil {
		logger.Error("Failed to start worker pool", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	cache := analyzer.NewResultCache(cfg)
	manager := realtime.NewManager(cfg, lex)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.StartJanitor(ctx)

	svc := &routes.Services{
		Parser:    parser.New(lex),
		Extractor: extractor.New(lex),
		Analyzer:  analyzer.New(lex),
		Scorer:    ats.New(lex),
		Cache:     cache,
		Realtime:  manager,
		Pool:      pool,
	}

	e := echo.New()
	e.HideBanner = true
	routes.SetupRoutes(e, cfg, svc)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		manager.Stop()
		cancel()

		if err := pool.Stop(); err != nil {
			logger.Error("Error stopping worker pool", map[string]interface{}{"error": err.Error()})
		}

		if err := cache.Close(); err != nil {
			logger.Error("Error closing cache", map[string]interface{}{"error": err.Error()})
		}

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}
