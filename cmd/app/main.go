package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MinecraftItemIcon_Go/internal/bootstrap"
	"github.com/osse101/MinecraftItemIcon_Go/internal/config"
	"github.com/osse101/MinecraftItemIcon_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title Minecraft Item Icon API
// @version 1.0
// @description Resolves Minecraft item identifiers to texture paths and display names, and searches the item catalogue.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, pool, err := bootstrap.LoadCatalogue(ctx, cfg)
	if err != nil {
		return err
	}
	components := bootstrap.ShutdownComponents{}
	if pool != nil {
		components.DBPool = pool
	}

	engine, err := bootstrap.NewEngine(cfg, cat)
	if err != nil {
		bootstrap.GracefulShutdown(ctx, components)
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		TextureBaseURL: cfg.TextureBaseURL,
		SearchLimit:    cfg.SearchLimit,
	}, engine, components.DBPool)
	components.Server = srv

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return err
}
