package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"vedtoob/internal/bootdev"
	"vedtoob/internal/catalog"
	"vedtoob/internal/cli"
	"vedtoob/internal/config"
	"vedtoob/internal/readme"
	"vedtoob/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout carries only command output
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	client := bootdev.NewClient(cfg.APIBaseURL)
	slog.Debug("Content API client created", "base_url", cfg.APIBaseURL, "strategy", cfg.ResolveStrategy)

	deps := &cli.Deps{
		Resolver:   catalog.NewResolver(client, cfg.ResolveStrategy),
		Extractor:  readme.NewExtractor(client),
		Prettifier: render.NewPrettifier(cfg.ConverterPath, cfg.WrapColumns),
		Printer:    render.NewPrinter(os.Stdout, cfg.Style, cfg.ColorMode),
		Logger:     logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCommand(deps).ExecuteContext(ctx)
}
