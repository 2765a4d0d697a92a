package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/qap/internal/app"
	"github.com/felixbrock/qap/internal/components"
	"github.com/felixbrock/qap/internal/config"
	"github.com/felixbrock/qap/internal/router"
	"github.com/felixbrock/qap/internal/telemetry"
)

func setupLogger(cfg config.Config) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "generate" {
		if err := generate(os.Args[2:], os.Stdout, os.Stderr); err != nil {
			config.Exitf("generate: %v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("App stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "qap-web", cfg.OTELEndpoint)
	if err != nil {
		slog.Error("telemetry setup failed, tracing disabled", slog.Any("err", err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("telemetry shutdown", slog.Any("err", err))
		}
	}()

	componentBuilder := app.ComponentBuilder{
		Index:    components.Index,
		Layout:   components.Layout,
		Home:     components.Home,
		Clusters: components.Clusters,
		Error:    components.Error,
	}

	a := app.App{
		Router:           router.New(),
		ComponentBuilder: componentBuilder,
		Config:           cfg,
	}

	return a.Start(ctx)
}
