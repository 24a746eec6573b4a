package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/modescope/internal/agent"
	"github.com/gabapcia/modescope/internal/config"
	"github.com/gabapcia/modescope/internal/explorer"
	"github.com/gabapcia/modescope/internal/explorerplugin"
	"github.com/gabapcia/modescope/internal/handlers/cli"
	"github.com/gabapcia/modescope/internal/infra/explorer/blockscout"
	"github.com/gabapcia/modescope/internal/pkg/logger"
	"github.com/gabapcia/modescope/internal/pkg/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	client := blockscout.NewClient(cfg.ExplorerURL, blockscout.WithTimeout(cfg.HTTPTimeout))

	plugin, err := explorerplugin.New(explorer.New(client))
	if err != nil {
		return err
	}

	host := agent.NewHost(agent.NewRuntime(cfg.AgentName))
	if err := host.Register(plugin); err != nil {
		return err
	}

	return cli.Run(ctx, host)
}
