package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dokonepal/doko/internal"
	"github.com/dokonepal/doko/internal/auth"
	"github.com/dokonepal/doko/internal/index"
	"github.com/dokonepal/doko/internal/kvstore"
	"github.com/dokonepal/doko/internal/mcpserver"
	"github.com/dokonepal/doko/internal/service"
	"github.com/dokonepal/doko/internal/sse"
	"github.com/dokonepal/doko/internal/store"
	"github.com/dokonepal/doko/internal/timeline"
	pkgconfig "github.com/dokonepal/doko/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// runMCP starts the MCP server on stdio, sharing the same data directory
// and activity index as the HTTP server.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Data.Path, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	provider, err := kvstore.NewFS(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init kvstore: %w", err)
	}
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	st := store.New(provider, logger)
	if err := st.Load(); err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	sched := timeline.NewSchedule(timeline.DefaultWindowStart, timeline.DefaultWindowEnd)
	mgr := auth.NewManager(provider, logger, cfg.Auth.InactivityLimit())
	broker := sse.NewBroker(0)
	defer broker.Close()

	svc := service.New(st, db, sched, mgr, broker, logger)
	svc.ReindexActivity()
	return mcpserver.New(svc).ServeStdio()
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:   "doko",
		Usage:  "Grocery inventory and wireframe project tracker with dashboard stats and a project timeline",
		Action: runServe,
		Flags:  []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server (default)",
				Action: runServe,
				Flags:  []cli.Flag{configFlag},
			},
			{
				Name:   "mcp",
				Usage:  "Start the MCP server on stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
