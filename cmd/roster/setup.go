package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/service/registry"
	"github.com/sandevgo/roster/internal/storage/sqlite"
	"github.com/sandevgo/roster/internal/transport/cli"
	"github.com/sandevgo/roster/internal/transport/telegram"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/sandevgo/roster/pkg/srv"
)

func NewServices(ctx context.Context) ([]srv.Service, error) {
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	appCfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse App config: %w", err)
	}

	// 2. Registry
	reg, cleanup, err := initRegistry(ctx, appCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}
	if cleanup != nil {
		services = append(services, srv.NewCleanup(cleanup))
	}

	// 3. Dispatch
	router := command.New(command.NewClassifier(), reg)

	// 4. Transports
	transports, err := initTransports(ctx, appCfg, router)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, fmt.Errorf("failed to initialize transports: %w", err)
	}
	services = append(services, transports...)

	return services, nil
}

func initRegistry(ctx context.Context, cfg *config.AppConfig) (core.Registry, func() error, error) {
	logger := log.FromCtx(ctx)

	switch cfg.GetStorage() {
	case core.StorageSQLite:
		db, err := sqlite.NewDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug().Msg("using in-memory sqlite registry")
		return sqlite.NewRegistryRepo(db), db.Close, nil
	default:
		logger.Debug().Msg("using map registry")
		return registry.NewMemory(), nil, nil
	}
}

func initTransports(ctx context.Context, cfg *config.AppConfig, router core.CmdRouter) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	// Telegram Bot
	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, router)
		if err != nil {
			for _, s := range services {
				_ = s.Shutdown(ctx)
			}
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
