package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/roster/internal/core"
)

type AppConfig struct {
	RuntimePath string `env:"ROSTER_RUNTIME_PATH" envDefault:".roster"`
	// Registry backend: memory or sqlite
	Storage string `env:"ROSTER_STORAGE" envDefault:"memory"`

	// Transport Flags
	EnableCLI      bool `env:"ROSTER_ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"ROSTER_ENABLE_TELEGRAM" envDefault:"false"`

	Prompt          string `env:"ROSTER_PROMPT" envDefault:"roster> "`
	MaxReadFailures int    `env:"ROSTER_MAX_READ_FAILURES" envDefault:"5"`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) validate() error {
	switch c.Storage {
	case core.StorageMemory, core.StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q: want %s or %s", c.Storage, core.StorageMemory, core.StorageSQLite)
	}
	if c.MaxReadFailures < 1 {
		return fmt.Errorf("ROSTER_MAX_READ_FAILURES must be at least 1, got %d", c.MaxReadFailures)
	}
	if !c.EnableCLI && !c.EnableTelegram {
		return fmt.Errorf("no transport enabled: set ROSTER_ENABLE_CLI or ROSTER_ENABLE_TELEGRAM")
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetStorage() string {
	return c.Storage
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) GetMaxReadFailures() int {
	return c.MaxReadFailures
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
