package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/transport/mcp"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/sandevgo/roster/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the interpreter as an MCP tool over stdio",
	Long:  `Runs Roster as an MCP server on stdin/stdout. Console and Telegram transports are not started.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return fmt.Errorf("failed to init env: %w", err)
		}
		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return fmt.Errorf("failed to parse App config: %w", err)
		}

		reg, cleanup, err := initRegistry(ctx, appCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize registry: %w", err)
		}

		var services []srv.Service
		if cleanup != nil {
			services = append(services, srv.NewCleanup(cleanup))
		}
		services = append(services, mcp.NewServer(command.New(command.NewClassifier(), reg)))

		run := srv.StartServices(ctx, stop, services)
		srv.ShutdownServices(ctx, services)
		logger.Debug().Msg("mcp server has been shut down")
		return run.Err()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
