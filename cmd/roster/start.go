package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/roster/pkg/log"
	"github.com/sandevgo/roster/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the command interpreter",
	Long:  `Builds the registry and starts the configured transports (console, Telegram). Runs until end of input or interrupt.`,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// logger setup
	var flushLog func()
	ctx, flushLog = setupLogger(ctx)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Debug().Msg("starting roster")

	services, err := NewServices(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize services")
		return err
	}

	run := srv.StartServices(ctx, stop, services)
	srv.ShutdownServices(ctx, services)
	logger.Debug().Msg("roster has been shut down")

	return run.Err()
}

func init() {
	rootCmd.AddCommand(startCmd)
}
