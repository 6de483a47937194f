package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/service/installer"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Write the Roster configuration file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		state, err := installer.RunWizard()
		if err != nil {
			return err
		}

		// Check the written file parses before pointing the user at it
		if _, err := godotenv.Read(state.EnvPath); err != nil {
			logger.Warn().Err(err).Str("path", state.EnvPath).Msg("failed to read back .env file")
			return err
		}

		logger.Info().Msgf("configuration written to: %s", state.EnvPath)
		logger.Info().Msgf("runtime directory: %s", config.GetRuntimePath())
		logger.Info().Msg("Setup complete! You can now run 'roster start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
