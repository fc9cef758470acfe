// Package main provides the CLI entrypoint of the base converter.
// It wires subcommands (convert, digits, interactive, serve), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"

	"baseconv/internal/config"
	"baseconv/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command and registers subcommands before
// executing the CLI. Configuration and logging are initialized once the flags
// are parsed, so -c works in any position.
func main() {
	cfg := new(config.Config)

	rootCmd := &cobra.Command{
		Use:          "baseconv",
		Short:        "Converts integers between binary, octal, decimal and hexadecimal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("could not load config file: %w", err)
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		convertCommand(cfg),
		digitsCommand(cfg),
		interactiveCommand(cfg),
		serveCommand(cfg),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
