package main

import (
	"context"
	"os/signal"
	"syscall"

	"baseconv/internal/config"
	"baseconv/internal/console"

	"github.com/spf13/cobra"
)

func interactiveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Runs an interactive conversion session on the terminal",
		Long:  console.Help,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}

			return console.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), s) //nolint: wrapcheck
		},
	}
	sessionFlags(cmd)

	return cmd
}
