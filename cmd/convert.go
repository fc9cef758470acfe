package main

import (
	"baseconv/internal/config"
	"baseconv/internal/console"
	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/domain"

	"github.com/spf13/cobra"
)

// sessionFlags adds --from and --to to cmd. Empty values keep the configured defaults.
func sessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "Source radix: bin, oct, dec, hex (default from config)")
	cmd.Flags().StringP("to", "t", "", "Target radix: bin, oct, dec, hex (default from config)")
}

// newSession starts a presenter session honoring the --from and --to flags.
func newSession(cmd *cobra.Command, cfg *config.Config) (*presenter.Session, error) {
	s := presenter.New(converter.New(), presenter.NewOptions(cfg))

	for name, set := range map[string]func(domain.Radix){"from": s.SetFrom, "to": s.SetTo} {
		value, _ := cmd.Flags().GetString(name)
		if value == "" {
			continue
		}
		r, err := domain.ParseRadix(value)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		set(r)
	}

	return s, nil
}

func convertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [flags] <number>",
		Short:   "Converts a number between radices",
		Example: "  baseconv convert --from hex --to dec FF",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			s.SetInput(args[0])

			return console.WriteOutcome(cmd.OutOrStdout(), s.View()) //nolint: wrapcheck
		},
	}
	sessionFlags(cmd)

	return cmd
}
