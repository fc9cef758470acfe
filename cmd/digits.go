package main

import (
	"fmt"

	"baseconv/internal/config"
	"baseconv/internal/converter"
	"baseconv/internal/presenter"
	"baseconv/pkg/domain"

	"github.com/spf13/cobra"
)

func digitsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digits",
		Short: "Prints the valid digits of a radix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			radix := presenter.NewOptions(cfg).DefaultFrom
			if name, _ := cmd.Flags().GetString("base"); name != "" {
				r, err := domain.ParseRadix(name)
				if err != nil {
					return err //nolint: wrapcheck
				}
				radix = r
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(converter.ValidDigits(radix)))

			return err //nolint: wrapcheck
		},
	}
	cmd.Flags().StringP("base", "b", "", "Radix: bin, oct, dec, hex (default from config)")

	return cmd
}
