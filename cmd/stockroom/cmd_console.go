package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stockroom/config"
	"github.com/shashiranjanraj/stockroom/pkg/app"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
)

// stockroom console: interactive session on stdin/stdout.
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive stock management session",
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, _ []string) error {
	if err := boot(cmd); err != nil {
		return err
	}
	defer logger.Close() //nolint:errcheck

	seed, _ := cmd.Flags().GetBool("seed")
	rt, err := app.New().Seed(seed).Boot(cmd.Context())
	if err != nil {
		return err
	}
	return rt.Console(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}

// boot loads config, applies command-line overrides and rebuilds the logger.
func boot(cmd *cobra.Command) error {
	if err := config.Load(); err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("max-products"); f != nil && f.Changed {
		config.Set("MAX_PRODUCTS", f.Value.String())
	}
	logger.Configure()
	return nil
}
