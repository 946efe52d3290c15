package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom: appliance stock management",
	Long:  "Stockroom keeps a register of appliances and phones, their stock levels and inventory value.",
	// Running without a subcommand starts a console session.
	RunE:          runConsole,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int("max-products", 0, "maximum number of products (overrides MAX_PRODUCTS)")
	rootCmd.PersistentFlags().Bool("seed", false, "start with the sample catalogue")

	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(catalogueCmd)
	rootCmd.AddCommand(versionCmd)
}
