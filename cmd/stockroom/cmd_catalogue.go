package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/stockroom/app/services"
	"github.com/shashiranjanraj/stockroom/database/seeders"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/resource"
)

// stockroom catalogue: print the sample catalogue.
var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Print the sample catalogue report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := boot(cmd); err != nil {
			return err
		}
		defer logger.Close() //nolint:errcheck

		inv := services.NewInventory(services.WithLogger(logger.L))
		if err := seeders.SeedCatalogue(inv); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
			data, err := resource.CSV(inv.List())
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		fmt.Fprint(out, resource.List(inv.List()))
		sum := inv.Summary()
		fmt.Fprintf(out, "%d products, %d units, inventory value %s\n", sum.Products, sum.Units, sum.Value.StringFixed(2))
		return nil
	},
}

// stockroom version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stockroom version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stockroom %s\n", version)
	},
}

func init() {
	catalogueCmd.Flags().Bool("csv", false, "write the catalogue as CSV")
}
