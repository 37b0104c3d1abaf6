package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A spreadsheet-backed trading journal",
	Long: `Tradebook persists a trading journal into spreadsheet files and
serves it over HTTP.

It provides tools for:
  - Serving the journal API (load, save, create, delete, chart uploads)
  - Converting ledger files between xlsx, csv and sqlite storage
  - Printing portfolio summaries for any ledger file

Complete documentation is available at https://github.com/rustyeddy/tradebook`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
