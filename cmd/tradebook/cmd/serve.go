package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal HTTP API",
	Long: `Start the HTTP server backing the journal UI.

Configuration is read from --config (YAML or JSON) when given,
otherwise from defaults plus TRADEBOOK_* environment variables.

Examples:
  tradebook serve
  tradebook serve --config tradebook.yaml
  tradebook serve --addr :9000 --data ./ledgers`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveDataDir    string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
	serveCmd.Flags().StringVarP(&serveDataDir, "data", "d", "", "ledger data directory (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error

	if serveConfigPath != "" {
		cfg, err = config.LoadFromFile(serveConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Flags beat config file and environment
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDataDir != "" {
		cfg.Storage.DataDir = serveDataDir
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	log.Printf("tradebook listening on %s (data: %s)", cfg.Server.Addr, cfg.Storage.DataDir)
	return srv.ListenAndServe()
}
