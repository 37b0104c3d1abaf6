// Package config loads the service configuration from a YAML or JSON
// file with environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/journal"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
}

// ServerConfig contains the HTTP listener parameters.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// StorageConfig locates the ledger files and chart images on disk.
type StorageConfig struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	ImageDir string `json:"image_dir" yaml:"image_dir"`
	Sheet    string `json:"sheet" yaml:"sheet"`
}

// LedgerConfig seeds the balances used when creating a new file.
type LedgerConfig struct {
	StartingBalanceCrypto float64 `json:"starting_balance_crypto" yaml:"starting_balance_crypto"`
	StartingBalanceForex  float64 `json:"starting_balance_forex" yaml:"starting_balance_forex"`
}

// LoadFromFile loads configuration from a file (YAML or JSON), applies
// environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load returns the default configuration with environment overrides,
// for running without a config file.
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields from TRADEBOOK_* variables. A .env file in
// the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TRADEBOOK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TRADEBOOK_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("TRADEBOOK_IMAGE_DIR"); v != "" {
		c.Storage.ImageDir = v
	}
	if v := os.Getenv("TRADEBOOK_SHEET"); v != "" {
		c.Storage.Sheet = v
	}
	if v := os.Getenv("TRADEBOOK_BALANCE_CRYPTO"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			c.Ledger.StartingBalanceCrypto = x
		}
	}
	if v := os.Getenv("TRADEBOOK_BALANCE_FOREX"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			c.Ledger.StartingBalanceForex = x
		}
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	if c.Storage.ImageDir == "" {
		return fmt.Errorf("storage.image_dir is required")
	}
	if strings.TrimSpace(c.Storage.Sheet) == "" {
		return fmt.Errorf("storage.sheet is required")
	}
	if c.Ledger.StartingBalanceCrypto < 0 || c.Ledger.StartingBalanceForex < 0 {
		return fmt.Errorf("ledger starting balances must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DataDir:  "./data",
			ImageDir: "./data/charts",
			Sheet:    "Trading Journal",
		},
		Ledger: LedgerConfig{
			StartingBalanceCrypto: journal.DefaultStartingBalance,
			StartingBalanceForex:  journal.DefaultStartingBalance,
		},
	}
}
