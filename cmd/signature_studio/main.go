// Package main provides the entry point for the Signature Studio CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/signature-studio/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signature_studio",
	Short: "Email signature generator",
	Long:  "Signature Studio renders deterministic, email-client-safe HTML signatures from contact records, with bulk CSV/TSV/vCard import, company templates, and a REST API.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON config file with flag defaults")
}

// loadCLIConfig loads the optional --config file. No file means an empty
// config: every field falls back to its flag default.
func loadCLIConfig() (config.Config, error) {
	if configFile == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
