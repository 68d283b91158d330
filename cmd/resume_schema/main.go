// Package main provides the entry point for the resume schema CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-schema/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_schema",
	Short: "Resume content schema toolkit",
	Long:  "Validates structured resume documents against the content schema, populates computed rendering fields, and serves both over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadCLIConfig loads the optional config file and validates it. A missing
// --config flag yields an empty config.
func loadCLIConfig() (config.Config, error) {
	if configPath == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}
