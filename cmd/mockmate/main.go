// Package main provides the mockmate CLI: résumé extraction, interview
// question generation, answer evaluation and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/mockmate/internal/config"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logLevel   string

	// appConfig is loaded before every command runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mockmate",
	Short: "Résumé-driven mock interview assistant",
	Long: "MockMate extracts a structured profile from a résumé, generates tailored " +
		"technical and behavioral interview questions, and scores typed or spoken answers.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (default ./mockmate.json if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted progress boxes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger.Init(cfg.LoggerConfig())
	appConfig = cfg
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
