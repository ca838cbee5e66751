// Package cmd provides the CLI commands for storefront-tracking.
package cmd

import (
	"fmt"
	"os"

	"storefront_tracking/internal/config"
	"storefront_tracking/internal/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storefront-tracking",
	Short: "Tools for the storefront tracking service",
	Long: `storefront-tracking bundles helpers around the tracking service.

Examples:
  storefront-tracking quote --product 12 --length 300 --width 200 --height 250
  storefront-tracking consent-mode analytics marketing`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(consentModeCmd)
}

func initConfig() {
	cfg = config.Load()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
