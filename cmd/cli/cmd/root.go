// Package cmd provides the CLI commands for storage-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storage-cost/core/catalog"
	"storage-cost/internal/config"
	"storage-cost/internal/logging"
)

// Version is set at build time with -ldflags "-X storage-cost/cmd/cli/cmd.Version=..."
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storage-cost",
	Short: "Find the cheapest cloud storage plans for a usage profile",
	Long: `storage-cost compares cloud storage providers over a horizon of months.

For every provider it finds the cheapest sequence of plan purchases that
covers the projected storage each month, then ranks providers by total cost.

Examples:
  storage-cost estimate --months 24 --initial 1500 --upload 100
  storage-cost estimate --usage usage.yaml --format json
  storage-cost catalog list
  storage-cost serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.storage-cost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog reads the catalog named by a flag, then the config file,
// and falls back to the built-in providers
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		path = config.Get().Catalog.Path
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "storage-cost version %s\n", Version)
	},
}
