// Package cmd provides the CLI commands for greenwatt.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"greenwatt/internal/config"
	"greenwatt/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "greenwatt",
	Short: "Renewable-energy investment estimation",
	Long: `greenwatt estimates solar installation economics from market data.

It converts bills, areas, capacities or investment budgets into expected
generation, revenue, payback period and carbon offset, using live or
fixture market prices.

Examples:
  greenwatt estimate --capacity 100
  greenwatt estimate --bill 50000
  greenwatt estimate --area 660 --region jeju --format json
  greenwatt prices`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	load := config.LoadDefault
	if cfgFile != "" {
		load = func() (*config.Config, error) { return config.Load(cfgFile) }
	}
	cfg, err := load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("greenwatt version 0.1.0")
	},
}
