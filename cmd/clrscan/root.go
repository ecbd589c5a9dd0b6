// Package main provides the CLI entry point for clrscan.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clrscan/clrscan-go/internal/logging"
	"github.com/clrscan/clrscan-go/pkg/clrscan/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// runCfg is the merged run configuration, loaded in the persistent
// pre-run so every subcommand sees it.
var runCfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "clrscan",
	Short: "Query Category Listing Reports for data-quality defects",
	Long: `clrscan loads a Category Listing Report workbook, normalizes its
listings, and runs data-quality rules against them.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to YAML run configuration")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.Version = version
}

func setup(cmd *cobra.Command, _ []string) error {
	if rootFlags.configPath != "" {
		cfg, err := config.Load(rootFlags.configPath)
		if err != nil {
			return err
		}
		runCfg = cfg
	}
	if rootFlags.logLevel != "" {
		runCfg.Log.Level = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		runCfg.Log.Format = rootFlags.logFormat
	}

	logging.Init(logging.ParseLevel(runCfg.Log.Level), runCfg.Log.Format)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
