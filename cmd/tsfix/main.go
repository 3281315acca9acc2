// Package main provides the command-line interface for the tsfix application.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsfix/pkg/config"
	"tsfix/pkg/dependencies"
	"tsfix/pkg/fixer"
	"tsfix/pkg/logger"
)

var (
	quiet      bool
	verbose    bool
	dryRun     bool
	configPath string
)

// loadConfig loads the configuration. An explicit --config path must exist;
// otherwise the default location falls back to built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.NewManager().LoadConfig(configPath)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return config.LoadConfigWithFallback(filepath.Join(homeDir, ".tsfix", "config.yaml"))
}

// newLogger selects the progress logger for the run.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	if verbose {
		return logger.NewColoredLogger(color.FgCyan)
	}
	return logger.NewDefaultLogger()
}

func runFix(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fx, err := fixer.NewFixer(fixer.NewFixerParams{
		Dependencies: dependencies.New().WithLogger(newLogger()),
		Config:       cfg,
	})
	if err != nil {
		return err
	}

	summary, err := fx.Fix(fixer.FixOpts{DryRun: dryRun, Verbose: verbose})
	if err != nil {
		return err
	}

	if !quiet {
		printSummary(cfg, summary)
	}
	return nil
}

// printSummary prints the closing summary in the same shape the progress
// lines use, with the verification hint built from the configured command.
func printSummary(cfg *config.Config, summary fixer.Summary) {
	verb := "Fixed"
	if dryRun {
		verb = "Would fix"
	}
	color.New(color.FgGreen).Printf("\n✨ %s %d unused imports/variables\n", verb, summary.Fixed)

	checkCmd := strings.TrimSpace(cfg.Command + " " + strings.Join(cfg.Args, " "))
	fmt.Printf("\nRun '%s' to verify remaining errors\n", checkCmd)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tsfix",
		Short: "TSFix - TypeScript unused import cleaner",
		Long: `Runs the configured type-check command, parses TS6133 "declared but its ` +
			`value is never read" diagnostics, and removes the unused imports and ` +
			`destructured declarations from the affected source files.`,
		RunE: runFix,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a diff for every modified file")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report edits without writing any file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
