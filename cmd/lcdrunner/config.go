package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the other commands would use, after the
search order and command-line overrides are applied. Use --defaults to
print the built-in configuration as a starting point for your own file.

Examples:
  lcdrunner config
  lcdrunner config --defaults > ~/.lcdrunner/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return nil
	}

	logger, err := newLogger(os.Stderr, "lcdrunner")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
