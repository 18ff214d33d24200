// lcdrunner is a side-scrolling runner for a 16x2 HD44780 character display.
//
// Usage:
//
//	lcdrunner run       - Play on a display wired to GPIO
//	lcdrunner sim       - Play against an emulated display in the terminal
//	lcdrunner glyphs    - Print the custom characters
//	lcdrunner config    - Print the resolved configuration
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search order below)
//	--seed <value>       - RNG seed for reproducible terrain
//	--difficulty <name>  - Speed preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-runner/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lcdrunner",
	Short: "LCD Runner - a side-scroller for 16x2 character displays",
	Long: `LCD Runner drives a 16x2 HD44780 display over its 4-bit bus and plays a
side-scrolling runner on it. One button starts a round and jumps.

Configuration is read from the first of:
  --config <path>
  ~/.lcdrunner/runner.yaml
  ./configs/runner.yaml
  the built-in defaults

Examples:
  lcdrunner run
  lcdrunner run --config ./pi.yaml --log-level debug
  lcdrunner sim --seed 42 --difficulty hard
  lcdrunner glyphs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the level chosen with --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig resolves the configuration and applies command-line overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Info("configuration loaded", "source", source)

	if flagSeed != 0 {
		cfg.Game.Seed = flagSeed
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
