package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-runner/internal/platform/session"
	"github.com/vovakirdan/lcd-runner/internal/platform/tui"
	"github.com/vovakirdan/lcd-runner/internal/storage"
)

var (
	flagLogFile string
	flagTheme   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play against an emulated display in the terminal",
	Long: `Run the game against an emulated HD44780. The game talks to the emulator
through the same display driver used on hardware, and the terminal shows
what the panel would show.

Controls:
  Space/Up   - Start a round, jump
  Tab        - Show the rounds of this session
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  lcdrunner sim
  lcdrunner sim --seed 42 --theme blue
  lcdrunner sim --log-file /tmp/lcdrunner.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	simCmd.Flags().StringVar(&flagTheme, "theme", "", fmt.Sprintf("Panel theme: %v", tui.ThemeNames()))
}

func runSim(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("sim needs an interactive terminal")
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger, err := newLogger(w, "lcdrunner-sim")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	tracker := session.NewTracker(store, logger)

	if err := tui.Run(cfg.Runtime(), tracker, theme); err != nil {
		return err
	}

	printSummary(os.Stdout, store)
	return nil
}

// printSummary reports the session after the simulator exits.
func printSummary(w io.Writer, store *storage.Session) {
	if store == nil {
		return
	}
	stats, err := store.Stats()
	if err != nil || stats.Rounds == 0 {
		return
	}
	fmt.Fprintf(w, "%d rounds played, best score %d, average %.1f\n", stats.Rounds, stats.Best, stats.AvgScore)

	recent, err := store.RecentRounds(1)
	if err != nil || len(recent) == 0 {
		return
	}
	last := recent[0]
	fmt.Fprintf(w, "last round: score %d, distance %d, %s\n", last.Score, last.Distance, last.Duration.Round(time.Millisecond))
}
