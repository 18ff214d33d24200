package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-runner/internal/input"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
	"github.com/vovakirdan/lcd-runner/internal/platform/hw"
	"github.com/vovakirdan/lcd-runner/internal/platform/session"
	"github.com/vovakirdan/lcd-runner/internal/runner"
	"github.com/vovakirdan/lcd-runner/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play on a display wired to GPIO",
	Long: `Claim the configured GPIO lines, initialize the display and run the game
until interrupted.

Backends (gpio.backend):
  periph - pin names from periph.io, e.g. PA11 or GPIO17
  cdev   - line offsets on a Linux GPIO character device (gpio.chip)

The button line is read with a pull-down; a high level is a press. The
optional autoplay line goes high while an obstacle is two columns ahead of
the hero.

Examples:
  lcdrunner run
  lcdrunner run --config ./pi.yaml
  lcdrunner run --difficulty easy --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runHardware,
}

func runHardware(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "lcdrunner")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	lines, err := hw.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := lines.Close(); err != nil {
			logger.Warn("could not release gpio lines", "error", err)
		}
	}()

	t := cfg.Display.Timing
	display, err := lcd.New(lines.Bus, lcd.Timing{Settle: t.Settle, Pulse: t.Pulse, Clear: t.Clear})
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	display.Initialize()

	rt := cfg.Runtime()
	seed := rt.SeedOrNow()
	game := runner.New(display, rand.New(rand.NewSource(seed)), runner.Options{
		PlayInterval:    rt.PlayInterval,
		AttractInterval: rt.AttractInterval,
	})
	game.Setup()

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	tracker := session.NewTracker(store, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := input.NewDebouncer(rt.Refractory)
	logger.Info("game running",
		"seed", seed,
		"play_interval", rt.PlayInterval,
		"debounce", debounce.Refractory(),
	)
	loop := hw.NewLoop(game, lines.Button, lines.Autoplay, debounce, tracker, logger)
	if err := loop.Run(ctx); err != nil {
		return err
	}

	display.Clear()
	logger.Info("game stopped", "best", tracker.Best())
	return nil
}
