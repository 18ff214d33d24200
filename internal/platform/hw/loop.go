package hw

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/lcd-runner/internal/input"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
	"github.com/vovakirdan/lcd-runner/internal/platform/session"
	"github.com/vovakirdan/lcd-runner/internal/runner"
)

// Loop owns the game and paces it against the wall clock.
type Loop struct {
	game     *runner.Game
	button   Button
	autoplay lcd.Line
	debounce *input.Debouncer
	tracker  *session.Tracker
	logger   *log.Logger
}

// NewLoop wires a game to its input, output and round tracking.
// autoplay may be nil.
func NewLoop(game *runner.Game, button Button, autoplay lcd.Line, debounce *input.Debouncer, tracker *session.Tracker, logger *log.Logger) *Loop {
	return &Loop{
		game:     game,
		button:   button,
		autoplay: autoplay,
		debounce: debounce,
		tracker:  tracker,
		logger:   logger,
	}
}

// Step samples the button and runs a single tick.
func (l *Loop) Step() runner.TickResult {
	jump := l.debounce.Poll(l.button.Pressed(), l.game.Playing())
	res := l.game.Tick(jump)
	l.tracker.Observe(res)

	if l.autoplay != nil {
		l.autoplay.Out(gpio.Level(res.Playing && res.Autoplay)) //nolint:errcheck // signal only
	}
	return res
}

// Run ticks until ctx is cancelled. It always returns nil; cancellation is
// the normal way to stop.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("tick loop started")
	for {
		res := l.Step()

		timer := time.NewTimer(res.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			if l.autoplay != nil {
				l.autoplay.Out(gpio.Low) //nolint:errcheck
			}
			l.logger.Debug("tick loop stopped", "reason", ctx.Err())
			return nil
		case <-timer.C:
		}
	}
}
