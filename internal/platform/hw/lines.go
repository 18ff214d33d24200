// Package hw runs the game on a real panel: it claims the GPIO lines named
// in the configuration and drives the tick loop against them.
package hw

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-runner/internal/config"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
)

// Button is the jump/start input.
type Button interface {
	Pressed() bool
}

// Lines holds every GPIO line the game uses.
type Lines struct {
	Bus      lcd.Pins
	Button   Button
	Autoplay lcd.Line // nil when not wired

	release []func() error
}

// Open claims the lines through the configured backend. The configuration
// must already be valid.
func Open(cfg config.Config, logger *log.Logger) (*Lines, error) {
	var (
		lines *Lines
		err   error
	)
	switch cfg.GPIO.Backend {
	case config.BackendPeriph:
		lines, err = openPeriph(cfg)
	case config.BackendCdev:
		lines, err = openCdev(cfg)
	default:
		return nil, fmt.Errorf("hw: unknown backend %q", cfg.GPIO.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("gpio lines claimed",
		"backend", cfg.GPIO.Backend,
		"button", cfg.GPIO.Button,
		"autoplay", cfg.GPIO.Autoplay != "",
	)
	return lines, nil
}

// Close releases every claimed line, in reverse order.
func (l *Lines) Close() error {
	var errs []error
	for i := len(l.release) - 1; i >= 0; i-- {
		if err := l.release[i](); err != nil {
			errs = append(errs, err)
		}
	}
	l.release = nil
	return errors.Join(errs...)
}

// claim wraps a backend's per-name constructor so a failure part way
// through releases whatever was already claimed.
func (l *Lines) claim(open func(name string) (lcd.Line, error), names ...string) ([]lcd.Line, error) {
	out := make([]lcd.Line, 0, len(names))
	for _, name := range names {
		line, err := open(name)
		if err != nil {
			l.Close() //nolint:errcheck // already failing
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

func busNames(p config.PinConfig) []string {
	return []string{p.RS, p.E, p.D4, p.D5, p.D6, p.D7}
}

func (l *Lines) wireBus(bus []lcd.Line) {
	l.Bus = lcd.FourBit(bus[0], bus[1], bus[2], bus[3], bus[4], bus[5])
}
