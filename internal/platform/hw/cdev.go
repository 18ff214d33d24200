package hw

import (
	"fmt"
	"strconv"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/lcd-runner/internal/config"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
)

// cdevLine adapts a requested output line to the bus interface.
type cdevLine struct {
	line *gpiocdev.Line
}

func (c cdevLine) Out(l gpio.Level) error {
	v := 0
	if l == gpio.High {
		v = 1
	}
	return c.line.SetValue(v)
}

type cdevButton struct {
	line *gpiocdev.Line
}

func (b cdevButton) Pressed() bool {
	v, err := b.line.Value()
	return err == nil && v == 1
}

func offset(name string) (int, error) {
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("hw: %q is not a line offset", name)
	}
	return n, nil
}

// openCdev requests lines by offset on the configured GPIO character device.
func openCdev(cfg config.Config) (*Lines, error) {
	chip := cfg.GPIO.Chip
	l := &Lines{}

	output := func(name string) (lcd.Line, error) {
		n, err := offset(name)
		if err != nil {
			return nil, err
		}
		line, err := gpiocdev.RequestLine(chip, n, gpiocdev.AsOutput(0))
		if err != nil {
			return nil, fmt.Errorf("hw: request %s line %d: %w", chip, n, err)
		}
		l.release = append(l.release, line.Close)
		return cdevLine{line: line}, nil
	}

	bus, err := l.claim(output, busNames(cfg.Display.Pins)...)
	if err != nil {
		return nil, err
	}
	l.wireBus(bus)

	if cfg.GPIO.Autoplay != "" {
		ap, err := l.claim(output, cfg.GPIO.Autoplay)
		if err != nil {
			return nil, err
		}
		l.Autoplay = ap[0]
	}

	n, err := offset(cfg.GPIO.Button)
	if err != nil {
		l.Close() //nolint:errcheck
		return nil, err
	}
	btn, err := gpiocdev.RequestLine(chip, n, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		l.Close() //nolint:errcheck
		return nil, fmt.Errorf("hw: request %s line %d: %w", chip, n, err)
	}
	l.release = append(l.release, btn.Close)
	l.Button = cdevButton{line: btn}

	return l, nil
}
