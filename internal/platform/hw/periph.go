package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/lcd-runner/internal/config"
	"github.com/vovakirdan/lcd-runner/internal/lcd"
)

type periphButton struct {
	pin gpio.PinIn
}

func (b periphButton) Pressed() bool {
	return b.pin.Read() == gpio.High
}

// openPeriph resolves pins by their periph registry names (e.g. "PA11").
func openPeriph(cfg config.Config) (*Lines, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hw: periph host init: %w", err)
	}

	l := &Lines{}
	output := func(name string) (lcd.Line, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("hw: unknown pin %q", name)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("hw: pin %s as output: %w", name, err)
		}
		l.release = append(l.release, p.Halt)
		return p, nil
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

	btn := gpioreg.ByName(cfg.GPIO.Button)
	if btn == nil {
		l.Close() //nolint:errcheck
		return nil, fmt.Errorf("hw: unknown pin %q", cfg.GPIO.Button)
	}
	if err := btn.In(gpio.PullDown, gpio.NoEdge); err != nil {
		l.Close() //nolint:errcheck
		return nil, fmt.Errorf("hw: pin %s as input: %w", cfg.GPIO.Button, err)
	}
	l.release = append(l.release, btn.Halt)
	l.Button = periphButton{pin: btn}

	return l, nil
}
