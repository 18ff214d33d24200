// Package config provides YAML-based configuration for the display wiring,
// the GPIO backend and game pacing.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/lcd-runner/internal/core"
)

// Config contains everything needed to bring up the game on hardware or in
// the simulator.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	GPIO    GPIOConfig    `yaml:"gpio"`
	Game    GameConfig    `yaml:"game"`
}

// DisplayConfig describes how the character display is wired and driven.
type DisplayConfig struct {
	Pins   PinConfig    `yaml:"pins"`
	Timing TimingConfig `yaml:"timing"`
}

// PinConfig names the GPIO lines of the 4-bit bus. Names are resolved by the
// selected backend: periph pin names such as "PA11" or "GPIO17", or line
// offsets for the character-device backend.
type PinConfig struct {
	RS string `yaml:"rs"`
	E  string `yaml:"e"`
	D4 string `yaml:"d4"`
	D5 string `yaml:"d5"`
	D6 string `yaml:"d6"`
	D7 string `yaml:"d7"`
}

// TimingConfig holds bus delays.
type TimingConfig struct {
	Settle time.Duration `yaml:"settle"` // before and after each enable pulse
	Pulse  time.Duration `yaml:"pulse"`  // enable high time
	Clear  time.Duration `yaml:"clear"`  // wait after clear-display
}

// GPIOConfig selects the GPIO backend and the input/output lines.
type GPIOConfig struct {
	Backend  string        `yaml:"backend"`  // "periph" or "cdev"
	Chip     string        `yaml:"chip"`     // character device, cdev backend only
	Button   string        `yaml:"button"`   // jump/start input, pulled down
	Autoplay string        `yaml:"autoplay"` // obstacle-ahead output, optional
	Debounce time.Duration `yaml:"debounce"` // refractory period after a start press
}

// GameConfig controls pacing and randomness.
type GameConfig struct {
	PlayInterval    time.Duration `yaml:"play_interval"`
	AttractInterval time.Duration `yaml:"attract_interval"`
	Seed            int64         `yaml:"seed"` // 0 = seed from the clock
}

// Backends.
const (
	BackendPeriph = "periph"
	BackendCdev   = "cdev"
)

// Controller minimums from the HD44780 datasheet.
const (
	MinSettle = 40 * time.Microsecond
	MinPulse  = time.Microsecond
	MinClear  = 1520 * time.Microsecond
)

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	pins := []struct {
		name, value string
	}{
		{"display.pins.rs", c.Display.Pins.RS},
		{"display.pins.e", c.Display.Pins.E},
		{"display.pins.d4", c.Display.Pins.D4},
		{"display.pins.d5", c.Display.Pins.D5},
		{"display.pins.d6", c.Display.Pins.D6},
		{"display.pins.d7", c.Display.Pins.D7},
		{"gpio.button", c.GPIO.Button},
	}
	seen := make(map[string]string)
	for _, p := range pins {
		if p.value == "" {
			errs = append(errs, fmt.Errorf("%s: pin not set", p.name))
			continue
		}
		if other, ok := seen[p.value]; ok {
			errs = append(errs, fmt.Errorf("%s: pin %s already used by %s", p.name, p.value, other))
			continue
		}
		seen[p.value] = p.name
	}
	if a := c.GPIO.Autoplay; a != "" {
		if other, ok := seen[a]; ok {
			errs = append(errs, fmt.Errorf("gpio.autoplay: pin %s already used by %s", a, other))
		}
	}

	t := c.Display.Timing
	if t.Settle < MinSettle {
		errs = append(errs, fmt.Errorf("display.timing.settle: %v is below %v", t.Settle, MinSettle))
	}
	if t.Pulse < MinPulse {
		errs = append(errs, fmt.Errorf("display.timing.pulse: %v is below %v", t.Pulse, MinPulse))
	}
	if t.Clear < MinClear {
		errs = append(errs, fmt.Errorf("display.timing.clear: %v is below %v", t.Clear, MinClear))
	}

	switch c.GPIO.Backend {
	case BackendPeriph:
	case BackendCdev:
		if c.GPIO.Chip == "" {
			errs = append(errs, errors.New("gpio.chip: required by the cdev backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("gpio.backend: unknown backend %q", c.GPIO.Backend))
	}
	if c.GPIO.Debounce < 0 {
		errs = append(errs, fmt.Errorf("gpio.debounce: negative duration %v", c.GPIO.Debounce))
	}

	if c.Game.PlayInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.play_interval: must be positive, got %v", c.Game.PlayInterval))
	}
	if c.Game.AttractInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.attract_interval: must be positive, got %v", c.Game.AttractInterval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Runtime extracts the settings a front-end needs to start the game.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:            c.Game.Seed,
		PlayInterval:    c.Game.PlayInterval,
		AttractInterval: c.Game.AttractInterval,
		Refractory:      c.GPIO.Debounce,
	}
}
