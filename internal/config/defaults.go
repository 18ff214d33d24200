package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the built-in configuration: an Allwinner board
// driven through periph, with the stock board wiring and pacing.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Pins: PinConfig{
				RS: "PA11",
				E:  "PA12",
				D4: "PA19",
				D5: "PA7",
				D6: "PG7",
				D7: "PG6",
			},
			Timing: TimingConfig{
				Settle: 500 * time.Microsecond,
				Pulse:  500 * time.Microsecond,
				Clear:  2 * time.Millisecond,
			},
		},
		GPIO: GPIOConfig{
			Backend:  BackendPeriph,
			Chip:     "gpiochip0",
			Button:   "PA3",
			Autoplay: "PA1",
			Debounce: time.Second,
		},
		Game: GameConfig{
			PlayInterval:    100 * time.Millisecond,
			AttractInterval: 250 * time.Millisecond,
			Seed:            0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
