package core

import "time"

// RuntimeConfig carries what a front-end needs to start a game.
type RuntimeConfig struct {
	Seed            int64         // RNG seed; 0 means seed from the clock
	PlayInterval    time.Duration // delay between play ticks
	AttractInterval time.Duration // delay between attract-mode frames
	Refractory      time.Duration // button lockout after a start press
}

// SeedOrNow returns the configured seed, or a clock-derived one when the
// seed is zero.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
