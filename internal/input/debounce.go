// Package input filters the raw jump button into game input.
package input

import "time"

// DefaultRefractory is how long presses are ignored after a round starts.
const DefaultRefractory = time.Second

// Debouncer suppresses button bounce around the press that starts a round.
//
// While waiting to start, every press is passed through and arms the
// refractory window. During play, presses are ignored until the window has
// elapsed since the last arming press; after that they pass through
// unchanged. Presses during play do not re-arm the window.
//
// A Debouncer is owned by the goroutine that ticks the game.
type Debouncer struct {
	refractory time.Duration
	last       time.Time
	now        func() time.Time
}

// NewDebouncer creates a debouncer with the given refractory period.
// A non-positive period uses DefaultRefractory.
func NewDebouncer(refractory time.Duration) *Debouncer {
	if refractory <= 0 {
		refractory = DefaultRefractory
	}
	return &Debouncer{
		refractory: refractory,
		now:        time.Now,
	}
}

// Poll filters one raw button sample. playing reports whether a round is in
// progress.
func (d *Debouncer) Poll(pressed, playing bool) bool {
	now := d.now()
	if !playing {
		if pressed {
			d.last = now
		}
		return pressed
	}
	if now.Sub(d.last) < d.refractory {
		return false
	}
	return pressed
}

// Refractory returns the configured refractory period.
func (d *Debouncer) Refractory() time.Duration {
	return d.refractory
}
