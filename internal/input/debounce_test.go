package input

import (
	"testing"
	"time"
)

// clock is a manually advanced time source.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDebouncer() (*Debouncer, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := NewDebouncer(time.Second)
	d.now = c.now
	return d, c
}

func TestNewDebouncerDefault(t *testing.T) {
	if got := NewDebouncer(0).Refractory(); got != DefaultRefractory {
		t.Errorf("Refractory() = %v, expected %v", got, DefaultRefractory)
	}
	if got := NewDebouncer(250 * time.Millisecond).Refractory(); got != 250*time.Millisecond {
		t.Errorf("Refractory() = %v, expected 250ms", got)
	}
}

func TestAttractPassesThrough(t *testing.T) {
	d, c := newTestDebouncer()

	if d.Poll(false, false) {
		t.Error("Released button reported as pressed")
	}
	if !d.Poll(true, false) {
		t.Error("Press in attract mode should pass through")
	}
	c.advance(10 * time.Millisecond)
	if !d.Poll(true, false) {
		t.Error("Repeated press in attract mode should pass through")
	}
}

func TestRefractoryAfterStart(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		pressed  bool
		expected bool
	}{
		{"bounce right after start", 100 * time.Millisecond, true, false},
		{"just inside the window", 999 * time.Millisecond, true, false},
		{"window elapsed", time.Second, true, true},
		{"window elapsed, released", 2 * time.Second, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, c := newTestDebouncer()
			d.Poll(true, false)

			c.advance(tc.elapsed)
			if got := d.Poll(tc.pressed, true); got != tc.expected {
				t.Errorf("Poll(%v, playing) = %v, expected %v", tc.pressed, got, tc.expected)
			}
		})
	}
}

func TestPlayPressesDoNotRearm(t *testing.T) {
	d, c := newTestDebouncer()
	d.Poll(true, false)

	c.advance(1500 * time.Millisecond)
	if !d.Poll(true, true) {
		t.Fatal("Press after the window should pass")
	}
	c.advance(100 * time.Millisecond)
	if !d.Poll(true, true) {
		t.Error("A second press during play should not be suppressed")
	}
}
