// Package emu models an HD44780 controller wired in 4-bit mode. It decodes
// the same line transitions a real panel sees (RS, E and D4..D7) and keeps
// DDRAM and CGRAM so callers can inspect what the panel would show.
//
// The model covers the instructions a character display driver uses:
// clear, return home, entry mode, display control, cursor shift, function
// set and the two address instructions. Busy time is not modelled.
package emu

import (
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// Visible geometry of a 16x2 panel.
const (
	Columns = 16
	Rows    = 2
)

const (
	ddramSize = 0x80
	cgramSize = 0x40

	line0Start = 0x00
	line0End   = 0x28
	line1Start = 0x40
	line1End   = 0x68

	// transfer log bound; the oldest half is dropped when it fills up
	maxTransfers = 1 << 14
)

type lineID int

const (
	lineRS lineID = iota
	lineE
	lineD4
	lineD5
	lineD6
	lineD7
)

// Transfer is one byte the controller executed.
type Transfer struct {
	Data  bool // RS was high
	Value byte
}

// Controller is an emulated HD44780. It is safe for concurrent use; the
// terminal front-end reads snapshots while the game writes.
type Controller struct {
	mu sync.Mutex

	rs    gpio.Level
	e     gpio.Level
	data  [4]gpio.Level // D4..D7
	lines [6]*pin

	fourBit   bool
	pending   bool
	highHalf  byte
	twoLine   bool
	increment bool

	displayOn bool
	cursorOn  bool
	blinkOn   bool

	cgMode bool
	addr   byte
	ddram  [ddramSize]byte
	cgram  [cgramSize]byte

	strobes   int
	transfers []Transfer
}

// New returns a controller in its power-on state: 8-bit interface, one
// line, display off and DDRAM filled with spaces.
func New() *Controller {
	c := &Controller{increment: true}
	for i := range c.ddram {
		c.ddram[i] = ' '
	}
	names := [...]string{"RS", "E", "D4", "D5", "D6", "D7"}
	for id, name := range names {
		c.lines[id] = &pin{
			Pin:  gpiotest.Pin{N: name, Num: id},
			ctrl: c,
			id:   lineID(id),
		}
	}
	return c
}

// RS returns the register-select line.
func (c *Controller) RS() gpio.PinOut { return c.lines[lineRS] }

// E returns the enable line.
func (c *Controller) E() gpio.PinOut { return c.lines[lineE] }

// D returns data line n (4..7). The lower four are not bonded in 4-bit mode.
func (c *Controller) D(n int) gpio.PinOut {
	if n < 4 || n > 7 {
		return nil
	}
	return c.lines[int(lineD4)+n-4]
}

// drive records a level change and latches on the falling edge of E.
func (c *Controller) drive(id lineID, level gpio.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch id {
	case lineRS:
		c.rs = level
	case lineE:
		falling := c.e == gpio.High && level == gpio.Low
		c.e = level
		if falling {
			c.latch()
		}
	default:
		c.data[id-lineD4] = level
	}
}

func (c *Controller) latch() {
	c.strobes++

	var nibble byte
	for bit, l := range c.data {
		if l {
			nibble |= 1 << bit
		}
	}

	if !c.fourBit {
		// D0..D3 float low when unbonded.
		c.execute(nibble << 4)
		return
	}
	if !c.pending {
		c.highHalf = nibble
		c.pending = true
		return
	}
	c.pending = false
	c.execute(c.highHalf<<4 | nibble)
}

func (c *Controller) execute(value byte) {
	data := bool(c.rs)
	if len(c.transfers) == maxTransfers {
		c.transfers = append(c.transfers[:0], c.transfers[maxTransfers/2:]...)
	}
	c.transfers = append(c.transfers, Transfer{Data: data, Value: value})
	if data {
		c.write(value)
		return
	}
	c.instruction(value)
}

func (c *Controller) instruction(v byte) {
	switch {
	case v&0x80 != 0:
		c.cgMode = false
		c.addr = v & 0x7F
	case v&0x40 != 0:
		c.cgMode = true
		c.addr = v & 0x3F
	case v&0x20 != 0:
		fourBit := v&0x10 == 0
		if fourBit != c.fourBit {
			c.pending = false
		}
		c.fourBit = fourBit
		c.twoLine = v&0x08 != 0
	case v&0x10 != 0:
		// Display shift is not modelled; cursor shift moves the address.
		if v&0x08 == 0 {
			c.step(v&0x04 != 0)
		}
	case v&0x08 != 0:
		c.displayOn = v&0x04 != 0
		c.cursorOn = v&0x02 != 0
		c.blinkOn = v&0x01 != 0
	case v&0x04 != 0:
		c.increment = v&0x02 != 0
	case v&0x02 != 0:
		c.cgMode = false
		c.addr = 0
	case v&0x01 != 0:
		for i := range c.ddram {
			c.ddram[i] = ' '
		}
		c.cgMode = false
		c.addr = 0
		c.increment = true
	}
}

func (c *Controller) write(v byte) {
	if c.cgMode {
		c.cgram[c.addr&0x3F] = v & 0x1F
	} else {
		c.ddram[c.addr&0x7F] = v
	}
	c.step(c.increment)
}

// step moves the address counter one position, wrapping between the two
// DDRAM lines the way the controller does in two-line mode.
func (c *Controller) step(forward bool) {
	if c.cgMode {
		if forward {
			c.addr = (c.addr + 1) & 0x3F
		} else {
			c.addr = (c.addr - 1) & 0x3F
		}
		return
	}

	if forward {
		c.addr = (c.addr + 1) & 0x7F
	} else {
		c.addr = (c.addr - 1) & 0x7F
	}
	if !c.twoLine {
		return
	}
	switch {
	case forward && c.addr == line0End:
		c.addr = line1Start
	case forward && c.addr == line1End:
		c.addr = line0Start
	case !forward && c.addr == line1Start-1:
		c.addr = line0End - 1
	case !forward && c.addr == 0x7F:
		c.addr = line1End - 1
	}
}
