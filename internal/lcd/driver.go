// Package lcd drives an HD44780-compatible character display over its
// 4-bit parallel interface.
//
// The bus is write-only: R/W is tied low and the controller never
// acknowledges a transfer, so a disconnected or unpowered panel looks
// exactly like a working one. None of the transfer methods return an error
// for that reason. Only New, which checks that every line is wired, can fail.
package lcd

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Line is a single output line of the parallel bus.
// Any periph.io gpio.PinOut satisfies it.
type Line interface {
	Out(l gpio.Level) error
}

// Mode selects the register addressed by a transfer.
type Mode int

const (
	ModeCommand Mode = iota // RS low: instruction register
	ModeData                // RS high: data register (DDRAM or CGRAM)
)

func (m Mode) level() gpio.Level {
	return m == ModeData
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeData {
		return "data"
	}
	return "command"
}

// Timing holds the strobe and command delays.
type Timing struct {
	Settle time.Duration // before and after each E pulse
	Pulse  time.Duration // E high time
	Clear  time.Duration // wait after clear-display
}

// DefaultTiming returns the conservative half-millisecond margins the
// display has always been driven with. The controller itself needs far less
// (450ns E pulse, 37µs per instruction, 1.52ms for clear).
func DefaultTiming() Timing {
	return Timing{
		Settle: 500 * time.Microsecond,
		Pulse:  500 * time.Microsecond,
		Clear:  2 * time.Millisecond,
	}
}

// Pins wires the driver to the bus. Data is indexed by data line number;
// in 4-bit mode only D4..D7 are connected and D0..D3 may be nil.
type Pins struct {
	RS   Line
	E    Line
	Data [8]Line
}

// FourBit builds Pins for a panel wired with only the upper data lines.
func FourBit(rs, e, d4, d5, d6, d7 Line) Pins {
	return Pins{
		RS:   rs,
		E:    e,
		Data: [8]Line{4: d4, 5: d5, 6: d6, 7: d7},
	}
}

// Driver serializes display operations into nibble transfers.
type Driver struct {
	rs     Line
	e      Line
	data   [8]Line
	timing Timing
	sleep  func(time.Duration)
}

// New creates a driver. It does not touch the bus; call Initialize first.
func New(pins Pins, timing Timing) (*Driver, error) {
	if pins.RS == nil {
		return nil, errors.New("lcd: RS line not wired")
	}
	if pins.E == nil {
		return nil, errors.New("lcd: E line not wired")
	}
	for n := 4; n < 8; n++ {
		if pins.Data[n] == nil {
			return nil, fmt.Errorf("lcd: D%d line not wired", n)
		}
	}

	return &Driver{
		rs:     pins.RS,
		e:      pins.E,
		data:   pins.Data,
		timing: timing,
		sleep:  time.Sleep,
	}, nil
}

// Initialize brings the controller into 4-bit, two-line mode with the
// display on, the cursor hidden and auto-increment entry. It must run once
// before any other operation.
func (d *Driver) Initialize() {
	for _, cmd := range initSequence {
		d.SendByte(cmd, ModeCommand)
	}
	d.sleep(d.timing.Clear)
}

// SendByte transmits value to the register selected by mode, high nibble
// first. Nibble bit 3 goes out on D7 and bit 0 on D4.
func (d *Driver) SendByte(value byte, mode Mode) {
	d.rs.Out(mode.level()) //nolint:errcheck // write-only bus, no acknowledgment to check

	d.writeNibble(value >> 4)
	d.writeNibble(value & 0x0F)
}

// writeNibble drives D4..D7 and latches them with one E pulse.
func (d *Driver) writeNibble(nibble byte) {
	for bit := 0; bit < 4; bit++ {
		d.data[4+bit].Out(nibble&(1<<bit) != 0) //nolint:errcheck // write-only bus
	}
	d.strobe()
}

// strobe toggles E low→high→low. The controller latches on the falling edge.
func (d *Driver) strobe() {
	d.sleep(d.timing.Settle)
	d.e.Out(gpio.High) //nolint:errcheck // write-only bus
	d.sleep(d.timing.Pulse)
	d.e.Out(gpio.Low) //nolint:errcheck // write-only bus
	d.sleep(d.timing.Settle)
}

// Clear blanks the display, homes the cursor and waits out the clear latency.
func (d *Driver) Clear() {
	d.SendByte(CmdClear, ModeCommand)
	d.sleep(d.timing.Clear)
}

// SetCursor moves the DDRAM address to column on row. Row 0 starts at
// 0x00; any other row is treated as the second line at 0x40. Columns
// outside 0..LineLength-1 would address the other line and panic.
func (d *Driver) SetCursor(column, row int) {
	if column < 0 || column >= LineLength {
		panic(fmt.Sprintf("lcd: cursor column %d out of range 0..%d", column, LineLength-1))
	}
	base := Row0Address
	if row != 0 {
		base = Row1Address
	}
	d.SendByte(CmdSetDDRAM|(base+byte(column)), ModeCommand)
}

// Print sends each cell as a data byte. The controller advances the cursor
// after every write.
func (d *Driver) Print(cells []byte) {
	for _, c := range cells {
		d.SendByte(c, ModeData)
	}
}

// PrintString sends the bytes of s as data.
func (d *Driver) PrintString(s string) {
	for i := 0; i < len(s); i++ {
		d.SendByte(s[i], ModeData)
	}
}

// DefineGlyph programs custom character slot (1..MaxGlyphs) in CGRAM.
// Slot 0 is reserved because a zero byte terminates printed rows.
// The DDRAM address is left pointing into CGRAM, so callers must
// SetCursor before printing again.
func (d *Driver) DefineGlyph(slot int, glyph Glyph) {
	if slot < 1 || slot > MaxGlyphs {
		panic(fmt.Sprintf("lcd: glyph slot %d out of range 1..%d", slot, MaxGlyphs))
	}

	d.SendByte(CmdSetCGRAM|byte(slot)<<3, ModeCommand)
	for _, row := range glyph {
		d.SendByte(row&GlyphRowMask, ModeData)
	}
}
