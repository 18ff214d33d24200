package emu

// Snapshot is a consistent copy of everything a viewer needs to draw the panel.
type Snapshot struct {
	DisplayOn bool
	CursorOn  bool
	BlinkOn   bool
	Text      [Rows][Columns]byte
	CGRAM     [8][8]byte
}

// Snapshot copies the visible DDRAM window and CGRAM.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		DisplayOn: c.displayOn,
		CursorOn:  c.cursorOn,
		BlinkOn:   c.blinkOn,
	}
	for r := 0; r < Rows; r++ {
		base := line0Start
		if r == 1 {
			base = line1Start
		}
		copy(s.Text[r][:], c.ddram[base:base+Columns])
	}
	for slot := 0; slot < 8; slot++ {
		copy(s.CGRAM[slot][:], c.cgram[slot*8:slot*8+8])
	}
	return s
}

// Row returns the visible characters of display line r.
func (c *Controller) Row(r int) []byte {
	s := c.Snapshot()
	out := make([]byte, Columns)
	copy(out, s.Text[r&1][:])
	return out
}

// Glyph returns the eight pixel rows programmed into CGRAM slot.
func (c *Controller) Glyph(slot int) [8]byte {
	return c.Snapshot().CGRAM[slot&7]
}

// FourBit reports whether the interface has been switched to 4-bit mode.
func (c *Controller) FourBit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fourBit
}

// TwoLine reports whether two-line mode is set.
func (c *Controller) TwoLine() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.twoLine
}

// Address returns the current address counter and whether it points into CGRAM.
func (c *Controller) Address() (addr byte, cgram bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addr, c.cgMode
}

// Strobes returns the number of E falling edges seen.
func (c *Controller) Strobes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strobes
}

// Transfers returns a copy of every byte executed so far.
func (c *Controller) Transfers() []Transfer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Transfer, len(c.transfers))
	copy(out, c.transfers)
	return out
}

// ResetLog forgets recorded transfers and strobes; panel state is kept.
func (c *Controller) ResetLog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transfers = c.transfers[:0]
	c.strobes = 0
}
