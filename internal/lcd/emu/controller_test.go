package emu

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
)

// nibble drives D4..D7 and pulses E once.
func nibble(c *Controller, rs bool, n byte) {
	c.RS().Out(gpio.Level(rs))
	for bit := 0; bit < 4; bit++ {
		c.D(4 + bit).Out(gpio.Level(n&(1<<bit) != 0))
	}
	c.E().Out(gpio.High)
	c.E().Out(gpio.Low)
}

func send(c *Controller, rs bool, v byte) {
	nibble(c, rs, v>>4)
	nibble(c, rs, v&0x0F)
}

// boot runs the usual 4-bit initialization.
func boot(c *Controller) {
	nibble(c, false, 0x3)
	nibble(c, false, 0x3)
	nibble(c, false, 0x3)
	nibble(c, false, 0x2)
	send(c, false, 0x06)
	send(c, false, 0x0C)
	send(c, false, 0x28)
	send(c, false, 0x01)
}

func TestPowerOnState(t *testing.T) {
	c := New()

	if c.FourBit() {
		t.Error("Controller should start in 8-bit mode")
	}
	if c.TwoLine() {
		t.Error("Controller should start in one-line mode")
	}
	snap := c.Snapshot()
	if snap.DisplayOn {
		t.Error("Display should start off")
	}
	for r := 0; r < Rows; r++ {
		if got := string(c.Row(r)); got != "                " {
			t.Errorf("Row %d = %q, expected blanks", r, got)
		}
	}
}

func TestDataLinesRange(t *testing.T) {
	c := New()
	for _, n := range []int{0, 3, 8} {
		if c.D(n) != nil {
			t.Errorf("D(%d) should be nil", n)
		}
	}
	for n := 4; n <= 7; n++ {
		if c.D(n) == nil {
			t.Errorf("D(%d) should be wired", n)
		}
	}
	if c.D(4).Name() != "D4" || c.RS().Name() != "RS" {
		t.Errorf("Unexpected line names %q, %q", c.D(4).Name(), c.RS().Name())
	}
}

func TestBootSwitchesToFourBit(t *testing.T) {
	c := New()
	boot(c)

	if !c.FourBit() || !c.TwoLine() {
		t.Fatalf("After boot: fourBit=%v twoLine=%v", c.FourBit(), c.TwoLine())
	}

	transfers := c.Transfers()
	expected := []byte{0x30, 0x30, 0x30, 0x20, 0x06, 0x0C, 0x28, 0x01}
	if len(transfers) != len(expected) {
		t.Fatalf("Executed %d transfers, expected %d", len(transfers), len(expected))
	}
	for i, v := range expected {
		if transfers[i].Data || transfers[i].Value != v {
			t.Errorf("Transfer %d = %+v, expected command 0x%02X", i, transfers[i], v)
		}
	}
}

func TestLatchOnFallingEdgeOnly(t *testing.T) {
	c := New()
	boot(c)
	c.ResetLog()

	c.D(4).Out(gpio.High)
	c.E().Out(gpio.High)
	if c.Strobes() != 0 {
		t.Fatal("Rising edge must not latch")
	}
	c.E().Out(gpio.High)
	c.E().Out(gpio.Low)
	c.E().Out(gpio.Low)
	if c.Strobes() != 1 {
		t.Errorf("Strobes() = %d, expected 1", c.Strobes())
	}
}

func TestDDRAMWrites(t *testing.T) {
	c := New()
	boot(c)

	send(c, false, 0x80|0x40|3)
	for _, b := range []byte("abc") {
		send(c, true, b)
	}

	if got := string(c.Row(1)[3:6]); got != "abc" {
		t.Errorf("Row 1 = %q", c.Row(1))
	}
	if addr, cg := c.Address(); cg || addr != 0x46 {
		t.Errorf("Address() = 0x%02X cgram=%v, expected 0x46 ddram", addr, cg)
	}
}

func TestTwoLineWrap(t *testing.T) {
	tests := []struct {
		name     string
		start    byte
		expected byte
	}{
		{"end of line 0 wraps to line 1", 0x27, 0x40},
		{"end of line 1 wraps to line 0", 0x67, 0x00},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			boot(c)
			send(c, false, 0x80|tc.start)
			send(c, true, 'x')
			if addr, _ := c.Address(); addr != tc.expected {
				t.Errorf("Address() = 0x%02X, expected 0x%02X", addr, tc.expected)
			}
		})
	}
}

func TestCGRAMProgramming(t *testing.T) {
	c := New()
	boot(c)

	rows := []byte{0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0xFF}
	send(c, false, 0x40|7<<3)
	for _, r := range rows {
		send(c, true, r)
	}

	got := c.Glyph(7)
	for i, r := range rows {
		if got[i] != r&0x1F {
			t.Errorf("Glyph row %d = 0x%02X, expected 0x%02X", i, got[i], r&0x1F)
		}
	}
	if _, cg := c.Address(); !cg {
		t.Error("Address counter should still point into CGRAM")
	}

	// A DDRAM address instruction leaves CGRAM untouched.
	send(c, false, 0x80)
	send(c, true, 7)
	if c.Row(0)[0] != 7 || c.Glyph(7) != got {
		t.Error("DDRAM write after CGRAM programming went to the wrong memory")
	}
}

func TestClearInstruction(t *testing.T) {
	c := New()
	boot(c)

	send(c, false, 0xC5)
	send(c, true, 'z')
	send(c, false, 0x01)

	if got := string(c.Row(1)); got != "                " {
		t.Errorf("Row 1 after clear = %q", got)
	}
	if addr, _ := c.Address(); addr != 0 {
		t.Errorf("Address after clear = 0x%02X, expected 0", addr)
	}
}

func TestTransferLogBounded(t *testing.T) {
	c := New()
	boot(c)
	c.ResetLog()

	for i := 0; i < maxTransfers+10; i++ {
		send(c, true, 'a')
	}
	if n := len(c.Transfers()); n > maxTransfers {
		t.Errorf("Transfer log grew to %d entries", n)
	}
	if c.Strobes() != 2*(maxTransfers+10) {
		t.Errorf("Strobes() = %d", c.Strobes())
	}
}
