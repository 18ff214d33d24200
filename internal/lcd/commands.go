package lcd

// Instruction set of the HD44780.
const (
	CmdClear          byte = 0x01
	CmdHome           byte = 0x02
	CmdEntryMode      byte = 0x04
	CmdDisplayControl byte = 0x08
	CmdShift          byte = 0x10
	CmdFunctionSet    byte = 0x20
	CmdSetCGRAM       byte = 0x40
	CmdSetDDRAM       byte = 0x80
)

// Instruction flags.
const (
	EntryIncrement byte = 0x02

	DisplayOn byte = 0x04
	CursorOn  byte = 0x02
	BlinkOn   byte = 0x01

	Function8Bit  byte = 0x10
	Function2Line byte = 0x08
	Function5x10  byte = 0x04
)

// DDRAM base addresses of the two display lines.
const (
	Row0Address byte = 0x00
	Row1Address byte = 0x40

	// LineLength is the number of DDRAM cells per line in two-line mode.
	LineLength = 40
)

// Glyph geometry.
const (
	MaxGlyphs    = 7
	GlyphRows    = 8
	GlyphWidth   = 5
	GlyphRowMask = 0x1F
)

// Glyph is a 5×8 custom character, one byte per pixel row with the
// leftmost pixel in bit 4.
type Glyph [GlyphRows]byte

// initSequence resynchronizes the controller from either bus width.
// 0x33 and 0x32 are read as four 8-bit function sets by a controller that
// is still in 8-bit mode, the last one switching it to 4 bits.
var initSequence = []byte{
	0x33,
	0x32,
	CmdEntryMode | EntryIncrement,
	CmdDisplayControl | DisplayOn,
	CmdFunctionSet | Function2Line,
	CmdClear,
}
