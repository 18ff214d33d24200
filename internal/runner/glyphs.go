package runner

import "github.com/vovakirdan/lcd-runner/internal/lcd"

// Glyphs holds the custom characters uploaded to CGRAM. Entry i goes to
// slot i+1, matching the Sprite codes.
var Glyphs = [lcd.MaxGlyphs]lcd.Glyph{
	// Run, position 1
	{0b01100, 0b01100, 0b00000, 0b01110, 0b11100, 0b01100, 0b11010, 0b10011},
	// Run, position 2
	{0b01100, 0b01100, 0b00000, 0b01100, 0b01100, 0b01100, 0b01100, 0b01110},
	// Jump
	{0b01100, 0b01100, 0b00000, 0b11110, 0b01101, 0b11111, 0b10000, 0b00000},
	// Jump, lower half
	{0b11110, 0b01101, 0b11111, 0b10000, 0b00000, 0b00000, 0b00000, 0b00000},
	// Solid ground
	{0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111, 0b11111},
	// Trailing edge
	{0b00011, 0b00011, 0b00011, 0b00011, 0b00011, 0b00011, 0b00011, 0b00011},
	// Leading edge
	{0b11000, 0b11000, 0b11000, 0b11000, 0b11000, 0b11000, 0b11000, 0b11000},
}

// GlyphNames labels the slots for diagnostics.
var GlyphNames = [lcd.MaxGlyphs]string{
	"run-1", "run-2", "jump", "jump-lower", "solid", "solid-trailing", "solid-leading",
}

// UploadGlyphs programs every custom character into the display.
func UploadGlyphs(d Display) {
	for i, g := range Glyphs {
		d.DefineGlyph(i+1, g)
	}
}
