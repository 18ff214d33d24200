// Package runner implements a side-scrolling runner for a 16x2 character
// display. The hero stays in a fixed column while two rows of terrain scroll
// toward it; the player jumps over or onto blocks and the round ends on the
// first collision.
//
// Everything here is pure game logic. Output goes through the Display
// interface and randomness through Source, so the whole game can be driven
// deterministically in tests or against an emulated panel.
package runner

// Sprite is a display cell code: a custom glyph slot (1..7) or a plain
// character from the controller's ROM.
type Sprite byte

// Cell codes. Slots 1..7 must match the order of Glyphs.
const (
	SpriteNone          Sprite = 0 // no hero glyph on this row; also terminates printed rows
	SpriteRun1          Sprite = 1
	SpriteRun2          Sprite = 2
	SpriteJump          Sprite = 3
	SpriteJumpLower     Sprite = 4
	SpriteSolid         Sprite = 5
	SpriteSolidTrailing Sprite = 6 // right half filled: a block is about to enter this cell
	SpriteSolidLeading  Sprite = 7 // left half filled: the last column of a block
	SpriteJumpUpper     Sprite = '.'
	SpriteEmpty         Sprite = ' '
)

// Playfield geometry.
const (
	Width             = 16
	HeroColumn        = 1
	AutoplayLookahead = 2
)

// Relax maps a display cell back to the logical terrain it stands for.
// Edge decorations never change what a cell logically holds.
func Relax(s Sprite) Sprite {
	switch s {
	case SpriteSolidLeading:
		return SpriteSolid
	case SpriteSolidTrailing:
		return SpriteEmpty
	default:
		return s
	}
}
