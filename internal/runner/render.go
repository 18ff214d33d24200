package runner

import (
	"strconv"

	"github.com/vovakirdan/lcd-runner/internal/lcd"
)

// Display is the subset of the character display the game draws on.
// *lcd.Driver implements it.
type Display interface {
	Clear()
	SetCursor(column, row int)
	Print(cells []byte)
	PrintString(s string)
	DefineGlyph(slot int, glyph lcd.Glyph)
}

var _ Display = (*lcd.Driver)(nil)

// Compose draws one frame: both terrain rows with the hero overlaid in
// HeroColumn, and the score right-aligned on the upper row. It reports a
// collision when any cell the hero overwrites is not empty.
//
// The rows are taken by value; the caller's terrain is never modified.
func Compose(d Display, hero Position, upper, lower Row, score int) bool {
	collided := Collides(hero, upper, lower)
	heroUpper, heroLower := hero.Glyphs()
	if heroUpper != SpriteNone {
		upper[HeroColumn] = heroUpper
	}
	if heroLower != SpriteNone {
		lower[HeroColumn] = heroLower
	}

	digits := strconv.Itoa(score)
	overlay := Width - len(digits)
	if overlay < 0 {
		overlay = 0
		digits = digits[len(digits)-Width:]
	}

	upper[Width] = SpriteNone
	lower[Width] = SpriteNone
	upper[overlay] = SpriteNone

	d.SetCursor(0, 0)
	d.Print(cells(upper))
	d.SetCursor(0, 1)
	d.Print(cells(lower))
	d.SetCursor(overlay, 0)
	d.PrintString(digits)

	return collided
}

// cells returns the printable prefix of a row, up to its first SpriteNone.
func cells(r Row) []byte {
	out := make([]byte, 0, len(r))
	for _, s := range r {
		if s == SpriteNone {
			break
		}
		out = append(out, byte(s))
	}
	return out
}

// Collides reports whether hero would collide with the given display rows,
// without drawing anything.
func Collides(hero Position, upper, lower Row) bool {
	heroUpper, heroLower := hero.Glyphs()
	if heroUpper != SpriteNone && upper[HeroColumn] != SpriteEmpty {
		return true
	}
	return heroLower != SpriteNone && lower[HeroColumn] != SpriteEmpty
}
