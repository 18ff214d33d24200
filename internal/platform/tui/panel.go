package tui

import (
	"math/bits"

	"github.com/vovakirdan/lcd-runner/internal/core"
	"github.com/vovakirdan/lcd-runner/internal/lcd/emu"
)

// panelLayout sizes one character cell of the simulated display.
type panelLayout struct {
	cellW, cellH int // terminal columns and rows per character
	gapX, gapY   int // spacing between characters
	padX, padY   int // glass margin inside the bezel
}

var (
	// Each 5x8 character becomes 5 columns of half-block pairs.
	pixelLayout = panelLayout{cellW: 5, cellH: 4, gapX: 1, gapY: 1, padX: 1, padY: 1}
	// One terminal cell per character.
	compactLayout = panelLayout{cellW: 1, cellH: 1, padX: 1}
)

func layoutFor(pixel bool) panelLayout {
	if pixel {
		return pixelLayout
	}
	return compactLayout
}

func (l panelLayout) size() (w, h int) {
	w = emu.Columns*l.cellW + (emu.Columns-1)*l.gapX + 2*l.padX + 2
	h = emu.Rows*l.cellH + (emu.Rows-1)*l.gapY + 2*l.padY + 2
	return w, h
}

// PanelSize returns the canvas size needed to paint the panel.
func PanelSize(pixel bool) (w, h int) {
	return layoutFor(pixel).size()
}

// PaintPanel draws the emulated display into s, which must be at least
// PanelSize. Custom characters (codes 0..15) are drawn from CGRAM; other
// codes have no pixel font and are drawn as the character itself.
func PaintPanel(s *core.Screen, snap emu.Snapshot, pixel bool) {
	l := layoutFor(pixel)
	w, h := l.size()
	outer := core.NewRect(0, 0, w, h)

	s.Clear()
	s.DrawBox(outer, core.ColorBezel)
	s.FillRect(outer.Inset(1, 1), ' ', core.ColorGlass)
	if !snap.DisplayOn {
		return
	}

	for row := 0; row < emu.Rows; row++ {
		for col := 0; col < emu.Columns; col++ {
			cell := core.NewRect(
				1+l.padX+col*(l.cellW+l.gapX),
				1+l.padY+row*(l.cellH+l.gapY),
				l.cellW, l.cellH,
			)
			paintChar(s, cell, snap, snap.Text[row][col], pixel)
		}
	}
}

func paintChar(s *core.Screen, cell core.Rect, snap emu.Snapshot, code byte, pixel bool) {
	if code < 0x10 {
		glyph := snap.CGRAM[code&7]
		if pixel {
			paintBitmap(s, cell, glyph)
		} else {
			s.Set(cell.X, cell.Y, quadrant(glyph), core.ColorPixel)
		}
		return
	}
	if code == ' ' {
		return
	}

	r := '?'
	if code < 0x7F {
		r = rune(code)
	}
	s.Set(cell.X+cell.W/2, cell.Y+(cell.H-1)/2, r, core.ColorPixel)
}

// paintBitmap draws a 5x8 glyph as 5 columns by 4 rows of half blocks.
func paintBitmap(s *core.Screen, cell core.Rect, glyph [8]byte) {
	for y := 0; y < cell.H && 2*y+1 < len(glyph); y++ {
		top, bottom := glyph[2*y], glyph[2*y+1]
		for x := 0; x < cell.W; x++ {
			bit := byte(1) << (4 - x)
			if r := halfBlock(top&bit != 0, bottom&bit != 0); r != ' ' {
				s.Set(cell.X+x, cell.Y+y, r, core.ColorPixel)
			}
		}
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// quadrants is indexed by lit quarters: 1 top-left, 2 top-right,
// 4 bottom-left, 8 bottom-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

const (
	leftHalf       = 0b11100
	rightHalf      = 0b00111
	quadrantMinLit = 3
)

// quadrant reduces a 5x8 glyph to one quadrant block character. A quarter
// is lit when at least quadrantMinLit of its pixels are.
func quadrant(glyph [8]byte) rune {
	quarters := [4]struct {
		from int
		half byte
	}{
		{0, leftHalf},
		{0, rightHalf},
		{4, leftHalf},
		{4, rightHalf},
	}

	var idx int
	for i, q := range quarters {
		lit := 0
		for r := q.from; r < q.from+4; r++ {
			lit += bits.OnesCount8(glyph[r] & q.half)
		}
		if lit >= quadrantMinLit {
			idx |= 1 << i
		}
	}
	return quadrants[idx]
}
