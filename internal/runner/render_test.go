package runner

import (
	"testing"

	"github.com/vovakirdan/lcd-runner/internal/lcd"
)

// screen is an in-memory 16x2 display.
type screen struct {
	cells   [2][Width]byte
	col     int
	row     int
	glyphs  map[int]lcd.Glyph
	defines int
	prints  int
}

func newScreen() *screen {
	s := &screen{glyphs: map[int]lcd.Glyph{}}
	s.Clear()
	return s
}

func (s *screen) Clear() {
	for r := range s.cells {
		for c := range s.cells[r] {
			s.cells[r][c] = ' '
		}
	}
	s.col, s.row = 0, 0
}

func (s *screen) SetCursor(column, row int) {
	s.col, s.row = column, row&1
}

func (s *screen) Print(cells []byte) {
	s.prints++
	for _, b := range cells {
		if s.col < Width {
			s.cells[s.row][s.col] = b
		}
		s.col++
	}
}

func (s *screen) PrintString(str string) {
	s.Print([]byte(str))
}

func (s *screen) DefineGlyph(slot int, glyph lcd.Glyph) {
	s.glyphs[slot] = glyph
	s.defines++
}

func (s *screen) line(r int) string {
	return string(s.cells[r][:])
}

func TestComposeDrawsFrame(t *testing.T) {
	s := newScreen()
	upper := rowOf("     ###")
	lower := Edges(rowOf("          #"))

	collided := Compose(s, PositionRunLower2, upper, lower, 0)
	if collided {
		t.Error("Unexpected collision")
	}

	wantUpper := "     \x05\x05\x05       0"
	if got := s.line(0); got != wantUpper {
		t.Errorf("Upper line = %q, expected %q", got, wantUpper)
	}
	wantLower := " \x02       \x06\x07     "
	if got := s.line(1); got != wantLower {
		t.Errorf("Lower line = %q, expected %q", got, wantLower)
	}
}

func TestComposeScoreOverlay(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, "###############0"},
		{7, "###############7"},
		{42, "##############42"},
		{12345, "###########12345"},
	}

	for _, tc := range tests {
		s := newScreen()
		Compose(s, PositionRunLower1, rowOf("################"), NewRow(), tc.score)

		got := []byte(s.line(0))
		for i := range got {
			if got[i] == byte(SpriteSolid) {
				got[i] = '#'
			}
		}
		if string(got) != tc.expected {
			t.Errorf("score %d: upper line = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}

func TestComposeCollision(t *testing.T) {
	tests := []struct {
		name     string
		hero     Position
		upper    string
		lower    string
		expected bool
	}{
		{"running on clear ground", PositionRunLower1, "", "", false},
		{"running into a block", PositionRunLower1, "", " #", true},
		{"running into a trailing edge", PositionRunLower2, "", "t", false},
		{"trailing edge in hero column", PositionRunLower2, "", " t", true},
		{"leading edge in hero column", PositionRunLower1, "", " l", true},
		{"running under an upper block", PositionRunLower1, " #", "", false},
		{"airborne over a lower block", PositionJump4, "", " #", false},
		{"airborne into an upper block", PositionJump4, " #", "", true},
		{"takeoff spans both rows", PositionJump2, " #", "", true},
		{"landing spans both rows", PositionJump7, "", " #", true},
		{"running on top of a block", PositionRunUpper1, "", " #", false},
		{"hidden hero never collides", PositionOff, " #", " #", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			upper, lower := rowOf(tc.upper), rowOf(tc.lower)
			got := Compose(newScreen(), tc.hero, upper, lower, 0)
			if got != tc.expected {
				t.Errorf("Compose() = %v, expected %v", got, tc.expected)
			}
			if Collides(tc.hero, upper, lower) != got {
				t.Errorf("Collides() disagrees with Compose()")
			}
		})
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	upper := Edges(rowOf("  ##      #     "))
	lower := Edges(rowOf(" #    ###       "))
	upperBefore, lowerBefore := upper, lower

	for p := PositionOff; p < positionCount; p++ {
		first, second := newScreen(), newScreen()
		a := Compose(first, p, upper, lower, 99)
		b := Compose(second, p, upper, lower, 99)

		if a != b {
			t.Errorf("%v: collision %v then %v", p, a, b)
		}
		if first.cells != second.cells {
			t.Errorf("%v: frames differ", p)
		}
		if upper != upperBefore || lower != lowerBefore {
			t.Fatalf("%v: Compose modified the terrain", p)
		}
	}
}

func TestComposeHeroColumnOnly(t *testing.T) {
	s := newScreen()
	Compose(s, PositionJump2, NewRow(), NewRow(), 0)

	if s.cells[0][HeroColumn] != byte(SpriteJumpUpper) || s.cells[1][HeroColumn] != byte(SpriteJumpLower) {
		t.Errorf("Hero cells = %q/%q", s.cells[0][HeroColumn], s.cells[1][HeroColumn])
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < Width-1; c++ {
			if c != HeroColumn && s.cells[r][c] != ' ' {
				t.Errorf("Cell (%d,%d) = %q, expected blank", c, r, s.cells[r][c])
			}
		}
	}
}
