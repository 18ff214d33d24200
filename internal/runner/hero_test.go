package runner

import "testing"

// referenceNext applies the movement rules one by one, in priority order.
func referenceNext(p Position, g Ground) Position {
	switch {
	case p == PositionRunLower2 || p == PositionJump8:
		return PositionRunLower1
	case p >= PositionJump3 && p <= PositionJump5 && g == GroundSolid:
		return PositionRunUpper1
	case p >= PositionRunUpper1 && g == GroundEmpty:
		return PositionJump5
	case p == PositionRunUpper2:
		return PositionRunUpper1
	default:
		return p + 1
	}
}

func TestTransitionsMatchRules(t *testing.T) {
	for p := PositionOff; p < positionCount; p++ {
		for _, g := range []Ground{GroundEmpty, GroundSolid} {
			got := p.Next(g)
			want := referenceNext(p, g)
			if got != want {
				t.Errorf("%v.Next(%v) = %v, expected %v", p, g, got, want)
			}
			if got < PositionRunLower1 || got >= positionCount {
				t.Errorf("%v.Next(%v) = %v, outside the playable range", p, g, got)
			}
		}
	}
}

func TestJumpArc(t *testing.T) {
	p := PositionJump1
	var path []Position
	for p != PositionRunLower1 {
		path = append(path, p)
		p = p.Next(GroundEmpty)
		if len(path) > int(positionCount) {
			t.Fatal("Jump never lands")
		}
	}
	if len(path) != 8 {
		t.Errorf("Jump over flat ground took %d frames, expected 8: %v", len(path), path)
	}
}

func TestCanJump(t *testing.T) {
	for p := PositionOff; p < positionCount; p++ {
		want := p == PositionRunLower1 || p == PositionRunLower2
		if p.CanJump() != want {
			t.Errorf("%v.CanJump() = %v, expected %v", p, p.CanJump(), want)
		}
	}
}

func TestHeroGlyphs(t *testing.T) {
	tests := []struct {
		position     Position
		upper, lower Sprite
	}{
		{PositionOff, SpriteNone, SpriteNone},
		{PositionRunLower1, SpriteNone, SpriteRun1},
		{PositionRunLower2, SpriteNone, SpriteRun2},
		{PositionJump1, SpriteNone, SpriteJump},
		{PositionJump2, SpriteJumpUpper, SpriteJumpLower},
		{PositionJump4, SpriteJump, SpriteNone},
		{PositionJump7, SpriteJumpUpper, SpriteJumpLower},
		{PositionJump8, SpriteNone, SpriteJump},
		{PositionRunUpper1, SpriteRun1, SpriteNone},
		{PositionRunUpper2, SpriteRun2, SpriteNone},
	}

	for _, tc := range tests {
		upper, lower := tc.position.Glyphs()
		if upper != tc.upper || lower != tc.lower {
			t.Errorf("%v.Glyphs() = (%d, %d), expected (%d, %d)", tc.position, upper, lower, tc.upper, tc.lower)
		}
	}

	for p := PositionRunLower1; p < positionCount; p++ {
		if upper, lower := p.Glyphs(); upper == SpriteNone && lower == SpriteNone {
			t.Errorf("%v draws nothing", p)
		}
	}
}

func TestPositionString(t *testing.T) {
	if PositionJump3.String() != "jump-3" {
		t.Errorf("PositionJump3.String() = %q", PositionJump3.String())
	}
	if Position(-1).String() != "position(-1)" {
		t.Errorf("Position(-1).String() = %q", Position(-1).String())
	}
}
