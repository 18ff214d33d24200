package runner

import "fmt"

// Position is the hero's animation and altitude state.
type Position int

const (
	PositionOff Position = iota // hidden, used for the attract-mode blink
	PositionRunLower1
	PositionRunLower2
	PositionJump1 // takeoff
	PositionJump2
	PositionJump3 // airborne, upper row only
	PositionJump4
	PositionJump5
	PositionJump6
	PositionJump7
	PositionJump8 // landing
	PositionRunUpper1
	PositionRunUpper2

	positionCount
)

var positionNames = [positionCount]string{
	"off",
	"run-lower-1", "run-lower-2",
	"jump-1", "jump-2", "jump-3", "jump-4", "jump-5", "jump-6", "jump-7", "jump-8",
	"run-upper-1", "run-upper-2",
}

// String returns a human-readable name for the position.
func (p Position) String() string {
	if p < 0 || p >= positionCount {
		return fmt.Sprintf("position(%d)", int(p))
	}
	return positionNames[p]
}

// heroGlyphs maps each position to its upper and lower row cells.
// SpriteNone leaves the terrain on that row visible.
var heroGlyphs = [positionCount][2]Sprite{
	PositionOff:       {SpriteNone, SpriteNone},
	PositionRunLower1: {SpriteNone, SpriteRun1},
	PositionRunLower2: {SpriteNone, SpriteRun2},
	PositionJump1:     {SpriteNone, SpriteJump},
	PositionJump2:     {SpriteJumpUpper, SpriteJumpLower},
	PositionJump3:     {SpriteJump, SpriteNone},
	PositionJump4:     {SpriteJump, SpriteNone},
	PositionJump5:     {SpriteJump, SpriteNone},
	PositionJump6:     {SpriteJump, SpriteNone},
	PositionJump7:     {SpriteJumpUpper, SpriteJumpLower},
	PositionJump8:     {SpriteNone, SpriteJump},
	PositionRunUpper1: {SpriteRun1, SpriteNone},
	PositionRunUpper2: {SpriteRun2, SpriteNone},
}

// Glyphs returns the cells the hero draws on the upper and lower rows.
func (p Position) Glyphs() (upper, lower Sprite) {
	g := heroGlyphs[p]
	return g[0], g[1]
}

// transitions gives the next position for each position and the ground in
// the hero column. Runs alternate frames; a jump climbs for two frames,
// may land on a lower block during frames 3..5 and otherwise descends.
// Running on top of a block drops back into the descent once the block
// has passed.
var transitions = [positionCount][2]Position{
	//                  GroundEmpty        GroundSolid
	PositionOff:       {PositionRunLower1, PositionRunLower1},
	PositionRunLower1: {PositionRunLower2, PositionRunLower2},
	PositionRunLower2: {PositionRunLower1, PositionRunLower1},
	PositionJump1:     {PositionJump2, PositionJump2},
	PositionJump2:     {PositionJump3, PositionJump3},
	PositionJump3:     {PositionJump4, PositionRunUpper1},
	PositionJump4:     {PositionJump5, PositionRunUpper1},
	PositionJump5:     {PositionJump6, PositionRunUpper1},
	PositionJump6:     {PositionJump7, PositionJump7},
	PositionJump7:     {PositionJump8, PositionJump8},
	PositionJump8:     {PositionRunLower1, PositionRunLower1},
	PositionRunUpper1: {PositionJump5, PositionRunUpper2},
	PositionRunUpper2: {PositionJump5, PositionRunUpper1},
}

// Next returns the position after a collision-free frame.
func (p Position) Next(g Ground) Position {
	return transitions[p][g]
}

// CanJump reports whether a jump press is accepted in this position.
// Only a hero running on the lower row can take off.
func (p Position) CanJump() bool {
	return p == PositionRunLower1 || p == PositionRunLower2
}
