package runner

import "time"

// Default pacing.
const (
	DefaultPlayInterval    = 100 * time.Millisecond
	DefaultAttractInterval = 250 * time.Millisecond
)

// AttractMessage is shown on the blink frames between rounds.
const AttractMessage = "Press Start"

// Options configures game pacing.
type Options struct {
	PlayInterval    time.Duration // delay after each play tick
	AttractInterval time.Duration // delay after each attract-mode frame
}

// DefaultOptions returns the standard pacing.
func DefaultOptions() Options {
	return Options{
		PlayInterval:    DefaultPlayInterval,
		AttractInterval: DefaultAttractInterval,
	}
}

// TickResult describes what happened during one tick and how long the
// caller should wait before the next one.
type TickResult struct {
	Delay    time.Duration
	Playing  bool // a round is in progress after this tick
	Started  bool // this tick started a new round
	Collided bool // this tick ended the round
	Autoplay bool // an obstacle is approaching on the lower row
	Score    int
	Distance int
}

// Game is the runner's state machine. It alternates between attract mode,
// where the last frame blinks with a start prompt, and play, where terrain
// scrolls one column per tick. A Game is not safe for concurrent use; one
// goroutine owns it and calls Tick in a loop.
type Game struct {
	display  Display
	terrain  *Terrain
	opts     Options
	hero     Position
	playing  bool
	blink    bool
	distance int
}

// New creates a game drawing on display with randomness from src.
// Zero intervals in opts fall back to the defaults.
func New(display Display, src Source, opts Options) *Game {
	if opts.PlayInterval <= 0 {
		opts.PlayInterval = DefaultPlayInterval
	}
	if opts.AttractInterval <= 0 {
		opts.AttractInterval = DefaultAttractInterval
	}
	return &Game{
		display: display,
		terrain: NewTerrain(src),
		opts:    opts,
		hero:    PositionRunLower1,
	}
}

// Setup uploads the glyphs and clears the playfield. The display must
// already be initialized.
func (g *Game) Setup() {
	UploadGlyphs(g.display)
	g.terrain.Reset()
}

// Tick runs one step. jump is the already-debounced button state.
func (g *Game) Tick(jump bool) TickResult {
	if !g.playing {
		return g.attract(jump)
	}
	return g.play(jump)
}

func (g *Game) attract(jump bool) TickResult {
	hero := g.hero
	if g.blink {
		hero = PositionOff
	}
	upper, lower := g.terrain.Display()
	Compose(g.display, hero, upper, lower, g.Score())
	if g.blink {
		g.display.SetCursor(0, 0)
		g.display.PrintString(AttractMessage)
	}
	g.blink = !g.blink

	res := TickResult{Delay: g.opts.AttractInterval, Score: g.Score(), Distance: g.distance}
	if jump {
		g.start()
		res.Started = true
		res.Playing = true
	}
	return res
}

func (g *Game) start() {
	UploadGlyphs(g.display)
	g.terrain.Reset()
	g.hero = PositionRunLower1
	g.distance = 0
	g.playing = true
}

func (g *Game) play(jump bool) TickResult {
	g.terrain.Advance()

	if jump && g.hero.CanJump() {
		g.hero = PositionJump1
	}

	upper, lower := g.terrain.Display()
	res := TickResult{Delay: g.opts.PlayInterval}
	if Compose(g.display, g.hero, upper, lower, g.Score()) {
		g.playing = false
		res.Collided = true
		res.Score = g.Score()
		res.Distance = g.distance
		return res
	}

	g.hero = g.hero.Next(g.terrain.GroundUnderHero())
	g.distance++

	res.Playing = true
	res.Autoplay = lower[HeroColumn+AutoplayLookahead] != SpriteEmpty
	res.Score = g.Score()
	res.Distance = g.distance
	return res
}

// Playing reports whether a round is in progress.
func (g *Game) Playing() bool {
	return g.playing
}

// Score is the displayed score: one point per eight columns travelled.
func (g *Game) Score() int {
	return g.distance >> 3
}
