package runner

// Row is one line of terrain: Width visible cells plus a sentinel slot that
// terminates the row when it is printed.
type Row [Width + 1]Sprite

// NewRow returns a row of empty cells.
func NewRow() Row {
	var r Row
	for i := range r {
		r[i] = SpriteEmpty
	}
	return r
}

// Advance shifts the visible cells one column left and inserts incoming at
// the right edge. The cell leaving column 0 is discarded.
func Advance(row *Row, incoming Sprite) {
	copy(row[:Width-1], row[1:Width])
	row[Width-1] = incoming
}

// Edges returns the display form of a logical row. A gap cell directly in
// front of a block shows a trailing edge and the last cell of a block shows
// a leading edge, so a block appears to slide in half a cell at a time. The
// last column has no successor and is never decorated.
//
// The input is read only through Relax, so Edges is idempotent and
// Relax(Edges(r)[i]) == Relax(r[i]) for every visible column.
func Edges(row Row) Row {
	out := row
	for i := 0; i < Width; i++ {
		cur := Relax(row[i])
		next := cur
		if i < Width-1 {
			next = Relax(row[i+1])
		}
		switch {
		case cur == SpriteEmpty && next == SpriteSolid:
			out[i] = SpriteSolidTrailing
		case cur == SpriteSolid && next == SpriteEmpty:
			out[i] = SpriteSolidLeading
		default:
			out[i] = cur
		}
	}
	return out
}

// Kind is the terrain currently being fed in at the right edge.
type Kind int

const (
	KindNone  Kind = iota // gap on both rows
	KindUpper             // block on the upper row
	KindLower             // block on the lower row
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUpper:
		return "upper"
	case KindLower:
		return "lower"
	default:
		return "unknown"
	}
}

// Source supplies random numbers. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Generation parameters, in ticks.
const (
	upperOdds       = 4 // one obstacle in upperOdds is on the upper row
	minBlock        = 2
	blockSpread     = 11 // blocks last minBlock..minBlock+blockSpread-1
	minGap          = 10
	gapSpread       = 11 // gaps last minGap..minGap+gapSpread-1
	initialDuration = 1
)

// Generator decides what enters the playfield on each tick. Gaps and blocks
// alternate; a block occupies exactly one row, so both rows can never be
// blocked in the same column.
type Generator struct {
	src       Source
	kind      Kind
	remaining int
}

// NewGenerator creates a generator in its initial state.
func NewGenerator(src Source) *Generator {
	g := &Generator{src: src}
	g.Reset()
	return g
}

// Reset returns to a one-tick gap.
func (g *Generator) Reset() {
	g.kind = KindNone
	g.remaining = initialDuration
}

// Incoming returns the cells to insert on the upper and lower rows.
func (g *Generator) Incoming() (upper, lower Sprite) {
	upper, lower = SpriteEmpty, SpriteEmpty
	switch g.kind {
	case KindUpper:
		upper = SpriteSolid
	case KindLower:
		lower = SpriteSolid
	}
	return upper, lower
}

// Step consumes one tick of the current kind and rolls the next one when it
// runs out: a block after a gap, a gap after a block.
func (g *Generator) Step() {
	g.remaining--
	if g.remaining > 0 {
		return
	}

	if g.kind == KindNone {
		if g.src.Intn(upperOdds) == 0 {
			g.kind = KindUpper
		} else {
			g.kind = KindLower
		}
		g.remaining = minBlock + g.src.Intn(blockSpread)
		return
	}

	g.kind = KindNone
	g.remaining = minGap + g.src.Intn(gapSpread)
}

// Ground is what lies under the hero on the lower row.
type Ground int

const (
	GroundEmpty Ground = iota
	GroundSolid
)

func groundOf(s Sprite) Ground {
	if s == SpriteEmpty {
		return GroundEmpty
	}
	return GroundSolid
}

// Terrain owns both logical rows and the generator feeding them.
type Terrain struct {
	upper Row
	lower Row
	gen   *Generator
}

// NewTerrain creates an empty playfield.
func NewTerrain(src Source) *Terrain {
	t := &Terrain{gen: NewGenerator(src)}
	t.Reset()
	return t
}

// Reset clears both rows and restarts generation.
func (t *Terrain) Reset() {
	t.upper = NewRow()
	t.lower = NewRow()
	t.gen.Reset()
}

// Advance scrolls both rows one column and steps the generator.
func (t *Terrain) Advance() {
	upper, lower := t.gen.Incoming()
	Advance(&t.lower, lower)
	Advance(&t.upper, upper)
	t.gen.Step()
}

// Display returns both rows with edge decorations applied.
func (t *Terrain) Display() (upper, lower Row) {
	return Edges(t.upper), Edges(t.lower)
}

// GroundUnderHero reports the displayed lower-row cell in the hero column.
// Any edge counts as solid, matching the collision rule in Compose.
func (t *Terrain) GroundUnderHero() Ground {
	return groundOf(Edges(t.lower)[HeroColumn])
}
