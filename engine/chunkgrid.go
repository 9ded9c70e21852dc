package engine

// ChunkGrid is the in-memory Grid implementation this module ships so the
// scheduler has something concrete to run against and demo. It is a flat
// row-major []Cell with chunk/row/column non-empty counters, trading a
// [][]Cell addressing scheme for a 1-D backing array with the activity
// hints spec.md §6 requires.
type ChunkGrid struct {
	width, height int
	chunkSize     int
	optSize       int
	kinds         *KindRegistry

	cells []Cell

	chunkNonEmpty [][]int
	rowNonEmpty   []int
	colNonEmpty   []int
}

// DefaultChunkSize matches the original engine's tsc_gridChunkSize
// default of 8 cells per chunk edge.
const DefaultChunkSize = 8

// NewChunkGrid allocates a width x height grid, all cells initialized to
// Empty, with chunkSize-wide activity tracking and optSize bytes of
// per-cell optimization scratch.
func NewChunkGrid(width, height, chunkSize, optSize int, kinds *KindRegistry) *ChunkGrid {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	g := &ChunkGrid{
		width:     width,
		height:    height,
		chunkSize: chunkSize,
		optSize:   optSize,
		kinds:     kinds,
		cells:     make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Cell{ID: Empty, Opt: make([]byte, optSize)}
	}
	chunksX := (width + chunkSize - 1) / chunkSize
	chunksY := (height + chunkSize - 1) / chunkSize
	g.chunkNonEmpty = make([][]int, chunksY)
	for i := range g.chunkNonEmpty {
		g.chunkNonEmpty[i] = make([]int, chunksX)
	}
	g.rowNonEmpty = make([]int, height)
	g.colNonEmpty = make([]int, width)
	return g
}

func (g *ChunkGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *ChunkGrid) idx(x, y int) int { return y*g.width + x }

func (g *ChunkGrid) Width() int  { return g.width }
func (g *ChunkGrid) Height() int { return g.height }

func (g *ChunkGrid) Get(x, y int) *Cell {
	if !g.inBounds(x, y) {
		return nil
	}
	return &g.cells[g.idx(x, y)]
}

// SetCell places a kind/rotation pair at (x, y), updating the activity
// counters. Intended for scenario setup and the bootstrap seeder, not for
// use inside update callbacks (those go through Push/Rotate).
func (g *ChunkGrid) SetCell(x, y int, id CellKind, rot Rotation) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.idx(x, y)
	wasEmpty := g.cells[i].ID == Empty
	nowEmpty := id == Empty
	g.cells[i] = Cell{ID: id, Rotation: rot, RotData: rot, LX: x, LY: y, Opt: make([]byte, g.optSize)}
	g.adjustCounts(x, y, wasEmpty, nowEmpty)
}

func (g *ChunkGrid) adjustCounts(x, y int, wasEmpty, nowEmpty bool) {
	if wasEmpty == nowEmpty {
		return
	}
	delta := 1
	if nowEmpty {
		delta = -1
	}
	g.rowNonEmpty[y] += delta
	g.colNonEmpty[x] += delta
	g.chunkNonEmpty[y/g.chunkSize][x/g.chunkSize] += delta
}

func (g *ChunkGrid) CheckChunk(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.chunkNonEmpty[y/g.chunkSize][x/g.chunkSize] > 0
}

func (g *ChunkGrid) CheckRow(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	return g.rowNonEmpty[y] > 0
}

func (g *ChunkGrid) CheckColumn(x int) bool {
	if x < 0 || x >= g.width {
		return false
	}
	return g.colNonEmpty[x] > 0
}

func (g *ChunkGrid) ChunkOff(v, dir int) int {
	base := (v / g.chunkSize) * g.chunkSize
	if dir == 0 {
		return base
	}
	return base + g.chunkSize
}

func (g *ChunkGrid) ChunkSize() int { return g.chunkSize }

func (g *ChunkGrid) FrontX(x int, rot Rotation) int { return g.ShiftX(x, rot, 1) }
func (g *ChunkGrid) FrontY(y int, rot Rotation) int { return g.ShiftY(y, rot, 1) }

func (g *ChunkGrid) ShiftX(x int, rot Rotation, delta int) int {
	dx, _ := rotationDelta(rot)
	return x + dx*delta
}

func (g *ChunkGrid) ShiftY(y int, rot Rotation, delta int) int {
	_, dy := rotationDelta(rot)
	return y + dy*delta
}

func (g *ChunkGrid) Rotate(x, y int, delta int) {
	c := g.Get(x, y)
	if c == nil {
		return
	}
	r := (int(c.Rotation) + delta) % 4
	if r < 0 {
		r += 4
	}
	c.Rotation = Rotation(r)
}

// CanGenerate reports whether back holds something worth copying ahead of
// the generator. The grid is the sole arbiter of generation rules in the
// original engine; this default policy is the minimal one spec.md's
// scenarios require: anything occupying the back cell can be generated
// forward.
func (g *ChunkGrid) CanGenerate(back *Cell, bx, by int, gen *Cell, gx, gy int, rot Rotation) bool {
	return back != nil && back.ID != Empty
}

func (g *ChunkGrid) GetOptimization(x, y int, bit int) bool {
	c := g.Get(x, y)
	if c == nil || bit < 0 || bit >= len(c.Opt) {
		return false
	}
	return c.Opt[bit] != 0
}

func (g *ChunkGrid) SetOptimization(x, y int, bit int, value bool) {
	c := g.Get(x, y)
	if c == nil || bit < 0 || bit >= len(c.Opt) {
		return
	}
	if value {
		c.Opt[bit] = 1
	} else {
		c.Opt[bit] = 0
	}
}

func (g *ChunkGrid) OptSize() int { return g.optSize }

// Push walks the chain of non-empty, pushable cells starting at (x, y) in
// direction rot until it finds an empty landing slot, then shifts the
// chain forward by one and writes pusher (or an empty cell, if pusher is
// nil) into the vacated (x, y). A non-pushable cell (a wall) or the grid
// edge encountered before a landing slot blocks the push entirely.
func (g *ChunkGrid) Push(x, y int, rot Rotation, force int, pusher *Cell) int {
	dx, dy := rotationDelta(rot)
	type point struct{ x, y int }
	var chain []point
	cx, cy := x, y
	for {
		c := g.Get(cx, cy)
		if c == nil {
			return 0
		}
		if c.ID == Empty {
			break
		}
		if !g.kinds.Pushable(c.ID) {
			return 0
		}
		chain = append(chain, point{cx, cy})
		cx += dx
		cy += dy
	}

	for i := len(chain) - 1; i >= 0; i-- {
		p := chain[i]
		src := g.Get(p.x, p.y)
		dstX, dstY := p.x+dx, p.y+dy
		moved := *src
		moved.LX, moved.LY = dstX, dstY
		wasEmpty := g.Get(dstX, dstY).ID == Empty
		g.cells[g.idx(dstX, dstY)] = moved
		g.adjustCounts(dstX, dstY, wasEmpty, false)
	}

	// len(chain) == 0 means (x, y) itself was already the empty landing
	// slot (the generator-at-its-own-front case); anything longer means
	// (x, y) held the first link of the chain.
	wasEmptyOrigin := len(chain) == 0
	if pusher != nil {
		placed := *pusher
		placed.LX, placed.LY = x, y
		g.cells[g.idx(x, y)] = placed
		g.adjustCounts(x, y, wasEmptyOrigin, placed.ID == Empty)
	} else {
		g.cells[g.idx(x, y)] = Cell{ID: Empty, LX: x, LY: y, Opt: make([]byte, g.optSize)}
		g.adjustCounts(x, y, wasEmptyOrigin, true)
	}

	// Report the cells displaced: every shifted link of the chain, plus
	// the pusher when one was written in. 0 therefore means nothing
	// moved: the blocked path above, or an empty (x, y) with no pusher.
	if pusher != nil {
		return len(chain) + 1
	}
	return len(chain)
}
