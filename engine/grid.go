package engine

// Grid is the external collaborator the scheduler drives: storage layout,
// persistence and rendering are all out of scope (spec.md §1/§6). This
// interface is only the surface the traversal, parallel-decomposition and
// reset code actually calls.
type Grid interface {
	Width() int
	Height() int

	// Get returns the cell at (x, y), or nil if (x, y) is out of bounds.
	// An in-bounds, unoccupied tile still returns a non-nil *Cell with
	// ID == Empty.
	Get(x, y int) *Cell

	// CheckChunk/CheckRow/CheckColumn report whether the given chunk/row
	// /column contains any non-empty cell at all, letting a traversal
	// fast-forward across large empty regions.
	CheckChunk(x, y int) bool
	CheckRow(y int) bool
	CheckColumn(x int) bool

	// ChunkOff returns, for dir==0, the coordinate of the lower edge of
	// v's chunk, and for dir==+1, the coordinate one past the chunk's
	// upper edge.
	ChunkOff(v, dir int) int
	ChunkSize() int

	// Push attempts to displace the chain of non-empty, pushable cells
	// starting at (x, y) one step in direction rot, landing in the first
	// empty or out-of-chain slot. If pusher is non-nil, that cell's
	// value is written into the vacated (x, y) instead of leaving it
	// empty (this is how generators insert a copy ahead of themselves).
	// Returns the number of cells displaced; 0 means the push was
	// blocked and the grid is unchanged.
	Push(x, y int, rot Rotation, force int, pusher *Cell) int

	FrontX(x int, rot Rotation) int
	FrontY(y int, rot Rotation) int
	ShiftX(x int, rot Rotation, delta int) int
	ShiftY(y int, rot Rotation, delta int) int

	Rotate(x, y int, delta int)

	CanGenerate(back *Cell, bx, by int, front *Cell, fx, fy int, rot Rotation) bool

	GetOptimization(x, y int, bit int) bool
	SetOptimization(x, y int, bit int, value bool)
	OptSize() int
}
