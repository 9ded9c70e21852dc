// Package engine implements the subtick scheduler of a cellular-automaton
// simulation: the ordered, rotation-sensitive traversal strategies, the
// parallel-safe decomposition of the grid into independent tasks, and the
// per-tick reset of ephemeral cell state that together make one tick of the
// simulation deterministic.
package engine

// Rotation is a cell's facing direction. The engine's own convention:
// 0=right, 1=down, 2=left, 3=up.
type Rotation int8

const (
	Right Rotation = 0
	Down  Rotation = 1
	Left  Rotation = 2
	Up    Rotation = 3
)

// rotationDelta returns the (dx, dy) unit step for a rotation.
func rotationDelta(rot Rotation) (int, int) {
	switch rot {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}

// CellKind identifies a registered cell kind. Kind 0 (Empty) always denotes
// an unoccupied grid cell; every other kind is allocated by a KindRegistry.
type CellKind int32

// Empty is the built-in kind occupying every cell that holds nothing.
const Empty CellKind = 0

// Cell is the minimal per-tile record the scheduler reads and mutates.
// Updated, LX, LY and RotData are ephemeral: the per-tick reset (4.4)
// clears them before any subtick runs. Opt holds per-cell optimization
// scratch bits, sized by Grid.OptSize.
type Cell struct {
	ID       CellKind
	Rotation Rotation
	Updated  bool
	LX, LY   int
	RotData  Rotation
	Opt      []byte
}
