package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapOrdersGenerateRotateMove(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(20, 20, 8, 4, kinds)
	reg := NewRegistry("core")
	Bootstrap(reg, kinds, g, false)

	var names []string
	for _, s := range reg.Subticks() {
		names = append(names, s.Name())
	}
	require.Len(t, names, 3)
	assert.Equal(t, "core\x00generators", names[0])
	assert.Equal(t, "core\x00rotators", names[1])
	assert.Equal(t, "core\x00movers", names[2])
}

func TestDoMoverAdvancesOneStep(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(4, 1, 8, 0, kinds)
	mover := kinds.Intern("mover")
	kinds.NewTable(mover).Update = doMover(g)
	g.SetCell(1, 0, mover, Right)

	kinds.GetTable(g.Get(1, 0)).Update(g.Get(1, 0), 1, 0, 1, 0, nil)

	assert.Equal(t, Empty, g.Get(1, 0).ID)
	assert.Equal(t, mover, g.Get(2, 0).ID)
}

func TestDoGeneratorCopiesBackCellForward(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(5, 1, 8, 4, kinds)
	generator := kinds.Intern("generator")
	payload := kinds.Intern("mover")
	kinds.NewTable(generator).Update = doGenerator(g, false)
	g.SetCell(2, 0, generator, Right)
	g.SetCell(1, 0, payload, Down)

	kinds.GetTable(g.Get(2, 0)).Update(g.Get(2, 0), 2, 0, 2, 0, nil)

	assert.Equal(t, payload, g.Get(3, 0).ID, "generator copies the back cell into its front")
	assert.Equal(t, Down, g.Get(3, 0).Rotation)
	assert.Equal(t, payload, g.Get(1, 0).ID, "the back cell itself is left in place")
	assert.Equal(t, generator, g.Get(2, 0).ID)
}

func TestDoGeneratorNoopWhenBackIsEmpty(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(5, 1, 8, 4, kinds)
	generator := kinds.Intern("generator")
	kinds.NewTable(generator).Update = doGenerator(g, false)
	g.SetCell(2, 0, generator, Right)

	kinds.GetTable(g.Get(2, 0)).Update(g.Get(2, 0), 2, 0, 2, 0, nil)

	assert.Equal(t, Empty, g.Get(3, 0).ID)
}

// TestDoGeneratorOptimizationBitPropagatesThroughBlockedChain mirrors a
// two-generator chain blocked by a wall: within one tracked pass (which
// visits right-facing cells right-to-left) the downstream generator's
// blocked state is already visible to the upstream one, so the upstream
// generator short-circuits instead of re-attempting a doomed push.
func TestDoGeneratorOptimizationBitPropagatesThroughBlockedChain(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(6, 1, 8, 4, kinds)
	generator := kinds.Intern("generator")
	wall := kinds.Intern("wall")
	kinds.NewTable(wall).Pushable = false
	kinds.NewTable(generator).Update = doGenerator(g, false)

	g.SetCell(2, 0, generator, Right) // leftGen
	g.SetCell(3, 0, generator, Right) // rightGen, front is the wall
	g.SetCell(4, 0, wall, Right)

	s := &Subtick{mode: TrackedMode{}, ids: []CellKind{generator}}
	RunTracked(g, kinds, s, false)

	bit := genOptBit(Right)
	assert.True(t, g.GetOptimization(3, 0, bit), "rightGen marks itself blocked")
	assert.True(t, g.GetOptimization(2, 0, bit), "leftGen sees rightGen's blocked front and marks itself too")
	assert.Equal(t, generator, g.Get(3, 0).ID, "blocked push must not mutate the grid")
	assert.Equal(t, wall, g.Get(4, 0).ID)
}

func TestDoRotatorCWRotatesNeighbourClockwise(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(3, 1, 8, 0, kinds)
	rotator := kinds.Intern("rotator_cw")
	payload := kinds.Intern("mover")
	kinds.NewTable(rotator).Update = doRotatorCW(g)
	g.SetCell(0, 0, rotator, Right)
	g.SetCell(1, 0, payload, Up)

	kinds.GetTable(g.Get(0, 0)).Update(g.Get(0, 0), 0, 0, 1, 0, nil)

	assert.Equal(t, Right, g.Get(1, 0).Rotation)
}

func TestDoRotatorCWIgnoresEmptyAnchor(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(3, 1, 8, 0, kinds)
	rotator := kinds.Intern("rotator_cw")
	kinds.NewTable(rotator).Update = doRotatorCW(g)
	g.SetCell(0, 0, rotator, Right)

	assert.NotPanics(t, func() {
		kinds.GetTable(g.Get(0, 0)).Update(g.Get(0, 0), 0, 0, 1, 0, nil)
	})
}

func TestDoRotatorCCWRotatesNeighbourCounterClockwise(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(3, 1, 8, 0, kinds)
	rotator := kinds.Intern("rotator_ccw")
	payload := kinds.Intern("mover")
	kinds.NewTable(rotator).Update = doRotatorCCW(g)
	g.SetCell(0, 0, rotator, Right)
	g.SetCell(1, 0, payload, Up)

	kinds.GetTable(g.Get(0, 0)).Update(g.Get(0, 0), 0, 0, 1, 0, nil)

	assert.Equal(t, Left, g.Get(1, 0).Rotation)
}
