package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkGridGetOutOfBoundsIsNil(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(4, 4, 2, 1, kinds)
	assert.Nil(t, g.Get(-1, 0))
	assert.Nil(t, g.Get(4, 0))
	assert.Nil(t, g.Get(0, 4))
}

func TestChunkGridGetInBoundsEmptyIsNonNil(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(4, 4, 2, 1, kinds)
	c := g.Get(1, 1)
	require.NotNil(t, c)
	assert.Equal(t, Empty, c.ID)
}

func TestChunkGridActivityCounters(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(4, 4, 2, 1, kinds)

	assert.False(t, g.CheckRow(1))
	assert.False(t, g.CheckColumn(1))
	assert.False(t, g.CheckChunk(1, 1))

	g.SetCell(1, 1, mover, Right)
	assert.True(t, g.CheckRow(1))
	assert.True(t, g.CheckColumn(1))
	assert.True(t, g.CheckChunk(1, 1))
	assert.False(t, g.CheckRow(0))

	g.SetCell(1, 1, Empty, Right)
	assert.False(t, g.CheckRow(1))
	assert.False(t, g.CheckColumn(1))
	assert.False(t, g.CheckChunk(1, 1))
}

func TestChunkGridRotateWraps(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(4, 4, 2, 1, kinds)
	g.SetCell(0, 0, mover, Up)

	g.Rotate(0, 0, 1)
	assert.Equal(t, Right, g.Get(0, 0).Rotation)

	g.Rotate(0, 0, -1)
	assert.Equal(t, Up, g.Get(0, 0).Rotation)
}

// TestChunkGridPushBlockedByWall covers the "three movers and a wall"
// scenario: a chain of pushable movers running into a non-pushable wall
// must leave the grid untouched and report 0 (blocked).
func TestChunkGridPushBlockedByWall(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	wall := kinds.Intern("wall")
	kinds.NewTable(wall).Pushable = false
	g := NewChunkGrid(6, 1, 2, 0, kinds)

	g.SetCell(0, 0, mover, Right)
	g.SetCell(1, 0, mover, Right)
	g.SetCell(2, 0, mover, Right)
	g.SetCell(3, 0, wall, Right)

	n := g.Push(0, 0, Right, 0, nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, mover, g.Get(0, 0).ID)
	assert.Equal(t, mover, g.Get(1, 0).ID)
	assert.Equal(t, mover, g.Get(2, 0).ID)
	assert.Equal(t, wall, g.Get(3, 0).ID)
}

// TestChunkGridPushIntoEmptyLane covers the single-mover case: one mover
// with open space ahead advances by exactly one cell and leaves its
// origin empty.
func TestChunkGridPushIntoEmptyLane(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(6, 1, 2, 0, kinds)
	g.SetCell(2, 0, mover, Right)

	n := g.Push(2, 0, Right, 0, nil)
	assert.Equal(t, 1, n)
	assert.Equal(t, Empty, g.Get(2, 0).ID)
	assert.Equal(t, mover, g.Get(3, 0).ID)
}

func TestChunkGridPushChainShiftsEveryLink(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(6, 1, 2, 0, kinds)
	g.SetCell(0, 0, mover, Right)
	g.SetCell(1, 0, mover, Right)
	g.SetCell(2, 0, mover, Right)

	n := g.Push(0, 0, Right, 0, nil)
	assert.Equal(t, 3, n, "3 shifted links")
	assert.Equal(t, Empty, g.Get(0, 0).ID)
	assert.Equal(t, mover, g.Get(1, 0).ID)
	assert.Equal(t, mover, g.Get(2, 0).ID)
	assert.Equal(t, mover, g.Get(3, 0).ID)
}

func TestChunkGridPushBlockedAtEdge(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(3, 1, 2, 0, kinds)
	g.SetCell(0, 0, mover, Right)
	g.SetCell(1, 0, mover, Right)
	g.SetCell(2, 0, mover, Right)

	n := g.Push(0, 0, Right, 0, nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, mover, g.Get(0, 0).ID)
	assert.Equal(t, mover, g.Get(1, 0).ID)
	assert.Equal(t, mover, g.Get(2, 0).ID)
}

func TestChunkGridPushWithPusherInsertsCopy(t *testing.T) {
	kinds := NewKindRegistry()
	payload := kinds.Intern("mover")
	g := NewChunkGrid(6, 1, 2, 0, kinds)
	g.SetCell(2, 0, payload, Down)

	pusher := *g.Get(2, 0)
	n := g.Push(4, 0, Right, 1, &pusher)

	assert.Equal(t, 1, n)
	assert.Equal(t, payload, g.Get(4, 0).ID)
	assert.Equal(t, Down, g.Get(4, 0).Rotation)
	// origin of the copy (2, 0) is untouched: the generator does not
	// remove the source cell, only replicates it ahead of itself.
	assert.Equal(t, payload, g.Get(2, 0).ID)
}

func TestChunkGridFrontAndShiftHonourRotation(t *testing.T) {
	kinds := NewKindRegistry()
	g := NewChunkGrid(10, 10, 2, 0, kinds)
	assert.Equal(t, 6, g.FrontX(5, Right))
	assert.Equal(t, 4, g.FrontX(5, Left))
	assert.Equal(t, 5, g.FrontY(5, Right))
	assert.Equal(t, 6, g.FrontY(5, Down))
	assert.Equal(t, 3, g.ShiftX(5, Right, -2))
}

func TestChunkGridOptimizationBits(t *testing.T) {
	kinds := NewKindRegistry()
	mover := kinds.Intern("mover")
	g := NewChunkGrid(4, 4, 2, 2, kinds)
	g.SetCell(1, 1, mover, Right)

	assert.False(t, g.GetOptimization(1, 1, 0))
	g.SetOptimization(1, 1, 0, true)
	assert.True(t, g.GetOptimization(1, 1, 0))
	assert.False(t, g.GetOptimization(1, 1, 1))
	assert.False(t, g.GetOptimization(1, 1, 99), "out-of-range bit reads false")
}
