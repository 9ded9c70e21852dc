package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlinePoolRunsSeriallyInOrder(t *testing.T) {
	var seen []int
	InlinePool{}.WaitForTasks(5, func(i int) { seen = append(seen, i) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.True(t, InlinePool{}.Disabled())
}

func TestErrgroupPoolRunsEveryTask(t *testing.T) {
	var count int32
	p := NewErrgroupPool(4)
	p.WaitForTasks(50, func(i int) { atomic.AddInt32(&count, 1) })
	assert.EqualValues(t, 50, count)
	assert.False(t, p.Disabled())
}

func TestErrgroupPoolZeroTasksIsNoop(t *testing.T) {
	called := false
	NewErrgroupPool(0).WaitForTasks(0, func(i int) { called = true })
	assert.False(t, called)
}
