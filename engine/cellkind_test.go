package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindRegistryInternIsIdempotent(t *testing.T) {
	r := NewKindRegistry()
	a := r.Intern("mover")
	b := r.Intern("mover")
	c := r.Intern("generator")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestKindRegistryEmptyIsPreregistered(t *testing.T) {
	r := NewKindRegistry()
	assert.True(t, r.Pushable(Empty))
	assert.NotNil(t, r.GetTable(&Cell{ID: Empty}))
}

func TestKindRegistryPushableDefaultsTrue(t *testing.T) {
	r := NewKindRegistry()
	mover := r.Intern("mover")
	assert.True(t, r.Pushable(mover))

	r.NewTable(mover).Pushable = false
	assert.False(t, r.Pushable(mover))
}

func TestKindRegistryUnregisteredKindIsPushable(t *testing.T) {
	r := NewKindRegistry()
	assert.True(t, r.Pushable(CellKind(999)), "unknown kinds default to pushable")
}

func TestKindRegistryNewTableWithoutInternStillWorks(t *testing.T) {
	r := NewKindRegistry()
	tbl := r.NewTable(CellKind(42))
	assert.NotNil(t, tbl)
	assert.Same(t, tbl, r.GetTable(&Cell{ID: CellKind(42)}))
}
