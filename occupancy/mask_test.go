package occupancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridforge/tilepuzzle/occupancy"
)

func TestMask_SetGetClear(t *testing.T) {
	m := occupancy.New(5)
	assert.False(t, m.Get(2))
	m.Set(2)
	assert.True(t, m.Get(2))
	m.Clear(2)
	assert.False(t, m.Get(2))
}

func TestMask_CollidesAndCount(t *testing.T) {
	m := occupancy.New(5)
	m.SetAll([]int{1, 3})
	assert.True(t, m.Collides([]int{0, 1}))
	assert.False(t, m.Collides([]int{0, 2}))
	assert.Equal(t, 2, m.Count())
}

func TestMask_CloneIsIndependent(t *testing.T) {
	m := occupancy.New(3)
	m.Set(0)
	clone := m.Clone()
	clone.Set(1)

	assert.False(t, m.Get(1))
	assert.True(t, clone.Get(1))
}
