package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserve_Stepwise(t *testing.T) {
	c := &Challenge{Kind: Subtract, A: 47, B: 12, Steps: []int{47, -12}, Target: 35}

	assert.Equal(t, int64(47), c.Expected())

	p := c.Observe(40)
	assert.False(t, p.Advanced)
	assert.False(t, p.Done)
	assert.Equal(t, int64(47), p.Expected)

	p = c.Observe(47)
	assert.True(t, p.Advanced)
	assert.False(t, p.Done)
	assert.Equal(t, int64(35), p.Expected)
	assert.Equal(t, 1, c.CurrentStep)

	p = c.Observe(35)
	assert.True(t, p.Advanced)
	assert.True(t, p.Done)
	assert.True(t, c.Done())

	p = c.Observe(35)
	assert.False(t, p.Advanced)
	assert.True(t, p.Done)
	assert.Equal(t, 2, c.CurrentStep)
}

func TestObserve_TargetOnly(t *testing.T) {
	c := &Challenge{Kind: Multiply, A: 25, B: 34, Steps: []int{}, Target: 850}

	assert.Equal(t, int64(850), c.Expected())
	assert.False(t, c.Done())

	assert.False(t, c.Observe(85).Advanced)

	p := c.Observe(850)
	assert.True(t, p.Advanced)
	assert.True(t, p.Done)
}
