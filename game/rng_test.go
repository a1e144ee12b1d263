package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGIsDeterministicForSameSeed(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func TestRNGFloatStaysInUnitRange(t *testing.T) {
	r := newRNG(99)
	for i := 0; i < 1000; i++ {
		v := r.float()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRNGRejectsZeroSeed(t *testing.T) {
	r := newRNG(0)
	assert.NotEqual(t, uint64(0), r.state)
}
