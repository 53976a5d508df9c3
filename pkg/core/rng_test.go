package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntRange(100, 900), b.IntRange(100, 900))
		assert.Equal(t, a.Int64(), b.Int64())
	}
}

func TestIntRangeBounds(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 500; i++ {
		v := r.IntRange(10, 13)
		assert.GreaterOrEqual(t, v, 10)
		assert.Less(t, v, 13)
	}
	assert.Equal(t, 5, r.IntRange(5, 5), "empty range returns lo")
	assert.Equal(t, 0, r.IntN(0))
}
