package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	assert.Equal(t, -1, s.ChooseWeighted(nil))
	assert.Equal(t, 0, s.ChooseWeighted([]int{0, 0}))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, s.ChooseWeighted([]int{0, -3, 5}))
	}
}

func TestIntRangeAndJitter(t *testing.T) {
	s := NewPRNGService(3)
	for i := 0; i < 200; i++ {
		v := s.IntRange(3, 10)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 10)

		j := s.Jitter(100, 0.1)
		assert.GreaterOrEqual(t, j, 95.0)
		assert.Less(t, j, 105.0)
	}
	assert.Equal(t, 4, s.IntRange(4, 4))
}
