package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand(t *testing.T) {
	t.Run("Same seed, same sequence", func(t *testing.T) {
		first, second := NewRand(42), NewRand(42)

		for range 10 {
			assert.Equal(t, first.Int63(), second.Int63())
		}
	})

	t.Run("Zero seed still gives a usable source", func(t *testing.T) {
		rnd := NewRand(0)

		value := rnd.Intn(9)
		assert.GreaterOrEqual(t, value, 0)
		assert.Less(t, value, 9)
	})
}
