package service

import (
	"math/rand"
	"time"
)

// NewRand - the random source shared by the bot and the starter draw. Seed 0 uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness
}
