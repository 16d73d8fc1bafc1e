// Package shuffle provides copy-on-shuffle helpers for session setup.
package shuffle

import (
	"math/rand"
	"time"
)

// NewRand returns a rand source seeded from the wall clock.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Slice returns a shuffled copy of items using the Fisher-Yates algorithm.
// The input slice is never mutated. A nil rand falls back to a clock-seeded one.
func Slice[T any](r *rand.Rand, items []T) []T {
	if r == nil {
		r = NewRand()
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Take returns up to limit items from a shuffled copy of items.
func Take[T any](r *rand.Rand, items []T, limit int) []T {
	shuffled := Slice(r, items)
	if limit <= 0 || limit >= len(shuffled) {
		return shuffled
	}
	return shuffled[:limit]
}
