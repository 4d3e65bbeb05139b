// Package rng provides a deterministic, seedable implementation of the
// dice.Roller interface. Every stochastic draw in the breeding engine goes
// through a Roller owned by a single session, so a stored seed replays the
// exact same outcome.
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/errors"
)

// Seeded is a dice.Roller backed by a seeded PCG source.
// It is not safe for concurrent use; each breeding session owns its own.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a roller from the given seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Ensure Seeded implements dice.Roller
var _ dice.Roller = (*Seeded)(nil)

// Roll returns a uniform value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// RollN returns count uniform values in [1, size]
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("roll count must be positive, got %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
