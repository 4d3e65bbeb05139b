// Package heredity provides the concrete implementation of the inheritance
// engine: weighted trait blending, compatibility scoring, stochastic
// mutation, and the breeding-outcome math.
//
// Everything here is pure computation. Stochastic draws go through the
// dice.Roller supplied per call, so a session-scoped seeded roller makes
// every outcome reproducible.
package heredity

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// Engine implements the engine.Engine interface
type Engine struct{}

// New creates the heredity engine
func New() *Engine {
	return &Engine{}
}

// Verify that Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampStat bounds an offspring stat to [0,100]. The stat noise can push an
// average past either bound; saturating beats wrapping because two
// high-quality parents must never roll a near-zero stat on an overflow.
func clampStat(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return uint8(v)
}

// rollNoise draws a uniform integer in [-10, 10]
func rollNoise(roller dice.Roller) (int, error) {
	v, err := roller.Roll(21)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll stat noise")
	}
	return v - 11, nil
}

// rollUnit draws a uniform probability in [0, 1)
func rollUnit(roller dice.Roller) (float64, error) {
	v, err := roller.Roll(10000)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll probability")
	}
	return float64(v-1) / 10000.0, nil
}
