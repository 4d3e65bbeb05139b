package breeding

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

// Tuning holds the mini-game parameters for one difficulty tier
type Tuning struct {
	TimeLimit time.Duration

	// Gene matching
	GridSize        int
	MatchesRequired int32

	// DNA sequencing
	SequenceLength int32

	// Trait balancing: max per-slider deviation still counted as balanced
	BalanceThreshold float64

	// Incubation: target temperature band and ticks it must be held
	TempBandLow     float64
	TempBandHigh    float64
	IncubationTicks int32
}

// TuningTable maps difficulty tiers to mini-game parameters
type TuningTable map[genetics.Difficulty]Tuning

// DefaultTuning returns the built-in tuning used when no table is configured
func DefaultTuning() TuningTable {
	return TuningTable{
		genetics.DifficultyBeginner: {
			TimeLimit:        3 * time.Minute,
			GridSize:         4,
			MatchesRequired:  4,
			SequenceLength:   6,
			BalanceThreshold: 0.30,
			TempBandLow:      35.0,
			TempBandHigh:     40.0,
			IncubationTicks:  6,
		},
		genetics.DifficultyEasy: {
			TimeLimit:        150 * time.Second,
			GridSize:         4,
			MatchesRequired:  6,
			SequenceLength:   8,
			BalanceThreshold: 0.25,
			TempBandLow:      36.0,
			TempBandHigh:     40.0,
			IncubationTicks:  8,
		},
		genetics.DifficultyMedium: {
			TimeLimit:        2 * time.Minute,
			GridSize:         6,
			MatchesRequired:  8,
			SequenceLength:   10,
			BalanceThreshold: 0.20,
			TempBandLow:      36.5,
			TempBandHigh:     39.5,
			IncubationTicks:  10,
		},
		genetics.DifficultyHard: {
			TimeLimit:        90 * time.Second,
			GridSize:         6,
			MatchesRequired:  10,
			SequenceLength:   12,
			BalanceThreshold: 0.15,
			TempBandLow:      37.0,
			TempBandHigh:     39.0,
			IncubationTicks:  12,
		},
		genetics.DifficultyExpert: {
			TimeLimit:        time.Minute,
			GridSize:         8,
			MatchesRequired:  12,
			SequenceLength:   16,
			BalanceThreshold: 0.10,
			TempBandLow:      37.5,
			TempBandHigh:     38.5,
			IncubationTicks:  15,
		},
	}
}

// ForDifficulty looks up the tuning for a tier. A missing table or tier
// degrades to the built-in defaults with a logged warning; a breeding
// attempt never fails over absent configuration.
func (t TuningTable) ForDifficulty(difficulty genetics.Difficulty) Tuning {
	if t != nil {
		if tuning, ok := t[difficulty]; ok {
			return tuning
		}
	}

	slog.Warn("no tuning configured for difficulty, using defaults",
		"difficulty", difficulty,
	)

	defaults := DefaultTuning()
	if tuning, ok := defaults[difficulty]; ok {
		return tuning
	}
	return defaults[genetics.DifficultyMedium]
}
