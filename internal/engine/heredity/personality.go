package heredity

import (
	"context"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// personalityDrift is the +/- drift a blended trait can pick up; a trait
// landing outside the span of both parents counts as a personality mutation
const personalityDrift = 0.05

// BlendPersonality combines two parents' hereditary personalities. Parent
// influence is rolled once per breeding (400-600 per mille for parent 1,
// the remainder for parent 2) and every trait blends under that weight
// plus independent drift.
func (e *Engine) BlendPersonality(
	_ context.Context,
	input *engine.BlendPersonalityInput,
) (*engine.BlendPersonalityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	// 400..600 per mille
	infRoll, err := input.Roller.Roll(201)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll parent influence")
	}
	influence1 := uint16(399 + infRoll)
	influence2 := genetics.InfluenceScale - influence1
	w1 := float64(influence1) / genetics.InfluenceScale

	t1 := input.Parent1.Traits()
	t2 := input.Parent2.Traits()

	var blended [8]float64
	drifted := int32(0)
	for i := range blended {
		drift, err := input.Roller.Roll(11)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll trait drift")
		}
		noise := float64(drift-6) / 100 // +/- personalityDrift

		v := clamp01(t1[i]*w1 + t2[i]*(1-w1) + noise)
		blended[i] = v

		lo, hi := t1[i], t2[i]
		if hi < lo {
			lo, hi = hi, lo
		}
		if v < lo || v > hi {
			drifted++
		}
	}

	mutationCount := input.Parent1.MutationCount
	if input.Parent2.MutationCount > mutationCount {
		mutationCount = input.Parent2.MutationCount
	}
	mutationCount += drifted

	// Steadier offspring come from parents with similar dispositions
	var gapSum float64
	for i := range t1 {
		gap := t1[i] - t2[i]
		if gap < 0 {
			gap = -gap
		}
		gapSum += gap
	}
	stability := clamp01(1 - gapSum/float64(len(t1)))

	return &engine.BlendPersonalityOutput{
		Blended: genetics.PersonalityGenetics{
			Curiosity:              blended[0],
			Playfulness:            blended[1],
			Aggression:             blended[2],
			Affection:              blended[3],
			Independence:           blended[4],
			Nervousness:            blended[5],
			Stubbornness:           blended[6],
			Loyalty:                blended[7],
			Parent1Influence:       influence1,
			Parent2Influence:       influence2,
			MutationCount:          mutationCount,
			HasPersonalityMutation: drifted > 0,
			Fitness:                clamp01((input.Parent1.Fitness + input.Parent2.Fitness) / 2),
			TemperamentStability:   stability,
		},
	}, nil
}

// FounderPersonality synthesizes a hereditary record for a creature that
// was never bred: its expressed personality stands in for both imaginary
// parents at a 50/50 split.
func (e *Engine) FounderPersonality(
	_ context.Context,
	input *engine.FounderPersonalityInput,
) (*engine.FounderPersonalityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var traits [8]float64
	lo, hi := 1.0, 0.0
	for i, v := range input.ExpressedTraits {
		traits[i] = clamp01(v)
		if traits[i] < lo {
			lo = traits[i]
		}
		if traits[i] > hi {
			hi = traits[i]
		}
	}

	// A sociable, even-keeled disposition scores as fitter stock
	balance := (traits[3]+traits[7]+traits[1])/3 - (traits[2]+traits[5])/2

	return &engine.FounderPersonalityOutput{
		Personality: genetics.PersonalityGenetics{
			Curiosity:            traits[0],
			Playfulness:          traits[1],
			Aggression:           traits[2],
			Affection:            traits[3],
			Independence:         traits[4],
			Nervousness:          traits[5],
			Stubbornness:         traits[6],
			Loyalty:              traits[7],
			Parent1Influence:     genetics.InfluenceScale / 2,
			Parent2Influence:     genetics.InfluenceScale / 2,
			Fitness:              clamp01(0.5 + balance/2),
			TemperamentStability: clamp01(1 - (hi - lo)),
		},
	}, nil
}
