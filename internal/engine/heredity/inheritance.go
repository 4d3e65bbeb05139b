package heredity

import (
	"context"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// Difficulty classification thresholds over combined parent stat totals
const (
	beginnerAvgBelow = 300
	easyAvgBelow     = 400
	easyDiffBelow    = 100
	mediumAvgBelow   = 500
	mediumDiffBelow  = 150
	hardAvgAbove     = 550
	hardDiffAbove    = 200
)

// Harmony scoring constants
const (
	harmonyBase          = 0.5
	harmonyPerPair       = 0.2
	harmonyPerMarker     = 0.1
	complementaryStatBar = 70
)

// Success chance bounds
const (
	successFloor = 0.3
	successCeil  = 0.95
)

// Offspring count thresholds over summed parent stats
const (
	tripletVitalitySum = 160
	tripletSocialSum   = 140
	twinVitalitySum    = 120
	twinSocialSum      = 120
)

// ClassifyDifficulty tiers a breeding attempt from the parents' combined
// quality and their quality gap. Checked in order; first match wins.
func (e *Engine) ClassifyDifficulty(
	_ context.Context,
	input *engine.ClassifyDifficultyInput,
) (*engine.ClassifyDifficultyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t1 := input.Parent1.TotalStats()
	t2 := input.Parent2.TotalStats()
	avg := (t1 + t2) / 2
	diff := t1 - t2
	if diff < 0 {
		diff = -diff
	}

	var tier genetics.Difficulty
	switch {
	case avg < beginnerAvgBelow:
		tier = genetics.DifficultyBeginner
	case avg < easyAvgBelow && diff < easyDiffBelow:
		tier = genetics.DifficultyEasy
	case avg < mediumAvgBelow && diff < mediumDiffBelow:
		tier = genetics.DifficultyMedium
	case avg < hardAvgAbove || diff > hardDiffAbove:
		tier = genetics.DifficultyHard
	default:
		tier = genetics.DifficultyExpert
	}

	return &engine.ClassifyDifficultyOutput{
		Difficulty:   tier,
		AverageTotal: avg,
		TotalDiff:    diff,
	}, nil
}

// ComputeHarmony scores parent complementarity. The pair checks are
// directional on purpose: parent 1's physical trait against parent 2's
// counterpart, never the reverse. Sire and dam contribute differently.
func (e *Engine) ComputeHarmony(
	_ context.Context,
	input *engine.ComputeHarmonyInput,
) (*engine.ComputeHarmonyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p1, p2 := input.Parent1, input.Parent2

	pairs := 0
	if p1.Strength > complementaryStatBar && p2.Intelligence > complementaryStatBar {
		pairs++
	}
	if p1.Agility > complementaryStatBar && p2.Vitality > complementaryStatBar {
		pairs++
	}
	if p1.Social > complementaryStatBar && p2.Adaptability > complementaryStatBar {
		pairs++
	}

	combined := p1.SpecialMarkers | p2.SpecialMarkers
	harmony := harmonyBase +
		harmonyPerPair*float64(pairs) +
		harmonyPerMarker*float64(combined.Count())

	return &engine.ComputeHarmonyOutput{
		Harmony:            clamp01(harmony),
		ComplementaryPairs: pairs,
	}, nil
}

// ComputeOffspring blends the parents into an offspring phenotype. Each
// stat is the parent average plus independent uniform noise in [-10,10],
// saturated into [0,100]. Special markers are the union of both parents.
func (e *Engine) ComputeOffspring(
	_ context.Context,
	input *engine.ComputeOffspringInput,
) (*engine.ComputeOffspringOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	p1, p2 := input.Parent1, input.Parent2
	s1 := p1.Stats()
	s2 := p2.Stats()

	var blended [6]uint8
	for i := range blended {
		noise, err := rollNoise(input.Roller)
		if err != nil {
			return nil, err
		}
		blended[i] = clampStat((int(s1[i])+int(s2[i]))/2 + noise)
	}

	offspring := genetics.VisualGeneticData{
		Strength:       blended[0],
		Vitality:       blended[1],
		Agility:        blended[2],
		Intelligence:   blended[3],
		Adaptability:   blended[4],
		Social:         blended[5],
		SpecialMarkers: p1.SpecialMarkers | p2.SpecialMarkers,
		PrimaryColor:   blendColor(p1.PrimaryColor, p2.PrimaryColor),
		SecondaryColor: blendColor(p1.SecondaryColor, p2.SecondaryColor),
	}

	return &engine.ComputeOffspringOutput{Offspring: offspring}, nil
}

// blendColor averages the parents' display colors per channel
func blendColor(a, b genetics.Color) genetics.Color {
	return genetics.Color{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}

// BaseSuccessChance scales linearly with combined parent quality against
// the theoretical ceiling, floored at 0.3 and capped at 0.95.
func (e *Engine) BaseSuccessChance(parent1, parent2 genetics.VisualGeneticData) float64 {
	avgTotal := float64(parent1.TotalStats()+parent2.TotalStats()) / 2
	chance := successFloor + (avgTotal/float64(2*genetics.MaxTotalStats))*0.5
	return clampFloat(chance, successFloor, successCeil)
}

// OffspringCount decides litter size from the parents' vitality and social
// sums: 3 for exceptional pairs, 2 for strong ones, 1 otherwise.
func (e *Engine) OffspringCount(parent1, parent2 genetics.VisualGeneticData) int32 {
	vitalitySum := int(parent1.Vitality) + int(parent2.Vitality)
	socialSum := int(parent1.Social) + int(parent2.Social)

	switch {
	case vitalitySum > tripletVitalitySum && socialSum > tripletSocialSum:
		return 3
	case vitalitySum > twinVitalitySum || socialSum > twinSocialSum:
		return 2
	default:
		return 1
	}
}

// PredictOutcome runs the full baseline computation a session performs once
// at setup: difficulty, harmony, predicted offspring, base success chance,
// and litter size.
func (e *Engine) PredictOutcome(
	ctx context.Context,
	input *engine.PredictOutcomeInput,
) (*engine.PredictOutcomeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	diffOut, err := e.ClassifyDifficulty(ctx, &engine.ClassifyDifficultyInput{
		Parent1: input.Parent1,
		Parent2: input.Parent2,
	})
	if err != nil {
		return nil, err
	}

	harmonyOut, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
		Parent1: input.Parent1,
		Parent2: input.Parent2,
	})
	if err != nil {
		return nil, err
	}

	offspringOut, err := e.ComputeOffspring(ctx, &engine.ComputeOffspringInput{
		Parent1: input.Parent1,
		Parent2: input.Parent2,
		Roller:  input.Roller,
	})
	if err != nil {
		return nil, err
	}

	return &engine.PredictOutcomeOutput{
		Difficulty:        diffOut.Difficulty,
		Harmony:           harmonyOut.Harmony,
		Predicted:         offspringOut.Offspring,
		BaseSuccessChance: e.BaseSuccessChance(input.Parent1, input.Parent2),
		OffspringCount:    e.OffspringCount(input.Parent1, input.Parent2),
	}, nil
}
