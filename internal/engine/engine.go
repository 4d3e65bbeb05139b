// Package engine defines the inheritance engine interface: the pure genetic
// math that turns two parents' records into a predicted breeding outcome.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/creature-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

// Engine provides the genetic inheritance and breeding-outcome calculations.
// Every stochastic operation takes an explicit dice.Roller in its input so
// callers control seeding; identical rollers produce identical outputs.
type Engine interface {
	// Breeding core
	ClassifyDifficulty(ctx context.Context, input *ClassifyDifficultyInput) (*ClassifyDifficultyOutput, error)
	ComputeHarmony(ctx context.Context, input *ComputeHarmonyInput) (*ComputeHarmonyOutput, error)
	ComputeOffspring(ctx context.Context, input *ComputeOffspringInput) (*ComputeOffspringOutput, error)
	PredictOutcome(ctx context.Context, input *PredictOutcomeInput) (*PredictOutcomeOutput, error)

	// Full-genome operations
	Compatibility(ctx context.Context, input *CompatibilityInput) (*CompatibilityOutput, error)
	BreedGenomes(ctx context.Context, input *BreedGenomesInput) (*BreedGenomesOutput, error)

	// Phenotype projection
	ProjectPhenotype(ctx context.Context, input *ProjectPhenotypeInput) (*ProjectPhenotypeOutput, error)
	BlendPersonality(ctx context.Context, input *BlendPersonalityInput) (*BlendPersonalityOutput, error)
	FounderPersonality(ctx context.Context, input *FounderPersonalityInput) (*FounderPersonalityOutput, error)

	// Utility methods
	GeneticDescriptor(phenotype genetics.VisualGeneticData) string
	VisualAppeal(phenotype genetics.VisualGeneticData) float64
	BaseSuccessChance(parent1, parent2 genetics.VisualGeneticData) float64
	OffspringCount(parent1, parent2 genetics.VisualGeneticData) int32
}
