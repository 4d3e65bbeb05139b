package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

// ClassifyDifficultyInput defines the request for classifying a breeding attempt
type ClassifyDifficultyInput struct {
	Parent1 genetics.VisualGeneticData
	Parent2 genetics.VisualGeneticData
}

// ClassifyDifficultyOutput defines the response for classifying a breeding attempt
type ClassifyDifficultyOutput struct {
	Difficulty genetics.Difficulty

	// AverageTotal and TotalDiff are the classification inputs, returned
	// so sessions can log how a tier was reached
	AverageTotal int
	TotalDiff    int
}

// ComputeHarmonyInput defines the request for scoring genetic harmony
type ComputeHarmonyInput struct {
	Parent1 genetics.VisualGeneticData
	Parent2 genetics.VisualGeneticData
}

// ComputeHarmonyOutput defines the response for scoring genetic harmony
type ComputeHarmonyOutput struct {
	// Harmony in [0,1]
	Harmony float64

	// ComplementaryPairs counts how many directional pair conditions held
	ComplementaryPairs int
}

// ComputeOffspringInput defines the request for computing an offspring phenotype
type ComputeOffspringInput struct {
	Parent1 genetics.VisualGeneticData
	Parent2 genetics.VisualGeneticData
	Roller  dice.Roller
}

// ComputeOffspringOutput defines the response for computing an offspring phenotype
type ComputeOffspringOutput struct {
	Offspring genetics.VisualGeneticData
}

// PredictOutcomeInput defines the request for the full baseline prediction
// a breeding session computes once at setup
type PredictOutcomeInput struct {
	Parent1 genetics.VisualGeneticData
	Parent2 genetics.VisualGeneticData
	Roller  dice.Roller
}

// PredictOutcomeOutput bundles every baseline the session controller needs
type PredictOutcomeOutput struct {
	Difficulty        genetics.Difficulty
	Harmony           float64
	Predicted         genetics.VisualGeneticData
	BaseSuccessChance float64
	OffspringCount    int32
}

// CompatibilityInput defines the request for scoring two genomes
type CompatibilityInput struct {
	GenomeA *genetics.Genome
	GenomeB *genetics.Genome
}

// CompatibilityOutput defines the response for scoring two genomes
type CompatibilityOutput struct {
	// Score in [0,1]; exactly 0 on species mismatch
	Score float64

	// SpeciesMatch is false when the zero score came from mismatched species
	SpeciesMatch bool
}

// BreedGenomesInput defines the request for breeding two full genomes
type BreedGenomesInput struct {
	GenomeA *genetics.Genome
	GenomeB *genetics.Genome

	// OffspringID is assigned by the caller (idgen)
	OffspringID string

	Roller dice.Roller
}

// BreedGenomesOutput defines the response for breeding two full genomes
type BreedGenomesOutput struct {
	Offspring *genetics.Genome
}

// ProjectPhenotypeInput defines the request for projecting a genome
type ProjectPhenotypeInput struct {
	Genome *genetics.Genome
}

// ProjectPhenotypeOutput defines the response for projecting a genome
type ProjectPhenotypeOutput struct {
	Phenotype genetics.VisualGeneticData

	// TraitExpressions is the derived cache the caller may store back on
	// the genome record
	TraitExpressions []genetics.TraitExpression
}

// BlendPersonalityInput defines the request for blending parent personalities
type BlendPersonalityInput struct {
	Parent1 genetics.PersonalityGenetics
	Parent2 genetics.PersonalityGenetics
	Roller  dice.Roller
}

// BlendPersonalityOutput defines the response for blending parent personalities
type BlendPersonalityOutput struct {
	Blended genetics.PersonalityGenetics
}

// FounderPersonalityInput defines the request for synthesizing a founder's
// hereditary personality from its expressed traits
type FounderPersonalityInput struct {
	// ExpressedTraits in the order of genetics.PersonalityTraitNames
	ExpressedTraits [8]float64
}

// FounderPersonalityOutput defines the response for the founder synthesis
type FounderPersonalityOutput struct {
	Personality genetics.PersonalityGenetics
}
