package heredity

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// diversityPenalty weights the diversity gap in compatibility scoring.
// Rewards two healthy parents but penalizes large diversity gaps, which
// encodes outbreeding depression without a full population model.
const diversityPenalty = 0.5

// viabilityFloor is the minimum fitness for a genome to produce a living creature
const viabilityFloor = 0.05

// newMutationChancePct is the per-breeding chance of one fresh mutation
const newMutationChancePct = 5

// NewGene builds a gene, rejecting malformed data at construction so it
// never enters a breeding computation.
func NewGene(id string, dominant, recessive genetics.Allele, strength float64, active bool) (genetics.Gene, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	errors.ValidateUnitInterval("expression_strength", strength, vb)
	if err := vb.Build(); err != nil {
		return genetics.Gene{}, err
	}

	return genetics.Gene{
		ID:                 id,
		Dominant:           dominant,
		Recessive:          recessive,
		ExpressionStrength: strength,
		Active:             active,
	}, nil
}

// ExpressedValue derives the observable value of a gene. Inactive genes
// contribute zero but stay in the genome for later reactivation.
func ExpressedValue(g genetics.Gene) float64 {
	if !g.Active {
		return 0
	}
	return g.Dominant.Value*g.ExpressionStrength + g.Recessive.Value*(1-g.ExpressionStrength)
}

// Compatibility scores how well two genomes breed together. Mismatched
// species is a defined zero outcome, not an error; callers check it before
// starting a session.
func (e *Engine) Compatibility(
	_ context.Context,
	input *engine.CompatibilityInput,
) (*engine.CompatibilityOutput, error) {
	if input == nil || input.GenomeA == nil || input.GenomeB == nil {
		return nil, errors.InvalidArgument("both genomes are required")
	}

	a, b := input.GenomeA, input.GenomeB
	if a.SpeciesID != b.SpeciesID {
		return &engine.CompatibilityOutput{Score: 0, SpeciesMatch: false}, nil
	}

	avgFitness := (a.Fitness + b.Fitness) / 2
	gap := a.DiversityIndex - b.DiversityIndex
	if gap < 0 {
		gap = -gap
	}

	return &engine.CompatibilityOutput{
		Score:        clamp01(avgFitness - diversityPenalty*gap),
		SpeciesMatch: true,
	}, nil
}

// BreedGenomes produces a new offspring genome from two parents. Parents
// are never modified; gene picks, expression drift, and the fresh-mutation
// roll all come from the supplied roller.
func (e *Engine) BreedGenomes(
	_ context.Context,
	input *engine.BreedGenomesInput,
) (*engine.BreedGenomesOutput, error) {
	if input == nil || input.GenomeA == nil || input.GenomeB == nil {
		return nil, errors.InvalidArgument("both genomes are required")
	}
	if input.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	if input.OffspringID == "" {
		return nil, errors.InvalidArgument("offspring ID is required")
	}

	a, b := input.GenomeA, input.GenomeB
	if a.SpeciesID != b.SpeciesID {
		return nil, errors.FailedPreconditionf(
			"cannot breed mismatched species %q and %q", a.SpeciesID, b.SpeciesID)
	}

	generation := a.Generation
	if b.Generation > generation {
		generation = b.Generation
	}
	generation++

	chromosomes, err := crossChromosomes(a.Chromosomes, b.Chromosomes, input.Roller)
	if err != nil {
		return nil, err
	}

	fitness, err := inheritScalar(a.Fitness, b.Fitness, input.Roller)
	if err != nil {
		return nil, err
	}
	diversity, err := inheritScalar(a.DiversityIndex, b.DiversityIndex, input.Roller)
	if err != nil {
		return nil, err
	}

	mutations := make([]genetics.Mutation, 0, len(a.Mutations)+len(b.Mutations)+1)
	mutations = append(mutations, a.Mutations...)
	for _, m := range b.Mutations {
		if !containsMutation(mutations, m.ID) {
			mutations = append(mutations, m)
		}
	}

	fresh, err := rollFreshMutation(input.OffspringID, generation, input.Roller)
	if err != nil {
		return nil, err
	}
	if fresh != nil {
		mutations = append(mutations, *fresh)
	}

	return &engine.BreedGenomesOutput{
		Offspring: &genetics.Genome{
			ID:             input.OffspringID,
			SpeciesID:      a.SpeciesID,
			Chromosomes:    chromosomes,
			Mutations:      mutations,
			Generation:     generation,
			Fitness:        fitness,
			ParentIDs:      []string{a.ID, b.ID},
			DiversityIndex: diversity,
			Viable:         fitness >= viabilityFloor,
		},
	}, nil
}

// crossChromosomes pairs parent chromosomes by position and picks each
// gene's alleles from one parent chosen by coin flip, with the other
// parent's dominant allele carried recessively.
func crossChromosomes(ca, cb []genetics.Chromosome, roller dice.Roller) ([]genetics.Chromosome, error) {
	n := len(ca)
	if len(cb) < n {
		n = len(cb)
	}

	chromosomes := make([]genetics.Chromosome, 0, n)
	for i := 0; i < n; i++ {
		pairA, pairB := ca[i], cb[i]
		genes := make([]genetics.Gene, 0, len(pairA.Genes))

		m := len(pairA.Genes)
		if len(pairB.Genes) < m {
			m = len(pairB.Genes)
		}

		for j := 0; j < m; j++ {
			ga, gb := pairA.Genes[j], pairB.Genes[j]

			coin, err := roller.Roll(2)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll gene pick")
			}
			primary, secondary := ga, gb
			if coin == 2 {
				primary, secondary = gb, ga
			}

			strength, err := inheritScalar(ga.ExpressionStrength, gb.ExpressionStrength, roller)
			if err != nil {
				return nil, err
			}

			gene, err := NewGene(primary.ID, primary.Dominant, secondary.Dominant, strength, primary.Active)
			if err != nil {
				return nil, err
			}
			genes = append(genes, gene)
		}

		chromosomes = append(chromosomes, genetics.Chromosome{
			Genes:         genes,
			Length:        pairA.Length,
			SexChromosome: pairA.SexChromosome,
		})
	}

	return chromosomes, nil
}

// inheritScalar averages a parent scalar pair with a +/-0.05 drift, clamped
// to the unit interval
func inheritScalar(a, b float64, roller dice.Roller) (float64, error) {
	v, err := roller.Roll(11)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll scalar drift")
	}
	drift := float64(v-6) / 100
	return clamp01((a+b)/2 + drift), nil
}

func containsMutation(mutations []genetics.Mutation, id string) bool {
	for _, m := range mutations {
		if m.ID == id {
			return true
		}
	}
	return false
}

// mutationTable is the catalog a fresh breeding mutation is drawn from
var mutationTable = []genetics.Mutation{
	{Name: "Hypermetabolism", TargetGeneID: "vitality", Strength: 0.3, Beneficial: true, Rarity: 0.4},
	{Name: "Twitch Reflex", TargetGeneID: "agility", Strength: 0.25, Beneficial: true, Rarity: 0.35},
	{Name: "Dense Musculature", TargetGeneID: "strength", Strength: 0.3, Beneficial: true, Rarity: 0.45},
	{Name: "Pattern Memory", TargetGeneID: "intelligence", Strength: 0.35, Beneficial: true, Rarity: 0.55},
	{Name: "Brittle Coat", TargetGeneID: "vitality", Strength: 0.2, Beneficial: false, Rarity: 0.25},
	{Name: "Pack Bond", TargetGeneID: "social", Strength: 0.3, Beneficial: true, Rarity: 0.5},
	{Name: "Chromatic Shift", TargetGeneID: "adaptability", Strength: 0.4, Beneficial: true, Rarity: 0.75},
	{Name: "Ancestral Echo", TargetGeneID: "adaptability", Strength: 0.5, Beneficial: true, Rarity: 0.9},
}

// rollFreshMutation gives each breeding a small chance of one brand-new
// mutation; rarer entries in the table need a second, rarity-gated roll.
func rollFreshMutation(offspringID string, generation int32, roller dice.Roller) (*genetics.Mutation, error) {
	chance, err := roller.Roll(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll mutation chance")
	}
	if chance > newMutationChancePct {
		return nil, nil
	}

	pick, err := roller.Roll(len(mutationTable))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll mutation pick")
	}
	candidate := mutationTable[pick-1]

	// Rarity gate: a rarity of 0.9 survives only 10% of draws
	gate, err := rollUnit(roller)
	if err != nil {
		return nil, err
	}
	if gate < candidate.Rarity {
		return nil, nil
	}

	candidate.ID = fmt.Sprintf("mut_%s_%d", offspringID, generation)
	candidate.OriginGeneration = generation
	return &candidate, nil
}
