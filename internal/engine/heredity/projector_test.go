package heredity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/engine/heredity"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

func TestProjectPhenotype(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	t.Run("stats stay in bounds and expressions are cached", func(t *testing.T) {
		genome := testGenome("gen_a", "emberfox", 1, 0.8, 0.5)

		out, err := e.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{Genome: genome})
		require.NoError(t, err)

		for _, s := range out.Phenotype.Stats() {
			assert.LessOrEqual(t, s, uint8(100))
		}
		assert.Len(t, out.TraitExpressions, len(genome.Genes()))
		for _, te := range out.TraitExpressions {
			assert.NotEmpty(t, te.TraitID)
			assert.GreaterOrEqual(t, te.Value, 0.0)
		}
	})

	t.Run("rare beneficial mutation surfaces as a marker", func(t *testing.T) {
		genome := testGenome("gen_a", "emberfox", 2, 0.8, 0.5)
		genome.Mutations = []genetics.Mutation{
			{ID: "mut_1", Name: "Ancestral Echo", TargetGeneID: "adaptability",
				Strength: 0.5, Beneficial: true, Rarity: 0.9, OriginGeneration: 2},
		}

		out, err := e.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{Genome: genome})
		require.NoError(t, err)
		assert.NotZero(t, out.Phenotype.SpecialMarkers)
		assert.Equal(t, 1, out.Phenotype.SpecialMarkers.Count())
	})

	t.Run("common or harmful mutations never mark", func(t *testing.T) {
		genome := testGenome("gen_a", "emberfox", 2, 0.8, 0.5)
		genome.Mutations = []genetics.Mutation{
			{ID: "mut_1", Name: "Brittle Coat", TargetGeneID: "vitality",
				Strength: 0.2, Beneficial: false, Rarity: 0.95, OriginGeneration: 2},
			{ID: "mut_2", Name: "Pack Bond", TargetGeneID: "social",
				Strength: 0.3, Beneficial: true, Rarity: 0.5, OriginGeneration: 2},
		}

		out, err := e.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{Genome: genome})
		require.NoError(t, err)
		assert.Zero(t, out.Phenotype.SpecialMarkers)
	})

	t.Run("inactive genes do not raise stats", func(t *testing.T) {
		genome := testGenome("gen_a", "emberfox", 1, 0.8, 0.5)
		active, err := e.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{Genome: genome})
		require.NoError(t, err)

		for i := range genome.Chromosomes {
			for j := range genome.Chromosomes[i].Genes {
				genome.Chromosomes[i].Genes[j].Active = false
			}
		}
		dormant, err := e.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{Genome: genome})
		require.NoError(t, err)

		assert.LessOrEqual(t, dormant.Phenotype.TotalStats(), active.Phenotype.TotalStats())
		assert.Zero(t, dormant.Phenotype.TotalStats())
	})
}

func TestGeneticDescriptor(t *testing.T) {
	e := heredity.New()

	testCases := []struct {
		name  string
		stats [6]uint8
		want  string
	}{
		{name: "strength dominant", stats: [6]uint8{90, 50, 50, 50, 50, 50}, want: "Powerhouse"},
		{name: "social dominant", stats: [6]uint8{50, 50, 50, 50, 50, 90}, want: "Charismatic"},
		{name: "tie breaks by priority order", stats: [6]uint8{80, 80, 80, 80, 80, 80}, want: "Powerhouse"},
		{name: "vitality beats later ties", stats: [6]uint8{50, 85, 50, 85, 85, 50}, want: "Resilient"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.GeneticDescriptor(phenotype(tc.stats, 0)))
		})
	}
}

func TestVisualAppeal(t *testing.T) {
	e := heredity.New()

	plain := phenotype([6]uint8{60, 60, 60, 60, 60, 60}, 0)
	marked := phenotype([6]uint8{60, 60, 60, 60, 60, 60},
		genetics.MarkerIridescent|genetics.MarkerCelestial)

	// 360/600 = 0.6 base rarity
	assert.InDelta(t, 0.6, e.VisualAppeal(plain), 1e-9)
	assert.InDelta(t, 0.8, e.VisualAppeal(marked), 1e-9)
}
