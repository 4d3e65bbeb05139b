package heredity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/engine/heredity"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/rng"
)

func testGenome(id, species string, generation int32, fitness, diversity float64) *genetics.Genome {
	genes := make([]genetics.Gene, 0, 12)
	for i := 0; i < 12; i++ {
		g, err := heredity.NewGene(
			genetics.StatNames[i%6],
			genetics.Allele{Value: float64(40 + i*4), Dominance: 0.8},
			genetics.Allele{Value: float64(30 + i*3), Dominance: 0.2},
			0.7,
			true,
		)
		if err != nil {
			panic(err)
		}
		genes = append(genes, g)
	}

	return &genetics.Genome{
		ID:        id,
		SpeciesID: species,
		Chromosomes: []genetics.Chromosome{
			{Genes: genes[:6], Length: 6},
			{Genes: genes[6:], Length: 6, SexChromosome: true},
		},
		Generation:     generation,
		Fitness:        fitness,
		DiversityIndex: diversity,
		Viable:         true,
	}
}

func TestNewGene_Validation(t *testing.T) {
	dom := genetics.Allele{Value: 60, Dominance: 0.8}
	rec := genetics.Allele{Value: 40, Dominance: 0.2}

	t.Run("valid gene", func(t *testing.T) {
		g, err := heredity.NewGene("vitality", dom, rec, 0.75, true)
		require.NoError(t, err)
		assert.Equal(t, "vitality", g.ID)
		assert.Equal(t, 0.75, g.ExpressionStrength)
	})

	t.Run("expression strength above 1 rejected", func(t *testing.T) {
		_, err := heredity.NewGene("vitality", dom, rec, 1.2, true)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("negative expression strength rejected", func(t *testing.T) {
		_, err := heredity.NewGene("vitality", dom, rec, -0.1, true)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("missing id rejected", func(t *testing.T) {
		_, err := heredity.NewGene("", dom, rec, 0.5, true)
		require.Error(t, err)
	})
}

func TestExpressedValue(t *testing.T) {
	gene, err := heredity.NewGene("strength",
		genetics.Allele{Value: 80}, genetics.Allele{Value: 20}, 0.75, true)
	require.NoError(t, err)

	// 80*0.75 + 20*0.25 = 65
	assert.InDelta(t, 65.0, heredity.ExpressedValue(gene), 1e-9)

	gene.Active = false
	assert.Zero(t, heredity.ExpressedValue(gene), "inactive genes contribute nothing")
}

func TestCompatibility(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	t.Run("species mismatch is zero in both orders", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.9, 0.5)
		b := testGenome("gen_b", "mossback", 1, 0.9, 0.5)

		out, err := e.Compatibility(ctx, &engine.CompatibilityInput{GenomeA: a, GenomeB: b})
		require.NoError(t, err)
		assert.Equal(t, 0.0, out.Score)
		assert.False(t, out.SpeciesMatch)

		out, err = e.Compatibility(ctx, &engine.CompatibilityInput{GenomeA: b, GenomeB: a})
		require.NoError(t, err)
		assert.Equal(t, 0.0, out.Score)
	})

	t.Run("healthy similar parents score high", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.9, 0.5)
		b := testGenome("gen_b", "emberfox", 1, 0.8, 0.5)

		out, err := e.Compatibility(ctx, &engine.CompatibilityInput{GenomeA: a, GenomeB: b})
		require.NoError(t, err)
		// (0.9+0.8)/2 - 0.5*0 = 0.85
		assert.InDelta(t, 0.85, out.Score, 1e-9)
		assert.True(t, out.SpeciesMatch)
	})

	t.Run("diversity gap penalizes", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.9, 0.9)
		b := testGenome("gen_b", "emberfox", 1, 0.9, 0.1)

		out, err := e.Compatibility(ctx, &engine.CompatibilityInput{GenomeA: a, GenomeB: b})
		require.NoError(t, err)
		// 0.9 - 0.5*0.8 = 0.5
		assert.InDelta(t, 0.5, out.Score, 1e-9)
	})

	t.Run("score clamps at zero", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.1, 1.0)
		b := testGenome("gen_b", "emberfox", 1, 0.1, 0.0)

		out, err := e.Compatibility(ctx, &engine.CompatibilityInput{GenomeA: a, GenomeB: b})
		require.NoError(t, err)
		assert.Equal(t, 0.0, out.Score)
	})
}

func TestBreedGenomes(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	t.Run("generation increments from the older parent", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 3, 0.8, 0.5)
		b := testGenome("gen_b", "emberfox", 5, 0.7, 0.4)

		out, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(11),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(6), out.Offspring.Generation)
		assert.Equal(t, []string{"gen_a", "gen_b"}, out.Offspring.ParentIDs)
		assert.False(t, out.Offspring.IsFounder())
	})

	t.Run("parents are not modified", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.8, 0.5)
		b := testGenome("gen_b", "emberfox", 1, 0.7, 0.4)
		genesBefore := len(a.Genes())
		fitnessBefore := a.Fitness

		_, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(11),
		})
		require.NoError(t, err)
		assert.Equal(t, genesBefore, len(a.Genes()))
		assert.Equal(t, fitnessBefore, a.Fitness)
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 2, 0.8, 0.5)
		b := testGenome("gen_b", "emberfox", 2, 0.7, 0.4)

		first, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(77),
		})
		require.NoError(t, err)

		second, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(77),
		})
		require.NoError(t, err)

		assert.Equal(t, first.Offspring, second.Offspring)
	})

	t.Run("inherited mutations union without duplicates", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.8, 0.5)
		b := testGenome("gen_b", "emberfox", 1, 0.7, 0.4)
		shared := genetics.Mutation{ID: "mut_shared", Name: "Pack Bond", Rarity: 0.5, OriginGeneration: 1}
		a.Mutations = []genetics.Mutation{shared, {ID: "mut_a", Name: "Twitch Reflex", Rarity: 0.35, OriginGeneration: 1}}
		b.Mutations = []genetics.Mutation{shared}

		out, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(13),
		})
		require.NoError(t, err)

		assert.True(t, out.Offspring.HasMutation("mut_shared"))
		assert.True(t, out.Offspring.HasMutation("mut_a"))

		seen := map[string]int{}
		for _, m := range out.Offspring.Mutations {
			seen[m.ID]++
		}
		assert.Equal(t, 1, seen["mut_shared"], "shared mutation must not duplicate")
	})

	t.Run("fitness and diversity stay in unit interval", func(t *testing.T) {
		roller := rng.NewSeeded(31)
		for i := 0; i < 50; i++ {
			a := testGenome("gen_a", "emberfox", 1, 0.99, 0.98)
			b := testGenome("gen_b", "emberfox", 1, 0.97, 0.02)

			out, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
				GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: roller,
			})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, out.Offspring.Fitness, 0.0)
			assert.LessOrEqual(t, out.Offspring.Fitness, 1.0)
			assert.GreaterOrEqual(t, out.Offspring.DiversityIndex, 0.0)
			assert.LessOrEqual(t, out.Offspring.DiversityIndex, 1.0)
		}
	})

	t.Run("species mismatch is a failed precondition", func(t *testing.T) {
		a := testGenome("gen_a", "emberfox", 1, 0.8, 0.5)
		b := testGenome("gen_b", "mossback", 1, 0.7, 0.4)

		_, err := e.BreedGenomes(ctx, &engine.BreedGenomesInput{
			GenomeA: a, GenomeB: b, OffspringID: "gen_child", Roller: rng.NewSeeded(1),
		})
		require.Error(t, err)
		assert.True(t, errors.IsFailedPrecondition(err))
	})
}
