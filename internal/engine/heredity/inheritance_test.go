package heredity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/engine/heredity"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/pkg/rng"
)

func phenotype(stats [6]uint8, markers genetics.SpecialMarker) genetics.VisualGeneticData {
	return genetics.VisualGeneticData{
		Strength:       stats[0],
		Vitality:       stats[1],
		Agility:        stats[2],
		Intelligence:   stats[3],
		Adaptability:   stats[4],
		Social:         stats[5],
		SpecialMarkers: markers,
	}
}

func TestClassifyDifficulty(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	testCases := []struct {
		name    string
		parent1 genetics.VisualGeneticData
		parent2 genetics.VisualGeneticData
		want    genetics.Difficulty
	}{
		{
			name:    "weak parents are beginner",
			parent1: phenotype([6]uint8{40, 40, 40, 40, 40, 40}, 0), // 240
			parent2: phenotype([6]uint8{50, 50, 50, 50, 50, 50}, 0), // 300
			want:    genetics.DifficultyBeginner,
		},
		{
			name:    "balanced mid parents are easy",
			parent1: phenotype([6]uint8{80, 80, 50, 50, 50, 50}, 0), // 360
			parent2: phenotype([6]uint8{50, 50, 80, 80, 50, 50}, 0), // 360
			want:    genetics.DifficultyEasy,
		},
		{
			name:    "stronger balanced parents are medium",
			parent1: phenotype([6]uint8{75, 75, 75, 75, 75, 75}, 0), // 450
			parent2: phenotype([6]uint8{80, 80, 80, 80, 70, 70}, 0), // 460
			want:    genetics.DifficultyMedium,
		},
		{
			name:    "mid average with wide gap is hard",
			parent1: phenotype([6]uint8{90, 90, 90, 90, 90, 90}, 0), // 540
			parent2: phenotype([6]uint8{55, 55, 55, 55, 55, 55}, 0), // 330, diff 210
			want:    genetics.DifficultyHard,
		},
		{
			name:    "elite balanced parents are expert",
			parent1: phenotype([6]uint8{95, 95, 95, 95, 95, 95}, 0), // 570
			parent2: phenotype([6]uint8{90, 90, 90, 90, 90, 90}, 0), // 540, diff 30
			want:    genetics.DifficultyExpert,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := e.ClassifyDifficulty(ctx, &engine.ClassifyDifficultyInput{
				Parent1: tc.parent1,
				Parent2: tc.parent2,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Difficulty)
		})
	}
}

func TestComputeHarmony(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	t.Run("baseline is 0.5", func(t *testing.T) {
		out, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
			Parent1: phenotype([6]uint8{50, 50, 50, 50, 50, 50}, 0),
			Parent2: phenotype([6]uint8{50, 50, 50, 50, 50, 50}, 0),
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, out.Harmony, 1e-9)
		assert.Zero(t, out.ComplementaryPairs)
	})

	t.Run("complementary pair adds 0.2", func(t *testing.T) {
		out, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
			Parent1: phenotype([6]uint8{80, 50, 50, 50, 50, 50}, 0),
			Parent2: phenotype([6]uint8{50, 50, 50, 80, 50, 50}, 0),
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.7, out.Harmony, 1e-9)
		assert.Equal(t, 1, out.ComplementaryPairs)
	})

	t.Run("pair check is directional", func(t *testing.T) {
		// Parent 1 has the intelligence, parent 2 the strength: the
		// strength/intelligence condition reads parent 1 -> parent 2
		// only, so swapping roles loses the pair.
		out, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
			Parent1: phenotype([6]uint8{50, 50, 50, 80, 50, 50}, 0),
			Parent2: phenotype([6]uint8{80, 50, 50, 50, 50, 50}, 0),
		})
		require.NoError(t, err)
		assert.Zero(t, out.ComplementaryPairs)
		assert.InDelta(t, 0.5, out.Harmony, 1e-9)
	})

	t.Run("combined markers add 0.1 each", func(t *testing.T) {
		out, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
			Parent1: phenotype([6]uint8{50, 50, 50, 50, 50, 50}, genetics.MarkerIridescent),
			Parent2: phenotype([6]uint8{50, 50, 50, 50, 50, 50}, genetics.MarkerIridescent|genetics.MarkerLuminous),
		})
		require.NoError(t, err)
		// union has two distinct markers
		assert.InDelta(t, 0.7, out.Harmony, 1e-9)
	})

	t.Run("harmony clamps to 1", func(t *testing.T) {
		all := genetics.SpecialMarker(0xFF)
		out, err := e.ComputeHarmony(ctx, &engine.ComputeHarmonyInput{
			Parent1: phenotype([6]uint8{90, 90, 90, 90, 90, 90}, all),
			Parent2: phenotype([6]uint8{90, 90, 90, 90, 90, 90}, all),
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, out.Harmony)
	})
}

func TestComputeOffspring_Deterministic(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	p1 := phenotype([6]uint8{80, 70, 60, 50, 40, 30}, genetics.MarkerAlbino)
	p2 := phenotype([6]uint8{30, 40, 50, 60, 70, 80}, genetics.MarkerLuminous)

	first, err := e.ComputeOffspring(ctx, &engine.ComputeOffspringInput{
		Parent1: p1, Parent2: p2, Roller: rng.NewSeeded(1234),
	})
	require.NoError(t, err)

	second, err := e.ComputeOffspring(ctx, &engine.ComputeOffspringInput{
		Parent1: p1, Parent2: p2, Roller: rng.NewSeeded(1234),
	})
	require.NoError(t, err)

	assert.Equal(t, first.Offspring, second.Offspring, "same seed must reproduce the offspring exactly")
}

func TestComputeOffspring_Invariants(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()
	roller := rng.NewSeeded(99)
	inputs := rng.NewSeeded(7)

	randomStat := func() uint8 {
		v, err := inputs.Roll(101)
		require.NoError(t, err)
		return uint8(v - 1)
	}
	randomMarkers := func() genetics.SpecialMarker {
		v, err := inputs.Roll(256)
		require.NoError(t, err)
		return genetics.SpecialMarker(v - 1)
	}

	for i := 0; i < 200; i++ {
		p1 := phenotype([6]uint8{randomStat(), randomStat(), randomStat(), randomStat(), randomStat(), randomStat()}, randomMarkers())
		p2 := phenotype([6]uint8{randomStat(), randomStat(), randomStat(), randomStat(), randomStat(), randomStat()}, randomMarkers())

		out, err := e.ComputeOffspring(ctx, &engine.ComputeOffspringInput{
			Parent1: p1, Parent2: p2, Roller: roller,
		})
		require.NoError(t, err)

		for _, s := range out.Offspring.Stats() {
			assert.LessOrEqual(t, s, uint8(100), "offspring stats saturate at 100")
		}
		assert.Equal(t, p1.SpecialMarkers|p2.SpecialMarkers, out.Offspring.SpecialMarkers,
			"offspring markers must be exactly the union of both parents")
	}
}

func TestBaseSuccessChance(t *testing.T) {
	e := heredity.New()

	t.Run("floor at 0.3", func(t *testing.T) {
		chance := e.BaseSuccessChance(
			phenotype([6]uint8{0, 0, 0, 0, 0, 0}, 0),
			phenotype([6]uint8{0, 0, 0, 0, 0, 0}, 0),
		)
		assert.InDelta(t, 0.3, chance, 1e-9)
	})

	t.Run("perfect parents near but under ceiling", func(t *testing.T) {
		chance := e.BaseSuccessChance(
			phenotype([6]uint8{100, 100, 100, 100, 100, 100}, 0),
			phenotype([6]uint8{100, 100, 100, 100, 100, 100}, 0),
		)
		// 0.3 + (600/1200)*0.5 = 0.55
		assert.InDelta(t, 0.55, chance, 1e-9)
		assert.LessOrEqual(t, chance, 0.95)
	})

	t.Run("always inside [0.3, 0.95]", func(t *testing.T) {
		inputs := rng.NewSeeded(3)
		for i := 0; i < 100; i++ {
			v, err := inputs.Roll(101)
			require.NoError(t, err)
			s := uint8(v - 1)
			chance := e.BaseSuccessChance(
				phenotype([6]uint8{s, s, s, s, s, s}, 0),
				phenotype([6]uint8{s, s, s, s, s, s}, 0),
			)
			assert.GreaterOrEqual(t, chance, 0.3)
			assert.LessOrEqual(t, chance, 0.95)
		}
	})
}

func TestOffspringCount(t *testing.T) {
	e := heredity.New()

	testCases := []struct {
		name          string
		vit1, vit2    uint8
		soc1, soc2    uint8
		expectedCount int32
	}{
		{name: "exceptional pair gets triplets", vit1: 85, vit2: 85, soc1: 75, soc2: 75, expectedCount: 3},
		{name: "high vitality alone gets twins", vit1: 85, vit2: 85, soc1: 30, soc2: 30, expectedCount: 2},
		{name: "high social alone gets twins", vit1: 40, vit2: 40, soc1: 70, soc2: 70, expectedCount: 2},
		{name: "average pair gets single", vit1: 50, vit2: 50, soc1: 50, soc2: 50, expectedCount: 1},
		{name: "triplet thresholds are strict", vit1: 80, vit2: 80, soc1: 70, soc2: 70, expectedCount: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			count := e.OffspringCount(
				phenotype([6]uint8{50, tc.vit1, 50, 50, 50, tc.soc1}, 0),
				phenotype([6]uint8{50, tc.vit2, 50, 50, 50, tc.soc2}, 0),
			)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}

func TestPredictOutcome_ScenarioEasyPair(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	// Both parents total 360 with no gap: an easy-tier pairing
	p1 := phenotype([6]uint8{80, 80, 50, 50, 50, 50}, 0)
	p2 := phenotype([6]uint8{80, 80, 50, 50, 50, 50}, 0)

	out, err := e.PredictOutcome(ctx, &engine.PredictOutcomeInput{
		Parent1: p1, Parent2: p2, Roller: rng.NewSeeded(2024),
	})
	require.NoError(t, err)

	assert.Equal(t, genetics.DifficultyEasy, out.Difficulty)
	assert.GreaterOrEqual(t, out.Harmony, 0.5)
	assert.GreaterOrEqual(t, out.BaseSuccessChance, 0.3)
	assert.LessOrEqual(t, out.BaseSuccessChance, 0.95)
	assert.Contains(t, []int32{1, 2, 3}, out.OffspringCount)

	// Vitality sum 160 misses the triplet bar, exceeds the twin bar
	assert.Equal(t, int32(2), out.OffspringCount)
}

func TestPredictOutcome_ScenarioTriplets(t *testing.T) {
	e := heredity.New()
	ctx := context.Background()

	// Vitality sum 170, social sum 150: triplets
	p1 := phenotype([6]uint8{50, 85, 50, 50, 50, 75}, 0)
	p2 := phenotype([6]uint8{50, 85, 50, 50, 50, 75}, 0)

	out, err := e.PredictOutcome(ctx, &engine.PredictOutcomeInput{
		Parent1: p1, Parent2: p2, Roller: rng.NewSeeded(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), out.OffspringCount)
}

func TestComputeOffspring_MissingRoller(t *testing.T) {
	e := heredity.New()
	_, err := e.ComputeOffspring(context.Background(), &engine.ComputeOffspringInput{})
	require.Error(t, err)
}
