package heredity

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// markerRarityBar is the rarity a beneficial mutation needs to surface as a
// special marker in the projected phenotype
const markerRarityBar = 0.7

// descriptorLabels by stat priority order
var descriptorLabels = [6]string{
	"Powerhouse", "Resilient", "Swift", "Brilliant", "Versatile", "Charismatic",
}

// statIndexByGeneTarget maps mutation targets onto stat buckets
var statIndexByGeneTarget = map[string]int{
	"strength":     0,
	"vitality":     1,
	"agility":      2,
	"intelligence": 3,
	"adaptability": 4,
	"social":       5,
}

// ProjectPhenotype derives the compact gameplay phenotype from a full
// genome. Active genes bucket into the six stats by position, mutations
// shift their target stat, and rare beneficial mutations surface as
// special markers. The genome is read, never written; the derived trait
// expressions are returned for the caller to cache.
func (e *Engine) ProjectPhenotype(
	_ context.Context,
	input *engine.ProjectPhenotypeInput,
) (*engine.ProjectPhenotypeOutput, error) {
	if input == nil || input.Genome == nil {
		return nil, errors.InvalidArgument("genome is required")
	}

	genes := input.Genome.Genes()

	var sums [6]float64
	var counts [6]int
	expressions := make([]genetics.TraitExpression, 0, len(genes))

	for i, gene := range genes {
		value := ExpressedValue(gene)
		bucket := i % 6

		if gene.Active {
			sums[bucket] += value
			counts[bucket]++
		}

		expressions = append(expressions, genetics.TraitExpression{
			TraitID:          gene.ID,
			Name:             gene.ID,
			Value:            value,
			Color:            statColor(bucket, value),
			BehaviorModifier: (value - 50) / 100,
			StatModifier:     value / 100,
		})
	}

	var stats [6]float64
	for i := range stats {
		if counts[i] > 0 {
			stats[i] = sums[i] / float64(counts[i])
		}
	}

	var markers genetics.SpecialMarker
	for _, m := range input.Genome.Mutations {
		if idx, ok := statIndexByGeneTarget[strings.ToLower(m.TargetGeneID)]; ok {
			shift := m.Strength * 20
			if !m.Beneficial {
				shift = -shift
			}
			stats[idx] += shift
		}
		if m.Beneficial && m.Rarity >= markerRarityBar {
			markers |= markerFor(m.Name)
		}
	}

	phenotype := genetics.VisualGeneticData{
		Strength:       clampStat(int(stats[0])),
		Vitality:       clampStat(int(stats[1])),
		Agility:        clampStat(int(stats[2])),
		Intelligence:   clampStat(int(stats[3])),
		Adaptability:   clampStat(int(stats[4])),
		Social:         clampStat(int(stats[5])),
		SpecialMarkers: markers,
	}
	phenotype.PrimaryColor, phenotype.SecondaryColor = displayColors(phenotype)

	return &engine.ProjectPhenotypeOutput{
		Phenotype:        phenotype,
		TraitExpressions: expressions,
	}, nil
}

// markerFor assigns a stable marker bit to a mutation by name
func markerFor(name string) genetics.SpecialMarker {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return genetics.SpecialMarker(1 << (h.Sum32() % 8))
}

// statColor ramps a trait color from its bucket hue, with alpha tracking
// the expressed value
func statColor(bucket int, value float64) genetics.Color {
	base := [6]genetics.Color{
		{R: 200, G: 60, B: 60, A: 255},  // strength: red
		{R: 60, G: 180, B: 80, A: 255},  // vitality: green
		{R: 240, G: 200, B: 60, A: 255}, // agility: yellow
		{R: 80, G: 100, B: 220, A: 255}, // intelligence: blue
		{R: 160, G: 90, B: 200, A: 255}, // adaptability: purple
		{R: 240, G: 140, B: 70, A: 255}, // social: orange
	}[bucket]
	base.A = 155 + clampStat(int(value))
	return base
}

// displayColors picks the primary color from the strongest stat's hue and
// the secondary from the runner-up
func displayColors(p genetics.VisualGeneticData) (genetics.Color, genetics.Color) {
	stats := p.Stats()
	first, second := 0, 1
	if stats[second] > stats[first] {
		first, second = second, first
	}
	for i := 2; i < len(stats); i++ {
		switch {
		case stats[i] > stats[first]:
			second = first
			first = i
		case stats[i] > stats[second]:
			second = i
		}
	}
	return statColor(first, float64(stats[first])), statColor(second, float64(stats[second]))
}

// GeneticDescriptor labels a phenotype by its maximal stat. Ties break by
// priority order: Strength, Vitality, Agility, Intelligence, Adaptability,
// Social.
func (e *Engine) GeneticDescriptor(phenotype genetics.VisualGeneticData) string {
	stats := phenotype.Stats()
	best := 0
	for i := 1; i < len(stats); i++ {
		if stats[i] > stats[best] {
			best = i
		}
	}
	return descriptorLabels[best]
}

// VisualAppeal combines a rarity score with the special marker count
func (e *Engine) VisualAppeal(phenotype genetics.VisualGeneticData) float64 {
	rarity := float64(phenotype.TotalStats()) / float64(genetics.MaxTotalStats)
	return rarity + 0.1*float64(phenotype.SpecialMarkers.Count())
}
