// Package genetics implements the creature genetics entities.
// NOTE: These are data-only structs. All genetic calculations (blending,
// compatibility, phenotype projection) are done by the engine, not here.
package genetics

// Allele is one of a gene's two inherited values
type Allele struct {
	// Raw trait value carried by this allele
	Value float64

	// Dominance weight used when resolving expression conflicts
	Dominance float64
}

// Gene pairs a dominant and recessive allele with an expression strength.
// Genes are immutable once created; breeding always builds new ones.
type Gene struct {
	ID string

	Dominant  Allele
	Recessive Allele

	// ExpressionStrength in [0,1] weights the dominant allele's contribution
	ExpressionStrength float64

	// Active genes contribute to the phenotype; inactive genes are carried
	// silently so recessive traits can resurface in later generations
	Active bool
}

// Chromosome is an ordered collection of genes, owned by its genome
type Chromosome struct {
	Genes []Gene

	// Length is the authored gene capacity, which may exceed len(Genes)
	Length int

	// SexChromosome marks the chromosome that determines offspring sex
	SexChromosome bool
}

// Mutation is a permanent, rare modifier attached to a genome.
// Mutations are appended at breeding time and never removed.
type Mutation struct {
	ID           string
	Name         string
	TargetGeneID string

	// Strength of the mutation's effect on the target gene
	Strength float64

	// Beneficial mutations can surface as special markers in the phenotype
	Beneficial bool

	// Rarity in [0,1]: 0 = common, 1 = extremely rare
	Rarity float64

	// OriginGeneration records the generation the mutation first appeared in
	OriginGeneration int32
}

// TraitExpression is a derived phenotype entry. Computed, never authored.
type TraitExpression struct {
	TraitID string
	Name    string

	// Value is the expressed float value of the trait
	Value float64

	// Color is the visual payload rendered for this trait
	Color Color

	BehaviorModifier float64
	StatModifier     float64
}

// Genome is a creature's full hereditary record
type Genome struct {
	ID        string
	SpeciesID string

	// Chromosomes exclusively own this genome's genes
	Chromosomes []Chromosome

	// TraitExpressions caches the projected phenotype entries
	TraitExpressions []TraitExpression

	Mutations []Mutation

	// Generation is 1 for founders and max(parent generations)+1 otherwise
	Generation int32

	// Fitness in [0,1] is the genome's health/quality score
	Fitness float64

	// ParentIDs holds up to two parent genome IDs; empty means founder
	ParentIDs []string

	// DiversityIndex in [0,1] measures genetic distinctiveness
	DiversityIndex float64

	// Viable marks whether the genome produces a living creature
	Viable bool
}

// Genes returns the genome's genes across all chromosomes in order
func (g *Genome) Genes() []Gene {
	var genes []Gene
	for _, c := range g.Chromosomes {
		genes = append(genes, c.Genes...)
	}
	return genes
}

// HasMutation reports whether the genome carries the given mutation.
// Linear scan; per-creature mutation counts stay in the single digits.
func (g *Genome) HasMutation(mutationID string) bool {
	for _, m := range g.Mutations {
		if m.ID == mutationID {
			return true
		}
	}
	return false
}

// IsFounder reports whether the genome has no recorded parents
func (g *Genome) IsFounder() bool {
	return len(g.ParentIDs) == 0
}
