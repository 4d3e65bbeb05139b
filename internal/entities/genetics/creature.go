package genetics

// CreatureRecord is the stored genetic record of one creature: the compact
// phenotype gameplay reads, the hereditary personality, and optionally the
// full genome when one is modeled for the creature.
type CreatureRecord struct {
	ID        string
	Name      string
	SpeciesID string

	// Level feeds the progression deltas on breeding results
	Level int32

	Phenotype   VisualGeneticData
	Personality PersonalityGenetics

	// Genome is nil for creatures tracked only at phenotype granularity
	Genome *Genome

	CreatedAt int64
	UpdatedAt int64
}
