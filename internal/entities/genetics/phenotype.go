package genetics

import "math/bits"

// Color is a 4-component visual payload
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// SpecialMarker is a bitset of rare marker flags. A marker present in
// either parent is always inherited by offspring (dominant-trait convention).
type SpecialMarker uint8

// Special marker flags
const (
	MarkerIridescent SpecialMarker = 1 << iota
	MarkerLuminous
	MarkerAlbino
	MarkerMelanistic
	MarkerChimeric
	MarkerPrismatic
	MarkerAncient
	MarkerCelestial
)

// Has checks if the marker set contains a marker
func (m SpecialMarker) Has(other SpecialMarker) bool {
	return m&other != 0
}

// Count returns the number of set marker flags
func (m SpecialMarker) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Stat bounds for the compact phenotype representation
const (
	StatMin = 0
	StatMax = 100
)

// MaxTotalStats is the theoretical per-creature stat ceiling (6 stats x 100)
const MaxTotalStats = 600

// VisualGeneticData is the compact, gameplay-facing phenotype.
// This is the structure gameplay systems actually consume; it is derived
// from a full Genome or produced directly by the inheritance engine.
type VisualGeneticData struct {
	Strength     uint8
	Vitality     uint8
	Agility      uint8
	Intelligence uint8
	Adaptability uint8
	Social       uint8

	SpecialMarkers SpecialMarker

	PrimaryColor   Color
	SecondaryColor Color
}

// TotalStats sums all six stats
func (v VisualGeneticData) TotalStats() int {
	return int(v.Strength) + int(v.Vitality) + int(v.Agility) +
		int(v.Intelligence) + int(v.Adaptability) + int(v.Social)
}

// Stats returns the six stats in priority order: Strength, Vitality,
// Agility, Intelligence, Adaptability, Social
func (v VisualGeneticData) Stats() [6]uint8 {
	return [6]uint8{v.Strength, v.Vitality, v.Agility, v.Intelligence, v.Adaptability, v.Social}
}

// StatNames lists the stat names in the same priority order as Stats
var StatNames = [6]string{"Strength", "Vitality", "Agility", "Intelligence", "Adaptability", "Social"}
