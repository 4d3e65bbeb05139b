package genetics

// InfluenceScale is the per-mille base for parent influence weights.
// A blended personality carries weights that sum to roughly this value.
const InfluenceScale = 1000

// PersonalityGenetics is the hereditary personality disposition of a
// creature. Created either by blending two parents' records at breeding
// time, or synthesized 50/50 from a single creature's expressed
// personality in the founder case.
type PersonalityGenetics struct {
	Curiosity    float64
	Playfulness  float64
	Aggression   float64
	Affection    float64
	Independence float64
	Nervousness  float64
	Stubbornness float64
	Loyalty      float64

	// Per-mille contribution of each parent; sums to ~InfluenceScale
	Parent1Influence uint16
	Parent2Influence uint16

	MutationCount int32

	// HasPersonalityMutation flags that at least one trait drifted outside
	// the range spanned by both parents
	HasPersonalityMutation bool

	// Fitness in [0,1] scores the coherence of the disposition
	Fitness float64

	// TemperamentStability in [0,1]: higher means steadier moods
	TemperamentStability float64
}

// Traits returns the eight trait scalars in declaration order
func (p PersonalityGenetics) Traits() [8]float64 {
	return [8]float64{
		p.Curiosity, p.Playfulness, p.Aggression, p.Affection,
		p.Independence, p.Nervousness, p.Stubbornness, p.Loyalty,
	}
}

// PersonalityTraitNames lists the trait names in the same order as Traits
var PersonalityTraitNames = [8]string{
	"Curiosity", "Playfulness", "Aggression", "Affection",
	"Independence", "Nervousness", "Stubbornness", "Loyalty",
}
