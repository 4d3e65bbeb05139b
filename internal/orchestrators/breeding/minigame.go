package breeding

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
)

// Move is a single player input into a running mini-game. Each variant
// accepts only its own move type.
type Move interface {
	gameType() genetics.GameType
}

// MatchAttempt flips a pair of cards in the gene-matching grid
type MatchAttempt struct {
	Matched bool
}

func (MatchAttempt) gameType() genetics.GameType { return genetics.GameTypeGeneMatching }

// SequenceInput enters the next base in the DNA-sequencing chain
type SequenceInput struct {
	Correct bool
}

func (SequenceInput) gameType() genetics.GameType { return genetics.GameTypeDNASequencing }

// SliderMove nudges one trait slider toward its balance point. Stat indexes
// follow genetics.StatNames order.
type SliderMove struct {
	Stat  int
	Delta float64
}

func (SliderMove) gameType() genetics.GameType { return genetics.GameTypeTraitBalancing }

// TemperatureAdjust shifts the incubator temperature
type TemperatureAdjust struct {
	Delta float64
}

func (TemperatureAdjust) gameType() genetics.GameType { return genetics.GameTypeIncubation }

// Game is one running mini-game variant. Each variant carries only its own
// fields; the session controller talks to all of them through this contract.
type Game interface {
	Kind() genetics.GameType

	// Apply folds one player move into the game state. Moves for a
	// different variant are rejected with InvalidArgument.
	Apply(move Move) error

	// SkillPerformance is the player's current accuracy in [0,1]
	SkillPerformance() float64

	// Progress reports targets hit so far and the completion target
	Progress() (found, required int32)

	// Complete reports whether the completion target has been reached
	Complete() bool

	// Sample draws a plausible next move from the roller. The worker uses
	// this to play sessions that arrive through the request queue.
	Sample(roller dice.Roller) (Move, error)
}

// NewGame constructs the mini-game variant for a game type under the given
// tuning.
func NewGame(gameType genetics.GameType, tuning Tuning) (Game, error) {
	switch gameType {
	case genetics.GameTypeGeneMatching:
		return &geneMatchingGame{
			gridSize:        tuning.GridSize,
			matchesRequired: tuning.MatchesRequired,
		}, nil
	case genetics.GameTypeDNASequencing:
		return &dnaSequencingGame{
			sequenceLength: tuning.SequenceLength,
		}, nil
	case genetics.GameTypeTraitBalancing:
		game := &traitBalancingGame{threshold: tuning.BalanceThreshold}
		for i := range game.offsets {
			game.offsets[i] = 1.0
		}
		return game, nil
	case genetics.GameTypeIncubation:
		return &incubationGame{
			bandLow:       tuning.TempBandLow,
			bandHigh:      tuning.TempBandHigh,
			ticksRequired: tuning.IncubationTicks,
			temperature:   20.0,
		}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown game type: %s", gameType)
	}
}

func wrongMove(want genetics.GameType, got Move) error {
	return errors.InvalidArgumentf("move for %s applied to %s game", got.gameType(), want)
}

// geneMatchingGame: flip pairs in a gridSize x gridSize card grid until
// enough gene pairs are matched.
type geneMatchingGame struct {
	gridSize        int
	matchesRequired int32

	matchesFound int32
	attempts     int32
}

func (g *geneMatchingGame) Kind() genetics.GameType { return genetics.GameTypeGeneMatching }

func (g *geneMatchingGame) Apply(move Move) error {
	attempt, ok := move.(MatchAttempt)
	if !ok {
		return wrongMove(g.Kind(), move)
	}

	g.attempts++
	if attempt.Matched {
		g.matchesFound++
	}
	return nil
}

func (g *geneMatchingGame) SkillPerformance() float64 {
	if g.attempts == 0 {
		return 0
	}
	return float64(g.matchesFound) / float64(g.attempts)
}

func (g *geneMatchingGame) Progress() (int32, int32) {
	return g.matchesFound, g.matchesRequired
}

func (g *geneMatchingGame) Complete() bool {
	return g.matchesFound >= g.matchesRequired
}

func (g *geneMatchingGame) Sample(roller dice.Roller) (Move, error) {
	roll, err := roller.Roll(100)
	if err != nil {
		return nil, err
	}
	return MatchAttempt{Matched: roll <= 70}, nil
}

// dnaSequencingGame: enter bases in order; wrong entries cost accuracy but
// never reset the chain.
type dnaSequencingGame struct {
	sequenceLength int32

	position int32
	mistakes int32
}

func (g *dnaSequencingGame) Kind() genetics.GameType { return genetics.GameTypeDNASequencing }

func (g *dnaSequencingGame) Apply(move Move) error {
	input, ok := move.(SequenceInput)
	if !ok {
		return wrongMove(g.Kind(), move)
	}

	if input.Correct {
		g.position++
	} else {
		g.mistakes++
	}
	return nil
}

func (g *dnaSequencingGame) SkillPerformance() float64 {
	total := g.position + g.mistakes
	if total == 0 {
		return 0
	}
	return float64(g.position) / float64(total)
}

func (g *dnaSequencingGame) Progress() (int32, int32) {
	return g.position, g.sequenceLength
}

func (g *dnaSequencingGame) Complete() bool {
	return g.position >= g.sequenceLength
}

func (g *dnaSequencingGame) Sample(roller dice.Roller) (Move, error) {
	roll, err := roller.Roll(100)
	if err != nil {
		return nil, err
	}
	return SequenceInput{Correct: roll <= 75}, nil
}

// traitBalancingGame: six sliders start fully off-balance; moves close the
// gap until every slider sits within the threshold.
type traitBalancingGame struct {
	threshold float64

	// offsets are each slider's distance from its balance point, in [0,1]
	offsets [6]float64
}

func (g *traitBalancingGame) Kind() genetics.GameType { return genetics.GameTypeTraitBalancing }

func (g *traitBalancingGame) Apply(move Move) error {
	slide, ok := move.(SliderMove)
	if !ok {
		return wrongMove(g.Kind(), move)
	}
	if slide.Stat < 0 || slide.Stat >= len(g.offsets) {
		return errors.OutOfRangef("slider index %d outside [0,%d]", slide.Stat, len(g.offsets)-1)
	}

	// Overshooting swings past the balance point
	g.offsets[slide.Stat] = math.Min(1, math.Abs(g.offsets[slide.Stat]-slide.Delta))
	return nil
}

func (g *traitBalancingGame) SkillPerformance() float64 {
	sum := 0.0
	for _, offset := range g.offsets {
		sum += offset
	}
	perf := 1 - sum/float64(len(g.offsets))
	if perf < 0 {
		return 0
	}
	return perf
}

func (g *traitBalancingGame) Progress() (int32, int32) {
	balanced := int32(0)
	for _, offset := range g.offsets {
		if offset <= g.threshold {
			balanced++
		}
	}
	return balanced, int32(len(g.offsets))
}

func (g *traitBalancingGame) Complete() bool {
	found, required := g.Progress()
	return found >= required
}

func (g *traitBalancingGame) Sample(roller dice.Roller) (Move, error) {
	stat, err := roller.Roll(len(g.offsets))
	if err != nil {
		return nil, err
	}
	step, err := roller.Roll(40)
	if err != nil {
		return nil, err
	}
	return SliderMove{Stat: stat - 1, Delta: float64(step) / 100}, nil
}

// incubationGame: hold the incubator temperature inside the target band for
// enough consecutive-or-not ticks.
type incubationGame struct {
	bandLow       float64
	bandHigh      float64
	ticksRequired int32

	temperature float64
	ticksInBand int32
	totalTicks  int32
}

func (g *incubationGame) Kind() genetics.GameType { return genetics.GameTypeIncubation }

func (g *incubationGame) Apply(move Move) error {
	adjust, ok := move.(TemperatureAdjust)
	if !ok {
		return wrongMove(g.Kind(), move)
	}

	g.temperature += adjust.Delta
	g.totalTicks++
	if g.temperature >= g.bandLow && g.temperature <= g.bandHigh {
		g.ticksInBand++
	}
	return nil
}

func (g *incubationGame) SkillPerformance() float64 {
	if g.totalTicks == 0 {
		return 0
	}
	return float64(g.ticksInBand) / float64(g.totalTicks)
}

func (g *incubationGame) Progress() (int32, int32) {
	return g.ticksInBand, g.ticksRequired
}

func (g *incubationGame) Complete() bool {
	return g.ticksInBand >= g.ticksRequired
}

func (g *incubationGame) Sample(roller dice.Roller) (Move, error) {
	jitter, err := roller.Roll(10)
	if err != nil {
		return nil, err
	}

	mid := (g.bandLow + g.bandHigh) / 2
	delta := float64(jitter-5) / 10
	if g.temperature < mid-1 {
		delta += 1.0
	} else if g.temperature > mid+1 {
		delta -= 1.0
	}
	return TemperatureAdjust{Delta: delta}, nil
}
