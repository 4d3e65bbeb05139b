package genetics

import "time"

// Difficulty tiers for a breeding attempt, classified from parent quality
type Difficulty string

// Difficulty tiers
const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyExpert   Difficulty = "expert"
)

// GameType selects the breeding mini-game variant
type GameType string

// Mini-game variants
const (
	GameTypeGeneMatching   GameType = "gene_matching"
	GameTypeDNASequencing  GameType = "dna_sequencing"
	GameTypeTraitBalancing GameType = "trait_balancing"
	GameTypeIncubation     GameType = "incubation"
)

// GameTypes lists every mini-game variant
var GameTypes = []GameType{
	GameTypeGeneMatching,
	GameTypeDNASequencing,
	GameTypeTraitBalancing,
	GameTypeIncubation,
}

// SessionState is the breeding session lifecycle state
type SessionState string

// Session states. Legal transitions:
// Setup -> Tutorial -> Playing <-> Paused, Playing -> Completing ->
// Completed|Failed. Playing/Paused -> Failed on cancellation.
const (
	SessionStateSetup      SessionState = "setup"
	SessionStateTutorial   SessionState = "tutorial"
	SessionStatePlaying    SessionState = "playing"
	SessionStatePaused     SessionState = "paused"
	SessionStateCompleting SessionState = "completing"
	SessionStateCompleted  SessionState = "completed"
	SessionStateFailed     SessionState = "failed"
)

// Terminal reports whether the state ends the session
func (s SessionState) Terminal() bool {
	return s == SessionStateCompleted || s == SessionStateFailed
}

// BreedingSession is the transient state of one skill-modulated breeding
// attempt. It holds read-only snapshots of both parents' phenotypes and
// exclusively owns its own mutable progress fields.
type BreedingSession struct {
	ID         string
	GameType   GameType
	Difficulty Difficulty

	State SessionState

	TimeLimit time.Duration
	Elapsed   time.Duration

	Parent1ID string
	Parent2ID string

	// Phenotype snapshots taken at session start; never written back
	Parent1 VisualGeneticData
	Parent2 VisualGeneticData

	// Seed for the session-scoped roller; stored for replay
	Seed uint64

	SkillBonus        float64
	MatchesFound      int32
	TargetsFound      int32
	HarmonyScore      float64
	SuccessMultiplier float64

	// Predicted offspring phenotype computed at setup
	Predicted VisualGeneticData

	// BaseSuccessChance in [0.3, 0.95] before skill/time modulation
	BaseSuccessChance float64

	// SuccessChance is the current modulated probability in [0,1]
	SuccessChance float64

	// OffspringCount in {1,2,3}, +1 once if the skill bonus is claimed
	OffspringCount int32

	BonusUnlocked bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BreedingRequest is a queued breeding attempt submitted by a caller
type BreedingRequest struct {
	ID        string
	Parent1ID string
	Parent2ID string
	GameType  GameType

	// Seed is optional; zero means the worker derives one
	Seed uint64

	SubmittedAt time.Time
}

// BreedingResult is the finalized outcome handed to the progression and
// reward systems once a session reaches a terminal state.
type BreedingResult struct {
	RequestID string
	SessionID string

	Success    bool
	FinalScore int32

	// Multiplier breakdown behind the final success chance
	SkillMultiplier      float64
	TimeMultiplier       float64
	PerfectionMultiplier float64

	OffspringCount int32

	// Offspring phenotypes and blended personality; empty when the
	// attempt failed
	Offspring            []VisualGeneticData
	OffspringPersonality PersonalityGenetics

	BonusTraitsEarned bool
	PerfectBreeding   bool

	GeneticQualityBonus float64

	// Progression deltas consumed by the reward subsystem
	ExperienceGained   int32
	LeveledUp          bool
	NewAbilityUnlocked bool

	CompletedAt time.Time
}
