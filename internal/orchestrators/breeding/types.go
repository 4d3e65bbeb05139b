package breeding

import (
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

// StartSessionInput defines the request for starting a breeding session
type StartSessionInput struct {
	Parent1ID string
	Parent2ID string
	GameType  genetics.GameType

	// Seed for the session roller; zero derives one from the clock
	Seed uint64
}

// StartSessionOutput defines the response for starting a breeding session
type StartSessionOutput struct {
	Session *genetics.BreedingSession
}

// AdvanceSessionInput defines the request for moving a session through its
// pre-play states (Setup -> Tutorial -> Playing)
type AdvanceSessionInput struct {
	SessionID string
}

// AdvanceSessionOutput defines the response for advancing a session
type AdvanceSessionOutput struct {
	Session *genetics.BreedingSession
}

// UpdateSessionInput defines one tick of a playing session
type UpdateSessionInput struct {
	SessionID string

	// Delta is the simulated time consumed by this tick
	Delta time.Duration

	// Move is the player input applied this tick; nil ticks only advance
	// the clock
	Move Move
}

// UpdateSessionOutput defines the response for a session tick. Result is
// non-nil only on the tick that finalized the session.
type UpdateSessionOutput struct {
	Session *genetics.BreedingSession
	Result  *genetics.BreedingResult
}

// PauseSessionInput defines the request for pausing a playing session
type PauseSessionInput struct {
	SessionID string
}

// PauseSessionOutput defines the response for pausing a session
type PauseSessionOutput struct {
	Session *genetics.BreedingSession
}

// ResumeSessionInput defines the request for resuming a paused session
type ResumeSessionInput struct {
	SessionID string
}

// ResumeSessionOutput defines the response for resuming a session
type ResumeSessionOutput struct {
	Session *genetics.BreedingSession
}

// CancelSessionInput defines the request for aborting a session
type CancelSessionInput struct {
	SessionID string
}

// CancelSessionOutput defines the response for aborting a session
type CancelSessionOutput struct {
	Session *genetics.BreedingSession
}

// GetSessionInput defines the request for fetching a session snapshot
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for fetching a session snapshot
type GetSessionOutput struct {
	Session *genetics.BreedingSession
}

// SubmitRequestInput defines the request for queueing a breeding attempt
type SubmitRequestInput struct {
	Parent1ID string
	Parent2ID string
	GameType  genetics.GameType

	// Seed is optional; zero lets the worker derive one
	Seed uint64
}

// SubmitRequestOutput defines the response for queueing a breeding attempt
type SubmitRequestOutput struct {
	RequestID string
}

// PollResultInput defines the request for polling a finalized result
type PollResultInput struct {
	RequestID string
}

// PollResultOutput defines the response for polling a finalized result
type PollResultOutput struct {
	Result *genetics.BreedingResult
}

// ProcessNextRequestInput defines the request for one worker pass
type ProcessNextRequestInput struct{}

// ProcessNextRequestOutput defines the response for one worker pass
type ProcessNextRequestOutput struct {
	Result *genetics.BreedingResult
}
