// Package breeding implements the breeding session orchestrator: the
// skill-modulated state machine that wraps one inheritance computation with
// a mini-game, time pressure, and final success roll.
package breeding

//go:generate mockgen -destination=mock/mock_service.go -package=breedingmock github.com/KirkDiggler/creature-api/internal/orchestrators/breeding Service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/creature-api/internal/engine"
	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	"github.com/KirkDiggler/creature-api/internal/pkg/idgen"
	"github.com/KirkDiggler/creature-api/internal/pkg/rng"
	breedingqueue "github.com/KirkDiggler/creature-api/internal/repositories/breeding_queue"
	breedingsession "github.com/KirkDiggler/creature-api/internal/repositories/breeding_session"
	"github.com/KirkDiggler/creature-api/internal/repositories/creatures"
)

const (
	// skillBonusThreshold is the performance above which the one-time
	// offspring bonus unlocks
	skillBonusThreshold = 0.9

	// perfectThreshold marks a perfect breeding when the attempt succeeds
	perfectThreshold = 0.95

	// workerTickStep is the simulated time per worker tick when playing a
	// queued session
	workerTickStep = 2 * time.Second
)

// experienceByDifficulty is the base experience award per tier
var experienceByDifficulty = map[genetics.Difficulty]int32{
	genetics.DifficultyBeginner: 50,
	genetics.DifficultyEasy:     75,
	genetics.DifficultyMedium:   100,
	genetics.DifficultyHard:     150,
	genetics.DifficultyExpert:   200,
}

// Service defines the interface for breeding session operations
type Service interface {
	// Interactive session lifecycle
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	AdvanceSession(ctx context.Context, input *AdvanceSessionInput) (*AdvanceSessionOutput, error)
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)
	PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error)
	ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error)
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Queue surface
	SubmitRequest(ctx context.Context, input *SubmitRequestInput) (*SubmitRequestOutput, error)
	PollResult(ctx context.Context, input *PollResultInput) (*PollResultOutput, error)
	ProcessNextRequest(ctx context.Context, input *ProcessNextRequestInput) (*ProcessNextRequestOutput, error)
}

// Config holds the dependencies for the breeding orchestrator
type Config struct {
	CreatureRepo creatures.Repository
	SessionRepo  breedingsession.Repository
	QueueRepo    breedingqueue.Repository
	Engine       engine.Engine
	IDGenerator  idgen.Generator
	Clock        clock.Clock

	// Tuning is optional; nil falls back to DefaultTuning
	Tuning TuningTable
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureRepo == nil {
		vb.RequiredField("CreatureRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.QueueRepo == nil {
		vb.RequiredField("QueueRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// runtime is the live, in-memory side of one session: the mini-game state
// and the session roller cannot round-trip through the snapshot store, so
// the orchestrator that started a session owns them until it ends.
type runtime struct {
	session *genetics.BreedingSession
	game    Game
	roller  dice.Roller

	// Parent records held for finalization (genomes, personalities);
	// released when the session ends
	parent1 *genetics.CreatureRecord
	parent2 *genetics.CreatureRecord
}

type orchestrator struct {
	creatureRepo creatures.Repository
	sessionRepo  breedingsession.Repository
	queueRepo    breedingqueue.Repository
	engine       engine.Engine
	idGen        idgen.Generator
	clock        clock.Clock
	tuning       TuningTable

	mu   sync.Mutex
	live map[string]*runtime
}

// NewOrchestrator creates a new breeding orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		creatureRepo: cfg.CreatureRepo,
		sessionRepo:  cfg.SessionRepo,
		queueRepo:    cfg.QueueRepo,
		engine:       cfg.Engine,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		tuning:       cfg.Tuning,
		live:         make(map[string]*runtime),
	}, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// StartSession fetches both parents, runs the baseline inheritance
// computation once, and creates the session in Setup.
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input.Parent1ID == "" || input.Parent2ID == "" {
		return nil, errors.InvalidArgument("both parent IDs are required")
	}
	if input.Parent1ID == input.Parent2ID {
		return nil, errors.InvalidArgument("a creature cannot breed with itself")
	}

	parent1, err := o.creatureRepo.Get(ctx, creatures.GetInput{CreatureID: input.Parent1ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parent %s", input.Parent1ID)
	}
	parent2, err := o.creatureRepo.Get(ctx, creatures.GetInput{CreatureID: input.Parent2ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parent %s", input.Parent2ID)
	}

	// Full genomes, when present, gate the attempt up front: mismatched
	// species is a defined zero-compatibility outcome, checked here so a
	// doomed session never starts.
	if parent1.Record.Genome != nil && parent2.Record.Genome != nil {
		compat, err := o.engine.Compatibility(ctx, &engine.CompatibilityInput{
			GenomeA: parent1.Record.Genome,
			GenomeB: parent2.Record.Genome,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to score compatibility")
		}
		if !compat.SpeciesMatch {
			return nil, errors.FailedPreconditionf("parents %s and %s are different species",
				input.Parent1ID, input.Parent2ID)
		}
	}

	seed := input.Seed
	if seed == 0 {
		seed = uint64(o.clock.Now().UnixNano())
	}
	roller := rng.NewSeeded(seed)

	predict, err := o.engine.PredictOutcome(ctx, &engine.PredictOutcomeInput{
		Parent1: parent1.Record.Phenotype,
		Parent2: parent2.Record.Phenotype,
		Roller:  roller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to predict breeding outcome")
	}

	tuning := o.tuning.ForDifficulty(predict.Difficulty)
	game, err := NewGame(input.GameType, tuning)
	if err != nil {
		return nil, err
	}

	session := &genetics.BreedingSession{
		ID:         o.idGen.Generate(),
		GameType:   input.GameType,
		Difficulty: predict.Difficulty,
		State:      genetics.SessionStateSetup,
		TimeLimit:  tuning.TimeLimit,
		Parent1ID:  input.Parent1ID,
		Parent2ID:  input.Parent2ID,
		Parent1:    parent1.Record.Phenotype,
		Parent2:    parent2.Record.Phenotype,
		Seed:       seed,

		HarmonyScore:      predict.Harmony,
		Predicted:         predict.Predicted,
		BaseSuccessChance: predict.BaseSuccessChance,
		SuccessChance:     predict.BaseSuccessChance,
		OffspringCount:    predict.OffspringCount,
	}

	createOut, err := o.sessionRepo.Create(ctx, breedingsession.CreateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	session = createOut.Session

	o.mu.Lock()
	o.live[session.ID] = &runtime{
		session: session,
		game:    game,
		roller:  roller,
		parent1: parent1.Record,
		parent2: parent2.Record,
	}
	o.mu.Unlock()

	slog.Info("breeding session started",
		"session_id", session.ID,
		"game_type", session.GameType,
		"difficulty", session.Difficulty,
		"harmony", session.HarmonyScore,
		"offspring_count", session.OffspringCount,
	)

	return &StartSessionOutput{Session: snapshot(session)}, nil
}

// AdvanceSession moves a session through its pre-play states:
// Setup -> Tutorial -> Playing.
func (o *orchestrator) AdvanceSession(ctx context.Context, input *AdvanceSessionInput) (*AdvanceSessionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rt, err := o.liveSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	switch rt.session.State {
	case genetics.SessionStateSetup:
		rt.session.State = genetics.SessionStateTutorial
	case genetics.SessionStateTutorial:
		rt.session.State = genetics.SessionStatePlaying
	default:
		return nil, errors.FailedPreconditionf("session %s cannot advance from %s",
			rt.session.ID, rt.session.State)
	}

	if err := o.persist(ctx, rt.session); err != nil {
		return nil, err
	}
	return &AdvanceSessionOutput{Session: snapshot(rt.session)}, nil
}

// UpdateSession applies one tick to a playing session: fold in the player's
// move, recompute the modulated success chance, and finalize if the
// mini-game completed or time ran out.
func (o *orchestrator) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input.Delta < 0 {
		return nil, errors.InvalidArgument("tick delta cannot be negative")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	rt, err := o.liveSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	session := rt.session

	if session.State != genetics.SessionStatePlaying {
		return nil, errors.FailedPreconditionf("session %s is %s, not playing",
			session.ID, session.State)
	}

	if input.Move != nil {
		if err := rt.game.Apply(input.Move); err != nil {
			return nil, err
		}
	}
	session.Elapsed += input.Delta

	perf := rt.game.SkillPerformance()
	skillBonus := 0.5 + perf*1.5
	timeBonus := math.Max(0.5, 1-(session.Elapsed.Seconds()/session.TimeLimit.Seconds())*0.3)

	session.SkillBonus = skillBonus
	session.SuccessMultiplier = skillBonus * timeBonus * session.HarmonyScore
	session.SuccessChance = clamp01(session.BaseSuccessChance * session.SuccessMultiplier)
	session.MatchesFound, session.TargetsFound = rt.game.Progress()

	// One-time bonus: crossing the threshold again is a no-op
	if perf > skillBonusThreshold && !session.BonusUnlocked {
		session.BonusUnlocked = true
		session.OffspringCount++
		slog.Info("skill bonus unlocked",
			"session_id", session.ID,
			"skill_performance", perf,
			"offspring_count", session.OffspringCount,
		)
	}

	if !rt.game.Complete() && session.Elapsed < session.TimeLimit {
		if err := o.persist(ctx, session); err != nil {
			return nil, err
		}
		return &UpdateSessionOutput{Session: snapshot(session)}, nil
	}

	session.State = genetics.SessionStateCompleting
	result, err := o.finalize(ctx, rt, perf, timeBonus)
	if err != nil {
		return nil, err
	}

	return &UpdateSessionOutput{Session: snapshot(session), Result: result}, nil
}

// PauseSession suspends a playing session
func (o *orchestrator) PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error) {
	session, err := o.transition(ctx, input.SessionID,
		genetics.SessionStatePlaying, genetics.SessionStatePaused)
	if err != nil {
		return nil, err
	}
	return &PauseSessionOutput{Session: session}, nil
}

// ResumeSession returns a paused session to play
func (o *orchestrator) ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error) {
	session, err := o.transition(ctx, input.SessionID,
		genetics.SessionStatePaused, genetics.SessionStatePlaying)
	if err != nil {
		return nil, err
	}
	return &ResumeSessionOutput{Session: session}, nil
}

// CancelSession aborts a playing or paused session. The parent snapshots
// are released with the runtime.
func (o *orchestrator) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rt, err := o.liveSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	session := rt.session

	if session.State != genetics.SessionStatePlaying && session.State != genetics.SessionStatePaused {
		return nil, errors.FailedPreconditionf("session %s is %s and cannot be cancelled",
			session.ID, session.State)
	}

	session.State = genetics.SessionStateFailed
	session.Parent1 = genetics.VisualGeneticData{}
	session.Parent2 = genetics.VisualGeneticData{}
	delete(o.live, session.ID)

	if err := o.persist(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("breeding session cancelled", "session_id", session.ID)
	return &CancelSessionOutput{Session: snapshot(session)}, nil
}

// GetSession returns the current session state, live or stored
func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	if rt, ok := o.live[input.SessionID]; ok {
		session := snapshot(rt.session)
		o.mu.Unlock()
		return &GetSessionOutput{Session: session}, nil
	}
	o.mu.Unlock()

	getOut, err := o.sessionRepo.Get(ctx, breedingsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}
	return &GetSessionOutput{Session: getOut.Session}, nil
}

// SubmitRequest queues a breeding attempt for the worker
func (o *orchestrator) SubmitRequest(ctx context.Context, input *SubmitRequestInput) (*SubmitRequestOutput, error) {
	if input.Parent1ID == "" || input.Parent2ID == "" {
		return nil, errors.InvalidArgument("both parent IDs are required")
	}

	request := &genetics.BreedingRequest{
		ID:          o.idGen.Generate(),
		Parent1ID:   input.Parent1ID,
		Parent2ID:   input.Parent2ID,
		GameType:    input.GameType,
		Seed:        input.Seed,
		SubmittedAt: o.clock.Now(),
	}

	if _, err := o.queueRepo.Enqueue(ctx, breedingqueue.EnqueueInput{Request: request}); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue breeding request")
	}

	slog.Info("breeding request queued",
		"request_id", request.ID,
		"parent1_id", request.Parent1ID,
		"parent2_id", request.Parent2ID,
		"game_type", request.GameType,
	)

	return &SubmitRequestOutput{RequestID: request.ID}, nil
}

// PollResult fetches the finalized result for a queued request
func (o *orchestrator) PollResult(ctx context.Context, input *PollResultInput) (*PollResultOutput, error) {
	if input.RequestID == "" {
		return nil, errors.InvalidArgument("request ID is required")
	}

	getOut, err := o.queueRepo.GetResult(ctx, breedingqueue.GetResultInput{RequestID: input.RequestID})
	if err != nil {
		return nil, err
	}
	return &PollResultOutput{Result: getOut.Result}, nil
}

// ProcessNextRequest runs one worker pass: dequeue the oldest request, play
// its session to a terminal state with roller-sampled moves, and store the
// result. A request that cannot be played (missing parents, bad game type)
// still gets a failed result stored so pollers are never left hanging.
// Returns NotFound when the queue is empty.
func (o *orchestrator) ProcessNextRequest(ctx context.Context, input *ProcessNextRequestInput) (*ProcessNextRequestOutput, error) {
	dequeueOut, err := o.queueRepo.Dequeue(ctx, breedingqueue.DequeueInput{})
	if err != nil {
		return nil, err
	}
	request := dequeueOut.Request

	result, playErr := o.playRequest(ctx, request)
	if playErr != nil {
		slog.Warn("breeding request could not be played",
			"request_id", request.ID,
			"error", playErr,
		)
		result = &genetics.BreedingResult{
			RequestID:   request.ID,
			CompletedAt: o.clock.Now(),
		}
	}

	result.RequestID = request.ID
	if _, err := o.queueRepo.StoreResult(ctx, breedingqueue.StoreResultInput{Result: result}); err != nil {
		return nil, errors.Wrap(err, "failed to store breeding result")
	}

	slog.Info("breeding request processed",
		"request_id", request.ID,
		"session_id", result.SessionID,
		"success", result.Success,
		"offspring_count", result.OffspringCount,
	)

	return &ProcessNextRequestOutput{Result: result}, nil
}

func (o *orchestrator) playRequest(ctx context.Context, request *genetics.BreedingRequest) (*genetics.BreedingResult, error) {
	startOut, err := o.StartSession(ctx, &StartSessionInput{
		Parent1ID: request.Parent1ID,
		Parent2ID: request.Parent2ID,
		GameType:  request.GameType,
		Seed:      request.Seed,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start session for request %s", request.ID)
	}
	sessionID := startOut.Session.ID

	for i := 0; i < 2; i++ {
		if _, err := o.AdvanceSession(ctx, &AdvanceSessionInput{SessionID: sessionID}); err != nil {
			return nil, err
		}
	}

	var result *genetics.BreedingResult
	for result == nil {
		move, err := o.sampleMove(sessionID)
		if err != nil {
			return nil, err
		}

		updateOut, err := o.UpdateSession(ctx, &UpdateSessionInput{
			SessionID: sessionID,
			Delta:     workerTickStep,
			Move:      move,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to tick session %s", sessionID)
		}
		result = updateOut.Result
	}

	return result, nil
}

func (o *orchestrator) sampleMove(sessionID string) (Move, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rt, err := o.liveSession(sessionID)
	if err != nil {
		return nil, err
	}
	return rt.game.Sample(rt.roller)
}

// finalize rolls the modulated success chance and builds the result.
// Caller holds the runtime lock.
func (o *orchestrator) finalize(ctx context.Context, rt *runtime, perf, timeBonus float64) (*genetics.BreedingResult, error) {
	session := rt.session

	draw, err := rt.roller.Roll(10000)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll breeding outcome")
	}
	success := float64(draw-1)/10000 < session.SuccessChance

	if success {
		session.State = genetics.SessionStateCompleted
	} else {
		session.State = genetics.SessionStateFailed
	}

	perfect := success && perf >= perfectThreshold
	perfectionMultiplier := 1.0
	if perf >= perfectThreshold {
		perfectionMultiplier = 1.25
	}

	result := &genetics.BreedingResult{
		SessionID:  session.ID,
		Success:    success,
		FinalScore: int32(math.Round(perf * 1000)),

		SkillMultiplier:      session.SkillBonus,
		TimeMultiplier:       timeBonus,
		PerfectionMultiplier: perfectionMultiplier,

		BonusTraitsEarned:   session.BonusUnlocked,
		PerfectBreeding:     perfect,
		GeneticQualityBonus: o.engine.VisualAppeal(session.Predicted),

		CompletedAt: o.clock.Now(),
	}

	if success {
		result.OffspringCount = session.OffspringCount
		if err := o.generateOffspring(ctx, rt, result); err != nil {
			return nil, err
		}
	}

	experience := experienceByDifficulty[session.Difficulty]
	if success {
		experience *= 2
	}
	if perfect {
		experience += 50
	}
	result.ExperienceGained = experience
	result.LeveledUp = experience >= 200
	result.NewAbilityUnlocked = perfect && session.BonusUnlocked

	delete(o.live, session.ID)
	if err := o.persist(ctx, session); err != nil {
		return nil, err
	}

	slog.Info("breeding session finalized",
		"session_id", session.ID,
		"state", session.State,
		"success_chance", session.SuccessChance,
		"skill_performance", perf,
		"offspring_count", result.OffspringCount,
	)

	return result, nil
}

// generateOffspring samples each offspring phenotype and the blended
// personality with the session roller. Parents carrying full genomes go
// through genome breeding and projection; phenotype-only parents use the
// direct blend.
func (o *orchestrator) generateOffspring(ctx context.Context, rt *runtime, result *genetics.BreedingResult) error {
	session := rt.session

	fullGenomes := rt.parent1.Genome != nil && rt.parent2.Genome != nil
	for i := int32(0); i < result.OffspringCount; i++ {
		var phenotype genetics.VisualGeneticData

		if fullGenomes {
			bredOut, err := o.engine.BreedGenomes(ctx, &engine.BreedGenomesInput{
				GenomeA:     rt.parent1.Genome,
				GenomeB:     rt.parent2.Genome,
				OffspringID: o.idGen.Generate(),
				Roller:      rt.roller,
			})
			if err != nil {
				return errors.Wrap(err, "failed to breed genomes")
			}

			projOut, err := o.engine.ProjectPhenotype(ctx, &engine.ProjectPhenotypeInput{
				Genome: bredOut.Offspring,
			})
			if err != nil {
				return errors.Wrap(err, "failed to project offspring phenotype")
			}
			phenotype = projOut.Phenotype
		} else {
			computeOut, err := o.engine.ComputeOffspring(ctx, &engine.ComputeOffspringInput{
				Parent1: session.Parent1,
				Parent2: session.Parent2,
				Roller:  rt.roller,
			})
			if err != nil {
				return errors.Wrap(err, "failed to compute offspring phenotype")
			}
			phenotype = computeOut.Offspring
		}

		result.Offspring = append(result.Offspring, phenotype)
	}

	blendOut, err := o.engine.BlendPersonality(ctx, &engine.BlendPersonalityInput{
		Parent1: rt.parent1.Personality,
		Parent2: rt.parent2.Personality,
		Roller:  rt.roller,
	})
	if err != nil {
		return errors.Wrap(err, "failed to blend offspring personality")
	}
	result.OffspringPersonality = blendOut.Blended

	return nil
}

// transition applies a single-state move under the lock
func (o *orchestrator) transition(ctx context.Context, sessionID string, from, to genetics.SessionState) (*genetics.BreedingSession, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	rt, err := o.liveSession(sessionID)
	if err != nil {
		return nil, err
	}

	if rt.session.State != from {
		return nil, errors.FailedPreconditionf("session %s is %s, not %s",
			rt.session.ID, rt.session.State, from)
	}
	rt.session.State = to

	if err := o.persist(ctx, rt.session); err != nil {
		return nil, err
	}
	return snapshot(rt.session), nil
}

// liveSession looks up a runtime; caller holds the lock
func (o *orchestrator) liveSession(sessionID string) (*runtime, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	rt, ok := o.live[sessionID]
	if !ok {
		return nil, errors.NotFoundf("no live session %s", sessionID)
	}
	return rt, nil
}

func (o *orchestrator) persist(ctx context.Context, session *genetics.BreedingSession) error {
	updateOut, err := o.sessionRepo.Update(ctx, breedingsession.UpdateInput{Session: session})
	if err != nil {
		return errors.Wrap(err, "failed to store session")
	}
	session.UpdatedAt = updateOut.Session.UpdatedAt
	return nil
}

func snapshot(session *genetics.BreedingSession) *genetics.BreedingSession {
	copied := *session
	return &copied
}
