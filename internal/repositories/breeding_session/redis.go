package breedingsession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/creature-api/internal/redis"
)

const (
	// Abandoned sessions expire on their own; active ones refresh on update
	defaultTTL = 30 * time.Minute

	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

// sessionEntity wraps a session to implement core.Entity for key building
type sessionEntity struct {
	*genetics.BreedingSession
}

func (e *sessionEntity) GetID() string {
	return e.ID
}

func (e *sessionEntity) GetType() string {
	return "breeding_session"
}

var _ core.Entity = (*sessionEntity)(nil)

func sessionKey(e core.Entity) string {
	return fmt.Sprintf("%s:%s", e.GetType(), e.GetID())
}

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for session snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new session snapshot with a TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := *input.Session
	now := r.clock.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	sessionJSON, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	key := sessionKey(&sessionEntity{&session})
	ok, err := r.client.SetNX(ctx, key, sessionJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExists(fmt.Sprintf("session %s already exists", session.ID))
	}

	return &CreateOutput{Session: &session}, nil
}

// Get retrieves a session snapshot by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKey(&sessionEntity{&genetics.BreedingSession{ID: input.SessionID}})
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", input.SessionID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session genetics.BreedingSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

// Update replaces an existing session snapshot, refreshing its TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	session := *input.Session
	session.UpdatedAt = r.clock.Now()

	sessionJSON, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	key := sessionKey(&sessionEntity{&session})
	ok, err := r.client.SetXX(ctx, key, sessionJSON, defaultTTL).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session in Redis")
	}
	if !ok {
		return nil, errors.NotFoundf("session %s not found", session.ID)
	}

	return &UpdateOutput{Session: &session}, nil
}

// Delete removes a session snapshot
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKey(&sessionEntity{&genetics.BreedingSession{ID: input.SessionID}})
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{}, nil
}
