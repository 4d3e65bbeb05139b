package creatures

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/creature-api/internal/redis"
)

const errCreatureIDEmpty = "creature ID cannot be empty"

// creatureEntity wraps a record to implement core.Entity; storage keys are
// derived from the entity type and ID
type creatureEntity struct {
	*genetics.CreatureRecord
}

func (c *creatureEntity) GetID() string {
	return c.ID
}

func (c *creatureEntity) GetType() string {
	return "creature"
}

var _ core.Entity = (*creatureEntity)(nil)

// entityKey builds the storage key for any wrapped entity
func entityKey(e core.Entity) string {
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

// NewRedisRepository creates a new Redis repository for creature records
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

// Get retrieves a creature's genetic record by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CreatureID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	key := entityKey(&creatureEntity{&genetics.CreatureRecord{ID: input.CreatureID}})
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature %s not found", input.CreatureID)
		}
		return nil, errors.Wrap(err, "failed to get creature record from Redis")
	}

	var record genetics.CreatureRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal creature record")
	}

	return &GetOutput{Record: &record}, nil
}

// Put stores or replaces a creature's genetic record
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	record := *input.Record
	now := r.clock.Now().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal creature record")
	}

	key := entityKey(&creatureEntity{&record})
	if err := r.client.Set(ctx, key, recordJSON, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store creature record in Redis")
	}

	return &PutOutput{Record: &record}, nil
}

// Delete removes a creature's genetic record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CreatureID == "" {
		return nil, errors.InvalidArgument(errCreatureIDEmpty)
	}

	key := entityKey(&creatureEntity{&genetics.CreatureRecord{ID: input.CreatureID}})
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete creature record from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("creature %s not found", input.CreatureID)
	}

	return &DeleteOutput{}, nil
}
