package breedingqueue

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
	"github.com/KirkDiggler/creature-api/internal/errors"
	redisclient "github.com/KirkDiggler/creature-api/internal/redis"
)

const (
	requestQueueKey = "breeding:requests"
	resultKeyPrefix = "breeding:result:"

	// Results stick around long enough for slow pollers
	defaultResultTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed request queue
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func resultKey(requestID string) string {
	return resultKeyPrefix + requestID
}

// Enqueue pushes a request onto the tail of the queue
func (r *redisRepository) Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error) {
	if input.Request == nil {
		return nil, errors.InvalidArgument("request cannot be nil")
	}
	if input.Request.ID == "" {
		return nil, errors.InvalidArgument("request ID cannot be empty")
	}

	requestJSON, err := json.Marshal(input.Request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	if err := r.client.LPush(ctx, requestQueueKey, requestJSON).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue request")
	}

	return &EnqueueOutput{}, nil
}

// Dequeue pops the oldest request. Returns NotFound when the queue is empty.
func (r *redisRepository) Dequeue(ctx context.Context, input DequeueInput) (*DequeueOutput, error) {
	requestJSON, err := r.client.RPop(ctx, requestQueueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no breeding requests queued")
		}
		return nil, errors.Wrap(err, "failed to dequeue request")
	}

	var request genetics.BreedingRequest
	if err := json.Unmarshal([]byte(requestJSON), &request); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal request")
	}

	return &DequeueOutput{Request: &request}, nil
}

// StoreResult records a finished result keyed by the originating request
func (r *redisRepository) StoreResult(ctx context.Context, input StoreResultInput) (*StoreResultOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument("result cannot be nil")
	}
	if input.Result.RequestID == "" {
		return nil, errors.InvalidArgument("result request ID cannot be empty")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultResultTTL
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal result")
	}

	if err := r.client.Set(ctx, resultKey(input.Result.RequestID), resultJSON, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store result")
	}

	return &StoreResultOutput{}, nil
}

// GetResult fetches the result for a request, if it has finished
func (r *redisRepository) GetResult(ctx context.Context, input GetResultInput) (*GetResultOutput, error) {
	if input.RequestID == "" {
		return nil, errors.InvalidArgument("request ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKey(input.RequestID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no result for request %s", input.RequestID)
		}
		return nil, errors.Wrap(err, "failed to get result")
	}

	var result genetics.BreedingResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal result")
	}

	return &GetResultOutput{Result: &result}, nil
}
