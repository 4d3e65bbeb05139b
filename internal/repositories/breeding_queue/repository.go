// Package breedingqueue provides the queue of submitted breeding requests
// and the store of finished breeding results.
package breedingqueue

//go:generate mockgen -destination=mock/mock_repository.go -package=breedingqueuemock github.com/KirkDiggler/creature-api/internal/repositories/breeding_queue Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

// EnqueueInput holds the request to queue
type EnqueueInput struct {
	Request *genetics.BreedingRequest
}

// EnqueueOutput is empty; reserved for queue position metadata
type EnqueueOutput struct{}

// DequeueInput is empty; the queue is FIFO
type DequeueInput struct{}

// DequeueOutput holds the oldest queued request
type DequeueOutput struct {
	Request *genetics.BreedingRequest
}

// StoreResultInput holds a finished result. TTL of zero uses the
// repository default.
type StoreResultInput struct {
	Result *genetics.BreedingResult
	TTL    time.Duration
}

// StoreResultOutput is empty for now
type StoreResultOutput struct{}

// GetResultInput identifies a result by the originating request
type GetResultInput struct {
	RequestID string
}

// GetResultOutput holds the stored result
type GetResultOutput struct {
	Result *genetics.BreedingResult
}

// Repository queues breeding requests for the worker and stores their
// results for callers to poll. Dequeue and GetResult return NotFound
// when nothing is waiting.
type Repository interface {
	Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error)
	Dequeue(ctx context.Context, input DequeueInput) (*DequeueOutput, error)
	StoreResult(ctx context.Context, input StoreResultInput) (*StoreResultOutput, error)
	GetResult(ctx context.Context, input GetResultInput) (*GetResultOutput, error)
}
