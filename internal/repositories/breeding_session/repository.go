// Package breedingsession provides the repository interface and types for
// breeding session snapshots
package breedingsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=breedingsessionmock github.com/KirkDiggler/creature-api/internal/repositories/breeding_session Repository

// CreateInput contains parameters for storing a new session snapshot
type CreateInput struct {
	Session *genetics.BreedingSession

	// TTL bounds how long an abandoned session lingers; zero uses the default
	TTL time.Duration
}

// CreateOutput contains the result of storing a session snapshot
type CreateOutput struct {
	Session *genetics.BreedingSession
}

// GetInput contains parameters for retrieving a session snapshot
type GetInput struct {
	SessionID string
}

// GetOutput contains the result of retrieving a session snapshot
type GetOutput struct {
	Session *genetics.BreedingSession
}

// UpdateInput contains parameters for replacing a session snapshot
type UpdateInput struct {
	Session *genetics.BreedingSession
}

// UpdateOutput contains the result of replacing a session snapshot
type UpdateOutput struct {
	Session *genetics.BreedingSession
}

// DeleteInput contains parameters for deleting a session snapshot
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the result of deleting a session snapshot
type DeleteOutput struct{}

// Repository defines the interface for breeding session snapshot storage.
// The live session (mini-game state, roller) is owned by the orchestrator;
// the repository holds the observable snapshot.
type Repository interface {
	// Create stores a new session snapshot with a TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session snapshot by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session snapshot, refreshing its TTL
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session snapshot
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
