// Package creatures provides the repository interface and types for
// creature genetic records
package creatures

import (
	"context"

	"github.com/KirkDiggler/creature-api/internal/entities/genetics"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturesmock github.com/KirkDiggler/creature-api/internal/repositories/creatures Repository

// GetInput contains parameters for retrieving a creature record
type GetInput struct {
	CreatureID string
}

// GetOutput contains the result of retrieving a creature record
type GetOutput struct {
	Record *genetics.CreatureRecord
}

// PutInput contains parameters for storing a creature record
type PutInput struct {
	Record *genetics.CreatureRecord
}

// PutOutput contains the result of storing a creature record
type PutOutput struct {
	Record *genetics.CreatureRecord
}

// DeleteInput contains parameters for deleting a creature record
type DeleteInput struct {
	CreatureID string
}

// DeleteOutput contains the result of deleting a creature record
type DeleteOutput struct{}

// Repository defines the interface for creature genetic record storage
type Repository interface {
	// Get retrieves a creature's genetic record by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores or replaces a creature's genetic record
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes a creature's genetic record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
