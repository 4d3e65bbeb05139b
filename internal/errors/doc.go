// Package errors provides structured error handling for the creature-api project.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("creature not found")
//	err := errors.InvalidArgumentf("invalid expression strength: %v", strength)
//
// Adding metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("creature_id", creatureID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get genetic record")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	if errors.IsFailedPrecondition(err) {
//	    // Session was not in a state that allows the operation
//	}
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("species_id", input.SpeciesID, vb)
//	errors.ValidateUnitInterval("fitness", input.Fitness, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Code Semantics
//
// The breeding engine maps its failure taxonomy onto codes as follows:
// malformed genetic data is CodeInvalidArgument and is rejected at
// construction time, unresolved parent creatures are CodeNotFound, illegal
// session transitions (advancing a session that is not playing, pausing one
// that never started) are CodeFailedPrecondition. Missing tuning
// configuration is deliberately NOT an error: callers degrade to defaults
// and log a warning instead of aborting an in-progress session.
package errors
