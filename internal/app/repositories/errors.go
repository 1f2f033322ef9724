package repositories

import (
	"fmt"

	"github.com/yigit/airport/internal/pkg/apperrors"
)

// Shared storage errors. Every backend returns these so callers can match
// with errors.Is regardless of the engine in use.
var (
	// ErrNotFound is returned by single-record reads when nothing matches.
	ErrNotFound = fmt.Errorf("record not found: %w", apperrors.ErrResourceNotFound)
	// ErrInvalidID is returned when an identifier cannot be parsed by the backend.
	ErrInvalidID = fmt.Errorf("invalid identifier: %w", apperrors.ErrValidationFailed)
	// ErrAlreadyExists is returned when a write violates a unique constraint.
	ErrAlreadyExists = fmt.Errorf("record already exists: %w", apperrors.ErrConflict)
	// ErrReferenceViolation is returned by engines that enforce foreign keys
	// when a write points at a missing record or a delete would orphan others.
	ErrReferenceViolation = fmt.Errorf("reference constraint violated: %w", apperrors.ErrConflict)
)
