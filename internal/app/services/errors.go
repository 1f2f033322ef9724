package services

import (
	"errors"
	"fmt"

	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/logger"
)

// Not found errors returned by the services
var (
	ErrAirplaneModelNotFound = apperrors.NewResourceNotFoundError("airplane model not found")
	ErrAirplaneNotFound      = apperrors.NewResourceNotFoundError("airplane not found")
	ErrEmployeeNotFound      = apperrors.NewResourceNotFoundError("employee not found")
	ErrTechnicianNotFound    = apperrors.NewResourceNotFoundError("technician not found")
	ErrTechnicianProNotFound = apperrors.NewResourceNotFoundError("technician proficiency not found")
	ErrTestMadeNotFound      = apperrors.NewResourceNotFoundError("test made not found")
	ErrIntegrityTestNotFound = apperrors.NewResourceNotFoundError("integrity test not found")
	ErrFlightNotFound        = apperrors.NewResourceNotFoundError("flight not found")
	ErrLocationNotFound      = apperrors.NewResourceNotFoundError("location not found")
	ErrSyndicateNotFound     = apperrors.NewResourceNotFoundError("syndicate not found")
)

// Conflict errors returned by the services
var (
	ErrAlreadyTechnician     = apperrors.NewConflictError("employee is already a technician")
	ErrTechnicianProExists   = apperrors.NewConflictError("technician is already certified on this model")
	ErrAirplaneModelConflict = apperrors.NewConflictError("airplane model code or image is already taken")
	ErrAirplaneModelInUse    = apperrors.NewConflictError("airplane model still has certified technicians")
)

// Validation errors returned by the services
var (
	ErrAirplaneModelImageRequired = apperrors.NewValidationError("image_path file is required")
	ErrTestMadeDates              = apperrors.NewValidationError("finish_date must not be before start_date")
	ErrTestMadeScore              = apperrors.NewValidationError("score must not be negative")
)

// ErrTechnicianProFilter is returned when a proficiency listing names neither side
var ErrTechnicianProFilter = apperrors.NewBadRequestError("technician_id or model_id is required")

// DuplicateModelError reports which unique fields of an airplane model are
// already used by another model
type DuplicateModelError struct {
	Code      bool
	ImagePath bool
}

func (e *DuplicateModelError) Error() string {
	switch {
	case e.Code && e.ImagePath:
		return "airplane model code and image are already taken"
	case e.Code:
		return "airplane model code is already taken"
	default:
		return "airplane model image is already taken"
	}
}

// Unwrap lets callers match the error as a conflict
func (e *DuplicateModelError) Unwrap() error {
	return apperrors.ErrResourceAlreadyExists
}

// lookup maps a storage miss to the service's own not found error
func lookup(err, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}

// aggregateError resolves a failed composed read. Invalid identifiers keep
// their meaning; misses and storage failures are reported as not found, the
// latter after being logged.
func aggregateError(err, notFound error, aggregate string) error {
	switch {
	case errors.Is(err, repositories.ErrInvalidID):
		return err
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		return notFound
	default:
		logger.Error().Err(err).Str("aggregate", aggregate).Msg("Aggregate read failed")
		return fmt.Errorf("%w: %s unavailable", notFound, aggregate)
	}
}

// deref copies records out of pointer slices for aggregate payloads
func deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}
