package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
)

// ReferenceService defines the operations on locations and syndicates
type ReferenceService interface {
	GetLocations(ctx context.Context) ([]*models.Location, error)
	GetNonAirportLocations(ctx context.Context) ([]*models.Location, error)
	GetLocationByID(ctx context.Context, id models.ID) (*models.Location, error)
	CreateLocation(ctx context.Context, location *models.Location) (models.ID, error)
	UpdateLocation(ctx context.Context, id models.ID, location *models.Location) error
	DeleteLocation(ctx context.Context, id models.ID) error

	GetSyndicates(ctx context.Context) ([]*models.Syndicate, error)
	GetSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error)
	CreateSyndicate(ctx context.Context, name string) (models.ID, error)
	UpdateSyndicate(ctx context.Context, id models.ID, name string) error
	DeleteSyndicate(ctx context.Context, id models.ID) error
}

type referenceServiceImpl struct {
	store repositories.Store
}

// NewReferenceService creates a new reference data service instance
func NewReferenceService(store repositories.Store) ReferenceService {
	return &referenceServiceImpl{store: store}
}

// Locations

func (s *referenceServiceImpl) GetLocations(ctx context.Context) ([]*models.Location, error) {
	return s.store.ReadLocations(ctx)
}

func (s *referenceServiceImpl) GetNonAirportLocations(ctx context.Context) ([]*models.Location, error) {
	return s.store.ReadNonAirportLocations(ctx)
}

func (s *referenceServiceImpl) GetLocationByID(ctx context.Context, id models.ID) (*models.Location, error) {
	location, err := s.store.ReadLocationByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrLocationNotFound)
	}
	return location, nil
}

func validateLocation(location *models.Location) error {
	location.CountryAbbreviation = strings.ToUpper(strings.TrimSpace(location.CountryAbbreviation))
	if location.CountryAbbreviation == "" || len(location.CountryAbbreviation) > 3 {
		return fmt.Errorf("%w: country_abbreviation must have 1 to 3 characters", apperrors.ErrValidationFailed)
	}
	if location.Number < 0 {
		return fmt.Errorf("%w: number must not be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *referenceServiceImpl) CreateLocation(ctx context.Context, location *models.Location) (models.ID, error) {
	if err := validateLocation(location); err != nil {
		return "", err
	}
	id, err := s.store.CreateLocation(ctx, location)
	if err != nil {
		return "", fmt.Errorf("error creating location: %w", err)
	}
	return id, nil
}

func (s *referenceServiceImpl) UpdateLocation(ctx context.Context, id models.ID, location *models.Location) error {
	if err := validateLocation(location); err != nil {
		return err
	}
	if _, err := s.store.ReadLocationByID(ctx, id); err != nil {
		return lookup(err, ErrLocationNotFound)
	}
	if err := s.store.UpdateLocationByID(ctx, id, location); err != nil {
		return fmt.Errorf("error updating location: %w", err)
	}
	return nil
}

func (s *referenceServiceImpl) DeleteLocation(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadLocationByID(ctx, id); err != nil {
		return lookup(err, ErrLocationNotFound)
	}
	if err := s.store.DeleteLocationByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}
	return nil
}

// Syndicates

func (s *referenceServiceImpl) GetSyndicates(ctx context.Context) ([]*models.Syndicate, error) {
	return s.store.ReadSyndicates(ctx)
}

func (s *referenceServiceImpl) GetSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error) {
	syndicate, err := s.store.ReadSyndicateByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrSyndicateNotFound)
	}
	return syndicate, nil
}

func (s *referenceServiceImpl) CreateSyndicate(ctx context.Context, name string) (models.ID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	id, err := s.store.CreateSyndicate(ctx, &models.Syndicate{Name: name})
	if err != nil {
		return "", fmt.Errorf("error creating syndicate: %w", err)
	}
	return id, nil
}

func (s *referenceServiceImpl) UpdateSyndicate(ctx context.Context, id models.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, err := s.store.ReadSyndicateByID(ctx, id); err != nil {
		return lookup(err, ErrSyndicateNotFound)
	}
	if err := s.store.UpdateSyndicateByID(ctx, id, &models.Syndicate{Name: name}); err != nil {
		return fmt.Errorf("error updating syndicate: %w", err)
	}
	return nil
}

func (s *referenceServiceImpl) DeleteSyndicate(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadSyndicateByID(ctx, id); err != nil {
		return lookup(err, ErrSyndicateNotFound)
	}
	if err := s.store.DeleteSyndicateByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting syndicate: %w", err)
	}
	return nil
}
