package services

import (
	"context"
	"fmt"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// AirplaneService defines the operations on airplanes
type AirplaneService interface {
	GetAirplanes(ctx context.Context) ([]*models.Airplane, error)
	GetAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error)
	CreateAirplane(ctx context.Context, modelID models.ID) (models.ID, error)
	UpdateAirplane(ctx context.Context, id, modelID models.ID) error
	DeleteAirplane(ctx context.Context, id models.ID) error
	GetAirplaneFlightsAndTests(ctx context.Context, id models.ID) (*models.AirplaneFlightAndTests, error)
}

type airplaneServiceImpl struct {
	store repositories.Store
}

// NewAirplaneService creates a new airplane service instance
func NewAirplaneService(store repositories.Store) AirplaneService {
	return &airplaneServiceImpl{store: store}
}

func (s *airplaneServiceImpl) GetAirplanes(ctx context.Context) ([]*models.Airplane, error) {
	return s.store.ReadAirplanes(ctx)
}

func (s *airplaneServiceImpl) GetAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error) {
	airplane, err := s.store.ReadAirplaneByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrAirplaneNotFound)
	}
	return airplane, nil
}

// CreateAirplane adds an airplane of an existing model
func (s *airplaneServiceImpl) CreateAirplane(ctx context.Context, modelID models.ID) (models.ID, error) {
	if _, err := s.store.ReadAirplaneModelByID(ctx, modelID); err != nil {
		return "", lookup(err, ErrAirplaneModelNotFound)
	}

	id, err := s.store.CreateAirplane(ctx, &models.Airplane{ModelID: modelID})
	if err != nil {
		return "", fmt.Errorf("error creating airplane: %w", err)
	}
	logger.Info().Str("id", id.String()).Str("model_id", modelID.String()).Msg("Airplane created")
	return id, nil
}

// UpdateAirplane moves an airplane to another existing model
func (s *airplaneServiceImpl) UpdateAirplane(ctx context.Context, id, modelID models.ID) error {
	if _, err := s.store.ReadAirplaneByID(ctx, id); err != nil {
		return lookup(err, ErrAirplaneNotFound)
	}
	if _, err := s.store.ReadAirplaneModelByID(ctx, modelID); err != nil {
		return lookup(err, ErrAirplaneModelNotFound)
	}
	if err := s.store.UpdateAirplaneByID(ctx, id, modelID); err != nil {
		return fmt.Errorf("error updating airplane: %w", err)
	}
	return nil
}

func (s *airplaneServiceImpl) DeleteAirplane(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadAirplaneByID(ctx, id); err != nil {
		return lookup(err, ErrAirplaneNotFound)
	}
	if err := s.store.DeleteAirplaneByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting airplane: %w", err)
	}
	return nil
}

// GetAirplaneFlightsAndTests lists the flights and tests of an airplane
func (s *airplaneServiceImpl) GetAirplaneFlightsAndTests(ctx context.Context, id models.ID) (*models.AirplaneFlightAndTests, error) {
	const aggregate = "airplane flights and tests"

	airplane, err := s.store.ReadAirplaneByID(ctx, id)
	if err != nil {
		return nil, aggregateError(err, ErrAirplaneNotFound, aggregate)
	}

	var (
		flights []*models.Flight
		tests   []*models.TestMade
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = s.store.ReadFlightsByAirplaneID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		tests, err = s.store.ReadTestsMadeByAirplaneID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, aggregateError(err, ErrAirplaneNotFound, aggregate)
	}

	return &models.AirplaneFlightAndTests{
		AirplaneID: airplane.ID,
		ModelID:    airplane.ModelID,
		FlightIDs:  models.IDs(flights, func(f *models.Flight) models.ID { return f.ID }),
		TestIDs:    models.IDs(tests, func(t *models.TestMade) models.ID { return t.ID }),
	}, nil
}
