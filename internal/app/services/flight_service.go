package services

import (
	"context"
	"fmt"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// FlightService defines the operations on flights
type FlightService interface {
	GetFlights(ctx context.Context) ([]*models.Flight, error)
	GetFlightByID(ctx context.Context, id models.ID) (*models.Flight, error)
	CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error)
	UpdateFlight(ctx context.Context, id models.ID, flight *models.Flight) error
	DeleteFlight(ctx context.Context, id models.ID) error
	GetCompleteFlight(ctx context.Context, id models.ID) (*models.CompleteFlight, error)
}

type flightServiceImpl struct {
	store repositories.Store
}

// NewFlightService creates a new flight service instance
func NewFlightService(store repositories.Store) FlightService {
	return &flightServiceImpl{store: store}
}

func (s *flightServiceImpl) GetFlights(ctx context.Context) ([]*models.Flight, error) {
	return s.store.ReadFlights(ctx)
}

func (s *flightServiceImpl) GetFlightByID(ctx context.Context, id models.ID) (*models.Flight, error) {
	flight, err := s.store.ReadFlightByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrFlightNotFound)
	}
	return flight, nil
}

// validateFlight checks the seats and every referenced record
func (s *flightServiceImpl) validateFlight(ctx context.Context, flight *models.Flight) error {
	if flight.OccupiedSeats < 0 {
		return fmt.Errorf("%w: occupied_seats must not be negative", apperrors.ErrValidationFailed)
	}
	if _, err := s.store.ReadAirplaneByID(ctx, flight.AirplaneID); err != nil {
		return lookup(err, ErrAirplaneNotFound)
	}
	if _, err := s.store.ReadEmployeeByID(ctx, flight.PilotID); err != nil {
		return lookup(err, ErrEmployeeNotFound)
	}
	for _, locationID := range []models.ID{flight.StartLocationID, flight.DestinationLocationID} {
		if _, err := s.store.ReadLocationByID(ctx, locationID); err != nil {
			return lookup(err, ErrLocationNotFound)
		}
	}
	return nil
}

func (s *flightServiceImpl) CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error) {
	if err := s.validateFlight(ctx, flight); err != nil {
		return "", err
	}
	id, err := s.store.CreateFlight(ctx, flight)
	if err != nil {
		return "", fmt.Errorf("error creating flight: %w", err)
	}
	logger.Info().Str("id", id.String()).Str("airplane_id", flight.AirplaneID.String()).Msg("Flight created")
	return id, nil
}

func (s *flightServiceImpl) UpdateFlight(ctx context.Context, id models.ID, flight *models.Flight) error {
	if _, err := s.store.ReadFlightByID(ctx, id); err != nil {
		return lookup(err, ErrFlightNotFound)
	}
	if err := s.validateFlight(ctx, flight); err != nil {
		return err
	}
	if err := s.store.UpdateFlightByID(ctx, id, flight); err != nil {
		return fmt.Errorf("error updating flight: %w", err)
	}
	return nil
}

func (s *flightServiceImpl) DeleteFlight(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadFlightByID(ctx, id); err != nil {
		return lookup(err, ErrFlightNotFound)
	}
	if err := s.store.DeleteFlightByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting flight: %w", err)
	}
	return nil
}

// GetCompleteFlight resolves both locations and the capacity of the airplane's model
func (s *flightServiceImpl) GetCompleteFlight(ctx context.Context, id models.ID) (*models.CompleteFlight, error) {
	const aggregate = "complete flight"

	flight, err := s.store.ReadFlightByID(ctx, id)
	if err != nil {
		return nil, aggregateError(err, ErrFlightNotFound, aggregate)
	}

	var (
		start, destination *models.Location
		capacity           int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		start, err = s.store.ReadLocationByID(gctx, flight.StartLocationID)
		return err
	})
	g.Go(func() error {
		var err error
		destination, err = s.store.ReadLocationByID(gctx, flight.DestinationLocationID)
		return err
	})
	g.Go(func() error {
		airplane, err := s.store.ReadAirplaneByID(gctx, flight.AirplaneID)
		if err != nil {
			return err
		}
		model, err := s.store.ReadAirplaneModelByID(gctx, airplane.ModelID)
		if err != nil {
			return err
		}
		capacity = model.Capacity
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, aggregateError(err, ErrFlightNotFound, aggregate)
	}

	return &models.CompleteFlight{
		Flight:                *flight,
		StartLocation:         *start,
		DestinationLocation:   *destination,
		AirplaneModelCapacity: capacity,
	}, nil
}
