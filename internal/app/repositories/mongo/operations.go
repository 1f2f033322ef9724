package mongo

import (
	"context"

	"github.com/yigit/airport/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
)

func flightRefs(flight *models.Flight) error {
	return checkIDs(flight.AirplaneID, flight.PilotID, flight.StartLocationID, flight.DestinationLocationID)
}

// CreateFlight inserts a flight and returns its id
func (s *Store) CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error) {
	if err := flightRefs(flight); err != nil {
		return "", err
	}
	record := *flight
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityFlight, record.ID, record, "create flight")
}

func (s *Store) ReadFlights(ctx context.Context) ([]*models.Flight, error) {
	return findMany[models.Flight](ctx, s.collection(models.EntityFlight), bson.M{}, nil, "read flights")
}

func (s *Store) ReadFlightByID(ctx context.Context, id models.ID) (*models.Flight, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Flight](ctx, s.collection(models.EntityFlight), bson.M{"_id": oid}, "read flight by id")
}

func (s *Store) ReadFlightsByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.Flight, error) {
	oid, err := objectID(airplaneID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Flight](ctx, s.collection(models.EntityFlight), bson.M{"airplane_id": oid}, nil, "read flights by airplane id")
}

func (s *Store) UpdateFlightByID(ctx context.Context, id models.ID, flight *models.Flight) error {
	if err := flightRefs(flight); err != nil {
		return err
	}
	return s.updateByID(ctx, models.EntityFlight, id, bson.M{
		"airplane_id":             flight.AirplaneID,
		"pilot_id":                flight.PilotID,
		"start_location_id":       flight.StartLocationID,
		"destination_location_id": flight.DestinationLocationID,
		"occupied_seats":          flight.OccupiedSeats,
	}, "update flight")
}

func (s *Store) DeleteFlightByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityFlight, id, "delete flight")
}

func (s *Store) CreateLocation(ctx context.Context, location *models.Location) (models.ID, error) {
	record := *location
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityLocation, record.ID, record, "create location")
}

func (s *Store) ReadLocations(ctx context.Context) ([]*models.Location, error) {
	return findMany[models.Location](ctx, s.collection(models.EntityLocation), bson.M{}, nil, "read locations")
}

func (s *Store) ReadLocationByID(ctx context.Context, id models.ID) (*models.Location, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Location](ctx, s.collection(models.EntityLocation), bson.M{"_id": oid}, "read location by id")
}

// ReadNonAirportLocations returns the locations that are not airports
func (s *Store) ReadNonAirportLocations(ctx context.Context) ([]*models.Location, error) {
	return findMany[models.Location](ctx, s.collection(models.EntityLocation), bson.M{"is_airport": false}, nil, "read non airport locations")
}

func (s *Store) UpdateLocationByID(ctx context.Context, id models.ID, location *models.Location) error {
	return s.updateByID(ctx, models.EntityLocation, id, bson.M{
		"country_abbreviation": location.CountryAbbreviation,
		"country":              location.Country,
		"state":                location.State,
		"city":                 location.City,
		"street":               location.Street,
		"number":               location.Number,
		"is_airport":           location.IsAirport,
	}, "update location")
}

func (s *Store) DeleteLocationByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityLocation, id, "delete location")
}

func (s *Store) CreateSyndicate(ctx context.Context, syndicate *models.Syndicate) (models.ID, error) {
	record := *syndicate
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntitySyndicate, record.ID, record, "create syndicate")
}

func (s *Store) ReadSyndicates(ctx context.Context) ([]*models.Syndicate, error) {
	return findMany[models.Syndicate](ctx, s.collection(models.EntitySyndicate), bson.M{}, nil, "read syndicates")
}

func (s *Store) ReadSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Syndicate](ctx, s.collection(models.EntitySyndicate), bson.M{"_id": oid}, "read syndicate by id")
}

func (s *Store) UpdateSyndicateByID(ctx context.Context, id models.ID, syndicate *models.Syndicate) error {
	return s.updateByID(ctx, models.EntitySyndicate, id, bson.M{"name": syndicate.Name}, "update syndicate")
}

func (s *Store) DeleteSyndicateByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntitySyndicate, id, "delete syndicate")
}
