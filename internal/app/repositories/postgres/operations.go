package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/airport/internal/app/models"
)

var flightColumns = []string{"id", "airplane_id", "pilot_id", "start_location_id", "destination_location_id", "occupied_seats", "created_at", "updated_at"}

func scanFlight(row scanner) (*models.Flight, error) {
	f := &models.Flight{}
	err := row.Scan(&f.ID, &f.AirplaneID, &f.PilotID, &f.StartLocationID, &f.DestinationLocationID, &f.OccupiedSeats, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func flightValues(flight *models.Flight) (map[string]any, error) {
	values := map[string]any{"occupied_seats": flight.OccupiedSeats}
	refs := map[string]models.ID{
		"airplane_id":             flight.AirplaneID,
		"pilot_id":                flight.PilotID,
		"start_location_id":       flight.StartLocationID,
		"destination_location_id": flight.DestinationLocationID,
	}
	for column, id := range refs {
		key, err := parseID(id)
		if err != nil {
			return nil, err
		}
		values[column] = key
	}
	return values, nil
}

// CreateFlight inserts a flight and returns its id
func (s *Store) CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error) {
	values, err := flightValues(flight)
	if err != nil {
		return "", err
	}
	return s.insert(ctx, s.sb.Insert("flight").SetMap(values), "create flight")
}

func (s *Store) ReadFlights(ctx context.Context) ([]*models.Flight, error) {
	q := s.sb.Select(flightColumns...).From("flight").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanFlight, "read flights")
}

func (s *Store) ReadFlightByID(ctx context.Context, id models.ID) (*models.Flight, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(flightColumns...).From("flight").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanFlight, "read flight by id")
}

func (s *Store) ReadFlightsByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.Flight, error) {
	key, err := parseID(airplaneID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(flightColumns...).From("flight").Where(squirrel.Eq{"airplane_id": key}).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanFlight, "read flights by airplane id")
}

func (s *Store) UpdateFlightByID(ctx context.Context, id models.ID, flight *models.Flight) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	values, err := flightValues(flight)
	if err != nil {
		return err
	}
	q := s.sb.Update("flight").SetMap(touch(values)).Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update flight")
}

func (s *Store) DeleteFlightByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("flight").Where(squirrel.Eq{"id": key}), "delete flight")
}

var locationColumns = []string{"id", "country_abbreviation", "country", "state", "city", "street", "number", "is_airport", "created_at", "updated_at"}

func scanLocation(row scanner) (*models.Location, error) {
	l := &models.Location{}
	err := row.Scan(&l.ID, &l.CountryAbbreviation, &l.Country, &l.State, &l.City, &l.Street, &l.Number, &l.IsAirport, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func locationValues(location *models.Location) map[string]any {
	return map[string]any{
		"country_abbreviation": location.CountryAbbreviation,
		"country":              location.Country,
		"state":                location.State,
		"city":                 location.City,
		"street":               location.Street,
		"number":               location.Number,
		"is_airport":           location.IsAirport,
	}
}

func (s *Store) CreateLocation(ctx context.Context, location *models.Location) (models.ID, error) {
	return s.insert(ctx, s.sb.Insert("location").SetMap(locationValues(location)), "create location")
}

func (s *Store) ReadLocations(ctx context.Context) ([]*models.Location, error) {
	q := s.sb.Select(locationColumns...).From("location").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanLocation, "read locations")
}

func (s *Store) ReadLocationByID(ctx context.Context, id models.ID) (*models.Location, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(locationColumns...).From("location").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanLocation, "read location by id")
}

// ReadNonAirportLocations returns the locations that are not airports
func (s *Store) ReadNonAirportLocations(ctx context.Context) ([]*models.Location, error) {
	q := s.sb.Select(locationColumns...).From("location").Where(squirrel.Eq{"is_airport": false}).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanLocation, "read non airport locations")
}

func (s *Store) UpdateLocationByID(ctx context.Context, id models.ID, location *models.Location) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	q := s.sb.Update("location").SetMap(touch(locationValues(location))).Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update location")
}

func (s *Store) DeleteLocationByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("location").Where(squirrel.Eq{"id": key}), "delete location")
}

var syndicateColumns = []string{"id", "name", "created_at", "updated_at"}

func scanSyndicate(row scanner) (*models.Syndicate, error) {
	sy := &models.Syndicate{}
	err := row.Scan(&sy.ID, &sy.Name, &sy.CreatedAt, &sy.UpdatedAt)
	return sy, err
}

func (s *Store) CreateSyndicate(ctx context.Context, syndicate *models.Syndicate) (models.ID, error) {
	q := s.sb.Insert("syndicate").Columns("name").Values(syndicate.Name)
	return s.insert(ctx, q, "create syndicate")
}

func (s *Store) ReadSyndicates(ctx context.Context) ([]*models.Syndicate, error) {
	q := s.sb.Select(syndicateColumns...).From("syndicate").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanSyndicate, "read syndicates")
}

func (s *Store) ReadSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(syndicateColumns...).From("syndicate").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanSyndicate, "read syndicate by id")
}

func (s *Store) UpdateSyndicateByID(ctx context.Context, id models.ID, syndicate *models.Syndicate) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	q := s.sb.Update("syndicate").
		SetMap(touch(map[string]any{"name": syndicate.Name})).
		Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update syndicate")
}

func (s *Store) DeleteSyndicateByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("syndicate").Where(squirrel.Eq{"id": key}), "delete syndicate")
}
