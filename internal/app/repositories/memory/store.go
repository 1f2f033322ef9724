// Package memory is an in-process implementation of repositories.Store.
// It is used for local runs without a database and as the reference backend
// of the storage conformance suite.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/logger"
)

// Store keeps every entity in maps guarded by a single RWMutex
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	airplaneModels *table[models.AirplaneModel]
	airplanes      *table[models.Airplane]
	employees      *table[models.Employee]
	technicians    *table[models.Technician]
	technicianPros *table[models.TechnicianProAtModel]
	testsMade      *table[models.TestMade]
	integrityTests *table[models.IntegrityTest]
	flights        *table[models.Flight]
	locations      *table[models.Location]
	syndicates     *table[models.Syndicate]
}

var _ repositories.Store = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	logger.Info().Msg("Using in-memory storage backend, data will not survive a restart")
	return &Store{
		now:            time.Now,
		airplaneModels: newTable[models.AirplaneModel](),
		airplanes:      newTable[models.Airplane](),
		employees:      newTable[models.Employee](),
		technicians:    newTable[models.Technician](),
		technicianPros: newTable[models.TechnicianProAtModel](),
		testsMade:      newTable[models.TestMade](),
		integrityTests: newTable[models.IntegrityTest](),
		flights:        newTable[models.Flight](),
		locations:      newTable[models.Location](),
		syndicates:     newTable[models.Syndicate](),
	}
}

func newID() models.ID {
	return models.ID(uuid.NewString())
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close(ctx context.Context) error {
	return nil
}

// Airplane models

func (s *Store) CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, codeTaken := s.airplaneModels.first(func(m *models.AirplaneModel) bool { return m.Code == model.Code })
	_, imageTaken := s.airplaneModels.first(func(m *models.AirplaneModel) bool { return m.ImagePath == model.ImagePath })
	if codeTaken || imageTaken {
		return "", repositories.ErrAlreadyExists
	}

	record := *model
	record.ID = newID()
	record.Touch(s.now())
	s.airplaneModels.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.airplaneModels.find(nil)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return all, nil
}

func (s *Store) ReadAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.airplaneModels.get(id); ok {
		return m, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadAirplaneModelByCode(ctx context.Context, code string) (*models.AirplaneModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.airplaneModels.first(func(m *models.AirplaneModel) bool { return m.Code == code }); ok {
		return m, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadAirplaneModelByImagePath(ctx context.Context, imagePath string) (*models.AirplaneModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.airplaneModels.first(func(m *models.AirplaneModel) bool { return m.ImagePath == imagePath }); ok {
		return m, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) CheckAirplaneModelDuplicate(ctx context.Context, code, imagePath string) ([]*models.AirplaneModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.airplaneModels.find(func(m *models.AirplaneModel) bool {
		return (code != "" && m.Code == code) || (imagePath != "" && m.ImagePath == imagePath)
	}), nil
}

func (s *Store) UpdateAirplaneModelByID(ctx context.Context, id models.ID, update models.AirplaneModelUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.airplaneModels.first(func(m *models.AirplaneModel) bool {
		return m.ID != id && m.ImagePath == update.ImagePath
	}); taken {
		return repositories.ErrAlreadyExists
	}

	s.airplaneModels.update(id, func(m *models.AirplaneModel) {
		m.Capacity = update.Capacity
		m.Weight = update.Weight
		m.ImagePath = update.ImagePath
		m.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteAirplaneModelByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplaneModels.delete(id)
	return nil
}

func (s *Store) DeleteAirplaneModelByCode(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplaneModels.deleteWhere(func(m *models.AirplaneModel) bool { return m.Code == code })
	return nil
}

// Airplanes

func (s *Store) CreateAirplane(ctx context.Context, airplane *models.Airplane) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *airplane
	record.ID = newID()
	record.Touch(s.now())
	s.airplanes.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadAirplanes(ctx context.Context) ([]*models.Airplane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.airplanes.find(nil), nil
}

func (s *Store) ReadAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.airplanes.get(id); ok {
		return a, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadAirplanesByModelID(ctx context.Context, modelID models.ID) ([]*models.Airplane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.airplanes.find(func(a *models.Airplane) bool { return a.ModelID == modelID }), nil
}

func (s *Store) UpdateAirplaneByID(ctx context.Context, id, modelID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplanes.update(id, func(a *models.Airplane) {
		a.ModelID = modelID
		a.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) UpdateAirplanesByModelID(ctx context.Context, oldModelID, newModelID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplanes.updateWhere(func(a *models.Airplane) bool { return a.ModelID == oldModelID }, func(a *models.Airplane) {
		a.ModelID = newModelID
		a.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteAirplaneByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplanes.delete(id)
	return nil
}

func (s *Store) DeleteAirplanesByModelID(ctx context.Context, modelID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.airplanes.deleteWhere(func(a *models.Airplane) bool { return a.ModelID == modelID })
	return nil
}

// Employees

func (s *Store) CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *employee
	record.ID = newID()
	record.Touch(s.now())
	s.employees.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadEmployees(ctx context.Context) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.employees.find(nil), nil
}

func (s *Store) ReadEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.employees.get(id); ok {
		return e, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) UpdateEmployeeByID(ctx context.Context, id models.ID, employee *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees.update(id, func(e *models.Employee) {
		e.Name = employee.Name
		e.HouseLocationID = employee.HouseLocationID
		e.PhoneNumber = employee.PhoneNumber
		e.Salary = employee.Salary
		e.SyndicateID = employee.SyndicateID
		e.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteEmployeeByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.employees.delete(id)
	return nil
}

func (s *Store) ReadTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.employees.find(func(e *models.Employee) bool { return s.technicians.has(e.ID) }), nil
}

func (s *Store) ReadNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.employees.find(func(e *models.Employee) bool { return !s.technicians.has(e.ID) }), nil
}

// Technicians

func (s *Store) CreateTechnician(ctx context.Context, employeeID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.technicians.has(employeeID) {
		return repositories.ErrAlreadyExists
	}
	record := models.Technician{ID: employeeID}
	record.Touch(s.now())
	s.technicians.insert(employeeID, record)
	return nil
}

func (s *Store) ReadTechnicians(ctx context.Context) ([]*models.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.technicians.find(nil), nil
}

func (s *Store) ReadTechnicianByID(ctx context.Context, id models.ID) (*models.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.technicians.get(id); ok {
		return t, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) DeleteTechnicianByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.technicians.delete(id)
	return nil
}

// Technician certifications

func (s *Store) CreateTechnicianPro(ctx context.Context, pro *models.TechnicianProAtModel) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.technicianPros.first(func(p *models.TechnicianProAtModel) bool {
		return p.TechnicianID == pro.TechnicianID && p.AirplaneModelID == pro.AirplaneModelID
	}); taken {
		return "", repositories.ErrAlreadyExists
	}

	record := *pro
	record.ID = newID()
	record.Touch(s.now())
	s.technicianPros.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadTechnicianProsByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TechnicianProAtModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.technicianPros.find(func(p *models.TechnicianProAtModel) bool { return p.TechnicianID == technicianID }), nil
}

func (s *Store) ReadTechnicianProsByAirplaneModelID(ctx context.Context, modelID models.ID) ([]*models.TechnicianProAtModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.technicianPros.find(func(p *models.TechnicianProAtModel) bool { return p.AirplaneModelID == modelID }), nil
}

func (s *Store) ReadTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (*models.TechnicianProAtModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.technicianPros.first(func(p *models.TechnicianProAtModel) bool {
		return p.TechnicianID == technicianID && p.AirplaneModelID == modelID
	}); ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) DeleteTechnicianProByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.technicianPros.delete(id)
	return nil
}

// Tests made

func (s *Store) CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *test
	record.ID = newID()
	record.Touch(s.now())
	s.testsMade.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadTestsMade(ctx context.Context) ([]*models.TestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.testsMade.find(nil), nil
}

func (s *Store) ReadTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.testsMade.get(id); ok {
		return t, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadTestsMadeByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.testsMade.find(func(t *models.TestMade) bool { return t.TechnicianID == technicianID }), nil
}

func (s *Store) ReadTestsMadeByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.TestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.testsMade.find(func(t *models.TestMade) bool { return t.AirplaneID == airplaneID }), nil
}

func (s *Store) UpdateTestMadeByID(ctx context.Context, id models.ID, test *models.TestMade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.testsMade.update(id, func(t *models.TestMade) {
		t.Score = test.Score
		t.StartDate = test.StartDate
		t.FinishDate = test.FinishDate
		t.AirplaneID = test.AirplaneID
		t.IntegrityTestID = test.IntegrityTestID
		t.TechnicianID = test.TechnicianID
		t.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteTestMadeByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.testsMade.delete(id)
	return nil
}

func (s *Store) completeTest(t *models.TestMade) (*models.CompleteTestMade, bool) {
	it, ok := s.integrityTests.get(t.IntegrityTestID)
	if !ok {
		return nil, false
	}
	return &models.CompleteTestMade{
		ID:              t.ID,
		ObtainedScore:   t.Score,
		StartDate:       t.StartDate,
		FinishDate:      t.FinishDate,
		AirplaneID:      t.AirplaneID,
		IntegrityTestID: t.IntegrityTestID,
		TechnicianID:    t.TechnicianID,
		TestName:        it.Name,
		MinimumScore:    it.MinimumScore,
	}, true
}

func (s *Store) ReadCompleteTestMade(ctx context.Context, id models.ID) (*models.CompleteTestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.testsMade.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	complete, ok := s.completeTest(t)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return complete, nil
}

func (s *Store) ReadCompleteTestsMade(ctx context.Context) ([]*models.CompleteTestMade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.CompleteTestMade, 0)
	for _, t := range s.testsMade.find(nil) {
		if complete, ok := s.completeTest(t); ok {
			out = append(out, complete)
		}
	}
	return out, nil
}

// Integrity tests

func (s *Store) CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *test
	record.ID = newID()
	record.Touch(s.now())
	s.integrityTests.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.integrityTests.find(nil), nil
}

func (s *Store) ReadIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.integrityTests.get(id); ok {
		return t, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) UpdateIntegrityTestByID(ctx context.Context, id models.ID, test *models.IntegrityTest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.integrityTests.update(id, func(t *models.IntegrityTest) {
		t.Name = test.Name
		t.MinimumScore = test.MinimumScore
		t.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteIntegrityTestByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.integrityTests.delete(id)
	return nil
}

// Flights

func (s *Store) CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *flight
	record.ID = newID()
	record.Touch(s.now())
	s.flights.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadFlights(ctx context.Context) ([]*models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.flights.find(nil), nil
}

func (s *Store) ReadFlightByID(ctx context.Context, id models.ID) (*models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.flights.get(id); ok {
		return f, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadFlightsByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.flights.find(func(f *models.Flight) bool { return f.AirplaneID == airplaneID }), nil
}

func (s *Store) UpdateFlightByID(ctx context.Context, id models.ID, flight *models.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights.update(id, func(f *models.Flight) {
		f.AirplaneID = flight.AirplaneID
		f.PilotID = flight.PilotID
		f.StartLocationID = flight.StartLocationID
		f.DestinationLocationID = flight.DestinationLocationID
		f.OccupiedSeats = flight.OccupiedSeats
		f.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteFlightByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights.delete(id)
	return nil
}

// Locations

func (s *Store) CreateLocation(ctx context.Context, location *models.Location) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *location
	record.ID = newID()
	record.Touch(s.now())
	s.locations.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadLocations(ctx context.Context) ([]*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.locations.find(nil), nil
}

func (s *Store) ReadLocationByID(ctx context.Context, id models.ID) (*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.locations.get(id); ok {
		return l, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) ReadNonAirportLocations(ctx context.Context) ([]*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.locations.find(func(l *models.Location) bool { return !l.IsAirport }), nil
}

func (s *Store) UpdateLocationByID(ctx context.Context, id models.ID, location *models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations.update(id, func(l *models.Location) {
		l.CountryAbbreviation = location.CountryAbbreviation
		l.Country = location.Country
		l.State = location.State
		l.City = location.City
		l.Street = location.Street
		l.Number = location.Number
		l.IsAirport = location.IsAirport
		l.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteLocationByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations.delete(id)
	return nil
}

// Syndicates

func (s *Store) CreateSyndicate(ctx context.Context, syndicate *models.Syndicate) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := *syndicate
	record.ID = newID()
	record.Touch(s.now())
	s.syndicates.insert(record.ID, record)
	return record.ID, nil
}

func (s *Store) ReadSyndicates(ctx context.Context) ([]*models.Syndicate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.syndicates.find(nil), nil
}

func (s *Store) ReadSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sy, ok := s.syndicates.get(id); ok {
		return sy, nil
	}
	return nil, repositories.ErrNotFound
}

func (s *Store) UpdateSyndicateByID(ctx context.Context, id models.ID, syndicate *models.Syndicate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syndicates.update(id, func(sy *models.Syndicate) {
		sy.Name = syndicate.Name
		sy.UpdatedAt = s.now()
	})
	return nil
}

func (s *Store) DeleteSyndicateByID(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syndicates.delete(id)
	return nil
}
