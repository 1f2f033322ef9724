package repositories

import (
	"context"

	"github.com/yigit/airport/internal/app/models"
)

// AirplaneModelStore persists airplane models
type AirplaneModelStore interface {
	CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel) (models.ID, error)
	// ReadAirplaneModels returns every model ordered by code.
	ReadAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error)
	ReadAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error)
	ReadAirplaneModelByCode(ctx context.Context, code string) (*models.AirplaneModel, error)
	ReadAirplaneModelByImagePath(ctx context.Context, imagePath string) (*models.AirplaneModel, error)
	// CheckAirplaneModelDuplicate returns every model whose code or image path
	// matches. Empty arguments never match.
	CheckAirplaneModelDuplicate(ctx context.Context, code, imagePath string) ([]*models.AirplaneModel, error)
	UpdateAirplaneModelByID(ctx context.Context, id models.ID, update models.AirplaneModelUpdate) error
	DeleteAirplaneModelByID(ctx context.Context, id models.ID) error
	DeleteAirplaneModelByCode(ctx context.Context, code string) error
}

// AirplaneStore persists airplanes
type AirplaneStore interface {
	CreateAirplane(ctx context.Context, airplane *models.Airplane) (models.ID, error)
	ReadAirplanes(ctx context.Context) ([]*models.Airplane, error)
	ReadAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error)
	ReadAirplanesByModelID(ctx context.Context, modelID models.ID) ([]*models.Airplane, error)
	UpdateAirplaneByID(ctx context.Context, id, modelID models.ID) error
	// UpdateAirplanesByModelID moves every airplane of oldModelID to newModelID.
	UpdateAirplanesByModelID(ctx context.Context, oldModelID, newModelID models.ID) error
	DeleteAirplaneByID(ctx context.Context, id models.ID) error
	// DeleteAirplanesByModelID removes all airplanes of the model.
	DeleteAirplanesByModelID(ctx context.Context, modelID models.ID) error
}

// EmployeeStore persists employees
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error)
	ReadEmployees(ctx context.Context) ([]*models.Employee, error)
	ReadEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error)
	UpdateEmployeeByID(ctx context.Context, id models.ID, employee *models.Employee) error
	DeleteEmployeeByID(ctx context.Context, id models.ID) error
	// ReadTechnicianEmployees returns employees that have a technician record.
	ReadTechnicianEmployees(ctx context.Context) ([]*models.Employee, error)
	// ReadNonTechnicianEmployees returns employees without a technician record.
	ReadNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error)
}

// TechnicianStore persists technicians. A technician shares its employee's ID.
type TechnicianStore interface {
	CreateTechnician(ctx context.Context, employeeID models.ID) error
	ReadTechnicians(ctx context.Context) ([]*models.Technician, error)
	ReadTechnicianByID(ctx context.Context, id models.ID) (*models.Technician, error)
	DeleteTechnicianByID(ctx context.Context, id models.ID) error
}

// TechnicianProStore persists technician certifications on airplane models
type TechnicianProStore interface {
	CreateTechnicianPro(ctx context.Context, pro *models.TechnicianProAtModel) (models.ID, error)
	ReadTechnicianProsByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TechnicianProAtModel, error)
	ReadTechnicianProsByAirplaneModelID(ctx context.Context, modelID models.ID) ([]*models.TechnicianProAtModel, error)
	ReadTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (*models.TechnicianProAtModel, error)
	DeleteTechnicianProByID(ctx context.Context, id models.ID) error
}

// TestMadeStore persists tests made
type TestMadeStore interface {
	CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error)
	ReadTestsMade(ctx context.Context) ([]*models.TestMade, error)
	ReadTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error)
	ReadTestsMadeByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TestMade, error)
	ReadTestsMadeByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.TestMade, error)
	UpdateTestMadeByID(ctx context.Context, id models.ID, test *models.TestMade) error
	DeleteTestMadeByID(ctx context.Context, id models.ID) error
	// ReadCompleteTestMade joins a test made with its integrity test.
	ReadCompleteTestMade(ctx context.Context, id models.ID) (*models.CompleteTestMade, error)
	ReadCompleteTestsMade(ctx context.Context) ([]*models.CompleteTestMade, error)
}

// IntegrityTestStore persists integrity tests
type IntegrityTestStore interface {
	CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error)
	ReadIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error)
	ReadIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error)
	UpdateIntegrityTestByID(ctx context.Context, id models.ID, test *models.IntegrityTest) error
	DeleteIntegrityTestByID(ctx context.Context, id models.ID) error
}

// FlightStore persists flights
type FlightStore interface {
	CreateFlight(ctx context.Context, flight *models.Flight) (models.ID, error)
	ReadFlights(ctx context.Context) ([]*models.Flight, error)
	ReadFlightByID(ctx context.Context, id models.ID) (*models.Flight, error)
	ReadFlightsByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.Flight, error)
	UpdateFlightByID(ctx context.Context, id models.ID, flight *models.Flight) error
	DeleteFlightByID(ctx context.Context, id models.ID) error
}

// LocationStore persists locations
type LocationStore interface {
	CreateLocation(ctx context.Context, location *models.Location) (models.ID, error)
	ReadLocations(ctx context.Context) ([]*models.Location, error)
	ReadLocationByID(ctx context.Context, id models.ID) (*models.Location, error)
	ReadNonAirportLocations(ctx context.Context) ([]*models.Location, error)
	UpdateLocationByID(ctx context.Context, id models.ID, location *models.Location) error
	DeleteLocationByID(ctx context.Context, id models.ID) error
}

// SyndicateStore persists syndicates
type SyndicateStore interface {
	CreateSyndicate(ctx context.Context, syndicate *models.Syndicate) (models.ID, error)
	ReadSyndicates(ctx context.Context) ([]*models.Syndicate, error)
	ReadSyndicateByID(ctx context.Context, id models.ID) (*models.Syndicate, error)
	UpdateSyndicateByID(ctx context.Context, id models.ID, syndicate *models.Syndicate) error
	DeleteSyndicateByID(ctx context.Context, id models.ID) error
}

// Store is the storage-engine independent data access contract.
//
// Single-record reads return ErrNotFound when nothing matches. Collection
// reads return an empty, non-nil slice. Updates and deletes of a missing
// record are not errors.
type Store interface {
	AirplaneModelStore
	AirplaneStore
	EmployeeStore
	TechnicianStore
	TechnicianProStore
	TestMadeStore
	IntegrityTestStore
	FlightStore
	LocationStore
	SyndicateStore

	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
	// Close releases the backend's connections
	Close(ctx context.Context) error
}
