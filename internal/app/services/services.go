// Package services holds the business rules of the back office. Every
// service works against repositories.Store so it runs unchanged on any
// storage backend.
//
// Services defined in this package:
// - AirplaneModelService: airplane models, their pictures and model aggregates
// - AirplaneService: airplanes and their flights and tests
// - StaffService: employees, technicians and technician certifications
// - TestingService: integrity tests and tests made
// - FlightService: flights and complete flights
// - ReferenceService: locations and syndicates
package services

import (
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/filestorage"
)

// Services groups every service built over one store
type Services struct {
	AirplaneModel AirplaneModelService
	Airplane      AirplaneService
	Staff         StaffService
	Testing       TestingService
	Flight        FlightService
	Reference     ReferenceService
}

// New builds all services over the given store and image storage
func New(store repositories.Store, files filestorage.FileStorage) *Services {
	return &Services{
		AirplaneModel: NewAirplaneModelService(store, files),
		Airplane:      NewAirplaneService(store),
		Staff:         NewStaffService(store),
		Testing:       NewTestingService(store),
		Flight:        NewFlightService(store),
		Reference:     NewReferenceService(store),
	}
}
