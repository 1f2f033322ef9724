package dto

import (
	"time"

	"github.com/yigit/airport/internal/app/models"
)

// Requests bind from JSON bodies and from url-encoded or multipart forms.

// CreateAirplaneModelRequest carries the text fields of the model form. The
// image arrives as the "image_path" file part.
type CreateAirplaneModelRequest struct {
	Code     string  `form:"code" json:"code" binding:"required"`
	Capacity int     `form:"capacity" json:"capacity" binding:"required,gt=0"`
	Weight   float64 `form:"weight" json:"weight" binding:"required,gt=0"`
}

// ToModel converts the request into an airplane model
func (r *CreateAirplaneModelRequest) ToModel(imagePath string) *models.AirplaneModel {
	return &models.AirplaneModel{
		Code:      r.Code,
		Capacity:  r.Capacity,
		Weight:    r.Weight,
		ImagePath: imagePath,
	}
}

// UpdateAirplaneModelRequest edits a model. Code is immutable and a new
// image is optional.
type UpdateAirplaneModelRequest struct {
	ID       models.ID `form:"id" json:"id" binding:"required"`
	Capacity int       `form:"capacity" json:"capacity" binding:"required,gt=0"`
	Weight   float64   `form:"weight" json:"weight" binding:"required,gt=0"`
}

// AirplaneRequest creates or moves an airplane
type AirplaneRequest struct {
	ModelID models.ID `form:"model_id" json:"model_id" binding:"required"`
}

// EmployeeRequest creates or replaces an employee
type EmployeeRequest struct {
	Name            string    `form:"name" json:"name" binding:"required"`
	HouseLocationID models.ID `form:"house_location_id" json:"house_location_id" binding:"required"`
	PhoneNumber     string    `form:"phone_number" json:"phone_number" binding:"required,phone"`
	Salary          float64   `form:"salary" json:"salary" binding:"gte=0"`
	SyndicateID     models.ID `form:"syndicate_id" json:"syndicate_id" binding:"required"`
}

// ToModel converts the request into an employee
func (r *EmployeeRequest) ToModel() *models.Employee {
	return &models.Employee{
		Name:            r.Name,
		HouseLocationID: r.HouseLocationID,
		PhoneNumber:     r.PhoneNumber,
		Salary:          r.Salary,
		SyndicateID:     r.SyndicateID,
	}
}

// TechnicianRequest promotes an existing employee
type TechnicianRequest struct {
	EmployeeID models.ID `form:"employee_id" json:"employee_id" binding:"required"`
}

// TechnicianProRequest certifies a technician on a model
type TechnicianProRequest struct {
	TechnicianID    models.ID `form:"technician_id" json:"technician_id" binding:"required"`
	AirplaneModelID models.ID `form:"airplane_model_id" json:"airplane_model_id" binding:"required"`
}

// TechnicianProQuery filters certifications by technician or model
type TechnicianProQuery struct {
	TechnicianID models.ID `form:"technician_id"`
	ModelID      models.ID `form:"model_id"`
}

// IntegrityTestRequest creates or replaces an integrity test
type IntegrityTestRequest struct {
	Name         string  `form:"name" json:"name" binding:"required"`
	MinimumScore float64 `form:"minimum_score" json:"minimum_score" binding:"gte=0"`
}

// TestMadeRequest records a test run. Dates are RFC 3339.
type TestMadeRequest struct {
	Score           float64   `form:"score" json:"score" binding:"gte=0"`
	StartDate       time.Time `form:"start_date" json:"start_date" binding:"required"`
	FinishDate      time.Time `form:"finish_date" json:"finish_date" binding:"required,gtefield=StartDate"`
	AirplaneID      models.ID `form:"airplane_id" json:"airplane_id" binding:"required"`
	IntegrityTestID models.ID `form:"integrity_test_id" json:"integrity_test_id" binding:"required"`
	TechnicianID    models.ID `form:"technician_id" json:"technician_id" binding:"required"`
}

// ToModel converts the request into a test made
func (r *TestMadeRequest) ToModel() *models.TestMade {
	return &models.TestMade{
		Score:           r.Score,
		StartDate:       r.StartDate,
		FinishDate:      r.FinishDate,
		AirplaneID:      r.AirplaneID,
		IntegrityTestID: r.IntegrityTestID,
		TechnicianID:    r.TechnicianID,
	}
}

// FlightRequest creates or replaces a flight
type FlightRequest struct {
	AirplaneID            models.ID `form:"airplane_id" json:"airplane_id" binding:"required"`
	PilotID               models.ID `form:"pilot_id" json:"pilot_id" binding:"required"`
	StartLocationID       models.ID `form:"start_location_id" json:"start_location_id" binding:"required"`
	DestinationLocationID models.ID `form:"destination_location_id" json:"destination_location_id" binding:"required"`
	OccupiedSeats         int       `form:"occupied_seats" json:"occupied_seats" binding:"gte=0"`
}

// ToModel converts the request into a flight
func (r *FlightRequest) ToModel() *models.Flight {
	return &models.Flight{
		AirplaneID:            r.AirplaneID,
		PilotID:               r.PilotID,
		StartLocationID:       r.StartLocationID,
		DestinationLocationID: r.DestinationLocationID,
		OccupiedSeats:         r.OccupiedSeats,
	}
}

// LocationRequest creates or replaces a location
type LocationRequest struct {
	CountryAbbreviation string `form:"country_abbreviation" json:"country_abbreviation" binding:"required,country_code"`
	Country             string `form:"country" json:"country" binding:"required"`
	State               string `form:"state" json:"state" binding:"required"`
	City                string `form:"city" json:"city" binding:"required"`
	Street              string `form:"street" json:"street" binding:"required"`
	Number              int    `form:"number" json:"number" binding:"gte=0"`
	IsAirport           bool   `form:"is_airport" json:"is_airport"`
}

// ToModel converts the request into a location
func (r *LocationRequest) ToModel() *models.Location {
	return &models.Location{
		CountryAbbreviation: r.CountryAbbreviation,
		Country:             r.Country,
		State:               r.State,
		City:                r.City,
		Street:              r.Street,
		Number:              r.Number,
		IsAirport:           r.IsAirport,
	}
}

// SyndicateRequest creates or renames a syndicate
type SyndicateRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}
