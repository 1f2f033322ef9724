package models

import "time"

// AirplaneModelWithTechsAndAirplanes bundles a model with its airplanes and certified technicians
type AirplaneModelWithTechsAndAirplanes struct {
	ID               ID      `json:"id"`
	Capacity         int     `json:"capacity"`
	Weight           float64 `json:"weight"`
	Code             string  `json:"code"`
	ImagePath        string  `json:"image_path"`
	TechnicianProIDs []ID    `json:"technician_pro_ids"`
	AirplaneIDs      []ID    `json:"airplane_ids"`
}

// AirplaneFlightAndTests bundles an airplane with its flights and tests
type AirplaneFlightAndTests struct {
	AirplaneID ID   `json:"airplane_id"`
	ModelID    ID   `json:"model_id"`
	FlightIDs  []ID `json:"flight_ids"`
	TestIDs    []ID `json:"test_ids"`
}

// TechnicianInfoWithTestsAndModels bundles a technician with tests made and certified models
type TechnicianInfoWithTestsAndModels struct {
	TechnicianID ID   `json:"technician_id"`
	SyndicateID  ID   `json:"syndicate_id,omitempty"`
	TestsMadeIDs []ID `json:"tests_made_id"`
	ModelsProIDs []ID `json:"models_pro_id"`
}

// CompleteTestMade is a test made joined with its integrity test
type CompleteTestMade struct {
	ID              ID        `json:"id" db:"id" bson:"id"`
	ObtainedScore   float64   `json:"obtained_score" db:"obtained_score" bson:"obtained_score"`
	StartDate       time.Time `json:"start_date" db:"start_date" bson:"start_date"`
	FinishDate      time.Time `json:"finish_date" db:"finish_date" bson:"finish_date"`
	AirplaneID      ID        `json:"airplane_id" db:"airplane_id" bson:"airplane_id"`
	IntegrityTestID ID        `json:"integrity_test_id" db:"integrity_test_id" bson:"integrity_test_id"`
	TechnicianID    ID        `json:"technician_id" db:"technician_id" bson:"technician_id"`
	TestName        string    `json:"test_name" db:"test_name" bson:"test_name"`
	MinimumScore    float64   `json:"minimum_score" db:"minimum_score" bson:"minimum_score"`
}

// CompleteFlight is a flight with both locations resolved
type CompleteFlight struct {
	Flight
	StartLocation         Location `json:"start_location"`
	DestinationLocation   Location `json:"destination_location"`
	AirplaneModelCapacity int      `json:"airplane_model_capacity"`
}

// AirplaneModelsAndEmployees feeds the proficiency form
type AirplaneModelsAndEmployees struct {
	Models    []AirplaneModel `json:"models"`
	Employees []Employee      `json:"employees"`
}
