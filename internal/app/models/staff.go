package models

// Employee is any member of staff
type Employee struct {
	ID              ID      `json:"id" db:"id" bson:"_id"`
	Name            string  `json:"name" db:"name" bson:"name"`
	HouseLocationID ID      `json:"house_location_id" db:"house_location_id" bson:"house_location_id"`
	PhoneNumber     string  `json:"phone_number" db:"phone_number" bson:"phone_number"`
	Salary          float64 `json:"salary" db:"salary" bson:"salary"`
	SyndicateID     ID      `json:"syndicate_id" db:"syndicate_id" bson:"syndicate_id"`
	Timestamps      `bson:",inline"`
}

// Technician extends an Employee and shares its identifier.
type Technician struct {
	ID         ID `json:"id" db:"id" bson:"_id"`
	Timestamps `bson:",inline"`
}

// TechnicianProAtModel records that a technician is certified on a model.
// The (TechnicianID, AirplaneModelID) pair is unique.
type TechnicianProAtModel struct {
	ID              ID `json:"id" db:"id" bson:"_id"`
	TechnicianID    ID `json:"technician_id" db:"technician_id" bson:"technician_id"`
	AirplaneModelID ID `json:"airplane_model_id" db:"airplane_model_id" bson:"airplane_model_id"`
	Timestamps      `bson:",inline"`
}

// Syndicate is a labour union employees may belong to
type Syndicate struct {
	ID         ID     `json:"id" db:"id" bson:"_id"`
	Name       string `json:"name" db:"name" bson:"name"`
	Timestamps `bson:",inline"`
}
