package models

import "time"

// Timestamps is embedded by every stored entity
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`
}

// Touch stamps both timestamps for a new record
func (t *Timestamps) Touch(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Entity names shared by tables and collections
const (
	EntityAirplaneModel        = "airplane_model"
	EntityAirplane             = "airplane"
	EntityEmployee             = "employee"
	EntityTechnician           = "technician"
	EntityTechnicianProAtModel = "technician_pro_at_model"
	EntityTestMade             = "test_made"
	EntityIntegrityTest        = "integrity_test"
	EntityFlight               = "flight"
	EntityLocation             = "location"
	EntitySyndicate            = "syndicate"
)
