package models

import "time"

// IntegrityTest is a kind of inspection with a passing threshold
type IntegrityTest struct {
	ID           ID      `json:"id" db:"id" bson:"_id"`
	Name         string  `json:"name" db:"name" bson:"name"`
	MinimumScore float64 `json:"minimum_score" db:"minimum_score" bson:"minimum_score"`
	Timestamps   `bson:",inline"`
}

// TestMade is one integrity test run by a technician on an airplane
type TestMade struct {
	ID              ID        `json:"id" db:"id" bson:"_id"`
	Score           float64   `json:"score" db:"score" bson:"score"`
	StartDate       time.Time `json:"start_date" db:"start_date" bson:"start_date"`
	FinishDate      time.Time `json:"finish_date" db:"finish_date" bson:"finish_date"`
	AirplaneID      ID        `json:"airplane_id" db:"airplane_id" bson:"airplane_id"`
	IntegrityTestID ID        `json:"integrity_test_id" db:"integrity_test_id" bson:"integrity_test_id"`
	TechnicianID    ID        `json:"technician_id" db:"technician_id" bson:"technician_id"`
	Timestamps      `bson:",inline"`
}

// Passed reports whether the score reaches the test's minimum
func (c *CompleteTestMade) Passed() bool {
	return c.ObtainedScore >= c.MinimumScore
}
