package models

// Location is an address, possibly an airport
type Location struct {
	ID                  ID     `json:"id" db:"id" bson:"_id"`
	CountryAbbreviation string `json:"country_abbreviation" db:"country_abbreviation" bson:"country_abbreviation"`
	Country             string `json:"country" db:"country" bson:"country"`
	State               string `json:"state" db:"state" bson:"state"`
	City                string `json:"city" db:"city" bson:"city"`
	Street              string `json:"street" db:"street" bson:"street"`
	Number              int    `json:"number" db:"number" bson:"number"`
	IsAirport           bool   `json:"is_airport" db:"is_airport" bson:"is_airport"`
	Timestamps          `bson:",inline"`
}

// Flight is a trip of an airplane between two locations
type Flight struct {
	ID                    ID  `json:"id" db:"id" bson:"_id"`
	AirplaneID            ID  `json:"airplane_id" db:"airplane_id" bson:"airplane_id"`
	PilotID               ID  `json:"pilot_id" db:"pilot_id" bson:"pilot_id"`
	StartLocationID       ID  `json:"start_location_id" db:"start_location_id" bson:"start_location_id"`
	DestinationLocationID ID  `json:"destination_location_id" db:"destination_location_id" bson:"destination_location_id"`
	OccupiedSeats         int `json:"occupied_seats" db:"occupied_seats" bson:"occupied_seats"`
	Timestamps            `bson:",inline"`
}
