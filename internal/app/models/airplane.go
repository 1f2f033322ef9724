package models

// AirplaneModel is a model of aircraft. Code and ImagePath are unique.
type AirplaneModel struct {
	ID         ID      `json:"id" db:"id" bson:"_id"`
	Capacity   int     `json:"capacity" db:"capacity" bson:"capacity"`
	Weight     float64 `json:"weight" db:"weight" bson:"weight"`
	Code       string  `json:"code" db:"code" bson:"code"`
	ImagePath  string  `json:"image_path" db:"image_path" bson:"image_path"`
	Timestamps `bson:",inline"`
}

// AirplaneModelUpdate holds the replaceable fields of an AirplaneModel
type AirplaneModelUpdate struct {
	Capacity  int
	Weight    float64
	ImagePath string
}

// Airplane is a physical aircraft of a given model
type Airplane struct {
	ID         ID `json:"id" db:"id" bson:"_id"`
	ModelID    ID `json:"model_id" db:"model_id" bson:"model_id"`
	Timestamps `bson:",inline"`
}
