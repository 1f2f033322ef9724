package dto

import "github.com/yigit/airport/internal/app/models"

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by create endpoints
type CreatedResponse struct {
	ID      models.ID `json:"id"`
	Message string    `json:"message"`
}

// DuplicateModelResponse tells the client which unique fields of an
// airplane model are already taken
type DuplicateModelResponse struct {
	Code      bool   `json:"code"`
	ImagePath bool   `json:"image_path"`
	Message   string `json:"message"`
}

// HealthResponse is served by the health probe
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
