package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// imageField is the multipart part carrying an airplane model picture
const imageField = "image_path"

// AirplaneModelController handles airplane model operations
type AirplaneModelController struct {
	modelService services.AirplaneModelService
}

// NewAirplaneModelController creates a new AirplaneModelController
func NewAirplaneModelController(modelService services.AirplaneModelService) *AirplaneModelController {
	return &AirplaneModelController{
		modelService: modelService,
	}
}

// paramID reads the :id path parameter
func paramID(ctx *gin.Context) models.ID {
	return models.ID(ctx.Param("id"))
}

// formImage returns the uploaded picture or nil when none was sent
func formImage(ctx *gin.Context) (*multipart.FileHeader, bool) {
	fh, err := ctx.FormFile(imageField)
	if err == nil {
		return fh, true
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, true
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image upload").
		WithField(imageField).
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	return nil, false
}

// handleModelError answers duplicate models with the per-field flags the
// model form expects and defers everything else to HandleAPIError
func handleModelError(ctx *gin.Context, err error) {
	var dup *services.DuplicateModelError
	if errors.As(err, &dup) {
		ctx.JSON(http.StatusBadRequest, dto.DuplicateModelResponse{
			Code:      dup.Code,
			ImagePath: dup.ImagePath,
			Message:   dup.Error(),
		})
		return
	}
	middleware.HandleAPIError(ctx, err)
}

// GetAirplaneModels lists all airplane models
// @Summary List airplane models
// @Description Retrieves every airplane model ordered by code
// @Tags airplane-models
// @Produce json
// @Success 200 {array} models.AirplaneModel "Airplane models"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /airplaneModel [get]
func (c *AirplaneModelController) GetAirplaneModels(ctx *gin.Context) {
	airplaneModels, err := c.modelService.GetAirplaneModels(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, airplaneModels)
}

// GetAirplaneModelByID retrieves one airplane model
// @Summary Get airplane model
// @Tags airplane-models
// @Produce json
// @Param id path string true "Airplane model ID"
// @Success 200 {object} models.AirplaneModel
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Airplane model not found"
// @Router /airplaneModel/{id} [get]
func (c *AirplaneModelController) GetAirplaneModelByID(ctx *gin.Context) {
	model, err := c.modelService.GetAirplaneModelByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, model)
}

// CreateAirplaneModel handles airplane model creation
// @Summary Create airplane model
// @Description Creates a model from a multipart form. The picture is sent as the image_path file.
// @Tags airplane-models
// @Accept multipart/form-data
// @Produce json
// @Param code formData string true "Model code"
// @Param capacity formData int true "Passenger capacity"
// @Param weight formData number true "Weight"
// @Param image_path formData file true "Model picture"
// @Success 201 {object} dto.CreatedResponse "Airplane model created"
// @Failure 400 {object} dto.DuplicateModelResponse "Code or image already taken"
// @Failure 409 {object} dto.ErrorResponse "Concurrent insert took the code or image"
// @Router /airplaneModel [post]
func (c *AirplaneModelController) CreateAirplaneModel(ctx *gin.Context) {
	var req dto.CreateAirplaneModelRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}
	image, ok := formImage(ctx)
	if !ok {
		return
	}

	id, err := c.modelService.CreateAirplaneModel(ctx, req.ToModel(""), image)
	if err != nil {
		handleModelError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Airplane model created",
	})
}

// UpdateAirplaneModel edits capacity and weight and optionally replaces the picture
// @Summary Update airplane model
// @Tags airplane-models
// @Accept multipart/form-data
// @Produce json
// @Param id formData string true "Airplane model ID"
// @Param capacity formData int true "Passenger capacity"
// @Param weight formData number true "Weight"
// @Param image_path formData file false "New model picture"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.DuplicateModelResponse "Image already taken"
// @Failure 404 {object} dto.ErrorResponse "Airplane model not found"
// @Router /airplaneModel [put]
func (c *AirplaneModelController) UpdateAirplaneModel(ctx *gin.Context) {
	var req dto.UpdateAirplaneModelRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}
	image, ok := formImage(ctx)
	if !ok {
		return
	}

	if err := c.modelService.UpdateAirplaneModel(ctx, req.ID, req.Capacity, req.Weight, image); err != nil {
		handleModelError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Airplane model updated"})
}

// DeleteAirplaneModel removes a model with its airplanes and picture
// @Summary Delete airplane model
// @Tags airplane-models
// @Produce json
// @Param id path string true "Airplane model ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Airplane model not found"
// @Failure 409 {object} dto.ErrorResponse "Model still referenced"
// @Router /airplaneModel/{id} [delete]
func (c *AirplaneModelController) DeleteAirplaneModel(ctx *gin.Context) {
	if err := c.modelService.DeleteAirplaneModel(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Airplane model deleted"})
}

// GetCompleteAirplaneModel returns a model with its airplane and technician ids
// @Summary Get complete airplane model
// @Tags airplane-models
// @Produce json
// @Param id path string true "Airplane model ID"
// @Success 200 {object} models.AirplaneModelWithTechsAndAirplanes
// @Failure 404 {object} dto.ErrorResponse "Airplane model not found"
// @Router /completeAirplaneModel/{id} [get]
func (c *AirplaneModelController) GetCompleteAirplaneModel(ctx *gin.Context) {
	model, err := c.modelService.GetAirplaneModelWithTechsAndAirplanes(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, model)
}

// GetModelsAndEmployees feeds the proficiency form
// @Summary List models and employees
// @Tags airplane-models
// @Produce json
// @Success 200 {object} models.AirplaneModelsAndEmployees
// @Router /modelsAndEmployees [get]
func (c *AirplaneModelController) GetModelsAndEmployees(ctx *gin.Context) {
	result, err := c.modelService.GetModelsAndEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
