package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// AirplaneController handles airplane operations
type AirplaneController struct {
	airplaneService services.AirplaneService
}

// NewAirplaneController creates a new AirplaneController
func NewAirplaneController(airplaneService services.AirplaneService) *AirplaneController {
	return &AirplaneController{
		airplaneService: airplaneService,
	}
}

// GetAirplanes lists all airplanes
// @Summary List airplanes
// @Tags airplanes
// @Produce json
// @Success 200 {array} models.Airplane
// @Router /airplane [get]
func (c *AirplaneController) GetAirplanes(ctx *gin.Context) {
	airplanes, err := c.airplaneService.GetAirplanes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, airplanes)
}

// GetAirplaneByID retrieves one airplane
// @Summary Get airplane
// @Tags airplanes
// @Produce json
// @Param id path string true "Airplane ID"
// @Success 200 {object} models.Airplane
// @Failure 404 {object} dto.ErrorResponse "Airplane not found"
// @Router /airplane/{id} [get]
func (c *AirplaneController) GetAirplaneByID(ctx *gin.Context) {
	airplane, err := c.airplaneService.GetAirplaneByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, airplane)
}

// CreateAirplane adds an airplane of an existing model
// @Summary Create airplane
// @Tags airplanes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.AirplaneRequest true "Airplane model reference"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Airplane model not found"
// @Router /airplane [post]
func (c *AirplaneController) CreateAirplane(ctx *gin.Context) {
	var req dto.AirplaneRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.airplaneService.CreateAirplane(ctx, req.ModelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Airplane created"})
}

// UpdateAirplane moves an airplane to another model
// @Summary Update airplane
// @Tags airplanes
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Airplane ID"
// @Param request body dto.AirplaneRequest true "New airplane model reference"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Airplane or model not found"
// @Router /airplane/{id} [put]
func (c *AirplaneController) UpdateAirplane(ctx *gin.Context) {
	var req dto.AirplaneRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.airplaneService.UpdateAirplane(ctx, paramID(ctx), req.ModelID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Airplane updated"})
}

// DeleteAirplane removes an airplane
// @Summary Delete airplane
// @Tags airplanes
// @Param id path string true "Airplane ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Airplane not found"
// @Failure 409 {object} dto.ErrorResponse "Airplane still referenced"
// @Router /airplane/{id} [delete]
func (c *AirplaneController) DeleteAirplane(ctx *gin.Context) {
	if err := c.airplaneService.DeleteAirplane(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Airplane deleted"})
}

// GetCompleteAirplane returns an airplane with its flight and test ids
// @Summary Get complete airplane
// @Tags airplanes
// @Produce json
// @Param id path string true "Airplane ID"
// @Success 200 {object} models.AirplaneFlightAndTests
// @Failure 404 {object} dto.ErrorResponse "Airplane not found"
// @Router /completeAirplane/{id} [get]
func (c *AirplaneController) GetCompleteAirplane(ctx *gin.Context) {
	airplane, err := c.airplaneService.GetAirplaneFlightsAndTests(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, airplane)
}
