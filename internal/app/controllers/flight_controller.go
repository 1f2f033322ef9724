package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// FlightController handles flight operations
type FlightController struct {
	flightService services.FlightService
}

// NewFlightController creates a new FlightController
func NewFlightController(flightService services.FlightService) *FlightController {
	return &FlightController{
		flightService: flightService,
	}
}

// GetFlights lists all flights
// @Summary List flights
// @Tags flights
// @Produce json
// @Success 200 {array} models.Flight
// @Router /flight [get]
func (c *FlightController) GetFlights(ctx *gin.Context) {
	flights, err := c.flightService.GetFlights(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flights)
}

// GetFlightByID retrieves one flight
// @Summary Get flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 404 {object} dto.ErrorResponse "Flight not found"
// @Router /flight/{id} [get]
func (c *FlightController) GetFlightByID(ctx *gin.Context) {
	flight, err := c.flightService.GetFlightByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flight)
}

// CreateFlight schedules a flight
// @Summary Create flight
// @Tags flights
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.FlightRequest true "Flight"
// @Success 201 {object} dto.CreatedResponse
// @Failure 404 {object} dto.ErrorResponse "Airplane, pilot or location not found"
// @Router /flight [post]
func (c *FlightController) CreateFlight(ctx *gin.Context) {
	var req dto.FlightRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.flightService.CreateFlight(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Flight created"})
}

// UpdateFlight replaces a flight
// @Summary Update flight
// @Tags flights
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Flight ID"
// @Param request body dto.FlightRequest true "Flight"
// @Success 200 {object} dto.SuccessResponse
// @Router /flight/{id} [put]
func (c *FlightController) UpdateFlight(ctx *gin.Context) {
	var req dto.FlightRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.flightService.UpdateFlight(ctx, paramID(ctx), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Flight updated"})
}

// DeleteFlight cancels a flight
// @Summary Delete flight
// @Tags flights
// @Param id path string true "Flight ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /flight/{id} [delete]
func (c *FlightController) DeleteFlight(ctx *gin.Context) {
	if err := c.flightService.DeleteFlight(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Flight deleted"})
}

// GetCompleteFlight returns a flight with both locations and the model capacity
// @Summary Get complete flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} models.CompleteFlight
// @Failure 404 {object} dto.ErrorResponse "Flight not found"
// @Router /completeFlight/{id} [get]
func (c *FlightController) GetCompleteFlight(ctx *gin.Context) {
	flight, err := c.flightService.GetCompleteFlight(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, flight)
}
