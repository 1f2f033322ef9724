package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// ReferenceController handles locations and syndicates
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// GetLocations lists all locations
// @Summary List locations
// @Tags reference
// @Produce json
// @Success 200 {array} models.Location
// @Router /location [get]
func (c *ReferenceController) GetLocations(ctx *gin.Context) {
	locations, err := c.referenceService.GetLocations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

// GetNonAirportLocations lists locations usable as home addresses
// @Summary List non airport locations
// @Tags reference
// @Produce json
// @Success 200 {array} models.Location
// @Router /locationNotAirports [get]
func (c *ReferenceController) GetNonAirportLocations(ctx *gin.Context) {
	locations, err := c.referenceService.GetNonAirportLocations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

// GetLocationByID retrieves one location
// @Summary Get location
// @Tags reference
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Router /location/{id} [get]
func (c *ReferenceController) GetLocationByID(ctx *gin.Context) {
	location, err := c.referenceService.GetLocationByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, location)
}

// CreateLocation adds a location
// @Summary Create location
// @Tags reference
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LocationRequest true "Location"
// @Success 201 {object} dto.CreatedResponse
// @Router /location [post]
func (c *ReferenceController) CreateLocation(ctx *gin.Context) {
	var req dto.LocationRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.referenceService.CreateLocation(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Location created"})
}

// UpdateLocation replaces a location
// @Summary Update location
// @Tags reference
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.LocationRequest true "Location"
// @Success 200 {object} dto.SuccessResponse
// @Router /location/{id} [put]
func (c *ReferenceController) UpdateLocation(ctx *gin.Context) {
	var req dto.LocationRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.referenceService.UpdateLocation(ctx, paramID(ctx), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Location updated"})
}

// DeleteLocation removes a location
// @Summary Delete location
// @Tags reference
// @Param id path string true "Location ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse "Location still referenced"
// @Router /location/{id} [delete]
func (c *ReferenceController) DeleteLocation(ctx *gin.Context) {
	if err := c.referenceService.DeleteLocation(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Location deleted"})
}

// GetSyndicates lists all syndicates
// @Summary List syndicates
// @Tags reference
// @Produce json
// @Success 200 {array} models.Syndicate
// @Router /syndicate [get]
func (c *ReferenceController) GetSyndicates(ctx *gin.Context) {
	syndicates, err := c.referenceService.GetSyndicates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, syndicates)
}

// GetSyndicateByID retrieves one syndicate
// @Summary Get syndicate
// @Tags reference
// @Produce json
// @Param id path string true "Syndicate ID"
// @Success 200 {object} models.Syndicate
// @Failure 404 {object} dto.ErrorResponse "Syndicate not found"
// @Router /syndicate/{id} [get]
func (c *ReferenceController) GetSyndicateByID(ctx *gin.Context) {
	syndicate, err := c.referenceService.GetSyndicateByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, syndicate)
}

// CreateSyndicate adds a syndicate
// @Summary Create syndicate
// @Tags reference
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.SyndicateRequest true "Syndicate"
// @Success 201 {object} dto.CreatedResponse
// @Router /syndicate [post]
func (c *ReferenceController) CreateSyndicate(ctx *gin.Context) {
	var req dto.SyndicateRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.referenceService.CreateSyndicate(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Syndicate created"})
}

// UpdateSyndicate renames a syndicate
// @Summary Update syndicate
// @Tags reference
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Syndicate ID"
// @Param request body dto.SyndicateRequest true "Syndicate"
// @Success 200 {object} dto.SuccessResponse
// @Router /syndicate/{id} [put]
func (c *ReferenceController) UpdateSyndicate(ctx *gin.Context) {
	var req dto.SyndicateRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.referenceService.UpdateSyndicate(ctx, paramID(ctx), req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Syndicate updated"})
}

// DeleteSyndicate removes a syndicate
// @Summary Delete syndicate
// @Tags reference
// @Param id path string true "Syndicate ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse "Syndicate still referenced"
// @Router /syndicate/{id} [delete]
func (c *ReferenceController) DeleteSyndicate(ctx *gin.Context) {
	if err := c.referenceService.DeleteSyndicate(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Syndicate deleted"})
}
