package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// TestingController handles integrity tests and tests made
type TestingController struct {
	testingService services.TestingService
}

// NewTestingController creates a new TestingController
func NewTestingController(testingService services.TestingService) *TestingController {
	return &TestingController{
		testingService: testingService,
	}
}

// GetIntegrityTests lists all integrity tests
// @Summary List integrity tests
// @Tags testing
// @Produce json
// @Success 200 {array} models.IntegrityTest
// @Router /integrityTests [get]
func (c *TestingController) GetIntegrityTests(ctx *gin.Context) {
	tests, err := c.testingService.GetIntegrityTests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetIntegrityTestByID retrieves one integrity test
// @Summary Get integrity test
// @Tags testing
// @Produce json
// @Param id path string true "Integrity test ID"
// @Success 200 {object} models.IntegrityTest
// @Failure 404 {object} dto.ErrorResponse "Integrity test not found"
// @Router /integrityTest/{id} [get]
func (c *TestingController) GetIntegrityTestByID(ctx *gin.Context) {
	test, err := c.testingService.GetIntegrityTestByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// CreateIntegrityTest adds an integrity test
// @Summary Create integrity test
// @Tags testing
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.IntegrityTestRequest true "Integrity test"
// @Success 201 {object} dto.CreatedResponse
// @Router /integrityTest [post]
func (c *TestingController) CreateIntegrityTest(ctx *gin.Context) {
	var req dto.IntegrityTestRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.testingService.CreateIntegrityTest(ctx, &models.IntegrityTest{Name: req.Name, MinimumScore: req.MinimumScore})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Integrity test created"})
}

// UpdateIntegrityTest replaces an integrity test
// @Summary Update integrity test
// @Tags testing
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Integrity test ID"
// @Param request body dto.IntegrityTestRequest true "Integrity test"
// @Success 200 {object} dto.SuccessResponse
// @Router /integrityTest/{id} [put]
func (c *TestingController) UpdateIntegrityTest(ctx *gin.Context) {
	var req dto.IntegrityTestRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	err := c.testingService.UpdateIntegrityTest(ctx, paramID(ctx), &models.IntegrityTest{Name: req.Name, MinimumScore: req.MinimumScore})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Integrity test updated"})
}

// DeleteIntegrityTest removes an integrity test
// @Summary Delete integrity test
// @Tags testing
// @Param id path string true "Integrity test ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /integrityTest/{id} [delete]
func (c *TestingController) DeleteIntegrityTest(ctx *gin.Context) {
	if err := c.testingService.DeleteIntegrityTest(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Integrity test deleted"})
}

// GetTestsMade lists all tests made
// @Summary List tests made
// @Tags testing
// @Produce json
// @Success 200 {array} models.TestMade
// @Router /testMade [get]
func (c *TestingController) GetTestsMade(ctx *gin.Context) {
	tests, err := c.testingService.GetTestsMade(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestMadeByID retrieves one test made
// @Summary Get test made
// @Tags testing
// @Produce json
// @Param id path string true "Test made ID"
// @Success 200 {object} models.TestMade
// @Failure 404 {object} dto.ErrorResponse "Test made not found"
// @Router /testMade/{id} [get]
func (c *TestingController) GetTestMadeByID(ctx *gin.Context) {
	test, err := c.testingService.GetTestMadeByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// CreateTestMade records a test run
// @Summary Create test made
// @Tags testing
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.TestMadeRequest true "Test made"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Negative score or finish before start"
// @Failure 404 {object} dto.ErrorResponse "Airplane, integrity test or technician not found"
// @Router /testMade [post]
func (c *TestingController) CreateTestMade(ctx *gin.Context) {
	var req dto.TestMadeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.testingService.CreateTestMade(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Test made created"})
}

// UpdateTestMade replaces a test made
// @Summary Update test made
// @Tags testing
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Test made ID"
// @Param request body dto.TestMadeRequest true "Test made"
// @Success 200 {object} dto.SuccessResponse
// @Router /testMade/{id} [put]
func (c *TestingController) UpdateTestMade(ctx *gin.Context) {
	var req dto.TestMadeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.testingService.UpdateTestMade(ctx, paramID(ctx), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Test made updated"})
}

// DeleteTestMade removes a test made
// @Summary Delete test made
// @Tags testing
// @Param id path string true "Test made ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /testMade/{id} [delete]
func (c *TestingController) DeleteTestMade(ctx *gin.Context) {
	if err := c.testingService.DeleteTestMade(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Test made deleted"})
}

// GetCompleteTests lists tests made joined with their integrity test
// @Summary List complete tests
// @Tags testing
// @Produce json
// @Success 200 {array} models.CompleteTestMade
// @Router /completeTest [get]
func (c *TestingController) GetCompleteTests(ctx *gin.Context) {
	tests, err := c.testingService.GetCompleteTests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetCompleteTest returns one test made joined with its integrity test
// @Summary Get complete test
// @Tags testing
// @Produce json
// @Param id path string true "Test made ID"
// @Success 200 {object} models.CompleteTestMade
// @Failure 404 {object} dto.ErrorResponse "Test made not found"
// @Router /completeTest/{id} [get]
func (c *TestingController) GetCompleteTest(ctx *gin.Context) {
	test, err := c.testingService.GetCompleteTestByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}
