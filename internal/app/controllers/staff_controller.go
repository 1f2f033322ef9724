package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/app/services"
	"github.com/yigit/airport/internal/middleware"
)

// StaffController handles employees, technicians and their certifications
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// GetEmployees lists all employees
// @Summary List employees
// @Tags staff
// @Produce json
// @Success 200 {array} models.Employee
// @Router /employees [get]
func (c *StaffController) GetEmployees(ctx *gin.Context) {
	employees, err := c.staffService.GetEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// GetEmployeeByID retrieves one employee
// @Summary Get employee
// @Tags staff
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employee/{id} [get]
func (c *StaffController) GetEmployeeByID(ctx *gin.Context) {
	employee, err := c.staffService.GetEmployeeByID(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employee)
}

// CreateEmployee hires an employee
// @Summary Create employee
// @Tags staff
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Location or syndicate not found"
// @Router /employee [post]
func (c *StaffController) CreateEmployee(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.staffService.CreateEmployee(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Employee created"})
}

// UpdateEmployee replaces an employee
// @Summary Update employee
// @Tags staff
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Router /employee/{id} [put]
func (c *StaffController) UpdateEmployee(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.staffService.UpdateEmployee(ctx, paramID(ctx), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Employee updated"})
}

// DeleteEmployee removes an employee
// @Summary Delete employee
// @Tags staff
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Employee still referenced"
// @Router /employee/{id} [delete]
func (c *StaffController) DeleteEmployee(ctx *gin.Context) {
	if err := c.staffService.DeleteEmployee(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Employee deleted"})
}

// GetTechnicianEmployees lists employees that are technicians
// @Summary List technician employees
// @Tags staff
// @Produce json
// @Success 200 {array} models.Employee
// @Router /employeesTechnician [get]
func (c *StaffController) GetTechnicianEmployees(ctx *gin.Context) {
	employees, err := c.staffService.GetTechnicianEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// GetNonTechnicianEmployees lists employees that can still be promoted
// @Summary List non technician employees
// @Tags staff
// @Produce json
// @Success 200 {array} models.Employee
// @Router /employeesNotTechnician [get]
func (c *StaffController) GetNonTechnicianEmployees(ctx *gin.Context) {
	employees, err := c.staffService.GetNonTechnicianEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// GetTechnicians lists technician records
// @Summary List technicians
// @Tags staff
// @Produce json
// @Success 200 {array} models.Technician
// @Router /technician [get]
func (c *StaffController) GetTechnicians(ctx *gin.Context) {
	technicians, err := c.staffService.GetTechnicians(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, technicians)
}

// PromoteEmployee makes an existing employee a technician
// @Summary Promote employee
// @Tags staff
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.TechnicianRequest true "Employee reference"
// @Success 201 {object} dto.CreatedResponse
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Employee is already a technician"
// @Router /technician [post]
func (c *StaffController) PromoteEmployee(ctx *gin.Context) {
	var req dto.TechnicianRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	if err := c.staffService.PromoteEmployee(ctx, req.EmployeeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: req.EmployeeID, Message: "Technician created"})
}

// HireTechnician creates an employee that is a technician from the start
// @Summary Create technician employee
// @Tags staff
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} dto.CreatedResponse
// @Router /employeeTechnician [post]
func (c *StaffController) HireTechnician(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.staffService.HireTechnician(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Technician employee created"})
}

// DeleteTechnician demotes a technician back to a plain employee
// @Summary Delete technician
// @Tags staff
// @Param id path string true "Technician ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Technician not found"
// @Router /technician/{id} [delete]
func (c *StaffController) DeleteTechnician(ctx *gin.Context) {
	if err := c.staffService.DeleteTechnician(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Technician deleted"})
}

// GetTechnicianPros filters certifications by technician_id and/or model_id
// @Summary List technician certifications
// @Tags staff
// @Produce json
// @Param technician_id query string false "Technician ID"
// @Param model_id query string false "Airplane model ID"
// @Success 200 {array} models.TechnicianProAtModel
// @Failure 400 {object} dto.ErrorResponse "No filter given"
// @Router /technician_pro_at_model [get]
func (c *StaffController) GetTechnicianPros(ctx *gin.Context) {
	var query dto.TechnicianProQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	pros, err := c.staffService.GetTechnicianPros(ctx, query.TechnicianID, query.ModelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pros)
}

// CreateTechnicianPro certifies a technician on a model
// @Summary Create technician certification
// @Tags staff
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.TechnicianProRequest true "Technician and model"
// @Success 201 {object} dto.CreatedResponse
// @Failure 404 {object} dto.ErrorResponse "Technician or model not found"
// @Failure 409 {object} dto.ErrorResponse "Certification already exists"
// @Router /technician_pro_at_model [post]
func (c *StaffController) CreateTechnicianPro(ctx *gin.Context) {
	var req dto.TechnicianProRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	id, err := c.staffService.CreateTechnicianPro(ctx, req.TechnicianID, req.AirplaneModelID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedResponse{ID: id, Message: "Technician certification created"})
}

// DeleteTechnicianPro removes a certification
// @Summary Delete technician certification
// @Tags staff
// @Param id path string true "Certification ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /technician_pro_at_model/{id} [delete]
func (c *StaffController) DeleteTechnicianPro(ctx *gin.Context) {
	if err := c.staffService.DeleteTechnicianPro(ctx, paramID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Technician certification deleted"})
}

// GetCompleteTechnicians returns every technician with tests and certified models
// @Summary List complete technicians
// @Tags staff
// @Produce json
// @Success 200 {array} models.TechnicianInfoWithTestsAndModels
// @Router /completeTechnician [get]
func (c *StaffController) GetCompleteTechnicians(ctx *gin.Context) {
	technicians, err := c.staffService.GetCompleteTechnicians(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, technicians)
}

// GetCompleteTechnician returns one technician with tests and certified models
// @Summary Get complete technician
// @Tags staff
// @Produce json
// @Param id path string true "Technician ID"
// @Success 200 {object} models.TechnicianInfoWithTestsAndModels
// @Failure 404 {object} dto.ErrorResponse "Technician not found"
// @Router /completeTechnician/{id} [get]
func (c *StaffController) GetCompleteTechnician(ctx *gin.Context) {
	technician, err := c.staffService.GetCompleteTechnician(ctx, paramID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, technician)
}
