package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/airport/internal/app/controllers"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	AirplaneModel *controllers.AirplaneModelController
	Airplane      *controllers.AirplaneController
	Staff         *controllers.StaffController
	Testing       *controllers.TestingController
	Flight        *controllers.FlightController
	Reference     *controllers.ReferenceController
	Health        *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers) {
	router.GET("/health", c.Health.Health)

	api := router.Group("/api")

	// Airplane models. The root lists them for the home page.
	api.GET("", c.AirplaneModel.GetAirplaneModels)
	api.GET("/airplaneModel", c.AirplaneModel.GetAirplaneModels)
	api.GET("/airplaneModel/:id", c.AirplaneModel.GetAirplaneModelByID)
	api.POST("/airplaneModel", c.AirplaneModel.CreateAirplaneModel)
	api.PUT("/airplaneModel", c.AirplaneModel.UpdateAirplaneModel)
	api.DELETE("/airplaneModel/:id", c.AirplaneModel.DeleteAirplaneModel)
	api.GET("/completeAirplaneModel/:id", c.AirplaneModel.GetCompleteAirplaneModel)
	api.GET("/modelsAndEmployees", c.AirplaneModel.GetModelsAndEmployees)

	// Airplanes
	api.GET("/airplane", c.Airplane.GetAirplanes)
	api.GET("/airplane/:id", c.Airplane.GetAirplaneByID)
	api.POST("/airplane", c.Airplane.CreateAirplane)
	api.PUT("/airplane/:id", c.Airplane.UpdateAirplane)
	api.DELETE("/airplane/:id", c.Airplane.DeleteAirplane)
	api.GET("/completeAirplane/:id", c.Airplane.GetCompleteAirplane)

	// Staff
	api.GET("/staff", c.Staff.GetEmployees)
	api.GET("/employees", c.Staff.GetEmployees)
	api.GET("/employee/:id", c.Staff.GetEmployeeByID)
	api.POST("/employee", c.Staff.CreateEmployee)
	api.PUT("/employee/:id", c.Staff.UpdateEmployee)
	api.DELETE("/employee/:id", c.Staff.DeleteEmployee)
	api.GET("/employeesTechnician", c.Staff.GetTechnicianEmployees)
	api.GET("/employeesNotTechnician", c.Staff.GetNonTechnicianEmployees)
	api.POST("/employeeTechnician", c.Staff.HireTechnician)

	api.GET("/technician", c.Staff.GetTechnicians)
	api.POST("/technician", c.Staff.PromoteEmployee)
	api.DELETE("/technician/:id", c.Staff.DeleteTechnician)
	api.GET("/completeTechnician", c.Staff.GetCompleteTechnicians)
	api.GET("/completeTechnician/:id", c.Staff.GetCompleteTechnician)

	api.GET("/technician_pro_at_model", c.Staff.GetTechnicianPros)
	api.POST("/technician_pro_at_model", c.Staff.CreateTechnicianPro)
	api.DELETE("/technician_pro_at_model/:id", c.Staff.DeleteTechnicianPro)

	// Testing
	api.GET("/integrityTests", c.Testing.GetIntegrityTests)
	api.GET("/integrityTest/:id", c.Testing.GetIntegrityTestByID)
	api.POST("/integrityTest", c.Testing.CreateIntegrityTest)
	api.PUT("/integrityTest/:id", c.Testing.UpdateIntegrityTest)
	api.DELETE("/integrityTest/:id", c.Testing.DeleteIntegrityTest)

	api.GET("/testMade", c.Testing.GetTestsMade)
	api.GET("/testMade/:id", c.Testing.GetTestMadeByID)
	api.POST("/testMade", c.Testing.CreateTestMade)
	api.PUT("/testMade/:id", c.Testing.UpdateTestMade)
	api.DELETE("/testMade/:id", c.Testing.DeleteTestMade)
	api.GET("/completeTest", c.Testing.GetCompleteTests)
	api.GET("/completeTest/:id", c.Testing.GetCompleteTest)

	// Flights
	api.GET("/flight", c.Flight.GetFlights)
	api.GET("/flight/:id", c.Flight.GetFlightByID)
	api.POST("/flight", c.Flight.CreateFlight)
	api.PUT("/flight/:id", c.Flight.UpdateFlight)
	api.DELETE("/flight/:id", c.Flight.DeleteFlight)
	api.GET("/completeFlight/:id", c.Flight.GetCompleteFlight)

	// Reference data
	api.GET("/location", c.Reference.GetLocations)
	api.GET("/location/:id", c.Reference.GetLocationByID)
	api.GET("/locationNotAirports", c.Reference.GetNonAirportLocations)
	api.POST("/location", c.Reference.CreateLocation)
	api.PUT("/location/:id", c.Reference.UpdateLocation)
	api.DELETE("/location/:id", c.Reference.DeleteLocation)

	api.GET("/syndicate", c.Reference.GetSyndicates)
	api.GET("/syndicate/:id", c.Reference.GetSyndicateByID)
	api.POST("/syndicate", c.Reference.CreateSyndicate)
	api.PUT("/syndicate/:id", c.Reference.UpdateSyndicate)
	api.DELETE("/syndicate/:id", c.Reference.DeleteSyndicate)
}
