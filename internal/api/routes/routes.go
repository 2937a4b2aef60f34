package routes

import (
	"duty-roster-backend/internal/api/handlers"
	"duty-roster-backend/internal/api/middleware"
	"duty-roster-backend/internal/auth"
	"duty-roster-backend/internal/config"
	"duty-roster-backend/internal/repository"
	"duty-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	soldierRepo := repository.NewSoldierRepository(db)
	constraintRepo := repository.NewSoldierConstraintRepository(db)
	exemptionRepo := repository.NewSoldierExemptionRepository(db)
	dutyTypeRepo := repository.NewDutyTypeRepository(db)
	dutyEventRepo := repository.NewDutyEventRepository(db)
	assignmentRepo := repository.NewDutyAssignmentRepository(db)
	ledgerRepo := repository.NewPointsLedgerRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Initialize services
	departmentService := service.NewDepartmentService(departmentRepo, validator)
	soldierService := service.NewSoldierService(soldierRepo, departmentRepo, constraintRepo, exemptionRepo, validator)
	dutyTypeService := service.NewDutyTypeService(dutyTypeRepo, validator)
	dutyEventService := service.NewDutyEventService(dutyEventRepo, dutyTypeRepo, assignmentRepo, soldierRepo, ledgerRepo, validator)
	fairnessService := service.NewFairnessService(soldierRepo, assignmentRepo, ledgerRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, soldierRepo, validator)

	schedulerStore := service.NewSchedulerStore(soldierRepo, dutyTypeRepo, dutyEventRepo, assignmentRepo, ledgerRepo, constraintRepo, exemptionRepo)
	schedulerService := service.NewSchedulerService(schedulerStore, validator, cfg.FairnessWindowDays, cfg.ScheduleDayStartHour)

	// Initialize auth
	authService := auth.NewAuthService(soldierRepo, cfg.JWTSecret)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	soldierHandler := handlers.NewSoldierHandler(soldierService)
	dutyTypeHandler := handlers.NewDutyTypeHandler(dutyTypeService)
	dutyEventHandler := handlers.NewDutyEventHandler(dutyEventService)
	schedulerHandler := handlers.NewSchedulerHandler(schedulerService)
	fairnessHandler := handlers.NewFairnessHandler(fairnessService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
		}

		// Soldier routes
		soldiers := v1.Group("/soldiers")
		{
			soldiers.GET("", soldierHandler.ListSoldiers)
			soldiers.POST("", soldierHandler.CreateSoldier)
			soldiers.GET("/:id", soldierHandler.GetSoldier)
			soldiers.PUT("/:id", soldierHandler.UpdateSoldier)
			soldiers.DELETE("/:id", soldierHandler.DeleteSoldier)
			soldiers.POST("/:id/constraints", soldierHandler.AddConstraint)
			soldiers.DELETE("/:id/constraints/:constraintId", soldierHandler.RemoveConstraint)
			soldiers.POST("/:id/exemptions", soldierHandler.AddExemption)
			soldiers.DELETE("/:id/exemptions/:exemptionId", soldierHandler.RemoveExemption)
		}

		// Duty type routes
		dutyTypes := v1.Group("/duty-types")
		{
			dutyTypes.GET("", dutyTypeHandler.ListDutyTypes)
			dutyTypes.POST("", dutyTypeHandler.CreateDutyType)
			dutyTypes.GET("/:id", dutyTypeHandler.GetDutyType)
			dutyTypes.PUT("/:id", dutyTypeHandler.UpdateDutyType)
			dutyTypes.DELETE("/:id", dutyTypeHandler.DeleteDutyType)
		}

		// Duty event routes
		dutyEvents := v1.Group("/duty-events")
		{
			dutyEvents.GET("", dutyEventHandler.ListDutyEvents)
			dutyEvents.POST("", dutyEventHandler.CreateDutyEvent)
			dutyEvents.GET("/:id", dutyEventHandler.GetDutyEvent)
			dutyEvents.DELETE("/:id", dutyEventHandler.DeleteDutyEvent)
			dutyEvents.PATCH("/:id/status", dutyEventHandler.UpdateDutyEventStatus)
			dutyEvents.POST("/:id/assignments", dutyEventHandler.AssignSoldier)
			dutyEvents.DELETE("/:id/assignments/:assignmentId", dutyEventHandler.RemoveAssignment)
			dutyEvents.POST("/:id/auto-assign", schedulerHandler.AutoAssign)
		}

		// Planner route
		v1.POST("/auto-schedule", schedulerHandler.AutoSchedule)

		// Fairness report
		v1.GET("/fairness", fairnessHandler.GetFairnessReport)

		// Attendance routes
		attendance := v1.Group("/attendance")
		{
			attendance.POST("", attendanceHandler.ReportAttendance)
			attendance.GET("/weekly", attendanceHandler.GetWeeklyGrid)
		}
	}

	return router
}
