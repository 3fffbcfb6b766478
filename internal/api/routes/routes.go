package routes

import (
	"oncall-directory-backend/internal/api/handlers"
	"oncall-directory-backend/internal/api/middleware"
	"oncall-directory-backend/internal/cache"
	"oncall-directory-backend/internal/config"
	"oncall-directory-backend/internal/repository"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, resolutionCache *cache.ResolutionCache) *gin.Engine {
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
	assignmentRepo := repository.NewAssignmentRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)
	contactRepo := repository.NewSpecialtyContactRepository(db)

	// Initialize services
	oncallService := service.NewOnCallService(assignmentRepo, directoryRepo, contactRepo, resolutionCache)
	scheduleService := service.NewScheduleService(assignmentRepo, validator, resolutionCache)
	directoryService := service.NewDirectoryService(directoryRepo, validator)
	contactService := service.NewSpecialtyContactService(contactRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	oncallHandler := handlers.NewOnCallHandler(oncallService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	contactHandler := handlers.NewSpecialtyContactHandler(contactService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// On-call resolution
		v1.GET("/oncall", oncallHandler.GetOnCall)

		// Schedule routes
		schedule := v1.Group("/schedule")
		{
			schedule.GET("", scheduleHandler.ListSchedule)
			schedule.DELETE("", scheduleHandler.DeleteAssignment)
			schedule.POST("/reconcile", scheduleHandler.Reconcile)
			schedule.GET("/export", scheduleHandler.ExportSchedule)
		}

		// Directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("", directoryHandler.GetDirectory)
			directory.POST("", directoryHandler.CreateEntry)
			directory.PUT("/:id", directoryHandler.UpdateEntry)
			directory.DELETE("/:id", directoryHandler.DeleteEntry)
		}

		// Specialty fallback contact routes
		contacts := v1.Group("/specialties/:specialty/contacts")
		{
			contacts.GET("", contactHandler.GetContacts)
			contacts.PUT("/:role", contactHandler.PutContact)
			contacts.DELETE("/:role", contactHandler.DeleteContact)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
