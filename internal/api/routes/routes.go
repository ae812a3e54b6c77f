package routes

import (
	"volunteer-checkin-backend/internal/api/handlers"
	"volunteer-checkin-backend/internal/api/middleware"
	"volunteer-checkin-backend/internal/config"
	"volunteer-checkin-backend/internal/repository"
	"volunteer-checkin-backend/internal/service"

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
	eventRepo := repository.NewEventRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	slotVolunteerRepo := repository.NewSlotVolunteerRepository(db)

	// Initialize services
	eventService := service.NewEventService(eventRepo, validator)
	positionService := service.NewPositionService(positionRepo, eventRepo, validator)
	rosterService := service.NewRosterService(volunteerRepo, slotVolunteerRepo)
	slotService := service.NewSlotService(slotRepo, positionRepo, rosterService, validator)
	checkInService := service.NewCheckInService(slotRepo, volunteerRepo, slotVolunteerRepo, slotService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	eventHandler := handlers.NewEventHandler(eventService)
	positionHandler := handlers.NewPositionHandler(positionService)
	slotHandler := handlers.NewSlotHandler(slotService)
	checkInHandler := handlers.NewCheckInHandler(checkInService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public check-in routes, reached from the link volunteers receive
	v1.GET("/checkin/slot", checkInHandler.GetActiveSlot)
	v1.POST("/checkin", checkInHandler.CheckIn)

	// Admin routes guard everything that edits the schedule
	admin := v1.Group("")
	admin.Use(middleware.RequireAdmin(cfg.JWTSecret))
	{
		admin.POST("/events", eventHandler.CreateEvent)
		admin.GET("/events", eventHandler.ListEvents)
		admin.GET("/events/:id", eventHandler.GetEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)
		admin.GET("/events/:id/positions", positionHandler.ListPositionsByEvent)

		admin.POST("/positions", positionHandler.CreatePosition)
		admin.GET("/positions/:id", positionHandler.GetPosition)
		admin.DELETE("/positions/:id", positionHandler.DeletePosition)

		admin.GET("/positions/:id/slots", slotHandler.ListSlotsByPosition)
		admin.POST("/positions/:id/slots", slotHandler.CreateSlot)
		admin.PUT("/positions/:id/slots/:slot_id", slotHandler.UpdateSlot)
		admin.GET("/slots/:slot_id", slotHandler.GetSlot)
		admin.DELETE("/slots/:slot_id", slotHandler.DeleteSlot)
	}

	return router
}
