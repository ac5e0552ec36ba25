package routes

import (
	"time"

	"or-caseflow-backend/internal/api/handlers"
	"or-caseflow-backend/internal/api/middleware"
	"or-caseflow-backend/internal/auth"
	"or-caseflow-backend/internal/config"
	"or-caseflow-backend/internal/repository"
	"or-caseflow-backend/internal/roster"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the long-lived services the server wires into background
// loops besides the HTTP routes.
type Services struct {
	Board     *service.BoardService
	Lifecycle *service.LifecycleService
	Dispatch  *service.DispatchService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, rost *roster.Roster) (*gin.Engine, *Services) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	caseRepo := repository.NewCaseRecordRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	eventRepo := repository.NewCaseEventRepository(db)

	boardService := service.NewBoardService(caseRepo, roomRepo, rost, validate)
	lifecycleService := service.NewLifecycleService(caseRepo, eventRepo,
		time.Duration(cfg.ReturningGraceMin)*time.Minute)
	dispatchService := service.NewDispatchService(caseRepo, cfg.RunnerBaseURL,
		cfg.RunnerEnabled, time.Duration(cfg.RunnerTimeoutSec)*time.Second)

	authService, err := auth.NewAuthService(cfg.BoardSecret, cfg.JWTSecret)
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	healthHandler := handlers.NewHealthHandler(db)
	boardHandler := handlers.NewBoardHandler(boardService)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleService)
	dispatchHandler := handlers.NewDispatchHandler(dispatchService)
	authHandler := handlers.NewAuthHandler(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/token", authHandler.Token)
		authGroup.POST("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	// API v1 routes - all endpoints require a station token
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Board routes
		board := v1.Group("/board")
		{
			board.GET("", boardHandler.GetBoard)
			board.GET("/seq", boardHandler.GetSeq)
			board.GET("/next-queue", boardHandler.NextQueue)
			board.POST("/clear", boardHandler.ClearDay)
			board.POST("/restore", boardHandler.RestoreDay)
			board.GET("/rooms", boardHandler.ListRooms)
			board.PUT("/rooms", boardHandler.ReplaceRooms)

			cases := board.Group("/cases")
			{
				cases.GET("", boardHandler.GetBoard)
				cases.POST("", boardHandler.CreateCase)
				cases.GET("/:id", boardHandler.GetCase)
				cases.PUT("/:id", boardHandler.UpdateCase)
				cases.DELETE("/:id", boardHandler.DeleteCase)
			}
		}

		// Lifecycle routes
		lifecycle := v1.Group("/lifecycle")
		{
			lifecycle.POST("/monitor", lifecycleHandler.ApplyMonitor)
			lifecycle.POST("/sweep", lifecycleHandler.Sweep)
			lifecycle.POST("/cases/:uid/returning", lifecycleHandler.MarkReturning)
			lifecycle.PATCH("/cases/:uid", lifecycleHandler.PatchCase)
			lifecycle.GET("/cases/:uid/events", lifecycleHandler.GetEvents)
		}

		// Dispatch routes
		dispatch := v1.Group("/dispatch")
		{
			dispatch.POST("/push", dispatchHandler.Push)
			dispatch.GET("/status", dispatchHandler.Status)
			dispatch.POST("/ack", dispatchHandler.Ack)
			dispatch.POST("/arrive", dispatchHandler.Arrive)
			dispatch.POST("/finish", dispatchHandler.Finish)
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

	return router, &Services{
		Board:     boardService,
		Lifecycle: lifecycleService,
		Dispatch:  dispatchService,
	}
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
