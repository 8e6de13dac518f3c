package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"event-voting-backend/internal/api/handlers"
	"event-voting-backend/internal/api/middleware"
	"event-voting-backend/internal/auth"
	"event-voting-backend/internal/config"
	"event-voting-backend/internal/metrics"
	"event-voting-backend/internal/repository"
	"event-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint; overridden at build time with -ldflags
var Version = "1.0.0"

const limiterCleanupInterval = 5 * time.Minute

// SetupRoutes configures all the routes for the application.
// Background work started here stops when ctx is done.
func SetupRoutes(ctx context.Context, db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	router.ContextWithFallback = true
	router.RemoteIPHeaders = []string{"X-Forwarded-For", "X-Real-IP", "CF-Connecting-IP"}
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	statusService := service.NewVotingStatusService(settingRepo, activityService, cfg.VotingEnabled)
	qrGenerator := service.NewPNGQRGenerator(cfg.QRSize)
	projectService := service.NewProjectService(projectRepo, qrGenerator, activityService, validator, cfg.QRBaseURL)
	voteService := service.NewVoteService(projectRepo, deviceRepo, voteRepo, statusService, activityService, validator)
	reportService := service.NewReportService(voteRepo, projectRepo, activityService)

	// Initialize auth
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, activityService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Rate limiters
	voteLimiter := middleware.NewRateLimiter("vote", cfg.VoteRateLimitPerMinute, middleware.VoteRateLimitMessage)
	apiLimiter := middleware.NewRateLimiter("api", cfg.APIRateLimitPerMinute, middleware.APIRateLimitMessage)
	voteLimiter.StartCleanup(ctx, limiterCleanupInterval)
	apiLimiter.StartCleanup(ctx, limiterCleanupInterval)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	voteHandler := handlers.NewVoteHandler(voteService, statusService)
	projectHandler := handlers.NewProjectHandler(projectService)
	adminHandler := handlers.NewAdminHandler(reportService, voteService, statusService, activityService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/api/health", healthHandler.Health)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/qr/:file", projectHandler.QRCode)

	api := router.Group("/api")
	api.Use(apiLimiter.Middleware())
	{
		api.GET("/projects/:projectId", projectHandler.GetProject)

		votes := api.Group("/votes")
		{
			votes.GET("/check", voteHandler.CheckEligibility)
			votes.GET("/status", voteHandler.VotingStatus)
			votes.POST("", voteLimiter.Middleware(), voteHandler.SubmitVote)
		}

		api.POST("/admin/login", voteLimiter.Middleware(), authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			admin.GET("/projects", projectHandler.ListProjects)
			admin.POST("/projects", projectHandler.CreateProject)
			admin.PUT("/projects/:projectId", projectHandler.UpdateProject)
			admin.DELETE("/projects/:projectId", projectHandler.DeleteProject)

			admin.GET("/votes", adminHandler.ListVotes)
			admin.DELETE("/votes/:voteId", adminHandler.DeleteVote)

			admin.GET("/voting-status", voteHandler.VotingStatus)
			admin.PUT("/voting-status", adminHandler.SetVotingStatus)

			admin.GET("/activity-logs", adminHandler.ActivityLogs)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Route not found"})
	})

	return router, nil
}
