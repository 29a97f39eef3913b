package v1

import (
	"net/http"

	"cv-intake-backend/config"
	"cv-intake-backend/internal/delivery/http/middleware"
	"cv-intake-backend/internal/delivery/http/response"
	"cv-intake-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	IntakeUC    domain.IntakeUsecase
	SelectionUC domain.SelectionUsecase
	RosterUC    domain.RosterUsecase
	DeletionUC  domain.DeletionUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))
	protected.Use(middleware.AuthMiddleware(deps.Config))

	admin := protected.Group("")
	admin.Use(middleware.AdminOnly())

	uploadLimiter := middleware.RateLimit(middleware.UploadRateLimitConfig(
		deps.Config.RateLimitUploadThreshold, deps.Config.RateLimitWindowSeconds))

	NewCVHandler(protected, admin,
		deps.IntakeUC, deps.SelectionUC, deps.RosterUC, deps.DeletionUC,
		deps.Config.MaxUploadBytes, uploadLimiter)

	return r
}
