package handlers

import (
	"github.com/projectdesk/pma_backend/cmd/docs"
	portssvc "github.com/projectdesk/pma_backend/internal/core/ports/services"
	"github.com/projectdesk/pma_backend/internal/middleware"
	"github.com/projectdesk/pma_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes (rate limited per IP)
	registerAuthRoutes(r, services.Auth)

	// Authenticated API routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Every route resolves
// the caller's session per request; the admin subgroup additionally
// requires the session to carry the admin role.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.Auth))

	// Routes any authenticated member can reach
	registerMeRoutes(v1, services.Auth, services.Task, services.Dashboard)

	// Everything else is admin only
	admin := v1.Group("", middleware.RequireAdmin())
	registerMemberRoutes(admin, services.Member, services.Auth)
	registerClientRoutes(admin, services.Client)
	registerProjectRoutes(admin, services.Project)
	registerTaskRoutes(admin, services.Task)
	registerPaymentRoutes(admin, services.Payment)
	registerDashboardRoutes(admin, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
