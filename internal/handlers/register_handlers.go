package handlers

import (
	"net/http"

	"github.com/SscSPs/landed_cost_service/cmd/docs"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/SscSPs/landed_cost_service/internal/platform/config"
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
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Queries are public. Mutations require a bearer token once a JWT secret is configured.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	mutations := v1.Group("")
	if cfg.JWTSecret != "" {
		mutations.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	RegisterCountryRoutes(v1, mutations, service.Country)
	RegisterProductRoutes(v1, mutations, service.Product)
	RegisterCurrencyRoutes(v1, mutations, service.Currency)
	RegisterLandedCostRoutes(v1, service.LandedCost)
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
