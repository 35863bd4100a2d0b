package handlers

import (
	"net/http"
	"sync"

	"github.com/SscSPs/fin_api/cmd/docs"
	portssvc "github.com/SscSPs/fin_api/internal/core/ports/services"
	"github.com/SscSPs/fin_api/internal/middleware"
	"github.com/SscSPs/fin_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var validatorsOnce sync.Once

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	validatorsOnce.Do(registerValidators)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public routes: registration and login
	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token))

	registerUserRoutes(v1, services.User)
	registerStatementRoutes(v1, services.Statement)
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
