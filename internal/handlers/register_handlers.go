package handlers

import (
	"fmt"

	"github.com/SscSPs/hr_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/hr_dashboard/internal/core/ports/services"
	"github.com/SscSPs/hr_dashboard/internal/middleware"
	"github.com/SscSPs/hr_dashboard/internal/platform/config"
	"github.com/SscSPs/hr_dashboard/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	session := middleware.SessionMiddleware(middleware.SessionOptions{
		CookieName: cfg.SessionCookieName,
		Secure:     cfg.SessionCookieSecure,
	})

	pages := r.Group("", session)
	registerPageRoutes(pages, services, cfg.ReportTitle)

	if err := setupAPIV1Routes(r, cfg, services, session); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	session gin.HandlerFunc,
) error {
	limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance), session)

	registerDashboardRoutes(v1, service.Dashboard)
	registerReportRoutes(v1, service.Report)
	return nil
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
