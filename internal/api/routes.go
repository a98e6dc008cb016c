package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/handler"
	"github.com/mediavault/instafetch/internal/telemetry"
)

// Handlers bundles the route handlers mounted by SetupRoutes.
type Handlers struct {
	Health  *handler.HealthHandler
	Resolve *handler.ResolveHandler
	Media   *handler.MediaHandler
	Contact *handler.ContactHandler
}

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, h Handlers, metrics *telemetry.Provider) {
	router.GET("/health", h.Health.HealthCheck)
	router.HEAD("/health", h.Health.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.POST("/resolve", h.Resolve.Resolve)
	v1.POST("/contact", h.Contact.Submit)

	// Media pass-through routes live at the root so resolver-issued URLs
	// stay short and cacheable by intermediaries.
	router.GET("/media-proxy", h.Media.Proxy)
	router.GET("/download-file", h.Media.Download)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
