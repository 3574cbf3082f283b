package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	settingsController := NewSettingsController(cfg.SettingsService)

	router.GET("/healthz", health.Status)

	// Routes consumed by the chat webapp's settings dialog
	router.GET("/settings/:userId", settingsController.GetSettings)
	router.POST("/settings/:userId", settingsController.UpdateSettings)

	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService)
		router.GET("/api/audit/events", auditController.ListEvents)
	}

	return router
}
