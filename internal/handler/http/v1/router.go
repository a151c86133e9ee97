package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	protected.POST("/patients/:patientId/readings/:readingId/submit", h.submitReading)

	alerts := protected.Group("/alerts")
	{
		alerts.GET("", h.getAlerts)
		alerts.POST("/:id/acknowledge", h.acknowledgeAlert)
	}

	dispatch := protected.Group("/dispatch")
	{
		dispatch.POST("/preview", h.previewDispatch)
		dispatch.POST("", h.executeDispatch)
		dispatch.GET("/tickets", h.listTickets)
	}

	overrides := protected.Group("/overrides")
	{
		overrides.GET("/:facilityId", h.getOverride)
		overrides.PUT("/:facilityId", h.setOverride)
		overrides.DELETE("/:facilityId", h.clearOverride)
	}

	protected.GET("/facilities/:facilityId/snapshot", h.getSnapshot)
	protected.POST("/escalations", h.escalate)
}
