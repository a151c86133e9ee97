package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get alerts for a recipient
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param recipientType query string true "Caregiver or Doctor"
// @Param recipientId query string true "Recipient ID"
// @Param acknowledged query bool false "Filter by acknowledgement"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} ErrorResponse
// @Router /alerts [get]
func (h *Handler) getAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "getAlerts")

	var q AlertsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters", Kind: "invalid_request"})
		return
	}
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_request"})
		return
	}

	alerts, err := h.services.Alerts.GetAlerts(c.Request.Context(), QueryToAlertFilter(q))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Acknowledge an alert
// @Description Idempotent: acknowledging twice keeps the first acknowledgement time.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /alerts/{id}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid alert ID", Kind: "invalid_request"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	alert, err := h.services.Alerts.AcknowledgeAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}
