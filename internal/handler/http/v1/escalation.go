package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Escalate a patient
// @Description Doctor-initiated: picks the nearest safe facility to the last known location and grants it temporary access.
// @Tags Escalations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EscalationRequest true "Escalation"
// @Success 201 {object} models.Escalation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No safe facility"
// @Failure 422 {object} ErrorResponse "Location unavailable"
// @Router /escalations [post]
func (h *Handler) escalate(c *gin.Context) {
	log := h.logger.WithField("method", "escalate")

	var input EscalationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	log = log.WithField("patient_id", input.PatientID).WithField("doctor_id", input.DoctorID)

	escalation, err := h.services.Escalations.Escalate(c.Request.Context(), input.PatientID, input.DoctorID, input.Reason)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, escalation)
}
