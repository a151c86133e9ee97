package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Submit a new reading
// @Description Runs predict, classify and route for the reading. Insufficient history and superseded readings are reported as an outcome status, not as an error.
// @Tags Predictions
// @Produce json
// @Security ApiKeyAuth
// @Param patientId path string true "Patient ID"
// @Param readingId path string true "Reading ID"
// @Success 200 {object} models.PredictionOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Scorer unavailable"
// @Router /patients/{patientId}/readings/{readingId}/submit [post]
func (h *Handler) submitReading(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid patient ID", Kind: "invalid_request"})
		return
	}
	readingID, err := uuid.Parse(c.Param("readingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid reading ID", Kind: "invalid_request"})
		return
	}
	log := h.logger.WithField("method", "submitReading").WithField("patient_id", patientID).WithField("reading_id", readingID)

	outcome, err := h.services.Predictions.SubmitReading(c.Request.Context(), patientID, readingID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
