package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Preview dispatch candidates
// @Description Ranks every known facility for the sector without committing.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DispatchPreviewRequest true "Preview request"
// @Success 200 {array} models.ScoredFacility
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dispatch/preview [post]
func (h *Handler) previewDispatch(c *gin.Context) {
	log := h.logger.WithField("method", "previewDispatch")

	var input DispatchPreviewRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	ranked, err := h.services.Dispatch.OrchestrateDispatch(c.Request.Context(), input.PatientID, input.Sector, input.Condition)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// @Summary Dispatch a patient
// @Description Commits a dispatch ticket. Without facility_id the recommended facility is used. The selected facility is re-validated right before commit.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ExecuteDispatchRequest true "Dispatch request"
// @Success 201 {object} models.DispatchTicket
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} DispatchFailureResponse
// @Router /dispatch [post]
func (h *Handler) executeDispatch(c *gin.Context) {
	log := h.logger.WithField("method", "executeDispatch")

	var input ExecuteDispatchRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	ticket, err := h.services.Dispatch.ExecuteDispatch(c.Request.Context(), DTOToDispatchRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// @Summary List dispatch tickets of a patient
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Param patientId query string true "Patient ID"
// @Success 200 {array} models.DispatchTicket
// @Failure 400 {object} ErrorResponse
// @Router /dispatch/tickets [get]
func (h *Handler) listTickets(c *gin.Context) {
	patientID, err := uuid.Parse(c.Query("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid patient ID", Kind: "invalid_request"})
		return
	}
	log := h.logger.WithField("method", "listTickets").WithField("patient_id", patientID)

	tickets, err := h.services.Dispatch.ListTickets(c.Request.Context(), patientID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// @Summary Get a fresh facility resource snapshot
// @Tags Facilities
// @Produce json
// @Security ApiKeyAuth
// @Param facilityId path string true "Facility ID"
// @Success 200 {object} models.FacilitySnapshot
// @Failure 404 {object} ErrorResponse
// @Router /facilities/{facilityId}/snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	facilityID := c.Param("facilityId")
	log := h.logger.WithField("method", "getSnapshot").WithField("facility_id", facilityID)

	snap, err := h.services.Dispatch.Snapshot(c.Request.Context(), facilityID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
