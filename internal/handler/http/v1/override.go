package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get the manual override of a facility
// @Tags Overrides
// @Produce json
// @Security ApiKeyAuth
// @Param facilityId path string true "Facility ID"
// @Success 200 {object} models.Override
// @Failure 404 {object} ErrorResponse
// @Router /overrides/{facilityId} [get]
func (h *Handler) getOverride(c *gin.Context) {
	facilityID := c.Param("facilityId")
	log := h.logger.WithField("method", "getOverride").WithField("facility_id", facilityID)

	override, err := h.services.Overrides.GetOverride(c.Request.Context(), facilityID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

// @Summary Set the manual override of a facility
// @Description Replaces any previous override. Overrides never expire and must be cleared explicitly.
// @Tags Overrides
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param facilityId path string true "Facility ID"
// @Param request body SetOverrideRequest true "Override"
// @Success 200 {object} models.Override
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /overrides/{facilityId} [put]
func (h *Handler) setOverride(c *gin.Context) {
	facilityID := c.Param("facilityId")
	log := h.logger.WithField("method", "setOverride").WithField("facility_id", facilityID)

	var input SetOverrideRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	override, err := h.services.Overrides.SetOverride(c.Request.Context(), facilityID, DTOToOverrideRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, override)
}

// @Summary Clear the manual override of a facility
// @Tags Overrides
// @Security ApiKeyAuth
// @Param facilityId path string true "Facility ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /overrides/{facilityId} [delete]
func (h *Handler) clearOverride(c *gin.Context) {
	facilityID := c.Param("facilityId")
	log := h.logger.WithField("method", "clearOverride").WithField("facility_id", facilityID)

	if err := h.services.Overrides.ClearOverride(c.Request.Context(), facilityID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
