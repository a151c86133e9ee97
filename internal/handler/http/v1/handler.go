package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/alertcare_dispatch/internal/config"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

const healthProbeTimeout = 2 * time.Second

// HealthProbe проверяет одну зависимость сервиса
type HealthProbe func(ctx context.Context) error

// Services - сервисы, обслуживаемые API
type Services struct {
	Predictions service.PredictionService
	Alerts      service.AlertService
	Dispatch    service.DispatchService
	Overrides   service.OverrideService
	Escalations service.EscalationService
}

type Handler struct {
	services Services
	probes   map[string]HealthProbe
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, probes map[string]HealthProbe, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		probes:   probes,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bindJSON разбирает и валидирует тело; при ошибке отвечает 400
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "invalid_request"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "invalid_request"})
		return false
	}
	return true
}

// respondError переводит типизированные ошибки сервиса в HTTP ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var failure *service.DispatchFailure
	var scorerErr *service.ScorerUnavailableError

	switch {
	case errors.As(err, &failure):
		log.WithError(err).Warn("Dispatch failed")
		c.JSON(http.StatusConflict, DispatchFailureResponse{
			Error:      failure.Error(),
			Kind:       string(failure.Kind),
			FacilityID: failure.FacilityID,
			Reason:     failure.Reason,
			Candidates: failure.Candidates,
		})
	case errors.As(err, &scorerErr):
		log.WithError(err).Error("Scorer unavailable")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: scorerErr.Error(), Kind: "scorer_unavailable"})
	case errors.Is(err, service.ErrLocationUnavailable):
		log.WithError(err).Warn("Patient location unavailable")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: "location_unavailable"})
	case errors.Is(err, service.ErrNoSafeFacility):
		log.WithError(err).Error("No safe facility")
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: "no_safe_facility"})
	case errors.Is(err, service.ErrSuperseded):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Kind: "superseded"})
	case errors.Is(err, service.ErrReadingNotFound),
		errors.Is(err, service.ErrPatientNotFound),
		errors.Is(err, service.ErrAlertNotFound),
		errors.Is(err, service.ErrFacilityNotFound),
		errors.Is(err, service.ErrOverrideNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: "not_found"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Kind: "internal"})
	}
}

// @Summary Get application health status
// @Description Health of the service and its dependencies (database, redis, scorer)
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Components: make(map[string]string, len(h.probes))}

	for name, probe := range h.probes {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
		err := probe(ctx)
		cancel()

		if err != nil {
			h.logger.WithError(err).WithField("component", name).Warn("Health probe failed")
			resp.Components[name] = "unavailable"
			resp.Status = "degraded"
			continue
		}
		resp.Components[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
