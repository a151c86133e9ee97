package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// Pipeline - конвейер нового измерения: predict -> classify -> route.
// Для HighRiskDecline при включенном autoPreview добавляет кандидатов dispatch без фиксации.
type Pipeline struct {
	gateway     *PredictionGateway
	router      *AlertRouter
	dispatcher  *DispatchOrchestrator
	autoPreview bool
	logger      *logrus.Logger
	metrics     *Metrics
}

func NewPipeline(gateway *PredictionGateway, router *AlertRouter, dispatcher *DispatchOrchestrator, autoPreview bool, logger *logrus.Logger, metrics *Metrics) *Pipeline {
	return &Pipeline{
		gateway:     gateway,
		router:      router,
		dispatcher:  dispatcher,
		autoPreview: autoPreview,
		logger:      logger,
		metrics:     metrics,
	}
}

// SubmitReading обрабатывает новое измерение пациента
func (p *Pipeline) SubmitReading(ctx context.Context, patientID, readingID uuid.UUID) (*models.PredictionOutcome, error) {
	log := p.logger.WithFields(logrus.Fields{
		"service":    "pipeline",
		"method":     "SubmitReading",
		"patient_id": patientID,
		"reading_id": readingID,
	})

	outcome := &models.PredictionOutcome{Alerts: make([]*models.Alert, 0)}

	prediction, err := p.gateway.Predict(ctx, patientID, readingID)
	var shortfall *InsufficientHistoryError
	switch {
	case errors.As(err, &shortfall):
		log.WithFields(logrus.Fields{
			"have_hours": shortfall.HaveHours,
			"need_hours": shortfall.NeedHours,
			"readings":   shortfall.Readings,
		}).Warn("Not enough history to predict yet")
		p.metrics.PredictionsTotal.WithLabelValues(string(models.OutcomeInsufficientHistory)).Inc()
		outcome.Status = models.OutcomeInsufficientHistory
		outcome.Shortfall = &models.HistoryShortfall{
			HaveHours: shortfall.HaveHours,
			NeedHours: shortfall.NeedHours,
			Readings:  shortfall.Readings,
		}
		return outcome, nil
	case errors.Is(err, ErrSuperseded):
		log.Warn("Prediction discarded: superseded by a newer reading")
		p.metrics.PredictionsTotal.WithLabelValues(string(models.OutcomeSuperseded)).Inc()
		outcome.Status = models.OutcomeSuperseded
		return outcome, nil
	case err != nil:
		p.metrics.PredictionsTotal.WithLabelValues("error").Inc()
		log.WithError(err).Error("Prediction failed")
		return nil, err
	}

	category := Classify(prediction.Score)
	outcome.Status = models.OutcomePredicted
	outcome.Prediction = prediction
	outcome.Category = category
	p.metrics.PredictionsTotal.WithLabelValues(string(models.OutcomePredicted)).Inc()

	alerts, suppressed, err := p.router.Route(ctx, patientID, prediction, category)
	if err != nil {
		log.WithError(err).Error("Alert routing failed")
		return nil, fmt.Errorf("service: prediction stored but alerts were not routed: %w", err)
	}
	outcome.Alerts = alerts
	outcome.SuppressedAlerts = suppressed

	if category == models.RiskHighRiskDecline && p.autoPreview && p.dispatcher != nil {
		candidates, err := p.dispatcher.PreviewForPatient(ctx, patientID, string(category))
		if err != nil {
			log.WithError(err).Warn("Dispatch preview for critical patient failed")
		} else {
			outcome.DispatchCandidates = candidates
		}
	}

	log.WithFields(logrus.Fields{
		"category":   category,
		"alerts":     len(outcome.Alerts),
		"suppressed": suppressed,
	}).Info("Reading processed")
	return outcome, nil
}
