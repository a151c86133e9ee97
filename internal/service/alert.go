package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// routeRule - строка таблицы маршрутизации: кому и с каким приоритетом
type routeRule struct {
	caregiver bool
	doctor    bool
	priority  models.Priority
	critical  bool
	template  string
}

// Stable в таблице отсутствует: для него алерт не создается
var routingTable = map[models.RiskCategory]routeRule{
	models.RiskEarlyInstability: {
		caregiver: true,
		priority:  models.PriorityNormal,
		template:  "Early instability detected for %s: stability score %.1f. Please check in with the patient.",
	},
	models.RiskSustainedDeterioration: {
		caregiver: true,
		doctor:    true,
		priority:  models.PriorityHigh,
		template:  "Sustained deterioration for %s: stability score %.1f. Clinical review required.",
	},
	models.RiskHighRiskDecline: {
		caregiver: true,
		doctor:    true,
		priority:  models.PriorityHigh,
		critical:  true,
		template:  "CRITICAL: high-risk decline for %s: stability score %.1f. Immediate attention required.",
	},
}

// AlertRouter создает алерты для команды ухода по категории риска
type AlertRouter struct {
	careTeam CareTeamDirectory
	alerts   AlertRepository
	notifier AlertNotifier
	suppress bool
	logger   *logrus.Logger
	metrics  *Metrics
	now      func() time.Time
}

// NewAlertRouter создает роутер; suppress включает подавление повторных алертов
func NewAlertRouter(careTeam CareTeamDirectory, alerts AlertRepository, notifier AlertNotifier, suppress bool, logger *logrus.Logger, metrics *Metrics) *AlertRouter {
	return &AlertRouter{
		careTeam: careTeam,
		alerts:   alerts,
		notifier: notifier,
		suppress: suppress,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Route создает алерты по таблице маршрутизации. Получатель без активного назначения
// пропускается. Возвращает созданные алерты и число подавленных.
func (r *AlertRouter) Route(ctx context.Context, patientID uuid.UUID, prediction *models.StabilityPrediction, category models.RiskCategory) ([]*models.Alert, int, error) {
	created := make([]*models.Alert, 0, 2)

	rule, ok := routingTable[category]
	if !ok {
		return created, 0, nil
	}

	log := r.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "Route",
		"patient_id": patientID,
		"category":   category,
	})

	patient, err := r.careTeam.GetPatient(ctx, patientID)
	if err != nil {
		log.WithError(err).Error("Failed to look up patient")
		return nil, 0, fmt.Errorf("service: could not route alerts: %w", err)
	}
	message := fmt.Sprintf(rule.template, patient.Name, prediction.Score)

	var recipients []*models.Assignment
	if rule.caregiver {
		a, err := r.careTeam.ActiveCaregiverFor(ctx, patientID)
		if err != nil {
			log.WithError(err).Error("Failed to look up caregiver assignment")
			return nil, 0, fmt.Errorf("service: could not route alerts: %w", err)
		}
		if a == nil {
			log.Debug("No active caregiver assignment, skipping caregiver alert")
		} else {
			recipients = append(recipients, a)
		}
	}
	if rule.doctor {
		a, err := r.careTeam.ActiveDoctorFor(ctx, patientID)
		if err != nil {
			log.WithError(err).Error("Failed to look up doctor assignment")
			return nil, 0, fmt.Errorf("service: could not route alerts: %w", err)
		}
		if a == nil {
			log.Debug("No active doctor assignment, skipping doctor alert")
		} else {
			recipients = append(recipients, a)
		}
	}

	suppressed := 0
	for _, recipient := range recipients {
		alert := &models.Alert{
			ID:            uuid.New(),
			PatientID:     patientID,
			RecipientType: recipient.RecipientType,
			RecipientID:   recipient.RecipientID,
			Category:      category,
			Message:       message,
			Priority:      rule.priority,
			CreatedAt:     r.now().UTC(),
		}
		rlog := log.WithFields(logrus.Fields{
			"recipient_type": alert.RecipientType,
			"recipient_id":   alert.RecipientID,
			"priority":       alert.Priority,
		})

		inserted, err := r.alerts.InsertUnlessSuppressed(ctx, alert, r.suppress)
		if err != nil {
			rlog.WithError(err).Error("Failed to store alert")
			return nil, 0, fmt.Errorf("service: could not create alert: %w", err)
		}
		if !inserted {
			suppressed++
			r.metrics.AlertsTotal.WithLabelValues(string(alert.Priority), "suppressed").Inc()
			rlog.Warn("Alert suppressed: unacknowledged alert of equal or higher priority exists")
			continue
		}

		r.metrics.AlertsTotal.WithLabelValues(string(alert.Priority), "created").Inc()
		if rule.critical {
			rlog.Warn("Critical alert created")
		} else {
			rlog.Info("Alert created")
		}
		created = append(created, alert)

		if r.notifier != nil {
			if err := r.notifier.Notify(ctx, alert); err != nil {
				rlog.WithError(err).Warn("Failed to publish alert notification")
			}
		}
	}

	return created, suppressed, nil
}

// GetAlerts возвращает алерты получателя
func (r *AlertRouter) GetAlerts(ctx context.Context, filter models.AlertFilter) ([]*models.Alert, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":        "alert",
		"method":         "GetAlerts",
		"recipient_type": filter.RecipientType,
		"recipient_id":   filter.RecipientID,
	})

	alerts, err := r.alerts.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Debug("Alerts listed")
	return alerts, nil
}

// AcknowledgeAlert помечает алерт подтвержденным; повторное подтверждение идемпотентно
func (r *AlertRouter) AcknowledgeAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "AcknowledgeAlert",
		"alert_id": id,
	})

	alert, err := r.alerts.Acknowledge(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAlertNotFound) {
			log.Warn("Attempted to acknowledge a non-existent alert")
		} else {
			log.WithError(err).Error("Failed to acknowledge alert")
		}
		return nil, fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	log.Info("Alert acknowledged")
	return alert, nil
}
