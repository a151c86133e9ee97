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

// EscalationManager - путь по инициативе врача, в обход классификации риска
type EscalationManager struct {
	careTeam    CareTeamDirectory
	locations   LocationDirectory
	dispatcher  *DispatchOrchestrator
	escalations EscalationRepository
	accessTTL   time.Duration
	logger      *logrus.Logger
	metrics     *Metrics
	now         func() time.Time
}

func NewEscalationManager(careTeam CareTeamDirectory, locations LocationDirectory, dispatcher *DispatchOrchestrator, escalations EscalationRepository, accessTTL time.Duration, logger *logrus.Logger, metrics *Metrics) *EscalationManager {
	return &EscalationManager{
		careTeam:    careTeam,
		locations:   locations,
		dispatcher:  dispatcher,
		escalations: escalations,
		accessTTL:   accessTTL,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Escalate находит ближайшее безопасное учреждение, выдает ему временный доступ
// к данным пациента и записывает эскалацию в статусе pending
func (m *EscalationManager) Escalate(ctx context.Context, patientID, doctorID uuid.UUID, reason string) (*models.Escalation, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "escalation",
		"method":     "Escalate",
		"patient_id": patientID,
		"doctor_id":  doctorID,
	})
	log.Info("Doctor escalation requested")

	if _, err := m.careTeam.GetPatient(ctx, patientID); err != nil {
		log.WithError(err).Warn("Escalation for unknown patient")
		m.metrics.EscalationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("service: could not escalate: %w", err)
	}

	loc, err := m.locations.LastKnownLocation(ctx, patientID)
	if err != nil {
		log.WithError(err).Error("Failed to look up patient location")
		m.metrics.EscalationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("service: could not escalate: %w", err)
	}
	if loc == nil {
		log.Warn("No location recorded for patient")
		m.metrics.EscalationsTotal.WithLabelValues("location_unavailable").Inc()
		return nil, ErrLocationUnavailable
	}

	nearest, err := m.dispatcher.nearestSafe(ctx, *loc)
	if err != nil {
		if errors.Is(err, ErrNoSafeFacility) {
			log.Error("No safe facility for escalation")
			m.metrics.EscalationsTotal.WithLabelValues("no_safe_facility").Inc()
			return nil, err
		}
		log.WithError(err).Error("Failed to select facility")
		m.metrics.EscalationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	now := m.now().UTC()
	escalation := &models.Escalation{
		ID:         uuid.New(),
		PatientID:  patientID,
		DoctorID:   doctorID,
		FacilityID: nearest.Facility.ID,
		Reason:     reason,
		DistanceKm: nearest.DistanceKm,
		Status:     models.EscalationPending,
		CreatedAt:  now,
	}
	grant := &models.AccessGrant{
		PatientID:  patientID,
		FacilityID: nearest.Facility.ID,
		GrantedBy:  doctorID,
		GrantedAt:  now,
		ExpiresAt:  now.Add(m.accessTTL),
	}
	if err := m.escalations.CreateWithGrant(ctx, escalation, grant); err != nil {
		log.WithError(err).Error("Failed to record escalation")
		m.metrics.EscalationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("service: could not record escalation: %w", err)
	}

	m.metrics.EscalationsTotal.WithLabelValues("pending").Inc()
	log.WithFields(logrus.Fields{
		"escalation_id": escalation.ID,
		"facility_id":   escalation.FacilityID,
		"distance_km":   escalation.DistanceKm,
	}).Warn("Patient escalated to facility")
	return escalation, nil
}
