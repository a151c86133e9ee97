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

// DispatchOrchestrator выбирает учреждение и фиксирует dispatch-тикет
type DispatchOrchestrator struct {
	facilities FacilityDirectory
	careTeam   CareTeamDirectory
	aggregator *ResourceAggregator
	scorer     *DispatchScorer
	tickets    TicketRepository
	reserver   BedReserver
	logger     *logrus.Logger
	metrics    *Metrics
	now        func() time.Time
}

// NewDispatchOrchestrator создает оркестратор; reserver может быть nil, тогда резерв коек не ведется
func NewDispatchOrchestrator(
	facilities FacilityDirectory,
	careTeam CareTeamDirectory,
	aggregator *ResourceAggregator,
	scorer *DispatchScorer,
	tickets TicketRepository,
	reserver BedReserver,
	logger *logrus.Logger,
	metrics *Metrics,
) *DispatchOrchestrator {
	return &DispatchOrchestrator{
		facilities: facilities,
		careTeam:   careTeam,
		aggregator: aggregator,
		scorer:     scorer,
		tickets:    tickets,
		reserver:   reserver,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// OrchestrateDispatch возвращает ранжированный список кандидатов без фиксации
func (o *DispatchOrchestrator) OrchestrateDispatch(ctx context.Context, patientID uuid.UUID, sector, condition string) ([]models.ScoredFacility, error) {
	log := o.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "OrchestrateDispatch",
		"patient_id": patientID,
		"sector":     sector,
	})

	if _, err := o.careTeam.GetPatient(ctx, patientID); err != nil {
		log.WithError(err).Warn("Dispatch preview for unknown patient")
		return nil, fmt.Errorf("service: could not preview dispatch: %w", err)
	}

	ranked, err := o.rankAll(ctx, sector, condition)
	if err != nil {
		log.WithError(err).Error("Failed to rank facilities")
		return nil, err
	}

	log.WithField("candidates", len(ranked)).Info("Dispatch preview computed")
	return ranked, nil
}

// PreviewForPatient ранжирует кандидатов для сектора пациента
func (o *DispatchOrchestrator) PreviewForPatient(ctx context.Context, patientID uuid.UUID, condition string) ([]models.ScoredFacility, error) {
	patient, err := o.careTeam.GetPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("service: could not preview dispatch: %w", err)
	}
	return o.rankAll(ctx, patient.Sector, condition)
}

// ExecuteDispatch выбирает учреждение (или проверяет заданное), перепроверяет его
// свежим снимком непосредственно перед фиксацией и создает тикет.
// Отказы возвращаются как *DispatchFailure с полным списком кандидатов.
func (o *DispatchOrchestrator) ExecuteDispatch(ctx context.Context, req models.DispatchRequest) (*models.DispatchTicket, error) {
	log := o.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "ExecuteDispatch",
		"patient_id":  req.PatientID,
		"facility_id": req.FacilityID,
		"sector":      req.Sector,
		"condition":   req.Condition,
	})
	log.Info("Attempting to dispatch patient")

	if _, err := o.careTeam.GetPatient(ctx, req.PatientID); err != nil {
		log.WithError(err).Warn("Dispatch requested for unknown patient")
		return nil, fmt.Errorf("service: could not dispatch: %w", err)
	}

	ranked, err := o.rankAll(ctx, req.Sector, req.Condition)
	if err != nil {
		log.WithError(err).Error("Failed to rank facilities")
		o.metrics.DispatchTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	var selected *models.ScoredFacility
	if req.FacilityID == "" {
		selected = recommendedOf(ranked)
		if selected == nil {
			return nil, o.fail(log, &DispatchFailure{
				Kind:       FailureNoSafeFacility,
				Reason:     "no candidate facility is safe for dispatch",
				Candidates: ranked,
			})
		}
	} else {
		selected = findCandidate(ranked, req.FacilityID)
		if selected == nil {
			return nil, o.fail(log, &DispatchFailure{
				Kind:       FailureFacilityNotFound,
				FacilityID: req.FacilityID,
				Reason:     "facility is not known to the facility directory",
				Candidates: ranked,
			})
		}
		if !selected.Snapshot.IsSafeForDispatch {
			return nil, o.fail(log, &DispatchFailure{
				Kind:       FailureNotSafe,
				FacilityID: req.FacilityID,
				Reason:     selected.Snapshot.Reason,
				Candidates: ranked,
			})
		}
	}

	facilityID := selected.Snapshot.FacilityID
	log = log.WithField("facility_id", facilityID)

	// снимок мог устареть за время ранжирования
	fresh := o.aggregator.Snapshot(ctx, facilityID)
	if !fresh.IsSafeForDispatch {
		return nil, o.fail(log, &DispatchFailure{
			Kind:       FailureRevalidation,
			FacilityID: facilityID,
			Reason:     fresh.Reason,
			Candidates: ranked,
		})
	}

	// override заменяет вычисленное решение целиком, поэтому койка не резервируется
	reserved := false
	if o.reserver != nil && fresh.Override == nil {
		ok, err := o.reserver.Reserve(ctx, facilityID, fresh.ICUBedsFree)
		if err != nil {
			log.WithError(err).Error("Failed to reserve ICU bed")
			o.metrics.DispatchTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("service: could not reserve bed: %w", err)
		}
		if !ok {
			return nil, o.fail(log, &DispatchFailure{
				Kind:       FailureBedUnavailable,
				FacilityID: facilityID,
				Reason:     "all free ICU beds are already reserved by concurrent dispatches",
				Candidates: ranked,
			})
		}
		reserved = true
	}

	ticket := &models.DispatchTicket{
		ID:                uuid.New(),
		PatientID:         req.PatientID,
		FacilityID:        facilityID,
		ETAMinutes:        fresh.AmbulanceETAMinutes,
		ResourcesAtCommit: copySnapshot(fresh),
		Status:            models.TicketDispatched,
		Sector:            req.Sector,
		Condition:         req.Condition,
		CreatedAt:         o.now().UTC(),
	}
	if err := o.tickets.Create(ctx, ticket); err != nil {
		log.WithError(err).Error("Failed to persist dispatch ticket")
		o.metrics.DispatchTotal.WithLabelValues("error").Inc()
		if reserved {
			if relErr := o.reserver.Release(ctx, facilityID, fresh.ICUBedsFree); relErr != nil {
				log.WithError(relErr).Warn("Failed to release ICU bed reservation")
			}
		}
		return nil, fmt.Errorf("service: could not create dispatch ticket: %w", err)
	}

	o.metrics.DispatchTotal.WithLabelValues("dispatched").Inc()
	log.WithFields(logrus.Fields{
		"ticket_id":   ticket.ID,
		"eta_minutes": ticket.ETAMinutes,
	}).Info("Patient dispatched")
	return ticket, nil
}

// ListTickets возвращает тикеты пациента
func (o *DispatchOrchestrator) ListTickets(ctx context.Context, patientID uuid.UUID) ([]*models.DispatchTicket, error) {
	tickets, err := o.tickets.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list tickets: %w", err)
	}
	return tickets, nil
}

// Snapshot возвращает свежий снимок ресурсов известного учреждения
func (o *DispatchOrchestrator) Snapshot(ctx context.Context, facilityID string) (*models.FacilitySnapshot, error) {
	if _, err := o.facilities.GetFacility(ctx, facilityID); err != nil {
		return nil, fmt.Errorf("service: could not snapshot facility: %w", err)
	}
	snap := o.aggregator.Snapshot(ctx, facilityID)
	return &snap, nil
}

type nearestFacility struct {
	Facility   *models.Facility
	Snapshot   models.FacilitySnapshot
	DistanceKm float64
}

// nearestSafe выбирает ближайшее безопасное учреждение; порядок по расстоянию задает справочник
func (o *DispatchOrchestrator) nearestSafe(ctx context.Context, loc models.Location) (*nearestFacility, error) {
	byDistance, err := o.facilities.ListFacilitiesByDistance(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("service: could not list facilities by distance: %w", err)
	}

	ids := make([]string, len(byDistance))
	for i, fd := range byDistance {
		ids[i] = fd.Facility.ID
	}
	snaps := o.aggregator.SnapshotAll(ctx, ids)

	for i, fd := range byDistance {
		if snaps[i].IsSafeForDispatch {
			return &nearestFacility{
				Facility:   fd.Facility,
				Snapshot:   snaps[i],
				DistanceKm: fd.DistanceKm,
			}, nil
		}
	}
	return nil, ErrNoSafeFacility
}

func (o *DispatchOrchestrator) rankAll(ctx context.Context, sector, condition string) ([]models.ScoredFacility, error) {
	facilities, err := o.facilities.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list facilities: %w", err)
	}

	ids := make([]string, len(facilities))
	for i, f := range facilities {
		ids[i] = f.ID
	}
	snaps := o.aggregator.SnapshotAll(ctx, ids)

	return o.scorer.Rank(ctx, snaps, sector, condition)
}

func (o *DispatchOrchestrator) fail(log *logrus.Entry, failure *DispatchFailure) error {
	o.metrics.DispatchTotal.WithLabelValues(string(failure.Kind)).Inc()
	entry := log.WithFields(logrus.Fields{
		"kind":   failure.Kind,
		"reason": failure.Reason,
	})
	if errors.Is(failure, ErrNoSafeFacility) {
		entry.Error("No safe facility available for dispatch")
	} else {
		entry.Warn("Dispatch rejected")
	}
	return failure
}

func recommendedOf(ranked []models.ScoredFacility) *models.ScoredFacility {
	for i := range ranked {
		if ranked[i].Recommended {
			return &ranked[i]
		}
	}
	return nil
}

func findCandidate(ranked []models.ScoredFacility, facilityID string) *models.ScoredFacility {
	for i := range ranked {
		if ranked[i].Snapshot.FacilityID == facilityID {
			return &ranked[i]
		}
	}
	return nil
}

func copySnapshot(snap models.FacilitySnapshot) models.FacilitySnapshot {
	cp := snap
	if snap.Override != nil {
		o := *snap.Override
		cp.Override = &o
	}
	return cp
}
