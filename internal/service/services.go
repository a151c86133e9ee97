package service

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// PredictionService определяет контракт конвейера predict -> classify -> route
type PredictionService interface {
	SubmitReading(ctx context.Context, patientID, readingID uuid.UUID) (*models.PredictionOutcome, error)
}

// AlertService определяет контракт чтения и подтверждения алертов
type AlertService interface {
	GetAlerts(ctx context.Context, filter models.AlertFilter) ([]*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

// DispatchService определяет контракт выбора учреждения и отправки пациента
type DispatchService interface {
	OrchestrateDispatch(ctx context.Context, patientID uuid.UUID, sector, condition string) ([]models.ScoredFacility, error)
	ExecuteDispatch(ctx context.Context, req models.DispatchRequest) (*models.DispatchTicket, error)
	ListTickets(ctx context.Context, patientID uuid.UUID) ([]*models.DispatchTicket, error)
	Snapshot(ctx context.Context, facilityID string) (*models.FacilitySnapshot, error)
}

// OverrideService определяет контракт реестра ручных override
type OverrideService interface {
	SetOverride(ctx context.Context, facilityID string, req models.OverrideRequest) (*models.Override, error)
	ClearOverride(ctx context.Context, facilityID string) error
	GetOverride(ctx context.Context, facilityID string) (*models.Override, error)
}

// EscalationService определяет контракт эскалации по инициативе врача
type EscalationService interface {
	Escalate(ctx context.Context, patientID, doctorID uuid.UUID, reason string) (*models.Escalation, error)
}
