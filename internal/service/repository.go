package service

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// ReadingRepository определяет контракт чтения измерений пациента
type ReadingRepository interface {
	GetReading(ctx context.Context, id uuid.UUID) (*models.Reading, error)
	// ListWindow возвращает измерения в [from, to] по возрастанию времени
	ListWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) ([]*models.Reading, error)
}

// PredictionRepository хранит предсказания, ключ - source reading id
type PredictionRepository interface {
	// SaveIfLatest пишет предсказание, только если для пациента нет предсказания по более новому измерению
	SaveIfLatest(ctx context.Context, prediction *models.StabilityPrediction) (bool, error)
}

// ScorerClient - внешний сервис скоринга стабильности
type ScorerClient interface {
	Predict(ctx context.Context, readings []*models.Reading) (*models.ScorerResult, error)
}

// CareTeamDirectory - справочник пациентов и их назначений.
// Отсутствие назначения возвращается как (nil, nil).
type CareTeamDirectory interface {
	GetPatient(ctx context.Context, patientID uuid.UUID) (*models.Patient, error)
	ActiveDoctorFor(ctx context.Context, patientID uuid.UUID) (*models.Assignment, error)
	ActiveCaregiverFor(ctx context.Context, patientID uuid.UUID) (*models.Assignment, error)
}

// LocationDirectory возвращает (nil, nil), если местоположение не записано
type LocationDirectory interface {
	LastKnownLocation(ctx context.Context, patientID uuid.UUID) (*models.Location, error)
}

// AlertRepository определяет контракт хранилища алертов
type AlertRepository interface {
	// InsertUnlessSuppressed атомарно проверяет наличие неподтвержденного алерта
	// того же получателя с приоритетом не ниже и вставляет новый, если такого нет.
	// При suppress=false проверка не выполняется.
	InsertUnlessSuppressed(ctx context.Context, alert *models.Alert, suppress bool) (bool, error)
	List(ctx context.Context, filter models.AlertFilter) ([]*models.Alert, error)
	Acknowledge(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

// AlertNotifier - fire-and-forget отправка уведомления об алерте
type AlertNotifier interface {
	Notify(ctx context.Context, alert *models.Alert) error
}

// FacilityDirectory - справочник учреждений и статическая таблица близости по секторам
type FacilityDirectory interface {
	ListFacilities(ctx context.Context) ([]*models.Facility, error)
	// ListFacilitiesByDistance упорядочивает учреждения по расстоянию до точки, затем по id
	ListFacilitiesByDistance(ctx context.Context, loc models.Location) ([]*models.FacilityDistance, error)
	GetFacility(ctx context.Context, facilityID string) (*models.Facility, error)
	ProximityTable(ctx context.Context, sector string) (map[string]int, error)
}

// OverrideStore возвращает (nil, nil), если override не установлен
type OverrideStore interface {
	Get(ctx context.Context, facilityID string) (*models.Override, error)
	Put(ctx context.Context, override *models.Override) error
	Delete(ctx context.Context, facilityID string) (bool, error)
}

// BedReserver резервирует койку через compare-and-swap счетчика резервов.
// Резервы считаются относительно bedsFree, наблюдаемого фидом в момент резерва.
type BedReserver interface {
	Reserve(ctx context.Context, facilityID string, bedsFree int) (bool, error)
	Release(ctx context.Context, facilityID string, bedsFree int) error
}

// TicketRepository хранит неизменяемые dispatch-тикеты
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.DispatchTicket) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*models.DispatchTicket, error)
}

// EscalationRepository записывает эскалацию вместе с выдачей доступа
type EscalationRepository interface {
	CreateWithGrant(ctx context.Context, escalation *models.Escalation, grant *models.AccessGrant) error
}

// BedCensusAdapter - фид коечного фонда одного учреждения
type BedCensusAdapter interface {
	BedCensus(ctx context.Context, facilityID string) (*models.BedCensus, error)
}

// OxygenSensorAdapter - фид давления кислорода одного учреждения
type OxygenSensorAdapter interface {
	OxygenPressure(ctx context.Context, facilityID string) (*models.OxygenReading, error)
}

// TransportTrackerAdapter - фид доступности скорой помощи одного учреждения
type TransportTrackerAdapter interface {
	Transport(ctx context.Context, facilityID string) (*models.TransportStatus, error)
}
