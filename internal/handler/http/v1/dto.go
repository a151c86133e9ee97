package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// ErrorResponse - тело ответа об ошибке; kind позволяет клиенту ветвиться по типу отказа
// @Description Ошибка API
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// DispatchFailureResponse - отказ dispatch с полным ранжированным списком кандидатов
// @Description Отказ dispatch
type DispatchFailureResponse struct {
	Error      string                  `json:"error"`
	Kind       string                  `json:"kind"`
	FacilityID string                  `json:"facility_id,omitempty"`
	Reason     string                  `json:"reason"`
	Candidates []models.ScoredFacility `json:"candidates"`
}

// AlertsQuery - параметры выборки алертов
type AlertsQuery struct {
	RecipientType string `form:"recipientType" validate:"required,oneof=Caregiver Doctor"`
	RecipientID   string `form:"recipientId" validate:"required,uuid"`
	Acknowledged  *bool  `form:"acknowledged"`
}

// DispatchPreviewRequest DTO для предварительного ранжирования
// @Description DTO для предварительного ранжирования учреждений
type DispatchPreviewRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Sector    string    `json:"sector" validate:"required,max=64"`
	Condition string    `json:"condition" validate:"max=255"`
}

// ExecuteDispatchRequest DTO для отправки пациента; без facility_id учреждение выбирается автоматически
// @Description DTO для отправки пациента
type ExecuteDispatchRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	FacilityID string    `json:"facility_id,omitempty" validate:"max=64"`
	Sector     string    `json:"sector" validate:"required,max=64"`
	Condition  string    `json:"condition" validate:"max=255"`
}

// SetOverrideRequest DTO для установки ручного override
// @Description DTO для установки ручного override
type SetOverrideRequest struct {
	AllowDispatch *bool  `json:"allow_dispatch" validate:"required"`
	Reason        string `json:"reason" validate:"required,min=3,max=500"`
	SetBy         string `json:"set_by" validate:"required,max=255"`
}

// EscalationRequest DTO для эскалации врачом
// @Description DTO для эскалации врачом
type EscalationRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required,min=3,max=1000"`
}

// AlertResponse DTO алерта
// @Description DTO алерта
type AlertResponse struct {
	ID             uuid.UUID  `json:"id"`
	PatientID      uuid.UUID  `json:"patient_id"`
	RecipientType  string     `json:"recipient_type"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	Category       string     `json:"category"`
	Message        string     `json:"message"`
	Priority       string     `json:"priority"`
	Acknowledged   bool       `json:"acknowledged"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

// HealthResponse - статус сервиса и его зависимостей
// @Description Статус сервиса
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}
