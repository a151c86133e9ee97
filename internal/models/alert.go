package models

import (
	"time"

	"github.com/google/uuid"
)

type RecipientType string

const (
	RecipientCaregiver RecipientType = "Caregiver"
	RecipientDoctor    RecipientType = "Doctor"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Rank используется для сравнения приоритетов при подавлении повторов
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityNormal:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// Alert - уведомление для члена команды ухода.
// Не удаляется, только помечается как подтвержденное.
type Alert struct {
	ID             uuid.UUID     `json:"id"`
	PatientID      uuid.UUID     `json:"patient_id"`
	RecipientType  RecipientType `json:"recipient_type"`
	RecipientID    uuid.UUID     `json:"recipient_id"`
	Category       RiskCategory  `json:"category"`
	Message        string        `json:"message"`
	Priority       Priority      `json:"priority"`
	Acknowledged   bool          `json:"acknowledged"`
	CreatedAt      time.Time     `json:"created_at"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
}

// AlertFilter - параметры выборки алертов получателя
type AlertFilter struct {
	RecipientType RecipientType
	RecipientID   uuid.UUID
	Acknowledged  *bool
}
