package models

import (
	"time"

	"github.com/google/uuid"
)

type EscalationStatus string

const (
	EscalationPending EscalationStatus = "pending"
)

// Escalation - запрос врача на срочную госпитализацию в обход классификации риска
type Escalation struct {
	ID         uuid.UUID        `json:"id"`
	PatientID  uuid.UUID        `json:"patient_id"`
	DoctorID   uuid.UUID        `json:"doctor_id"`
	FacilityID string           `json:"facility_id"`
	Reason     string           `json:"reason"`
	DistanceKm float64          `json:"distance_km"`
	Status     EscalationStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AccessGrant - временный доступ учреждения к данным пациента
type AccessGrant struct {
	PatientID  uuid.UUID `json:"patient_id"`
	FacilityID string    `json:"facility_id"`
	GrantedBy  uuid.UUID `json:"granted_by"`
	GrantedAt  time.Time `json:"granted_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
