package models

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Sector string    `json:"sector"`
}

// Assignment - активное назначение врача или сиделки пациенту
type Assignment struct {
	PatientID     uuid.UUID     `json:"patient_id"`
	RecipientType RecipientType `json:"recipient_type"`
	RecipientID   uuid.UUID     `json:"recipient_id"`
	AssignedAt    time.Time     `json:"assigned_at"`
}

// Location - последнее известное местоположение пациента
type Location struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}
