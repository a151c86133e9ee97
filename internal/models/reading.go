package models

import (
	"time"

	"github.com/google/uuid"
)

// Reading - одно измерение показателей пациента
type Reading struct {
	ID            uuid.UUID `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	RecordedAt    time.Time `json:"recorded_at"`
	BloodPressure *float64  `json:"blood_pressure,omitempty"`
	BloodGlucose  *float64  `json:"blood_glucose,omitempty"`
	HeartRate     *float64  `json:"heart_rate,omitempty"`
	Activity      *float64  `json:"activity,omitempty"`
}
