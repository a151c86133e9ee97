package models

import (
	"time"

	"github.com/google/uuid"
)

// StabilityPrediction - результат скоринга для одного измерения.
// Одна запись на измерение, ключ - SourceReadingID.
type StabilityPrediction struct {
	PatientID           uuid.UUID `json:"patient_id"`
	SourceReadingID     uuid.UUID `json:"source_reading_id"`
	ReadingAt           time.Time `json:"reading_at"`
	Score               float64   `json:"score"`
	EdgeSubscore        float64   `json:"edge_subscore"`
	SequenceSubscore    float64   `json:"sequence_subscore"`
	ReconstructionError *float64  `json:"reconstruction_error,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// ScorerResult - нормализованный ответ внешнего скорера
type ScorerResult struct {
	Score               float64
	EdgeSubscore        float64
	SequenceSubscore    float64
	ReconstructionError *float64
}

// OutcomeStatus - итог обработки нового измерения
type OutcomeStatus string

const (
	OutcomePredicted           OutcomeStatus = "predicted"
	OutcomeInsufficientHistory OutcomeStatus = "insufficient_history"
	OutcomeSuperseded          OutcomeStatus = "superseded"
)

// HistoryShortfall описывает нехватку истории для предсказания
type HistoryShortfall struct {
	HaveHours int `json:"have_hours"`
	NeedHours int `json:"need_hours"`
	Readings  int `json:"readings"`
}

// PredictionOutcome - результат конвейера predict -> classify -> route
type PredictionOutcome struct {
	Status             OutcomeStatus        `json:"status"`
	Prediction         *StabilityPrediction `json:"prediction,omitempty"`
	Category           RiskCategory         `json:"category,omitempty"`
	Alerts             []*Alert             `json:"alerts"`
	SuppressedAlerts   int                  `json:"suppressed_alerts"`
	Shortfall          *HistoryShortfall    `json:"shortfall,omitempty"`
	DispatchCandidates []ScoredFacility     `json:"dispatch_candidates,omitempty"`
}
