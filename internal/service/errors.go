package service

import (
	"errors"
	"fmt"

	"github.com/shenikar/alertcare_dispatch/internal/models"
)

var (
	ErrReadingNotFound     = errors.New("reading not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrOverrideNotFound    = errors.New("override not found")
	ErrLocationUnavailable = errors.New("patient location unavailable")
	ErrNoSafeFacility      = errors.New("no facility is safe for dispatch")
	// ErrSuperseded - предсказание вытеснено более новым измерением
	ErrSuperseded = errors.New("prediction superseded by a newer reading")
)

// InsufficientHistoryError - мягкая ошибка: истории еще недостаточно для предсказания
type InsufficientHistoryError struct {
	HaveHours int
	NeedHours int
	Readings  int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: have %dh over %d readings, need %dh", e.HaveHours, e.Readings, e.NeedHours)
}

// ScorerUnavailableError - жесткая ошибка: скорер недоступен или ответил не 2xx
type ScorerUnavailableError struct {
	StatusCode int
	Upstream   string
	Err        error
}

func (e *ScorerUnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scorer unavailable: status %d: %s", e.StatusCode, e.Upstream)
	}
	return fmt.Sprintf("scorer unavailable: %s", e.Upstream)
}

func (e *ScorerUnavailableError) Unwrap() error {
	return e.Err
}

// FailureKind классифицирует причину отказа dispatch
type FailureKind string

const (
	FailureFacilityNotFound FailureKind = "facility_not_found"
	FailureNotSafe          FailureKind = "not_safe"
	FailureNoSafeFacility   FailureKind = "no_safe_facility"
	FailureRevalidation     FailureKind = "revalidation_failed"
	FailureBedUnavailable   FailureKind = "bed_reservation_failed"
)

// DispatchFailure возвращается вместо тикета и несет полный ранжированный список
// кандидатов, чтобы вызывающий мог повторить попытку со следующим вариантом
type DispatchFailure struct {
	Kind       FailureKind
	FacilityID string
	Reason     string
	Candidates []models.ScoredFacility
}

func (e *DispatchFailure) Error() string {
	if e.FacilityID == "" {
		return fmt.Sprintf("dispatch failed (%s): %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("dispatch to %s failed (%s): %s", e.FacilityID, e.Kind, e.Reason)
}

func (e *DispatchFailure) Unwrap() error {
	switch e.Kind {
	case FailureFacilityNotFound:
		return ErrFacilityNotFound
	case FailureNoSafeFacility:
		return ErrNoSafeFacility
	}
	return nil
}
