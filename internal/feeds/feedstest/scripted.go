// Package feedstest содержит детерминированные дублеры фидов ресурсов для тестов.
package feedstest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// ErrNotScripted - для учреждения нет заготовленных ответов
var ErrNotScripted = errors.New("feedstest: no scripted reply for facility")

// Step - один заготовленный ответ фида
type Step[T any] struct {
	Value *T
	Err   error
	Delay time.Duration
}

// Script возвращает ответы по порядку; последний повторяется
type Script[T any] struct {
	mu    sync.Mutex
	steps map[string][]Step[T]
	calls map[string]int
}

func NewScript[T any]() *Script[T] {
	return &Script[T]{
		steps: make(map[string][]Step[T]),
		calls: make(map[string]int),
	}
}

// On добавляет ответы для учреждения
func (s *Script[T]) On(facilityID string, steps ...Step[T]) *Script[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[facilityID] = append(s.steps[facilityID], steps...)
	return s
}

// Calls возвращает число вызовов для учреждения
func (s *Script[T]) Calls(facilityID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[facilityID]
}

func (s *Script[T]) next(ctx context.Context, facilityID string) (*T, error) {
	s.mu.Lock()
	steps := s.steps[facilityID]
	n := s.calls[facilityID]
	s.calls[facilityID]++
	s.mu.Unlock()

	if len(steps) == 0 {
		return nil, ErrNotScripted
	}
	step := steps[min(n, len(steps)-1)]

	if step.Delay > 0 {
		select {
		case <-time.After(step.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if step.Err != nil {
		return nil, step.Err
	}
	v := *step.Value
	return &v, nil
}

type BedCensus struct{ *Script[models.BedCensus] }

func NewBedCensus() BedCensus { return BedCensus{NewScript[models.BedCensus]()} }

func (b BedCensus) BedCensus(ctx context.Context, facilityID string) (*models.BedCensus, error) {
	return b.next(ctx, facilityID)
}

type OxygenSensor struct{ *Script[models.OxygenReading] }

func NewOxygenSensor() OxygenSensor { return OxygenSensor{NewScript[models.OxygenReading]()} }

func (o OxygenSensor) OxygenPressure(ctx context.Context, facilityID string) (*models.OxygenReading, error) {
	return o.next(ctx, facilityID)
}

type TransportTracker struct{ *Script[models.TransportStatus] }

func NewTransportTracker() TransportTracker {
	return TransportTracker{NewScript[models.TransportStatus]()}
}

func (t TransportTracker) Transport(ctx context.Context, facilityID string) (*models.TransportStatus, error) {
	return t.next(ctx, facilityID)
}

// Beds, Oxygen, Transport - короткие конструкторы успешных шагов
func Beds(free, total int) Step[models.BedCensus] {
	return Step[models.BedCensus]{Value: &models.BedCensus{ICUBedsFree: free, ICUBedsTotal: total, SyncedAt: time.Now().UTC()}}
}

func Oxygen(psi float64) Step[models.OxygenReading] {
	return Step[models.OxygenReading]{Value: &models.OxygenReading{PSI: psi, SyncedAt: time.Now().UTC()}}
}

func Transport(ambulances, eta int) Step[models.TransportStatus] {
	return Step[models.TransportStatus]{Value: &models.TransportStatus{AmbulancesAvailable: ambulances, ETAMinutes: eta, SyncedAt: time.Now().UTC()}}
}
