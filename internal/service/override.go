package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// OverrideRegistry - единственная точка доступа к ручным override.
// Установка всегда заменяет предыдущее значение целиком (last-writer-wins).
type OverrideRegistry struct {
	store      OverrideStore
	facilities FacilityDirectory
	logger     *logrus.Logger
	metrics    *Metrics
	now        func() time.Time
}

func NewOverrideRegistry(store OverrideStore, facilities FacilityDirectory, logger *logrus.Logger, metrics *Metrics) *OverrideRegistry {
	return &OverrideRegistry{
		store:      store,
		facilities: facilities,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// SetOverride устанавливает override для учреждения
func (r *OverrideRegistry) SetOverride(ctx context.Context, facilityID string, req models.OverrideRequest) (*models.Override, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":        "override",
		"method":         "SetOverride",
		"facility_id":    facilityID,
		"allow_dispatch": req.AllowDispatch,
		"set_by":         req.SetBy,
	})

	if _, err := r.facilities.GetFacility(ctx, facilityID); err != nil {
		log.WithError(err).Warn("Attempted to override an unknown facility")
		return nil, fmt.Errorf("service: could not set override: %w", err)
	}

	override := &models.Override{
		FacilityID:    facilityID,
		Active:        true,
		AllowDispatch: req.AllowDispatch,
		Reason:        strings.TrimSpace(req.Reason),
		SetBy:         req.SetBy,
		SetAt:         r.now().UTC(),
	}
	if err := r.store.Put(ctx, override); err != nil {
		log.WithError(err).Error("Failed to store override")
		return nil, fmt.Errorf("service: could not set override: %w", err)
	}

	r.metrics.OverrideChanges.WithLabelValues("set").Inc()
	log.Warn("Manual override set")
	return override, nil
}

// ClearOverride снимает override; снятие отсутствующего override - ErrOverrideNotFound
func (r *OverrideRegistry) ClearOverride(ctx context.Context, facilityID string) error {
	log := r.logger.WithFields(logrus.Fields{
		"service":     "override",
		"method":      "ClearOverride",
		"facility_id": facilityID,
	})

	removed, err := r.store.Delete(ctx, facilityID)
	if err != nil {
		log.WithError(err).Error("Failed to clear override")
		return fmt.Errorf("service: could not clear override: %w", err)
	}
	if !removed {
		return ErrOverrideNotFound
	}

	r.metrics.OverrideChanges.WithLabelValues("clear").Inc()
	log.Info("Manual override cleared")
	return nil
}

// GetOverride возвращает текущий override учреждения
func (r *OverrideRegistry) GetOverride(ctx context.Context, facilityID string) (*models.Override, error) {
	override, err := r.store.Get(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get override: %w", err)
	}
	if override == nil {
		return nil, ErrOverrideNotFound
	}
	return override, nil
}

// active возвращает активный override или nil
func (r *OverrideRegistry) active(ctx context.Context, facilityID string) (*models.Override, error) {
	override, err := r.store.Get(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if override == nil || !override.Active {
		return nil, nil
	}
	return override, nil
}
