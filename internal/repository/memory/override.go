// Package memory содержит потокобезопасные in-memory хранилища
package memory

import (
	"context"
	"sync"

	"github.com/shenikar/alertcare_dispatch/internal/models"
)

type OverrideStore struct {
	mu        sync.RWMutex
	overrides map[string]models.Override
}

func NewOverrideStore() *OverrideStore {
	return &OverrideStore{overrides: make(map[string]models.Override)}
}

func (s *OverrideStore) Get(_ context.Context, facilityID string) (*models.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.overrides[facilityID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *OverrideStore) Put(_ context.Context, override *models.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[override.FacilityID] = *override
	return nil
}

func (s *OverrideStore) Delete(_ context.Context, facilityID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.overrides[facilityID]
	delete(s.overrides, facilityID)
	return ok, nil
}
