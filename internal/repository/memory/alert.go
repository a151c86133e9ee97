package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

// AlertStore держит алерты в памяти; проверка и вставка выполняются под одной блокировкой
type AlertStore struct {
	mu     sync.Mutex
	alerts []*models.Alert
	now    func() time.Time
}

func NewAlertStore() *AlertStore {
	return &AlertStore{now: time.Now}
}

func (s *AlertStore) InsertUnlessSuppressed(_ context.Context, alert *models.Alert, suppress bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if suppress {
		for _, a := range s.alerts {
			if a.PatientID == alert.PatientID &&
				a.RecipientType == alert.RecipientType &&
				a.RecipientID == alert.RecipientID &&
				!a.Acknowledged &&
				a.Priority.Rank() >= alert.Priority.Rank() {
				return false, nil
			}
		}
	}

	stored := *alert
	s.alerts = append(s.alerts, &stored)
	return true, nil
}

func (s *AlertStore) List(_ context.Context, filter models.AlertFilter) ([]*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Alert, 0)
	for _, a := range s.alerts {
		if a.RecipientType != filter.RecipientType || a.RecipientID != filter.RecipientID {
			continue
		}
		if filter.Acknowledged != nil && a.Acknowledged != *filter.Acknowledged {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *models.Alert) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (s *AlertStore) Acknowledge(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.alerts {
		if a.ID != id {
			continue
		}
		if !a.Acknowledged {
			at := s.now().UTC()
			a.Acknowledged = true
			a.AcknowledgedAt = &at
		}
		cp := *a
		return &cp, nil
	}
	return nil, fmt.Errorf("alert %s: %w", id, service.ErrAlertNotFound)
}
