package memory

import (
	"context"
	"sync"
	"time"
)

type reservationKey struct {
	facilityID string
	bedsFree   int
}

type reservation struct {
	count     int
	expiresAt time.Time
}

// BedReserver - счетчик резервов коек с истечением, аналог Redis-реализации.
// Счетчик ведется отдельно для каждого наблюдаемого значения bedsFree.
type BedReserver struct {
	mu           sync.Mutex
	ttl          time.Duration
	reservations map[reservationKey]*reservation
	now          func() time.Time
}

func NewBedReserver(ttl time.Duration) *BedReserver {
	return &BedReserver{
		ttl:          ttl,
		reservations: make(map[reservationKey]*reservation),
		now:          time.Now,
	}
}

func (r *BedReserver) Reserve(_ context.Context, facilityID string, bedsFree int) (bool, error) {
	if bedsFree <= 0 {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := reservationKey{facilityID: facilityID, bedsFree: bedsFree}
	now := r.now()
	res, ok := r.reservations[key]
	if !ok || !now.Before(res.expiresAt) {
		// срок считается от первого резерва и не продлевается
		res = &reservation{expiresAt: now.Add(r.ttl)}
		r.reservations[key] = res
	}
	if res.count >= bedsFree {
		return false, nil
	}
	res.count++
	return true, nil
}

func (r *BedReserver) Release(_ context.Context, facilityID string, bedsFree int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := reservationKey{facilityID: facilityID, bedsFree: bedsFree}
	res, ok := r.reservations[key]
	if !ok || !r.now().Before(res.expiresAt) {
		delete(r.reservations, key)
		return nil
	}
	if res.count > 0 {
		res.count--
	}
	return nil
}
