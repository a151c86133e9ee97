package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/alertcare_dispatch/internal/service"
)

const maxReserveAttempts = 5

// RedisBedReserver ведет счетчики зарезервированных коек учреждения.
// Счетчик привязан к значению bedsFree, от которого отсчитываются резервы: когда фид
// отражает занятие койки, следующий резерв начинается с нового счетчика.
// Счетчик живет ttl с момента первого резерва и не продлевается.
type RedisBedReserver struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisBedReserver(client *redis.Client, ttl time.Duration) service.BedReserver {
	return &RedisBedReserver{redisClient: client, ttl: ttl}
}

func reservationKey(facilityID string, bedsFree int) string {
	return fmt.Sprintf("reservation:beds:%s:%d", facilityID, bedsFree)
}

// Reserve увеличивает счетчик, только если зарезервировано меньше bedsFree коек.
// Конкурентные изменения ключа обнаруживаются через WATCH и повторяются.
func (s *RedisBedReserver) Reserve(ctx context.Context, facilityID string, bedsFree int) (bool, error) {
	if bedsFree <= 0 {
		return false, nil
	}
	key := reservationKey(facilityID, bedsFree)

	reserved := false
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Int()
		missing := errors.Is(err, redis.Nil)
		if err != nil && !missing {
			return err
		}
		if current >= bedsFree {
			reserved = false
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if missing {
				pipe.Set(ctx, key, 1, s.ttl)
			} else {
				// INCR сохраняет TTL ключа
				pipe.Incr(ctx, key)
			}
			return nil
		})
		if err != nil {
			return err
		}
		reserved = true
		return nil
	}

	for i := 0; i < maxReserveAttempts; i++ {
		err := s.redisClient.Watch(ctx, txf, key)
		if err == nil {
			return reserved, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return false, fmt.Errorf("failed to reserve bed: %w", err)
	}
	return false, nil
}

// Release возвращает резерв, если тикет так и не был зафиксирован.
// Истекший счетчик не восстанавливается.
func (s *RedisBedReserver) Release(ctx context.Context, facilityID string, bedsFree int) error {
	key := reservationKey(facilityID, bedsFree)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Int()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if current <= 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Decr(ctx, key)
			return nil
		})
		return err
	}

	for i := 0; i < maxReserveAttempts; i++ {
		err := s.redisClient.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("failed to release bed reservation: %w", err)
	}
	return fmt.Errorf("failed to release bed reservation: %w", redis.TxFailedErr)
}
