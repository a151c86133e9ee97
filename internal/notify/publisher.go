// Package notify доставляет уведомления о созданных алертах во внешние каналы
// (SMS-шлюз через вебхук, мост Health Connect через MQTT).
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/alertcare_dispatch/internal/models"
)

const (
	notificationQueueKey = "alert_notifications"
)

// AlertEvent - сообщение очереди уведомлений
type AlertEvent struct {
	AlertID       uuid.UUID            `json:"alert_id"`
	PatientID     uuid.UUID            `json:"patient_id"`
	RecipientType models.RecipientType `json:"recipient_type"`
	RecipientID   uuid.UUID            `json:"recipient_id"`
	Category      models.RiskCategory  `json:"category"`
	Priority      models.Priority      `json:"priority"`
	Message       string               `json:"message"`
	CreatedAt     time.Time            `json:"created_at"`
}

func NewAlertEvent(alert *models.Alert) AlertEvent {
	return AlertEvent{
		AlertID:       alert.ID,
		PatientID:     alert.PatientID,
		RecipientType: alert.RecipientType,
		RecipientID:   alert.RecipientID,
		Category:      alert.Category,
		Priority:      alert.Priority,
		Message:       alert.Message,
		CreatedAt:     alert.CreatedAt,
	}
}

// RedisPublisher кладет уведомления в очередь Redis; доставкой занимается Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Notify публикует событие алерта в очередь
func (p *RedisPublisher) Notify(ctx context.Context, alert *models.Alert) error {
	payload, err := json.Marshal(NewAlertEvent(alert))
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
