package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const popRetryDelay = time.Second

// Sink - канал доставки уведомления
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event AlertEvent, rawPayload []byte) error
}

// Worker вычитывает очередь уведомлений и раздает события всем каналам.
// Ошибка одного канала не мешает остальным.
type Worker struct {
	redisClient *redis.Client
	sinks       []Sink
	logger      *logrus.Logger
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, sinks ...Sink) *Worker {
	return &Worker{
		redisClient: redisClient,
		sinks:       sinks,
		logger:      logger,
	}
}

// Start запускает горутину обработки очереди; остановка - отменой ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("sinks", len(w.sinks)).Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
			}

			result, err := w.redisClient.BRPop(ctx, 0, notificationQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop alert event from Redis")
				select {
				case <-time.After(popRetryDelay):
				case <-ctx.Done():
				}
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.Process(ctx, []byte(result[1]))
		}
	}()
}

// Process доставляет одно событие во все каналы
func (w *Worker) Process(ctx context.Context, payload []byte) {
	var event AlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"alert_id":       event.AlertID,
		"recipient_type": event.RecipientType,
		"priority":       event.Priority,
	})
	for _, sink := range w.sinks {
		if err := sink.Deliver(ctx, event, payload); err != nil {
			log.WithError(err).WithField("sink", sink.Name()).Error("Failed to deliver alert notification")
			continue
		}
		log.WithField("sink", sink.Name()).Debug("Alert notification delivered")
	}
}
