package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/alertcare_dispatch/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookSink отправляет событие в SMS-шлюз с HMAC подписью и экспоненциальной задержкой
type WebhookSink struct {
	url        string
	secret     string
	maxRetries int
	baseDelay  time.Duration
	client     *resty.Client
	logger     *logrus.Logger
}

func NewWebhookSink(cfg *config.Config, logger *logrus.Logger) *WebhookSink {
	return &WebhookSink{
		url:        cfg.NotifyWebhookURL,
		secret:     cfg.NotifyWebhookSecret,
		maxRetries: max(cfg.NotifyMaxRetries, 1),
		baseDelay:  cfg.NotifyBaseDelay,
		client:     resty.New().SetTimeout(cfg.NotifyWebhookTimeout),
		logger:     logger,
	}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, event AlertEvent, rawPayload []byte) error {
	log := s.logger.WithField("alert_id", event.AlertID)

	if s.url == "" {
		log.Warn("Notification webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	delay := s.baseDelay
	for i := 0; i < s.maxRetries; i++ {
		req := s.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(rawPayload)
		if s.secret != "" {
			req.SetHeader(signatureHeader, generateHMACSHA256(rawPayload, s.secret))
		}

		resp, err := req.Post(s.url)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, s.maxRetries-1-i)
		case resp.IsSuccess():
			log.Info("Webhook delivered successfully.")
			return nil
		default:
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode(), delay, s.maxRetries-1-i)
		}

		if i == s.maxRetries-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("webhook delivery failed after %d attempts", s.maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
