// Package scorer - HTTP клиент внешнего сервиса оценки стабильности.
package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	predictPath = "/api/ml/predict"
	healthPath  = "/api/ml/health"
)

// ErrMalformedReply - ответ 2xx без оценки стабильности
var ErrMalformedReply = errors.New("scorer reply has no stability score")

// StatusError - скорер ответил не 2xx
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scorer returned status %d: %s", e.StatusCode, e.Detail)
}

// PredictRequest - тело POST /api/ml/predict
type PredictRequest struct {
	Readings []SensorReading `json:"readings"`
}

type SensorReading struct {
	Timestamp     string   `json:"timestamp"`
	BloodPressure *float64 `json:"bloodPressure"`
	BloodGlucose  *float64 `json:"bloodGlucose"`
	HeartRate     *float64 `json:"heartRate"`
	Activity      *float64 `json:"activity"`
}

// predictReply принимает обе схемы именования, которые встречаются у скорера
type predictReply struct {
	HealthStabilityScore      *float64 `json:"healthStabilityScore"`
	IsolationScore            *float64 `json:"isolationScore"`
	LSTMScore                 *float64 `json:"lstmScore"`
	ReconstructionError       *float64 `json:"reconstructionError"`
	SnakeHealthStabilityScore *float64 `json:"health_stability_score"`
	SnakeIsolationScore       *float64 `json:"isolation_score"`
	SnakeLSTMScore            *float64 `json:"lstm_score"`
	SnakeReconstructionError  *float64 `json:"reconstruction_error"`
	Score                     *float64 `json:"score"`
	SubscoreA                 *float64 `json:"subscoreA"`
	SubscoreB                 *float64 `json:"subscoreB"`
}

type errorReply struct {
	Detail string `json:"detail"`
}

// Client - клиент скорера
type Client struct {
	httpClient *resty.Client
	logger     *logrus.Logger
}

// NewClient создает клиента скорера. Повторов нет: не-2xx и таймаут - жесткий отказ.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// Predict отправляет упорядоченное окно измерений и нормализует ответ
func (c *Client) Predict(ctx context.Context, readings []*models.Reading) (*models.ScorerResult, error) {
	req := PredictRequest{Readings: make([]SensorReading, 0, len(readings))}
	for _, r := range readings {
		req.Readings = append(req.Readings, SensorReading{
			Timestamp:     r.RecordedAt.UTC().Format(time.RFC3339),
			BloodPressure: r.BloodPressure,
			BloodGlucose:  r.BloodGlucose,
			HeartRate:     r.HeartRate,
			Activity:      r.Activity,
		})
	}

	log := c.logger.WithFields(logrus.Fields{
		"client":   "scorer",
		"method":   "Predict",
		"readings": len(readings),
	})
	log.Debug("Calling scorer")

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post(predictPath)
	if err != nil {
		log.WithError(err).Error("Scorer call failed")
		return nil, fmt.Errorf("scorer request failed: %w", err)
	}
	if resp.IsError() {
		detail := upstreamDetail(resp.Body())
		log.WithField("status", resp.StatusCode()).WithField("detail", detail).Error("Scorer returned error status")
		return nil, &StatusError{StatusCode: resp.StatusCode(), Detail: detail}
	}

	var reply predictReply
	if err := json.Unmarshal(resp.Body(), &reply); err != nil {
		return nil, fmt.Errorf("failed to decode scorer reply: %w", err)
	}
	return normalize(reply)
}

// Health проверяет доступность скорера
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.httpClient.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("scorer health check failed: %w", err)
	}
	if resp.IsError() {
		return &StatusError{StatusCode: resp.StatusCode(), Detail: upstreamDetail(resp.Body())}
	}
	return nil
}

func normalize(r predictReply) (*models.ScorerResult, error) {
	score := firstOf(r.HealthStabilityScore, r.SnakeHealthStabilityScore, r.Score)
	if score == nil {
		return nil, ErrMalformedReply
	}

	result := &models.ScorerResult{
		Score:               *score,
		ReconstructionError: firstOf(r.ReconstructionError, r.SnakeReconstructionError),
	}
	if v := firstOf(r.IsolationScore, r.SnakeIsolationScore, r.SubscoreA); v != nil {
		result.EdgeSubscore = *v
	}
	if v := firstOf(r.LSTMScore, r.SnakeLSTMScore, r.SubscoreB); v != nil {
		result.SequenceSubscore = *v
	}
	return result, nil
}

func firstOf(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func upstreamDetail(body []byte) string {
	var reply errorReply
	if err := json.Unmarshal(body, &reply); err == nil && reply.Detail != "" {
		return reply.Detail
	}
	return strings.TrimSpace(string(body))
}
