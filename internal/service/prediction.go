package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/scorer"
	"github.com/sirupsen/logrus"
)

// GatewayConfig - параметры окна и скорера
type GatewayConfig struct {
	Window        time.Duration
	MinHistory    time.Duration
	ScorerTimeout time.Duration
}

type inflightPrediction struct {
	readingAt time.Time
	cancel    context.CancelCauseFunc
}

// PredictionGateway строит скользящее окно, проверяет историю и вызывает скорер.
// Для каждого пациента в полете не больше одного вызова: более новое измерение
// отменяет более старое.
type PredictionGateway struct {
	readings    ReadingRepository
	predictions PredictionRepository
	scorer      ScorerClient
	cfg         GatewayConfig
	logger      *logrus.Logger
	metrics     *Metrics
	now         func() time.Time

	mu       sync.Mutex
	inflight map[uuid.UUID]*inflightPrediction
}

func NewPredictionGateway(readings ReadingRepository, predictions PredictionRepository, scorer ScorerClient, cfg GatewayConfig, logger *logrus.Logger, metrics *Metrics) *PredictionGateway {
	return &PredictionGateway{
		readings:    readings,
		predictions: predictions,
		scorer:      scorer,
		cfg:         cfg,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
		inflight:    make(map[uuid.UUID]*inflightPrediction),
	}
}

// Predict возвращает предсказание для измерения readingID.
// Ошибки: *InsufficientHistoryError (мягкая), *ScorerUnavailableError, ErrSuperseded, ErrReadingNotFound.
func (g *PredictionGateway) Predict(ctx context.Context, patientID, readingID uuid.UUID) (*models.StabilityPrediction, error) {
	log := g.logger.WithFields(logrus.Fields{
		"service":    "prediction",
		"method":     "Predict",
		"patient_id": patientID,
		"reading_id": readingID,
	})

	trigger, err := g.readings.GetReading(ctx, readingID)
	if err != nil {
		log.WithError(err).Warn("Failed to load trigger reading")
		return nil, fmt.Errorf("service: could not load reading: %w", err)
	}
	if trigger.PatientID != patientID {
		log.Warn("Reading belongs to a different patient")
		return nil, fmt.Errorf("service: reading %s for patient %s: %w", readingID, patientID, ErrReadingNotFound)
	}

	window, err := g.readings.ListWindow(ctx, patientID, trigger.RecordedAt.Add(-g.cfg.Window), trigger.RecordedAt)
	if err != nil {
		log.WithError(err).Error("Failed to load rolling window")
		return nil, fmt.Errorf("service: could not load rolling window: %w", err)
	}
	// скорер чувствителен к порядку
	slices.SortStableFunc(window, func(a, b *models.Reading) int {
		return a.RecordedAt.Compare(b.RecordedAt)
	})

	if err := checkHistory(window, g.cfg.MinHistory); err != nil {
		return nil, err
	}

	scoreCtx, release, err := g.begin(ctx, patientID, trigger.RecordedAt)
	if err != nil {
		return nil, err
	}
	defer release()

	if g.cfg.ScorerTimeout > 0 {
		var cancel context.CancelFunc
		scoreCtx, cancel = context.WithTimeout(scoreCtx, g.cfg.ScorerTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := g.scorer.Predict(scoreCtx, window)
	g.metrics.ScorerDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(context.Cause(scoreCtx), ErrSuperseded) {
			return nil, ErrSuperseded
		}
		log.WithError(err).Error("Scorer call failed")
		return nil, scorerUnavailable(err)
	}

	prediction := &models.StabilityPrediction{
		PatientID:           patientID,
		SourceReadingID:     readingID,
		ReadingAt:           trigger.RecordedAt,
		Score:               result.Score,
		EdgeSubscore:        result.EdgeSubscore,
		SequenceSubscore:    result.SequenceSubscore,
		ReconstructionError: result.ReconstructionError,
		Timestamp:           g.now().UTC(),
	}

	written, err := g.predictions.SaveIfLatest(ctx, prediction)
	if err != nil {
		log.WithError(err).Error("Failed to store prediction")
		return nil, fmt.Errorf("service: could not store prediction: %w", err)
	}
	if !written {
		return nil, ErrSuperseded
	}

	log.WithFields(logrus.Fields{
		"score":   prediction.Score,
		"window":  len(window),
		"latency": time.Since(start).String(),
	}).Info("Prediction computed")
	return prediction, nil
}

// begin регистрирует вызов скорера для пациента и отменяет более старый вызов
func (g *PredictionGateway) begin(ctx context.Context, patientID uuid.UUID, readingAt time.Time) (context.Context, func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cur, ok := g.inflight[patientID]; ok {
		if cur.readingAt.After(readingAt) {
			return nil, nil, ErrSuperseded
		}
		cur.cancel(ErrSuperseded)
	}

	scoreCtx, cancel := context.WithCancelCause(ctx)
	entry := &inflightPrediction{readingAt: readingAt, cancel: cancel}
	g.inflight[patientID] = entry

	release := func() {
		g.mu.Lock()
		if g.inflight[patientID] == entry {
			delete(g.inflight, patientID)
		}
		g.mu.Unlock()
		cancel(nil)
	}
	return scoreCtx, release, nil
}

// checkHistory требует минимум двух измерений и охвата окна не меньше minHistory
func checkHistory(window []*models.Reading, minHistory time.Duration) error {
	need := int(minHistory.Hours())
	if len(window) < 2 {
		return &InsufficientHistoryError{HaveHours: 0, NeedHours: need, Readings: len(window)}
	}

	span := window[len(window)-1].RecordedAt.Sub(window[0].RecordedAt)
	if span < minHistory {
		return &InsufficientHistoryError{HaveHours: int(span.Hours()), NeedHours: need, Readings: len(window)}
	}
	return nil
}

func scorerUnavailable(err error) error {
	var statusErr *scorer.StatusError
	if errors.As(err, &statusErr) {
		return &ScorerUnavailableError{StatusCode: statusErr.StatusCode, Upstream: statusErr.Detail, Err: err}
	}
	return &ScorerUnavailableError{Upstream: err.Error(), Err: err}
}
