package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/scorer"
	"github.com/shenikar/alertcare_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gatewayFixture struct {
	gateway     *PredictionGateway
	readings    *mocks.MockReadingRepository
	predictions *mocks.MockPredictionRepository
	scorer      *mocks.MockScorerClient
}

func newTestGateway(t *testing.T) gatewayFixture {
	ctrl := gomock.NewController(t)
	f := gatewayFixture{
		readings:    mocks.NewMockReadingRepository(ctrl),
		predictions: mocks.NewMockPredictionRepository(ctrl),
		scorer:      mocks.NewMockScorerClient(ctrl),
	}
	cfg := GatewayConfig{
		Window:     720 * time.Hour,
		MinHistory: 168 * time.Hour,
	}
	f.gateway = NewPredictionGateway(f.readings, f.predictions, f.scorer, cfg, newTestLogger(), newTestMetrics())
	return f
}

// historyEndingAt возвращает измерения каждые 4 часа за span, новые первыми
func historyEndingAt(patientID uuid.UUID, end time.Time, span time.Duration) []*models.Reading {
	hr := 72.0
	var out []*models.Reading
	for at := end; !at.Before(end.Add(-span)); at = at.Add(-4 * time.Hour) {
		out = append(out, &models.Reading{ID: uuid.New(), PatientID: patientID, RecordedAt: at, HeartRate: &hr})
	}
	return out
}

func expectWindow(f gatewayFixture, patientID uuid.UUID, trigger *models.Reading, history []*models.Reading) {
	f.readings.EXPECT().GetReading(gomock.Any(), trigger.ID).Return(trigger, nil)
	f.readings.EXPECT().
		ListWindow(gomock.Any(), patientID, trigger.RecordedAt.Add(-720*time.Hour), trigger.RecordedAt).
		Return(history, nil)
}

func TestPredictionGateway_Predict_Success(t *testing.T) {
	f := newTestGateway(t)
	patientID := uuid.New()
	end := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	history := historyEndingAt(patientID, end, 200*time.Hour)
	trigger := history[0]
	recErr := 0.031

	expectWindow(f, patientID, trigger, history)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, readings []*models.Reading) (*models.ScorerResult, error) {
			assert.True(t, slices.IsSortedFunc(readings, func(a, b *models.Reading) int {
				return a.RecordedAt.Compare(b.RecordedAt)
			}), "window must be ascending")
			assert.Equal(t, trigger.ID, readings[len(readings)-1].ID)
			return &models.ScorerResult{Score: 82.5, EdgeSubscore: 0.7, SequenceSubscore: 0.9, ReconstructionError: &recErr}, nil
		})
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.StabilityPrediction) (bool, error) {
			assert.Equal(t, trigger.ID, p.SourceReadingID)
			assert.Equal(t, end, p.ReadingAt)
			return true, nil
		})

	prediction, err := f.gateway.Predict(context.Background(), patientID, trigger.ID)

	require.NoError(t, err)
	assert.Equal(t, patientID, prediction.PatientID)
	assert.InDelta(t, 82.5, prediction.Score, 0.0001)
	assert.InDelta(t, 0.7, prediction.EdgeSubscore, 0.0001)
	assert.InDelta(t, 0.9, prediction.SequenceSubscore, 0.0001)
	require.NotNil(t, prediction.ReconstructionError)
	assert.InDelta(t, recErr, *prediction.ReconstructionError, 0.0001)
}

func TestPredictionGateway_Predict_InsufficientHistory(t *testing.T) {
	t.Run("40 hours of 168", func(t *testing.T) {
		f := newTestGateway(t)
		patientID := uuid.New()
		history := historyEndingAt(patientID, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC), 40*time.Hour)

		expectWindow(f, patientID, history[0], history)

		_, err := f.gateway.Predict(context.Background(), patientID, history[0].ID)

		var shortfall *InsufficientHistoryError
		require.ErrorAs(t, err, &shortfall)
		assert.Equal(t, 40, shortfall.HaveHours)
		assert.Equal(t, 168, shortfall.NeedHours)
		assert.Equal(t, len(history), shortfall.Readings)
	})

	t.Run("single reading", func(t *testing.T) {
		f := newTestGateway(t)
		patientID := uuid.New()
		trigger := &models.Reading{ID: uuid.New(), PatientID: patientID, RecordedAt: time.Now().UTC()}

		expectWindow(f, patientID, trigger, []*models.Reading{trigger})

		_, err := f.gateway.Predict(context.Background(), patientID, trigger.ID)

		var shortfall *InsufficientHistoryError
		require.ErrorAs(t, err, &shortfall)
		assert.Zero(t, shortfall.HaveHours)
		assert.Equal(t, 1, shortfall.Readings)
	})
}

func TestPredictionGateway_Predict_ScorerUnavailable(t *testing.T) {
	f := newTestGateway(t)
	patientID := uuid.New()
	history := historyEndingAt(patientID, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC), 170*time.Hour)

	expectWindow(f, patientID, history[0], history)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).
		Return(nil, &scorer.StatusError{StatusCode: 503, Detail: "model is still loading"})

	_, err := f.gateway.Predict(context.Background(), patientID, history[0].ID)

	var unavailable *ScorerUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 503, unavailable.StatusCode)
	assert.Equal(t, "model is still loading", unavailable.Upstream)
}

func TestPredictionGateway_Predict_ReadingOfAnotherPatient(t *testing.T) {
	f := newTestGateway(t)
	readingID := uuid.New()

	f.readings.EXPECT().GetReading(gomock.Any(), readingID).
		Return(&models.Reading{ID: readingID, PatientID: uuid.New(), RecordedAt: time.Now()}, nil)

	_, err := f.gateway.Predict(context.Background(), uuid.New(), readingID)

	assert.ErrorIs(t, err, ErrReadingNotFound)
}

func TestPredictionGateway_Predict_NewerPredictionAlreadyStored(t *testing.T) {
	f := newTestGateway(t)
	patientID := uuid.New()
	history := historyEndingAt(patientID, time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC), 200*time.Hour)

	expectWindow(f, patientID, history[0], history)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(&models.ScorerResult{Score: 91}, nil)
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.gateway.Predict(context.Background(), patientID, history[0].ID)

	assert.ErrorIs(t, err, ErrSuperseded)
}

func TestPredictionGateway_Predict_NewerReadingCancelsInFlightCall(t *testing.T) {
	f := newTestGateway(t)
	patientID := uuid.New()
	olderAt := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	newerAt := olderAt.Add(15 * time.Minute)

	history := historyEndingAt(patientID, olderAt, 200*time.Hour)
	older := history[0]
	newer := &models.Reading{ID: uuid.New(), PatientID: patientID, RecordedAt: newerAt}

	f.readings.EXPECT().GetReading(gomock.Any(), older.ID).Return(older, nil)
	f.readings.EXPECT().GetReading(gomock.Any(), newer.ID).Return(newer, nil)
	f.readings.EXPECT().ListWindow(gomock.Any(), patientID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, to time.Time) ([]*models.Reading, error) {
			if to.Equal(newerAt) {
				return append([]*models.Reading{newer}, history...), nil
			}
			return history, nil
		}).Times(2)

	started := make(chan struct{})
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, readings []*models.Reading) (*models.ScorerResult, error) {
			if readings[len(readings)-1].RecordedAt.Equal(olderAt) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return &models.ScorerResult{Score: 64}, nil
		}).Times(2)
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.StabilityPrediction) (bool, error) {
			assert.Equal(t, newer.ID, p.SourceReadingID)
			return true, nil
		}).Times(1)

	olderErr := make(chan error, 1)
	go func() {
		_, err := f.gateway.Predict(context.Background(), patientID, older.ID)
		olderErr <- err
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("scorer was not called for the older reading")
	}

	prediction, err := f.gateway.Predict(context.Background(), patientID, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, prediction.SourceReadingID)

	select {
	case err := <-olderErr:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("older prediction was not cancelled")
	}
}

func TestCheckHistory(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	window := []*models.Reading{
		{RecordedAt: base},
		{RecordedAt: base.Add(168 * time.Hour)},
	}

	assert.NoError(t, checkHistory(window, 168*time.Hour))

	err := checkHistory(window[:1], 168*time.Hour)
	var shortfall *InsufficientHistoryError
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, 168, shortfall.NeedHours)
}
