package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/repository/memory"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/shenikar/alertcare_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pipelineFixture struct {
	*dispatchWorld
	readings    *mocks.MockReadingRepository
	predictions *mocks.MockPredictionRepository
	scorer      *mocks.MockScorerClient
	alerts      *memory.AlertStore
	pipeline    *service.Pipeline
	trigger     *models.Reading
	caregiver   *models.Assignment
	doctor      *models.Assignment
}

func newPipelineFixture(t *testing.T, autoPreview bool) pipelineFixture {
	ctrl := gomock.NewController(t)
	w := newDispatchWorld(t)
	f := pipelineFixture{
		dispatchWorld: w,
		readings:      mocks.NewMockReadingRepository(ctrl),
		predictions:   mocks.NewMockPredictionRepository(ctrl),
		scorer:        mocks.NewMockScorerClient(ctrl),
		alerts:        memory.NewAlertStore(),
		trigger: &models.Reading{
			ID:         uuid.New(),
			PatientID:  w.patient.ID,
			RecordedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		caregiver: &models.Assignment{PatientID: w.patient.ID, RecipientType: models.RecipientCaregiver, RecipientID: uuid.New()},
		doctor:    &models.Assignment{PatientID: w.patient.ID, RecipientType: models.RecipientDoctor, RecipientID: uuid.New()},
	}

	gateway := service.NewPredictionGateway(f.readings, f.predictions, f.scorer, service.GatewayConfig{
		Window:     720 * time.Hour,
		MinHistory: 168 * time.Hour,
	}, w.logger, w.metrics)
	router := service.NewAlertRouter(w.careTeam, f.alerts, nil, true, w.logger, w.metrics)
	f.pipeline = service.NewPipeline(gateway, router, w.dispatcher, autoPreview, w.logger, w.metrics)

	w.careTeam.EXPECT().ActiveCaregiverFor(gomock.Any(), w.patient.ID).Return(f.caregiver, nil).AnyTimes()
	w.careTeam.EXPECT().ActiveDoctorFor(gomock.Any(), w.patient.ID).Return(f.doctor, nil).AnyTimes()
	f.readings.EXPECT().GetReading(gomock.Any(), f.trigger.ID).Return(f.trigger, nil).AnyTimes()
	return f
}

// withHistory отдает окно указанной длины, заканчивающееся триггерным измерением
func (f pipelineFixture) withHistory(span time.Duration) {
	first := &models.Reading{ID: uuid.New(), PatientID: f.patient.ID, RecordedAt: f.trigger.RecordedAt.Add(-span)}
	f.readings.EXPECT().ListWindow(gomock.Any(), f.patient.ID, gomock.Any(), f.trigger.RecordedAt).
		Return([]*models.Reading{first, f.trigger}, nil).AnyTimes()
}

func (f pipelineFixture) scored(score float64) {
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(&models.ScorerResult{Score: score}, nil)
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).Return(true, nil)
}

func TestPipeline_SubmitReading_InsufficientHistory(t *testing.T) {
	f := newPipelineFixture(t, false)
	f.withHistory(40 * time.Hour)

	outcome, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeInsufficientHistory, outcome.Status)
	require.NotNil(t, outcome.Shortfall)
	assert.Equal(t, 40, outcome.Shortfall.HaveHours)
	assert.Equal(t, 168, outcome.Shortfall.NeedHours)
	assert.Nil(t, outcome.Prediction)
	assert.NotNil(t, outcome.Alerts)
	assert.Empty(t, outcome.Alerts)
}

func TestPipeline_SubmitReading_SustainedDeterioration(t *testing.T) {
	f := newPipelineFixture(t, true)
	f.withHistory(200 * time.Hour)
	f.scored(61)

	outcome, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomePredicted, outcome.Status)
	assert.Equal(t, models.RiskSustainedDeterioration, outcome.Category)
	require.Len(t, outcome.Alerts, 2)
	for _, a := range outcome.Alerts {
		assert.Equal(t, models.PriorityHigh, a.Priority)
	}
	assert.Empty(t, outcome.DispatchCandidates, "preview is only for high-risk decline")
}

func TestPipeline_SubmitReading_RepeatedAlertsAreSuppressed(t *testing.T) {
	f := newPipelineFixture(t, false)
	f.withHistory(200 * time.Hour)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(&models.ScorerResult{Score: 75}, nil).Times(2)
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	first, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)
	require.NoError(t, err)
	require.Len(t, first.Alerts, 1)
	assert.Equal(t, models.RecipientCaregiver, first.Alerts[0].RecipientType)

	second, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)
	require.NoError(t, err)
	assert.Empty(t, second.Alerts)
	assert.Equal(t, 1, second.SuppressedAlerts)
}

func TestPipeline_SubmitReading_HighRiskDeclinePreview(t *testing.T) {
	f := newPipelineFixture(t, true)
	f.healthy()
	f.withHistory(200 * time.Hour)
	f.scored(22)

	outcome, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)

	require.NoError(t, err)
	assert.Equal(t, models.RiskHighRiskDecline, outcome.Category)
	assert.Len(t, outcome.Alerts, 2)
	require.Len(t, outcome.DispatchCandidates, 4)
	assert.Equal(t, "F1", outcome.DispatchCandidates[0].Snapshot.FacilityID)
	assert.True(t, outcome.DispatchCandidates[0].Recommended)
}

func TestPipeline_SubmitReading_Superseded(t *testing.T) {
	f := newPipelineFixture(t, false)
	f.withHistory(200 * time.Hour)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(&models.ScorerResult{Score: 40}, nil)
	f.predictions.EXPECT().SaveIfLatest(gomock.Any(), gomock.Any()).Return(false, nil)

	outcome, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuperseded, outcome.Status)
	assert.Empty(t, outcome.Alerts)
}

func TestPipeline_SubmitReading_ScorerUnavailable(t *testing.T) {
	f := newPipelineFixture(t, false)
	f.withHistory(200 * time.Hour)
	f.scorer.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	outcome, err := f.pipeline.SubmitReading(context.Background(), f.patient.ID, f.trigger.ID)

	assert.Nil(t, outcome)
	var unavailable *service.ScorerUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "connection refused", unavailable.Upstream)
}
