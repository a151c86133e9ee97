package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient(srv.URL, time.Second, logger)
}

func TestClient_Predict_CamelCaseReply(t *testing.T) {
	hr := 88.0
	readings := []*models.Reading{
		{RecordedAt: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)},
		{RecordedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), HeartRate: &hr},
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ml/predict", r.URL.Path)

		var req PredictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Readings, 2)
		assert.Equal(t, "2026-02-01T08:00:00Z", req.Readings[0].Timestamp)
		assert.Nil(t, req.Readings[0].HeartRate)
		require.NotNil(t, req.Readings[1].HeartRate)
		assert.InDelta(t, 88.0, *req.Readings[1].HeartRate, 0.001)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"healthStabilityScore":73.2,"isolationScore":0.4,"lstmScore":0.8,"reconstructionError":0.012}`))
	})

	result, err := client.Predict(context.Background(), readings)

	require.NoError(t, err)
	assert.InDelta(t, 73.2, result.Score, 0.0001)
	assert.InDelta(t, 0.4, result.EdgeSubscore, 0.0001)
	assert.InDelta(t, 0.8, result.SequenceSubscore, 0.0001)
	require.NotNil(t, result.ReconstructionError)
	assert.InDelta(t, 0.012, *result.ReconstructionError, 0.0001)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		score    float64
		edge     float64
		sequence float64
		recon    bool
		wantErr  error
	}{
		{
			name:     "snake case",
			body:     `{"health_stability_score":55,"isolation_score":0.1,"lstm_score":0.2,"reconstruction_error":1.5}`,
			score:    55,
			edge:     0.1,
			sequence: 0.2,
			recon:    true,
		},
		{
			name:     "generic names",
			body:     `{"score":91,"subscoreA":0.3,"subscoreB":0.6}`,
			score:    91,
			edge:     0.3,
			sequence: 0.6,
		},
		{
			name:  "score only",
			body:  `{"score":12.5}`,
			score: 12.5,
		},
		{
			name:    "no score",
			body:    `{"isolationScore":0.4}`,
			wantErr: ErrMalformedReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reply predictReply
			require.NoError(t, json.Unmarshal([]byte(tt.body), &reply))

			result, err := normalize(reply)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.score, result.Score, 0.0001)
			assert.InDelta(t, tt.edge, result.EdgeSubscore, 0.0001)
			assert.InDelta(t, tt.sequence, result.SequenceSubscore, 0.0001)
			assert.Equal(t, tt.recon, result.ReconstructionError != nil)
		})
	}
}

func TestClient_Predict_ErrorStatus(t *testing.T) {
	t.Run("json detail", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"detail":"model not loaded"}`))
		})

		_, err := client.Predict(context.Background(), nil)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, "model not loaded", statusErr.Detail)
	})

	t.Run("plain body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom\n"))
		})

		_, err := client.Predict(context.Background(), nil)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "boom", statusErr.Detail)
	})
}

func TestClient_Predict_MalformedReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	_, err := client.Predict(context.Background(), nil)

	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestClient_Health(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/health", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.Health(context.Background()))

	healthy.Store(false)
	var statusErr *StatusError
	assert.ErrorAs(t, client.Health(context.Background()), &statusErr)
}
