package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/feeds/feedstest"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/shenikar/alertcare_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceAggregator_Snapshot_Healthy(t *testing.T) {
	w := newDispatchWorld(t).healthy()

	snap := w.aggregator.Snapshot(context.Background(), "F2")

	assert.True(t, snap.IsSafeForDispatch)
	assert.False(t, snap.Degraded)
	assert.Empty(t, snap.Reason)
	assert.Equal(t, 5, snap.ICUBedsFree)
	assert.Equal(t, 20, snap.ICUBedsTotal)
	assert.InDelta(t, 520, snap.OxygenPSI, 0.001)
	assert.Equal(t, 2, snap.AmbulanceAvailable)
	assert.Equal(t, 10, snap.AmbulanceETAMinutes)
	assert.False(t, snap.LastSync.IsZero())
	assert.Nil(t, snap.Override)
}

func TestResourceAggregator_Snapshot_UnsafeResources(t *testing.T) {
	t.Run("no free beds", func(t *testing.T) {
		w := newDispatchWorld(t)
		w.beds.On("F1", feedstest.Beds(0, 20))
		w.oxygen.On("F1", feedstest.Oxygen(520))
		w.transport.On("F1", feedstest.Transport(1, 7))

		snap := w.aggregator.Snapshot(context.Background(), "F1")

		assert.False(t, snap.IsSafeForDispatch)
		assert.False(t, snap.Degraded)
		assert.Contains(t, snap.Reason, "no ICU beds free")
	})

	t.Run("oxygen at minimum", func(t *testing.T) {
		w := newDispatchWorld(t)
		w.beds.On("F1", feedstest.Beds(4, 20))
		w.oxygen.On("F1", feedstest.Oxygen(400))
		w.transport.On("F1", feedstest.Transport(1, 7))

		snap := w.aggregator.Snapshot(context.Background(), "F1")

		assert.False(t, snap.IsSafeForDispatch)
		assert.Contains(t, snap.Reason, "oxygen pressure")
	})
}

func TestResourceAggregator_Snapshot_OverrideTakesPrecedence(t *testing.T) {
	t.Run("allow over empty ICU", func(t *testing.T) {
		w := newDispatchWorld(t)
		w.beds.On("F1", feedstest.Beds(0, 20))
		w.oxygen.On("F1", feedstest.Oxygen(520))
		w.transport.On("F1", feedstest.Transport(1, 7))
		w.override(t, "F1", true)

		snap := w.aggregator.Snapshot(context.Background(), "F1")

		assert.True(t, snap.IsSafeForDispatch)
		require.NotNil(t, snap.Override)
		assert.True(t, snap.Override.AllowDispatch)
		assert.Equal(t, 0, snap.ICUBedsFree, "measurements are reported as read")
		assert.Contains(t, snap.Reason, "manual override (allow_dispatch=true) by charge-nurse")
	})

	t.Run("deny over healthy feeds", func(t *testing.T) {
		w := newDispatchWorld(t).healthy()
		w.override(t, "F3", false)

		snap := w.aggregator.Snapshot(context.Background(), "F3")

		assert.False(t, snap.IsSafeForDispatch)
		assert.False(t, snap.Degraded)
		require.NotNil(t, snap.Override)
		assert.False(t, snap.Override.AllowDispatch)
	})

	t.Run("allow over degraded feed", func(t *testing.T) {
		w := newDispatchWorld(t)
		w.beds.On("F1", feedstest.Beds(3, 20))
		w.oxygen.On("F1", feedstest.Step[models.OxygenReading]{Err: errors.New("sensor offline")})
		w.transport.On("F1", feedstest.Transport(1, 7))
		w.override(t, "F1", true)

		snap := w.aggregator.Snapshot(context.Background(), "F1")

		assert.True(t, snap.IsSafeForDispatch)
		assert.True(t, snap.Degraded)
	})
}

func TestResourceAggregator_Snapshot_FeedTimeout(t *testing.T) {
	w := newDispatchWorld(t)
	aggregator := w.newAggregator(w.registry, 100*time.Millisecond)
	w.beds.On("F1", feedstest.Beds(6, 20))
	w.oxygen.On("F1", feedstest.Step[models.OxygenReading]{Value: &models.OxygenReading{PSI: 600}, Delay: 5 * time.Second})
	w.transport.On("F1", feedstest.Transport(3, 4))

	start := time.Now()
	snap := aggregator.Snapshot(context.Background(), "F1")
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "snapshot must not wait for a hung feed")
	assert.True(t, snap.Degraded)
	assert.False(t, snap.IsSafeForDispatch)
	assert.Zero(t, snap.OxygenPSI)
	assert.Equal(t, 6, snap.ICUBedsFree)
	assert.Contains(t, snap.Reason, "oxygen sensor unavailable")
}

func TestResourceAggregator_Snapshot_TransportFailureMakesETAUnknown(t *testing.T) {
	w := newDispatchWorld(t)
	w.beds.On("F2", feedstest.Beds(6, 20))
	w.oxygen.On("F2", feedstest.Oxygen(510))
	w.transport.On("F2", feedstest.Step[models.TransportStatus]{Err: errors.New("tracker 502")})

	snap := w.aggregator.Snapshot(context.Background(), "F2")

	assert.Equal(t, models.UnknownETA, snap.AmbulanceETAMinutes)
	assert.Zero(t, snap.AmbulanceAvailable)
	assert.True(t, snap.Degraded)
	assert.False(t, snap.IsSafeForDispatch)
	assert.Contains(t, snap.Reason, "transport tracker unavailable")
}

func TestResourceAggregator_Snapshot_AllFeedsDown(t *testing.T) {
	w := newDispatchWorld(t)

	snap := w.aggregator.Snapshot(context.Background(), "F4")

	assert.True(t, snap.Degraded)
	assert.False(t, snap.IsSafeForDispatch)
	assert.False(t, snap.LastSync.IsZero())
	assert.Contains(t, snap.Reason, "bed census unavailable")
	assert.Contains(t, snap.Reason, "oxygen sensor unavailable")
	assert.Contains(t, snap.Reason, "transport tracker unavailable")
}

func TestResourceAggregator_Snapshot_OverrideRegistryUnavailable(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	store := mocks.NewMockOverrideStore(gomock.NewController(t))
	store.EXPECT().Get(gomock.Any(), "F1").Return(nil, errors.New("redis: connection refused"))
	registry := service.NewOverrideRegistry(store, w.directory, w.logger, w.metrics)
	aggregator := w.newAggregator(registry, time.Second)

	snap := aggregator.Snapshot(context.Background(), "F1")

	assert.False(t, snap.IsSafeForDispatch)
	assert.False(t, snap.Degraded)
	assert.Contains(t, snap.Reason, "override registry unavailable")
}

func TestResourceAggregator_SnapshotAll_PreservesOrder(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	ids := []string{"F4", "F2", "F3", "F1"}

	snaps := w.aggregator.SnapshotAll(context.Background(), ids)

	require.Len(t, snaps, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, snaps[i].FacilityID)
		assert.Equal(t, 1, w.beds.Calls(id))
	}
}
