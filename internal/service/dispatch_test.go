package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/alertcare_dispatch/internal/feeds/feedstest"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchOrchestrator_ExecuteDispatch_SkipsOverriddenTopCandidate(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	w.override(t, "F1", false)

	var stored *models.DispatchTicket
	w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ticket *models.DispatchTicket) error {
			stored = ticket
			return nil
		})

	ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request(""))

	require.NoError(t, err)
	assert.Equal(t, "F2", ticket.FacilityID)
	assert.Equal(t, models.TicketDispatched, ticket.Status)
	assert.Equal(t, 10, ticket.ETAMinutes)
	assert.Equal(t, w.patient.ID, ticket.PatientID)
	assert.Equal(t, "F2", ticket.ResourcesAtCommit.FacilityID)
	assert.True(t, ticket.ResourcesAtCommit.IsSafeForDispatch)
	assert.Same(t, ticket, stored)
}

func TestDispatchOrchestrator_OrchestrateDispatch(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	w.override(t, "F1", false)

	ranked, err := w.dispatcher.OrchestrateDispatch(context.Background(), w.patient.ID, testSector, "cardiac")

	require.NoError(t, err)
	require.Len(t, ranked, 4)
	assert.Equal(t, []string{"F2", "F3", "F4", "F1"}, []string{
		ranked[0].Snapshot.FacilityID,
		ranked[1].Snapshot.FacilityID,
		ranked[2].Snapshot.FacilityID,
		ranked[3].Snapshot.FacilityID,
	})
	assert.True(t, ranked[0].Recommended)
	for _, r := range ranked[1:] {
		assert.False(t, r.Recommended)
	}
}

func TestDispatchOrchestrator_ExecuteDispatch_RevalidationFailure(t *testing.T) {
	w := newDispatchWorld(t)
	for _, id := range []string{"F1", "F3", "F4"} {
		w.beds.On(id, feedstest.Beds(5, 20))
		w.oxygen.On(id, feedstest.Oxygen(520))
		w.transport.On(id, feedstest.Transport(2, 10))
	}
	// F2 лучший при ранжировании, но к моменту фиксации койки заняты
	w.beds.On("F2", feedstest.Beds(5, 20), feedstest.Beds(0, 20))
	w.oxygen.On("F2", feedstest.Oxygen(520))
	w.transport.On("F2", feedstest.Transport(2, 10))
	w.override(t, "F1", false)

	ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request(""))

	assert.Nil(t, ticket)
	var failure *service.DispatchFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, service.FailureRevalidation, failure.Kind)
	assert.Equal(t, "F2", failure.FacilityID)
	assert.Contains(t, failure.Reason, "no ICU beds free")
	require.Len(t, failure.Candidates, 4)
	assert.Equal(t, "F2", failure.Candidates[0].Snapshot.FacilityID)
	assert.Equal(t, 2, w.beds.Calls("F2"))
}

func TestDispatchOrchestrator_ExecuteDispatch_NoSafeFacility(t *testing.T) {
	w := newDispatchWorld(t)
	for _, f := range w.facilities {
		w.beds.On(f.ID, feedstest.Beds(5, 20))
		w.oxygen.On(f.ID, feedstest.Oxygen(300))
		w.transport.On(f.ID, feedstest.Transport(2, 10))
	}

	_, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request(""))

	var failure *service.DispatchFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, service.FailureNoSafeFacility, failure.Kind)
	assert.ErrorIs(t, err, service.ErrNoSafeFacility)
	assert.Len(t, failure.Candidates, 4)
	for _, c := range failure.Candidates {
		assert.False(t, c.Recommended)
	}
}

func TestDispatchOrchestrator_ExecuteDispatch_ExplicitFacility(t *testing.T) {
	t.Run("unknown facility", func(t *testing.T) {
		w := newDispatchWorld(t).healthy()

		_, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F9"))

		var failure *service.DispatchFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, service.FailureFacilityNotFound, failure.Kind)
		assert.Equal(t, "F9", failure.FacilityID)
		assert.ErrorIs(t, err, service.ErrFacilityNotFound)
		assert.Len(t, failure.Candidates, 4)
	})

	t.Run("facility not safe", func(t *testing.T) {
		w := newDispatchWorld(t).healthy()
		w.override(t, "F1", false)

		_, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F1"))

		var failure *service.DispatchFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, service.FailureNotSafe, failure.Kind)
		assert.Contains(t, failure.Reason, "manual override (allow_dispatch=false)")
		assert.Equal(t, "F2", failure.Candidates[0].Snapshot.FacilityID, "caller can retry with the next candidate")
	})

	t.Run("lower ranked safe facility", func(t *testing.T) {
		w := newDispatchWorld(t).healthy()
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F4"))

		require.NoError(t, err)
		assert.Equal(t, "F4", ticket.FacilityID)
	})
}

func TestDispatchOrchestrator_ExecuteDispatch_BedReservation(t *testing.T) {
	t.Run("last free bed goes to one dispatch", func(t *testing.T) {
		w := newDispatchWorld(t)
		for _, id := range []string{"F1", "F2", "F4"} {
			w.beds.On(id, feedstest.Beds(5, 20))
			w.oxygen.On(id, feedstest.Oxygen(520))
			w.transport.On(id, feedstest.Transport(2, 10))
		}
		w.beds.On("F3", feedstest.Beds(1, 20))
		w.oxygen.On("F3", feedstest.Oxygen(520))
		w.transport.On("F3", feedstest.Transport(2, 10))
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		first, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F3"))
		require.NoError(t, err)
		assert.Equal(t, "F3", first.FacilityID)

		_, err = w.dispatcher.ExecuteDispatch(context.Background(), w.request("F3"))

		var failure *service.DispatchFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, service.FailureBedUnavailable, failure.Kind)
		assert.Equal(t, "F3", failure.FacilityID)
	})

	t.Run("admissions reflected by the feed do not block later dispatches", func(t *testing.T) {
		w := newDispatchWorld(t)
		for _, id := range []string{"F2", "F3", "F4"} {
			w.beds.On(id, feedstest.Beds(0, 20))
			w.oxygen.On(id, feedstest.Oxygen(520))
			w.transport.On(id, feedstest.Transport(2, 10))
		}
		// каждая госпитализация отражается фидом: 3, затем 2, затем 1 свободная койка
		w.beds.On("F1",
			feedstest.Beds(3, 20), feedstest.Beds(3, 20),
			feedstest.Beds(2, 20), feedstest.Beds(2, 20),
			feedstest.Beds(1, 20), feedstest.Beds(1, 20),
		)
		w.oxygen.On("F1", feedstest.Oxygen(520))
		w.transport.On("F1", feedstest.Transport(2, 10))
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		for i := range 3 {
			ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F1"))
			require.NoError(t, err, "dispatch %d", i+1)
			assert.Equal(t, "F1", ticket.FacilityID)
		}
	})

	t.Run("override skips reservation", func(t *testing.T) {
		w := newDispatchWorld(t)
		for _, id := range []string{"F1", "F2", "F3"} {
			w.beds.On(id, feedstest.Beds(5, 20))
			w.oxygen.On(id, feedstest.Oxygen(520))
			w.transport.On(id, feedstest.Transport(2, 10))
		}
		w.beds.On("F4", feedstest.Beds(0, 20))
		w.oxygen.On("F4", feedstest.Oxygen(520))
		w.transport.On("F4", feedstest.Transport(1, 25))
		w.override(t, "F4", true)
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		for range 2 {
			ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F4"))
			require.NoError(t, err)
			assert.Equal(t, "F4", ticket.FacilityID)
			require.NotNil(t, ticket.ResourcesAtCommit.Override)
		}
	})
}

func TestDispatchOrchestrator_ExecuteDispatch_TicketStoreError(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	w.beds.On("F1", feedstest.Beds(1, 20))
	gomock.InOrder(
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db is down")),
		w.tickets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	ticket, err := w.dispatcher.ExecuteDispatch(context.Background(), w.request("F1"))

	assert.Nil(t, ticket)
	require.Error(t, err)
	var failure *service.DispatchFailure
	assert.False(t, errors.As(err, &failure))

	// резерв последней койки возвращен, повторная попытка проходит
	ticket, err = w.dispatcher.ExecuteDispatch(context.Background(), w.request("F1"))
	require.NoError(t, err)
	assert.Equal(t, "F1", ticket.FacilityID)
}

func TestDispatchOrchestrator_ExecuteDispatch_UnknownPatient(t *testing.T) {
	w := newDispatchWorld(t).healthy()
	stranger := uuid.New()
	w.careTeam.EXPECT().GetPatient(gomock.Any(), stranger).Return(nil, service.ErrPatientNotFound)

	req := w.request("")
	req.PatientID = stranger
	_, err := w.dispatcher.ExecuteDispatch(context.Background(), req)

	assert.ErrorIs(t, err, service.ErrPatientNotFound)
}

func TestDispatchOrchestrator_Snapshot(t *testing.T) {
	w := newDispatchWorld(t).healthy()

	snap, err := w.dispatcher.Snapshot(context.Background(), "F2")
	require.NoError(t, err)
	assert.Equal(t, "F2", snap.FacilityID)

	_, err = w.dispatcher.Snapshot(context.Background(), "F9")
	assert.ErrorIs(t, err, service.ErrFacilityNotFound)
}
