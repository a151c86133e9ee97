package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/alertcare_dispatch/internal/feeds/feedstest"
	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/repository/memory"
	"github.com/shenikar/alertcare_dispatch/internal/service"
	"github.com/shenikar/alertcare_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

const testSector = "north"

// dispatchWorld - четыре учреждения со скриптовыми фидами и in-memory реестрами
type dispatchWorld struct {
	patient    *models.Patient
	facilities []*models.Facility

	beds      feedstest.BedCensus
	oxygen    feedstest.OxygenSensor
	transport feedstest.TransportTracker

	directory *mocks.MockFacilityDirectory
	careTeam  *mocks.MockCareTeamDirectory
	tickets   *mocks.MockTicketRepository
	overrides *memory.OverrideStore
	reserver  *memory.BedReserver

	logger     *logrus.Logger
	metrics    *service.Metrics
	registry   *service.OverrideRegistry
	aggregator *service.ResourceAggregator
	dispatcher *service.DispatchOrchestrator
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newDispatchWorld(t *testing.T) *dispatchWorld {
	ctrl := gomock.NewController(t)
	w := &dispatchWorld{
		patient: &models.Patient{ID: uuid.New(), Name: "Jane Roe", Sector: testSector},
		facilities: []*models.Facility{
			{ID: "F1", Name: "Central", Latitude: 55.7558, Longitude: 37.6173},
			{ID: "F2", Name: "Riverside", Latitude: 55.7900, Longitude: 37.5300},
			{ID: "F3", Name: "Hillcrest", Latitude: 55.7000, Longitude: 37.7000},
			{ID: "F4", Name: "Lakeside", Latitude: 55.9000, Longitude: 37.4000},
		},
		beds:      feedstest.NewBedCensus(),
		oxygen:    feedstest.NewOxygenSensor(),
		transport: feedstest.NewTransportTracker(),
		directory: mocks.NewMockFacilityDirectory(ctrl),
		careTeam:  mocks.NewMockCareTeamDirectory(ctrl),
		tickets:   mocks.NewMockTicketRepository(ctrl),
		overrides: memory.NewOverrideStore(),
		reserver:  memory.NewBedReserver(time.Minute),
		logger:    discardLogger(),
		metrics:   service.NewMetrics(prometheus.NewRegistry()),
	}

	w.directory.EXPECT().ListFacilities(gomock.Any()).Return(w.facilities, nil).AnyTimes()
	w.directory.EXPECT().GetFacility(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*models.Facility, error) {
			for _, f := range w.facilities {
				if f.ID == id {
					return f, nil
				}
			}
			return nil, fmt.Errorf("facility %s: %w", id, service.ErrFacilityNotFound)
		}).AnyTimes()
	w.directory.EXPECT().ProximityTable(gomock.Any(), testSector).
		Return(map[string]int{"F1": 20, "F2": 15, "F3": 10, "F4": 5}, nil).AnyTimes()
	w.careTeam.EXPECT().GetPatient(gomock.Any(), w.patient.ID).Return(w.patient, nil).AnyTimes()

	w.registry = service.NewOverrideRegistry(w.overrides, w.directory, w.logger, w.metrics)
	w.aggregator = w.newAggregator(w.registry, 500*time.Millisecond)
	w.dispatcher = service.NewDispatchOrchestrator(
		w.directory,
		w.careTeam,
		w.aggregator,
		service.NewDispatchScorer(w.directory, w.logger),
		w.tickets,
		w.reserver,
		w.logger,
		w.metrics,
	)
	return w
}

func (w *dispatchWorld) newAggregator(registry *service.OverrideRegistry, feedTimeout time.Duration) *service.ResourceAggregator {
	return service.NewResourceAggregator(w.beds, w.oxygen, w.transport, registry, service.AggregatorConfig{
		FeedTimeout:      feedTimeout,
		MinSafeOxygenPSI: 400,
		FanoutLimit:      4,
	}, w.logger, w.metrics)
}

// healthy настраивает одинаковые исправные фиды для всех учреждений
func (w *dispatchWorld) healthy() *dispatchWorld {
	for _, f := range w.facilities {
		w.beds.On(f.ID, feedstest.Beds(5, 20))
		w.oxygen.On(f.ID, feedstest.Oxygen(520))
		w.transport.On(f.ID, feedstest.Transport(2, 10))
	}
	return w
}

func (w *dispatchWorld) override(t *testing.T, facilityID string, allow bool) {
	t.Helper()
	_, err := w.registry.SetOverride(context.Background(), facilityID, models.OverrideRequest{
		AllowDispatch: allow,
		Reason:        "red phone",
		SetBy:         "charge-nurse",
	})
	if err != nil {
		t.Fatalf("set override: %v", err)
	}
}

func (w *dispatchWorld) request(facilityID string) models.DispatchRequest {
	return models.DispatchRequest{
		PatientID:  w.patient.ID,
		FacilityID: facilityID,
		Sector:     testSector,
		Condition:  "cardiac",
	}
}
