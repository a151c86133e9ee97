package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	feedBedCensus = "bed_census"
	feedOxygen    = "oxygen_sensor"
	feedTransport = "transport_tracker"
)

var errEmptyFeedReply = errors.New("empty reply")

// AggregatorConfig - параметры опроса фидов ресурсов
type AggregatorConfig struct {
	FeedTimeout      time.Duration
	MinSafeOxygenPSI float64
	FanoutLimit      int
}

// ResourceAggregator параллельно опрашивает три фида учреждения и собирает снимок.
// Отказ одного фида не прерывает снимок: измерение обнуляется, снимок помечается небезопасным.
type ResourceAggregator struct {
	beds      BedCensusAdapter
	oxygen    OxygenSensorAdapter
	transport TransportTrackerAdapter
	overrides *OverrideRegistry
	cfg       AggregatorConfig
	logger    *logrus.Logger
	metrics   *Metrics
	now       func() time.Time
}

func NewResourceAggregator(
	beds BedCensusAdapter,
	oxygen OxygenSensorAdapter,
	transport TransportTrackerAdapter,
	overrides *OverrideRegistry,
	cfg AggregatorConfig,
	logger *logrus.Logger,
	metrics *Metrics,
) *ResourceAggregator {
	if cfg.FanoutLimit < 1 {
		cfg.FanoutLimit = 1
	}
	return &ResourceAggregator{
		beds:      beds,
		oxygen:    oxygen,
		transport: transport,
		overrides: overrides,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Snapshot собирает свежий снимок ресурсов учреждения. Никогда не возвращает ошибку:
// сбои фидов отражаются в Degraded/Reason.
func (a *ResourceAggregator) Snapshot(ctx context.Context, facilityID string) models.FacilitySnapshot {
	log := a.logger.WithFields(logrus.Fields{
		"service":     "resource",
		"method":      "Snapshot",
		"facility_id": facilityID,
	})

	var (
		wg           sync.WaitGroup
		beds         *models.BedCensus
		oxygen       *models.OxygenReading
		transport    *models.TransportStatus
		bedsErr      error
		oxygenErr    error
		transportErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		beds, bedsErr = callFeed(ctx, a, feedBedCensus, func(ctx context.Context) (*models.BedCensus, error) {
			return a.beds.BedCensus(ctx, facilityID)
		})
	}()
	go func() {
		defer wg.Done()
		oxygen, oxygenErr = callFeed(ctx, a, feedOxygen, func(ctx context.Context) (*models.OxygenReading, error) {
			return a.oxygen.OxygenPressure(ctx, facilityID)
		})
	}()
	go func() {
		defer wg.Done()
		transport, transportErr = callFeed(ctx, a, feedTransport, func(ctx context.Context) (*models.TransportStatus, error) {
			return a.transport.Transport(ctx, facilityID)
		})
	}()
	wg.Wait()

	snap := models.FacilitySnapshot{
		FacilityID:          facilityID,
		AmbulanceETAMinutes: models.UnknownETA,
	}
	var reasons []string
	var syncTimes []time.Time

	if bedsErr != nil {
		reasons = append(reasons, fmt.Sprintf("bed census unavailable: %v", bedsErr))
	} else {
		snap.ICUBedsFree = max(beds.ICUBedsFree, 0)
		snap.ICUBedsTotal = max(beds.ICUBedsTotal, 0)
		syncTimes = append(syncTimes, beds.SyncedAt)
	}
	if oxygenErr != nil {
		reasons = append(reasons, fmt.Sprintf("oxygen sensor unavailable: %v", oxygenErr))
	} else {
		snap.OxygenPSI = max(oxygen.PSI, 0)
		syncTimes = append(syncTimes, oxygen.SyncedAt)
	}
	if transportErr != nil {
		reasons = append(reasons, fmt.Sprintf("transport tracker unavailable: %v", transportErr))
	} else {
		snap.AmbulanceAvailable = max(transport.AmbulancesAvailable, 0)
		snap.AmbulanceETAMinutes = transport.ETAMinutes
		syncTimes = append(syncTimes, transport.SyncedAt)
	}

	snap.Degraded = len(reasons) > 0
	snap.LastSync = a.oldestSync(syncTimes)

	if !snap.Degraded {
		if snap.ICUBedsFree <= 0 {
			reasons = append(reasons, "no ICU beds free")
		}
		if snap.OxygenPSI <= a.cfg.MinSafeOxygenPSI {
			reasons = append(reasons, fmt.Sprintf("oxygen pressure %.1f psi at or below minimum %.1f psi", snap.OxygenPSI, a.cfg.MinSafeOxygenPSI))
		}
	}
	snap.IsSafeForDispatch = len(reasons) == 0

	if snap.Degraded {
		a.metrics.SnapshotsDegraded.Inc()
		log.WithField("reason", strings.Join(reasons, "; ")).Warn("Facility snapshot degraded")
	}

	override, err := a.overrides.active(ctx, facilityID)
	if err != nil {
		// без override нельзя знать итоговое решение; выбираем небезопасное
		log.WithError(err).Error("Failed to read override registry")
		snap.IsSafeForDispatch = false
		reasons = append(reasons, "override registry unavailable")
	} else if override != nil {
		snap.Override = override
		snap.IsSafeForDispatch = override.AllowDispatch
		reasons = append([]string{fmt.Sprintf("manual override (allow_dispatch=%t) by %s: %s", override.AllowDispatch, override.SetBy, override.Reason)}, reasons...)
		log.WithField("allow_dispatch", override.AllowDispatch).Info("Manual override applied to snapshot")
	}

	snap.Reason = strings.Join(reasons, "; ")
	return snap
}

// SnapshotAll собирает снимки нескольких учреждений параллельно, сохраняя порядок
func (a *ResourceAggregator) SnapshotAll(ctx context.Context, facilityIDs []string) []models.FacilitySnapshot {
	snaps := make([]models.FacilitySnapshot, len(facilityIDs))

	var g errgroup.Group
	g.SetLimit(a.cfg.FanoutLimit)
	for i, id := range facilityIDs {
		g.Go(func() error {
			snaps[i] = a.Snapshot(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return snaps
}

func (a *ResourceAggregator) oldestSync(times []time.Time) time.Time {
	var oldest time.Time
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		if oldest.IsZero() || t.Before(oldest) {
			oldest = t
		}
	}
	if oldest.IsZero() {
		return a.now().UTC()
	}
	return oldest
}

// callFeed ограничивает вызов фида собственным таймаутом. Таймаут не повторяется
// и трактуется как обычный отказ; результат не ждем, даже если адаптер игнорирует ctx.
func callFeed[T any](ctx context.Context, a *ResourceAggregator, feed string, call func(context.Context) (*T, error)) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.FeedTimeout)
	defer cancel()

	type result struct {
		value *T
		err   error
	}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		v, err := call(ctx)
		done <- result{value: v, err: err}
	}()

	var res result
	select {
	case res = <-done:
		if res.err == nil && res.value == nil {
			res.err = errEmptyFeedReply
		}
	case <-ctx.Done():
		res.err = fmt.Errorf("timed out after %s: %w", a.cfg.FeedTimeout, ctx.Err())
	}

	a.metrics.observeFeed(feed, start, res.err)
	if res.err != nil {
		a.logger.WithFields(logrus.Fields{
			"service": "resource",
			"feed":    feed,
		}).WithError(res.err).Debug("Feed call failed")
	}
	return res.value, res.err
}
