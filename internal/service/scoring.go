package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	safetyPoints        = 40
	bedPointsPerBed     = 2
	maxBedPoints        = 10
	transportBasePoints = 30
	pointsPerAmbulance  = 5
	maxTransportBonus   = 10
	maxProximityPoints  = 20
	oxygenHighPSI       = 500
	oxygenMidPSI        = 450
	oxygenHighPoints    = 10
	oxygenMidPoints     = 5
)

// DispatchScorer ранжирует учреждения по пригодности для отправки пациента
type DispatchScorer struct {
	facilities FacilityDirectory
	logger     *logrus.Logger
}

func NewDispatchScorer(facilities FacilityDirectory, logger *logrus.Logger) *DispatchScorer {
	return &DispatchScorer{
		facilities: facilities,
		logger:     logger,
	}
}

// Rank возвращает кандидатов по убыванию балла; первый безопасный помечается recommended
func (s *DispatchScorer) Rank(ctx context.Context, candidates []models.FacilitySnapshot, sector, condition string) ([]models.ScoredFacility, error) {
	proximity, err := s.facilities.ProximityTable(ctx, sector)
	if err != nil {
		return nil, fmt.Errorf("service: could not load proximity table for sector %q: %w", sector, err)
	}

	ranked := RankCandidates(candidates, proximity)

	s.logger.WithFields(logrus.Fields{
		"service":    "scoring",
		"method":     "Rank",
		"sector":     sector,
		"condition":  condition,
		"candidates": len(ranked),
	}).Debug("Candidates ranked")
	return ranked, nil
}

// RankCandidates детерминированно ранжирует снимки по статической таблице близости.
// При равном балле выигрывает меньшее ETA (неизвестное ETA - худшее), затем меньший id.
func RankCandidates(candidates []models.FacilitySnapshot, proximity map[string]int) []models.ScoredFacility {
	ranked := make([]models.ScoredFacility, 0, len(candidates))
	for _, snap := range candidates {
		score, breakdown := ScoreFacility(snap, proximity[snap.FacilityID])
		ranked = append(ranked, models.ScoredFacility{
			Snapshot:  snap,
			Score:     score,
			Breakdown: breakdown,
		})
	}

	slices.SortStableFunc(ranked, func(a, b models.ScoredFacility) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(etaRank(a.Snapshot.AmbulanceETAMinutes), etaRank(b.Snapshot.AmbulanceETAMinutes)); c != 0 {
			return c
		}
		return cmp.Compare(a.Snapshot.FacilityID, b.Snapshot.FacilityID)
	})

	for i := range ranked {
		if ranked[i].Snapshot.IsSafeForDispatch {
			ranked[i].Recommended = true
			break
		}
	}
	return ranked
}

// ScoreFacility считает балл одного учреждения
func ScoreFacility(snap models.FacilitySnapshot, proximityPoints int) (int, models.ScoreBreakdown) {
	var b models.ScoreBreakdown

	if snap.IsSafeForDispatch {
		b.Safety = safetyPoints
	}
	b.Beds = min(maxBedPoints, bedPointsPerBed*max(snap.ICUBedsFree, 0))
	if snap.AmbulanceAvailable > 0 {
		b.TransportBase = transportBasePoints
		b.TransportBonus = min(maxTransportBonus, pointsPerAmbulance*snap.AmbulanceAvailable)
	}
	b.Proximity = max(0, min(maxProximityPoints, proximityPoints))
	switch {
	case snap.OxygenPSI > oxygenHighPSI:
		b.Oxygen = oxygenHighPoints
	case snap.OxygenPSI > oxygenMidPSI:
		b.Oxygen = oxygenMidPoints
	}

	return b.Safety + b.Beds + b.TransportBase + b.TransportBonus + b.Proximity + b.Oxygen, b
}

func etaRank(eta int) int {
	if eta < 0 {
		return math.MaxInt
	}
	return eta
}
