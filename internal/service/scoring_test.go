package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/shenikar/alertcare_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func safeSnapshot(id string, beds, ambulances, eta int, psi float64) models.FacilitySnapshot {
	return models.FacilitySnapshot{
		FacilityID:          id,
		ICUBedsFree:         beds,
		ICUBedsTotal:        20,
		OxygenPSI:           psi,
		AmbulanceAvailable:  ambulances,
		AmbulanceETAMinutes: eta,
		LastSync:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		IsSafeForDispatch:   true,
	}
}

func rankedIDs(ranked []models.ScoredFacility) []string {
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Snapshot.FacilityID
	}
	return ids
}

func TestScoreFacility(t *testing.T) {
	t.Run("all components capped", func(t *testing.T) {
		score, b := ScoreFacility(safeSnapshot("F1", 12, 4, 8, 620), 35)

		assert.Equal(t, models.ScoreBreakdown{
			Safety:         40,
			Beds:           10,
			TransportBase:  30,
			TransportBonus: 10,
			Proximity:      20,
			Oxygen:         10,
		}, b)
		assert.Equal(t, 120, score)
	})

	t.Run("partial values", func(t *testing.T) {
		score, b := ScoreFacility(safeSnapshot("F1", 2, 1, 8, 460), 7)

		assert.Equal(t, 4, b.Beds)
		assert.Equal(t, 5, b.TransportBonus)
		assert.Equal(t, 5, b.Oxygen)
		assert.Equal(t, 40+4+30+5+7+5, score)
	})

	t.Run("unsafe facility gets no safety points and no transport without ambulances", func(t *testing.T) {
		snap := safeSnapshot("F1", 0, 0, models.UnknownETA, 450)
		snap.IsSafeForDispatch = false

		score, b := ScoreFacility(snap, -5)

		assert.Zero(t, b.Safety)
		assert.Zero(t, b.TransportBase)
		assert.Zero(t, b.Proximity)
		assert.Zero(t, b.Oxygen, "450 psi is not above the 450 threshold")
		assert.Zero(t, score)
	})
}

func TestRankCandidates_TieBreaks(t *testing.T) {
	t.Run("equal score prefers lower ETA", func(t *testing.T) {
		ranked := RankCandidates([]models.FacilitySnapshot{
			safeSnapshot("A", 3, 1, 12, 480),
			safeSnapshot("B", 3, 1, 5, 480),
		}, nil)

		require.Equal(t, ranked[0].Score, ranked[1].Score)
		assert.Equal(t, []string{"B", "A"}, rankedIDs(ranked))
	})

	t.Run("equal score and ETA prefers lower id", func(t *testing.T) {
		ranked := RankCandidates([]models.FacilitySnapshot{
			safeSnapshot("C", 3, 1, 7, 480),
			safeSnapshot("A", 3, 1, 7, 480),
			safeSnapshot("B", 3, 1, 7, 480),
		}, nil)

		assert.Equal(t, []string{"A", "B", "C"}, rankedIDs(ranked))
	})

	t.Run("unknown ETA ranks after any known ETA", func(t *testing.T) {
		ranked := RankCandidates([]models.FacilitySnapshot{
			safeSnapshot("A", 3, 1, models.UnknownETA, 480),
			safeSnapshot("B", 3, 1, 90, 480),
		}, nil)

		assert.Equal(t, []string{"B", "A"}, rankedIDs(ranked))
	})
}

func TestRankCandidates_Deterministic(t *testing.T) {
	proximity := map[string]int{"F1": 20, "F2": 15, "F3": 10, "F4": 5}
	input := []models.FacilitySnapshot{
		safeSnapshot("F3", 4, 2, 10, 510),
		safeSnapshot("F1", 1, 1, 20, 460),
		safeSnapshot("F4", 4, 2, 10, 510),
		safeSnapshot("F2", 5, 0, models.UnknownETA, 300),
	}
	reversed := []models.FacilitySnapshot{input[3], input[2], input[1], input[0]}

	first := RankCandidates(input, proximity)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RankCandidates(input, proximity))
	}
	assert.Equal(t, rankedIDs(first), rankedIDs(RankCandidates(reversed, proximity)))
}

func TestRankCandidates_OverrideExcludedFromRecommended(t *testing.T) {
	// лучший по ресурсам F1, но оператор запретил отправку
	blocked := safeSnapshot("F1", 10, 3, 4, 600)
	blocked.IsSafeForDispatch = false
	blocked.Override = &models.Override{FacilityID: "F1", Active: true, AllowDispatch: false, Reason: "generator failure", SetBy: "ops"}

	candidates := []models.FacilitySnapshot{
		blocked,
		safeSnapshot("F2", 2, 1, 15, 460),
		safeSnapshot("F3", 1, 1, 20, 420),
		safeSnapshot("F4", 3, 1, 9, 470),
	}
	proximity := map[string]int{"F1": 20, "F2": 10, "F3": 10, "F4": 10}

	unblocked := blocked
	unblocked.IsSafeForDispatch = true
	rawTop, _ := ScoreFacility(unblocked, proximity["F1"])

	ranked := RankCandidates(candidates, proximity)
	for _, r := range ranked {
		if r.Snapshot.FacilityID == "F1" {
			assert.False(t, r.Recommended)
			continue
		}
		assert.Less(t, r.Score, rawTop, "without the override F1 would rank first")
	}

	recommended := 0
	for _, r := range ranked {
		if r.Recommended {
			recommended++
			assert.Equal(t, "F4", r.Snapshot.FacilityID)
		}
	}
	assert.Equal(t, 1, recommended)
}

func TestRankCandidates_NoSafeCandidate(t *testing.T) {
	a := safeSnapshot("A", 0, 1, 5, 300)
	a.IsSafeForDispatch = false

	ranked := RankCandidates([]models.FacilitySnapshot{a}, nil)

	require.Len(t, ranked, 1)
	assert.False(t, ranked[0].Recommended)
}

func TestDispatchScorer_Rank(t *testing.T) {
	ctrl := gomock.NewController(t)
	facilities := mocks.NewMockFacilityDirectory(ctrl)
	scorer := NewDispatchScorer(facilities, newTestLogger())

	t.Run("uses sector proximity table", func(t *testing.T) {
		facilities.EXPECT().ProximityTable(gomock.Any(), "north").Return(map[string]int{"B": 20}, nil).Times(1)

		ranked, err := scorer.Rank(context.Background(), []models.FacilitySnapshot{
			safeSnapshot("A", 3, 1, 5, 480),
			safeSnapshot("B", 3, 1, 5, 480),
		}, "north", "cardiac")

		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A"}, rankedIDs(ranked))
		assert.Equal(t, 20, ranked[0].Breakdown.Proximity)
	})

	t.Run("proximity table error", func(t *testing.T) {
		facilities.EXPECT().ProximityTable(gomock.Any(), "south").Return(nil, errors.New("db down")).Times(1)

		_, err := scorer.Rank(context.Background(), nil, "south", "")
		assert.ErrorContains(t, err, "proximity table")
	})
}
