package service

import (
	"math"
	"testing"

	"github.com/shenikar/alertcare_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  models.RiskCategory
	}{
		{100, models.RiskStable},
		{90, models.RiskStable},
		{89.999, models.RiskEarlyInstability},
		{70, models.RiskEarlyInstability},
		{69.99, models.RiskSustainedDeterioration},
		{50, models.RiskSustainedDeterioration},
		{49.99, models.RiskHighRiskDecline},
		{0, models.RiskHighRiskDecline},
		{-12, models.RiskHighRiskDecline},
		{140, models.RiskStable},
		{math.NaN(), models.RiskHighRiskDecline},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %v", tt.score)
	}
}

func TestClassify_PartitionsScoreRange(t *testing.T) {
	seen := make(map[models.RiskCategory]int)
	prev := Classify(0)

	// каждая категория встречается одним непрерывным отрезком, по убыванию тяжести
	for i := 0; i <= 10000; i++ {
		score := float64(i) / 100
		got := Classify(score)
		seen[got]++
		assert.LessOrEqual(t, got.Severity(), prev.Severity(), "severity must not grow with score at %v", score)
		prev = got
	}

	assert.Len(t, seen, 4)
	assert.Equal(t, 5000, seen[models.RiskHighRiskDecline])
	assert.Equal(t, 2000, seen[models.RiskSustainedDeterioration])
	assert.Equal(t, 2000, seen[models.RiskEarlyInstability])
	assert.Equal(t, 1001, seen[models.RiskStable])
}
