package service

import (
	"math"

	"github.com/shenikar/alertcare_dispatch/internal/models"
)

// Classify отображает оценку стабильности в категорию риска.
// Оценка обрезается до [0, 100]; NaN считается худшим случаем.
func Classify(score float64) models.RiskCategory {
	if math.IsNaN(score) {
		return models.RiskHighRiskDecline
	}
	score = math.Max(0, math.Min(100, score))

	switch {
	case score >= 90:
		return models.RiskStable
	case score >= 70:
		return models.RiskEarlyInstability
	case score >= 50:
		return models.RiskSustainedDeterioration
	default:
		return models.RiskHighRiskDecline
	}
}
