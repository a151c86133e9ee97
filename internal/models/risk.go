package models

// RiskCategory - порядковая категория риска, выводится из стабильности
type RiskCategory string

const (
	RiskStable                 RiskCategory = "Stable"
	RiskEarlyInstability       RiskCategory = "EarlyInstability"
	RiskSustainedDeterioration RiskCategory = "SustainedDeterioration"
	RiskHighRiskDecline        RiskCategory = "HighRiskDecline"
)

// Severity возвращает порядок тяжести: 0 - Stable, 3 - HighRiskDecline
func (c RiskCategory) Severity() int {
	switch c {
	case RiskStable:
		return 0
	case RiskEarlyInstability:
		return 1
	case RiskSustainedDeterioration:
		return 2
	case RiskHighRiskDecline:
		return 3
	}
	return -1
}
