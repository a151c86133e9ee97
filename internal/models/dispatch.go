package models

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketDispatched TicketStatus = "Dispatched"
	TicketFailed     TicketStatus = "Failed"
)

// DispatchTicket создается один раз на успешное решение и не изменяется
type DispatchTicket struct {
	ID                uuid.UUID        `json:"id"`
	PatientID         uuid.UUID        `json:"patient_id"`
	FacilityID        string           `json:"facility_id"`
	ETAMinutes        int              `json:"eta_minutes"`
	ResourcesAtCommit FacilitySnapshot `json:"resources_at_commit"`
	Status            TicketStatus     `json:"status"`
	Sector            string           `json:"sector"`
	Condition         string           `json:"condition"`
	CreatedAt         time.Time        `json:"created_at"`
}

// ScoreBreakdown - слагаемые итогового балла учреждения
type ScoreBreakdown struct {
	Safety         int `json:"safety"`
	Beds           int `json:"beds"`
	TransportBase  int `json:"transport_base"`
	TransportBonus int `json:"transport_bonus"`
	Proximity      int `json:"proximity"`
	Oxygen         int `json:"oxygen"`
}

type ScoredFacility struct {
	Snapshot    FacilitySnapshot `json:"snapshot"`
	Score       int              `json:"score"`
	Breakdown   ScoreBreakdown   `json:"breakdown"`
	Recommended bool             `json:"recommended"`
}

// DispatchRequest - запрос на отправку пациента; пустой FacilityID означает автовыбор
type DispatchRequest struct {
	PatientID  uuid.UUID
	FacilityID string
	Sector     string
	Condition  string
}
