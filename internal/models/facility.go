package models

import (
	"time"
)

// UnknownETA - ETA неизвестно (фид транспорта недоступен)
const UnknownETA = -1

type Facility struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FacilityDistance - учреждение и расстояние до него по поверхности Земли
type FacilityDistance struct {
	Facility   *Facility
	DistanceKm float64
}

// BedCensus - ответ фида коечного фонда (ADT)
type BedCensus struct {
	ICUBedsFree  int       `json:"icu_beds_free"`
	ICUBedsTotal int       `json:"icu_beds_total"`
	SyncedAt     time.Time `json:"synced_at"`
}

// OxygenReading - ответ датчика давления кислорода
type OxygenReading struct {
	PSI      float64   `json:"psi"`
	SyncedAt time.Time `json:"synced_at"`
}

// TransportStatus - ответ трекера скорой помощи
type TransportStatus struct {
	AmbulancesAvailable int       `json:"ambulances_available"`
	ETAMinutes          int       `json:"eta_minutes"`
	SyncedAt            time.Time `json:"synced_at"`
}

// Override - ручное решение оператора ("красный телефон").
// Не истекает, снимается только явно.
type Override struct {
	FacilityID    string    `json:"facility_id"`
	Active        bool      `json:"active"`
	AllowDispatch bool      `json:"allow_dispatch"`
	Reason        string    `json:"reason"`
	SetBy         string    `json:"set_by"`
	SetAt         time.Time `json:"set_at"`
}

// OverrideRequest - параметры установки override
type OverrideRequest struct {
	AllowDispatch bool
	Reason        string
	SetBy         string
}

// FacilitySnapshot собирается заново на каждый запрос и не сохраняется
type FacilitySnapshot struct {
	FacilityID          string    `json:"facility_id"`
	ICUBedsFree         int       `json:"icu_beds_free"`
	ICUBedsTotal        int       `json:"icu_beds_total"`
	OxygenPSI           float64   `json:"oxygen_psi"`
	AmbulanceAvailable  int       `json:"ambulance_available"`
	AmbulanceETAMinutes int       `json:"ambulance_eta_minutes"`
	LastSync            time.Time `json:"last_sync"`
	Override            *Override `json:"override,omitempty"`
	IsSafeForDispatch   bool      `json:"is_safe_for_dispatch"`
	Degraded            bool      `json:"degraded"`
	Reason              string    `json:"reason,omitempty"`
}
