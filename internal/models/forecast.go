package models

import "time"

// RankedCrime pairs a crime label with its model probability.
type RankedCrime struct {
	CrimeType   string  `json:"crime_type"`
	Probability float64 `json:"probability"`
}

// ForecastEntry is one anticipated incident inside the 72-hour horizon.
// Generated fresh per prediction call and never persisted as a row.
type ForecastEntry struct {
	CrimeType     string    `json:"crime_type"`
	Anticipated   time.Time `json:"anticipated"`
	ModusOperandi string    `json:"modus_operandi"`
}

// Forecast is the full result of one prediction call. Anticipated is in
// crime-rank order, matching RankedCrimes, not in time order.
type Forecast struct {
	Location     string          `json:"location"`
	LocationKey  string          `json:"location_key"`
	Target       time.Time       `json:"target"`
	RankedCrimes []RankedCrime   `json:"ranked_crimes"`
	PrimaryMO    string          `json:"primary_mo"`
	Anticipated  []ForecastEntry `json:"anticipated"`
}

// Hotspot summarises one geographic cluster for reporting: its centre,
// case density and the dominant crime type observed inside it.
type Hotspot struct {
	ClusterID int     `json:"cluster_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CaseCount int     `json:"case_count"`
	TopCrime  string  `json:"top_crime"`
}
