package models

import "time"

// CaseStatus is the investigation state of a recorded incident.
type CaseStatus string

const (
	StatusOpen               CaseStatus = "Open"
	StatusClosed             CaseStatus = "Closed"
	StatusUnderInvestigation CaseStatus = "Under Investigation"
)

// Incident is one row of the crime corpus. Rows are created in bulk at
// data-load time and replaced wholesale on retrain; the only field
// written after creation is ClusterID, assigned once per training pass.
type Incident struct {
	ID            uint       `json:"id" gorm:"primaryKey;column:id"`
	Date          time.Time  `json:"date" gorm:"column:date;not null"`
	CrimeType     string     `json:"crime_type" gorm:"column:crime_type;size:64;not null;index"`
	Location      string     `json:"location" gorm:"column:location;size:255;not null;index"`
	Latitude      float64    `json:"latitude" gorm:"column:latitude;not null"`
	Longitude     float64    `json:"longitude" gorm:"column:longitude;not null"`
	Status        CaseStatus `json:"status" gorm:"column:status;size:32;not null"`
	Summary       string     `json:"summary" gorm:"column:summary"`
	ModusOperandi string     `json:"modus_operandi" gorm:"column:modus_operandi;size:128"`

	// Derived at ingest: calendar features for the classifier. Hour is
	// synthetic because the source data carries dates only.
	DayOfWeek int `json:"day_of_week" gorm:"column:day_of_week"` // Monday=0 .. Sunday=6
	Month     int `json:"month" gorm:"column:month"`             // 1..12
	Hour      int `json:"hour" gorm:"column:hour"`               // 0..23

	// Assigned by the hotspot clusterer after training.
	ClusterID int `json:"cluster_id" gorm:"column:cluster_id;default:-1"`
}

func (Incident) TableName() string {
	return "crime_reports"
}
