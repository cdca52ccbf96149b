package models

import "time"

// AuditLog records a user-visible action for the audit trail. Writes
// are fire-and-forget from the core's perspective.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;index"`
	Username  string    `json:"username" gorm:"column:username;size:64"`
	Action    string    `json:"action" gorm:"column:action;size:64;not null"`
	Details   string    `json:"details" gorm:"column:details"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;not null"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// PredictionHistory stores a flattened summary of a served prediction:
// the forecast entries themselves are not persisted as first-class rows.
type PredictionHistory struct {
	ID              uint      `json:"id" gorm:"primaryKey;column:id"`
	UserID          uint      `json:"user_id" gorm:"column:user_id;not null;index"`
	Username        string    `json:"username" gorm:"column:username;size:64;not null"`
	Location        string    `json:"location" gorm:"column:location;size:255;not null"`
	PredictionDate  string    `json:"prediction_date" gorm:"column:prediction_date;size:10;not null"` // YYYY-MM-DD
	PredictedCrimes string    `json:"predicted_crimes" gorm:"column:predicted_crimes"`               // joined top crime labels
	Timestamp       time.Time `json:"timestamp" gorm:"column:timestamp;not null"`
}

func (PredictionHistory) TableName() string {
	return "prediction_history"
}

// UserSession is one login/logout pair; duration is filled on close.
type UserSession struct {
	ID              uint       `json:"id" gorm:"primaryKey;column:id"`
	UserID          uint       `json:"user_id" gorm:"column:user_id;not null;index"`
	Token           string     `json:"token" gorm:"column:token;size:36;uniqueIndex"`
	LoginTime       time.Time  `json:"login_time" gorm:"column:login_time;not null"`
	LogoutTime      *time.Time `json:"logout_time" gorm:"column:logout_time"`
	SessionDuration int        `json:"session_duration" gorm:"column:session_duration"` // minutes
}

func (UserSession) TableName() string {
	return "user_sessions"
}
