package models

import "time"

// Role is the closed set of account roles. The original deployment
// compared free-form strings; keeping the stored values but typing them
// means the exemption rule below is a lookup, not scattered matching.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleAnalyst      Role = "Data Analyst"
	RoleStandardUser Role = "Standard User"

	// RoleGuest exists only client-side; it never has a backing row.
	RoleGuest Role = "Guest"
)

// quotaExempt maps each role to whether the daily prediction quota
// applies. Only Standard User accounts are gated.
var quotaExempt = map[Role]bool{
	RoleAdmin:        true,
	RoleAnalyst:      true,
	RoleStandardUser: false,
}

// QuotaExempt reports whether accounts with this role bypass the daily
// prediction quota. Unknown roles are treated as gated.
func (r Role) QuotaExempt() bool {
	return quotaExempt[r]
}

// User is an operator account. Accounts are never deleted in normal
// operation; deactivation flips IsActive instead.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;column:id"`
	Username     string `json:"username" gorm:"column:username;size:64;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:128;not null"`
	Role         Role   `json:"role" gorm:"column:role;size:32;not null"`
	FullName     string `json:"full_name" gorm:"column:full_name;size:128"`
	Email        string `json:"email" gorm:"column:email;size:128"`

	CreatedDate time.Time  `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	LastLogin   *time.Time `json:"last_login" gorm:"column:last_login"`
	IsActive    bool       `json:"is_active" gorm:"column:is_active;default:true"`

	// Quota state. The count is only meaningful while
	// LastPredictionDate is today; any read on a later day resets it.
	DailyPredictionCount int    `json:"daily_prediction_count" gorm:"column:daily_prediction_count;default:0"`
	LastPredictionDate   string `json:"last_prediction_date" gorm:"column:last_prediction_date;size:10"` // YYYY-MM-DD
}

func (User) TableName() string {
	return "users"
}
