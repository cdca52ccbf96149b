package models

import "time"

// Setting keys used by the core.
const (
	SettingDailyQuota         = "standard_user_daily_quota"
	SettingSessionTimeout     = "session_timeout_minutes"
	SettingDataRetentionDays  = "data_retention_days"
	SettingEmailNotifications = "enable_email_notifications"
)

// SystemSetting is a tunable key/value pair.
type SystemSetting struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	SettingKey  string    `json:"setting_key" gorm:"column:setting_key;size:64;uniqueIndex;not null"`
	Value       string    `json:"setting_value" gorm:"column:setting_value;size:255;not null"`
	Description string    `json:"description" gorm:"column:description"`
	UpdatedBy   string    `json:"updated_by" gorm:"column:updated_by;size:64"`
	UpdatedDate time.Time `json:"updated_date" gorm:"column:updated_date;autoUpdateTime"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
