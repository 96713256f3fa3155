package models

import "gorm.io/gorm"

// Admin setting names
const (
	SettingEnrollmentFilter = "summary_enrollment_filter" // all, enrolled, active
	SettingCustomSCSS       = "custom_scss"
	SettingDisplayMode      = "default_display_mode"
)

// Setting is a single admin configuration value
type Setting struct {
	gorm.Model
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}
