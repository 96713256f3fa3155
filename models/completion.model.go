package models

import "gorm.io/gorm"

// ActivityCompletion tracks a user's completion state for one activity.
// State values follow the progress package constants: 0 incomplete,
// 1 complete, 2 complete with pass grade, 3 complete with fail grade.
type ActivityCompletion struct {
	gorm.Model
	ActivityID uint `json:"activity_id" gorm:"index;not null"`
	UserID     uint `json:"user_id" gorm:"index;not null"`
	State      int  `json:"state" gorm:"default:0"`
	IsDeleted  bool `gorm:"default:false"`
}
