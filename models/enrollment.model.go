package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course.
// An enrollment is "active" when Status is ACTIVE and the current time falls
// inside the [TimeStart, TimeEnd) window (nil bounds are open).
type Enrollment struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	CourseID  uint       `json:"course_id" gorm:"index;not null"`
	Status    string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, SUSPENDED
	TimeStart *time.Time `json:"time_start"`
	TimeEnd   *time.Time `json:"time_end"`
	IsDeleted bool       `gorm:"default:false"`
}
