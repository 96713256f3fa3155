package models

import "gorm.io/gorm"

// RoleAssignment assigns a role to a user within a course context
type RoleAssignment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	ShortName string `json:"short_name"` // student, teacher, manager, ...
	IsDeleted bool   `gorm:"default:false"`
}
