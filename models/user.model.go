package models

import "gorm.io/gorm"

// User represents a platform user
type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	IsDeleted bool   `gorm:"default:false"`
}
